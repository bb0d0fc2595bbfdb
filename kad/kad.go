package kad

// NodeID is a generic node identifier. It is used to identify a node.
type NodeID[K Key[K]] interface {
	// Key returns the Kademlia key of the NodeID.
	Key() K

	// String returns the string representation of the NodeID. String
	// representation should be unique for each NodeID.
	String() string
}
