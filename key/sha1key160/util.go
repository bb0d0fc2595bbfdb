package sha1key160

import (
	"crypto/sha1"

	mh "github.com/multiformats/go-multihash"
	mhreg "github.com/multiformats/go-multihash/core"

	"github.com/revistek/kademlia-dht/key"
)

const (
	// HasherID is the identifier of the hash function used to derive node ids
	// from arbitrary preimages
	HasherID = mh.SHA1

	// Keysize is the length in bytes of the hash function's digest, which is
	// equivalent to the keysize in the Kademlia keyspace
	Keysize = sha1.Size
)

// NodeID produces a 160-bit NodeID from a preimage, using the SHA1 hash
// function.
func NodeID(preimage []byte) key.NodeID {
	hasher, err := mhreg.GetHasher(HasherID)
	if err != nil {
		panic("sha1key160: " + err.Error())
	}
	hasher.Write(preimage)

	var id key.NodeID
	copy(id[:], hasher.Sum(nil))
	return id
}

// StringNodeID produces a 160-bit NodeID from a string.
func StringNodeID(s string) key.NodeID {
	return NodeID([]byte(s))
}
