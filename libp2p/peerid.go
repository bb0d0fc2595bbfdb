package libp2p

import (
	"github.com/libp2p/go-libp2p/core/peer"

	"github.com/revistek/kademlia-dht/kad"
	"github.com/revistek/kademlia-dht/key"
	"github.com/revistek/kademlia-dht/key/sha1key160"
)

// PeerID places a libp2p peer in the 160-bit keyspace.
type PeerID struct {
	peer.ID
}

var _ kad.NodeID[key.NodeID] = (*PeerID)(nil)

func NewPeerID(p peer.ID) PeerID {
	return PeerID{p}
}

// Key returns the SHA1 digest of the peer id bytes.
func (id PeerID) Key() key.NodeID {
	return sha1key160.NodeID([]byte(id.ID))
}

func (id PeerID) NodeID() kad.NodeID[key.NodeID] {
	return &id
}
