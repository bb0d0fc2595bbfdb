package libp2p

import (
	"testing"

	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/stretchr/testify/require"

	"github.com/revistek/kademlia-dht/key"
	"github.com/revistek/kademlia-dht/key/sha1key160"
)

func TestPeerIDKey(t *testing.T) {
	pid := NewPeerID(peer.ID("hello world"))
	require.Equal(t, "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed", pid.Key().String())
	require.Equal(t, sha1key160.StringNodeID("hello world"), pid.Key())

	other := NewPeerID(peer.ID("hello worlds"))
	require.Less(t, other.Key().CommonPrefixLength(pid.Key()), key.NodeIDSize*8)
	require.Equal(t, pid.ID.String(), pid.NodeID().String())
	require.Equal(t, pid.Key(), pid.NodeID().Key())
}
