package sha1key160

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/revistek/kademlia-dht/key"
)

func TestStringNodeID(t *testing.T) {
	str := "hello world"
	// generated with: $ echo -n "hello world" | sha1sum
	digest := "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed"

	kid := StringNodeID(str)
	require.Equal(t, digest, kid.String())
	require.Equal(t, key.NodeIDSize, Keysize)
	require.Equal(t, kid, NodeID([]byte(str)))
}
