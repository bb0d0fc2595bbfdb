package testutil

import (
	"math/rand"

	"github.com/revistek/kademlia-dht/key"
	"github.com/revistek/kademlia-dht/key/keyutil"
)

var rng = rand.New(rand.NewSource(299792458))

// Random returns an Identifier of size bytes populated with deterministic random data.
func Random(size int) key.Identifier {
	return keyutil.RandomFrom(rng, size)
}

// RandomWithPrefix returns an Identifier of size bytes having a prefix equal to the bit pattern held in s.
// The remaining bits are deterministic random data.
func RandomWithPrefix(s string, size int) key.Identifier {
	return keyutil.RandomWithPrefixFrom(rng, s, size)
}
