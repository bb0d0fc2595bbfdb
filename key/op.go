package key

import (
	"strings"

	"github.com/revistek/kademlia-dht/kad"
)

// Equal reports whether two keys have equal numeric values.
func Equal[K kad.Key[K]](a, b K) bool {
	return a.Compare(b) == 0
}

// BitString returns a string containing the binary representation of a bit vector.
func BitString[V kad.BitVector](v V) string {
	if bs, ok := any(v).(interface{ BitString() string }); ok {
		return bs.BitString()
	}
	b := new(strings.Builder)
	b.Grow(v.BitLen())
	for i := 0; i < v.BitLen(); i++ {
		if v.Bit(i) == 0 {
			b.WriteByte('0')
		} else {
			b.WriteByte('1')
		}
	}
	return b.String()
}

// HexString returns a string containing the hexadecimal representation of a bit vector.
// When the length is not a multiple of four the leading nibble holds the leftover bits.
func HexString[V kad.BitVector](v V) string {
	if hs, ok := any(v).(interface{ HexString() string }); ok {
		return hs.HexString()
	}
	b := new(strings.Builder)
	b.Grow((v.BitLen() + 3) / 4)

	h := [...]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

	prebits := v.BitLen() % 4
	if prebits > 0 {
		var n byte
		for i := 0; i < prebits; i++ {
			n = n<<1 | byte(v.Bit(i))
		}
		b.WriteByte(h[n])
	}
	for i := prebits; i < v.BitLen(); i += 4 {
		var n byte
		n |= byte(v.Bit(i)) << 3
		n |= byte(v.Bit(i+1)) << 2
		n |= byte(v.Bit(i+2)) << 1
		n |= byte(v.Bit(i + 3))
		b.WriteByte(h[n])
	}
	return b.String()
}
