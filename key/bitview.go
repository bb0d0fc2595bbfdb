package key

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/revistek/kademlia-dht/kad"
)

// BitView is a read-only view of a byte sequence as bits, most significant
// bit of the first byte first. Its length need not be a multiple of eight.
type BitView struct {
	bytes []byte
	n     int
}

var _ kad.BitVector = BitView{}

func newBitView(b []byte) BitView {
	return BitView{bytes: b, n: 8 * len(b)}
}

// BitLen returns the number of bits in the view.
func (v BitView) BitLen() int {
	return v.n
}

// Bit returns the value of the i'th bit. Bit will panic if i is out of the
// range [0,BitLen()-1].
func (v BitView) Bit(i int) uint {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("bit index %d out of range [0,%d)", i, v.n))
	}
	return uint(v.bytes[i/8]>>(7-i%8)) & 1
}

// Prefix returns a view of the first n bits.
func (v BitView) Prefix(n int) BitView {
	if n < 0 || n > v.n {
		panic(fmt.Sprintf("prefix length %d out of range [0,%d]", n, v.n))
	}
	return BitView{bytes: v.bytes[:(n+7)/8], n: n}
}

// CommonPrefixLength returns the number of leading bits shared by both views.
func (v BitView) CommonPrefixLength(o BitView) int {
	l := min(v.n, o.n)
	full := l / 8
	for i := 0; i < full; i++ {
		if x := v.bytes[i] ^ o.bytes[i]; x != 0 {
			return i*8 + bits.LeadingZeros8(x)
		}
	}
	if rem := l % 8; rem != 0 {
		if lz := bits.LeadingZeros8(v.bytes[full] ^ o.bytes[full]); lz < rem {
			return full*8 + lz
		}
	}
	return l
}

// HasPrefix reports whether p is a leading subsequence of v. A prefix longer
// than v never matches.
func (v BitView) HasPrefix(p BitView) bool {
	if p.n > v.n {
		return false
	}
	return v.CommonPrefixLength(p) == p.n
}

// String returns the bits as a string of '0' and '1' characters.
func (v BitView) String() string {
	b := new(strings.Builder)
	b.Grow(v.n)
	for i := 0; i < v.n; i++ {
		b.WriteByte('0' + byte(v.Bit(i)))
	}
	return b.String()
}
