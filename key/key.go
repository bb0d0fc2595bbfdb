package key

import (
	"bytes"
	"encoding/hex"

	"github.com/revistek/kademlia-dht/kaderr"
	"github.com/revistek/kademlia-dht/numeric"
)

// Identifier is an unsigned integer of arbitrary width stored as big-endian
// bytes. Identifiers are immutable and safe to share between goroutines.
//
// Identifiers decoded from text carry the minimal carry-split encoding
// produced by package numeric, so equal values always have equal encodings.
// The zero value holds no bytes and is not a valid identifier; use New,
// FromDecimal or FromHex.
type Identifier struct {
	bytes []byte
}

// New returns an Identifier holding a copy of data.
func New(data []byte) (Identifier, error) {
	if len(data) == 0 {
		return Identifier{}, kaderr.InvalidValue("identifier needs at least one byte")
	}
	return Identifier{bytes: bytes.Clone(data)}, nil
}

// FromDecimal decodes a base 10 number, with optional comma separators, into an
// Identifier.
func FromDecimal(s string, opts ...numeric.Option) (Identifier, error) {
	b, err := numeric.Decimal(s, opts...)
	if err != nil {
		return Identifier{}, err
	}
	return Identifier{bytes: b}, nil
}

// FromHex decodes a 0x prefixed base 16 number into an Identifier.
func FromHex(s string, opts ...numeric.Option) (Identifier, error) {
	b, err := numeric.Hex(s, opts...)
	if err != nil {
		return Identifier{}, err
	}
	return Identifier{bytes: b}, nil
}

func (id Identifier) Size() int {
	return len(id.bytes)
}

// Bytes returns a copy of the identifier's bytes.
func (id Identifier) Bytes() []byte {
	return bytes.Clone(id.bytes)
}

// ID returns a read-only bit view of the identifier.
func (id Identifier) ID() BitView {
	return newBitView(id.bytes)
}

func (id Identifier) BitLen() int {
	return 8 * len(id.bytes)
}

func (id Identifier) Bit(i int) uint {
	return id.ID().Bit(i)
}

// IsMatch reports whether the bits of id are a prefix of the bits of other.
// An identifier longer than other never matches it, and the zero Identifier
// matches nothing.
func (id Identifier) IsMatch(other Identifier) bool {
	if len(id.bytes) == 0 {
		return false
	}
	return other.ID().HasPrefix(id.ID())
}

func (id Identifier) CommonPrefixLength(other Identifier) int {
	return id.ID().CommonPrefixLength(other.ID())
}

// Compare returns -1 if id < other, 0 if id == other, and 1 if id > other.
// Shorter encodings sort first; encodings of equal size compare bytewise.
func (id Identifier) Compare(other Identifier) int {
	switch {
	case len(id.bytes) < len(other.bytes):
		return -1
	case len(id.bytes) > len(other.bytes):
		return 1
	}
	return bytes.Compare(id.bytes, other.bytes)
}

func (id Identifier) Equal(other Identifier) bool {
	return bytes.Equal(id.bytes, other.bytes)
}

// NodeID returns the fixed-width form of the identifier.
func (id Identifier) NodeID() (NodeID, error) {
	return NewNodeID(id.bytes)
}

func (id Identifier) Hex() string {
	return hex.EncodeToString(id.bytes)
}

func (id Identifier) String() string {
	return id.Hex()
}
