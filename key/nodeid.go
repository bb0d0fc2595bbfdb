package key

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/revistek/kademlia-dht/kad"
	"github.com/revistek/kademlia-dht/kaderr"
	"github.com/revistek/kademlia-dht/numeric"
)

// NodeIDSize is the size of a NodeID in bytes.
const NodeIDSize = 20

// NodeID is a 160-bit identifier held as big-endian bytes. It is the
// fixed-width form of an Identifier, left-padded with zero bytes.
type NodeID [NodeIDSize]byte

var _ kad.Key[NodeID] = NodeID{}

var (
	// ZeroNodeID is the lowest NodeID of the keyspace.
	ZeroNodeID = NodeID{}

	// MaxNodeID is the highest NodeID of the keyspace, all bits set.
	MaxNodeID = func() NodeID {
		var id NodeID
		for i := range id {
			id[i] = 0xff
		}
		return id
	}()
)

// NewNodeID left-pads data to NodeIDSize bytes. Leading zero bytes of data do
// not count towards its size.
func NewNodeID(data []byte) (NodeID, error) {
	if len(data) == 0 {
		return NodeID{}, kaderr.InvalidValue("node id needs at least one byte")
	}
	significant := bytes.TrimLeft(data, "\x00")
	if len(significant) > NodeIDSize {
		return NodeID{}, kaderr.ValueOutOfRange(fmt.Sprintf("%d significant bytes do not fit in a node id", len(significant)))
	}
	return padNodeID(significant), nil
}

// NodeIDFromDecimal decodes a base 10 number into a NodeID. Values whose
// encoding needs more than NodeIDSize bytes are rejected with
// kaderr.ErrValueOutOfRange.
func NodeIDFromDecimal(s string) (NodeID, error) {
	b, err := numeric.Decimal(s, numeric.WithMaxBytes(NodeIDSize))
	if err != nil {
		return NodeID{}, err
	}
	return padNodeID(b), nil
}

// NodeIDFromHex decodes a 0x prefixed base 16 number into a NodeID.
func NodeIDFromHex(s string) (NodeID, error) {
	b, err := numeric.Hex(s, numeric.WithMaxBytes(NodeIDSize))
	if err != nil {
		return NodeID{}, err
	}
	return padNodeID(b), nil
}

func padNodeID(b []byte) NodeID {
	var id NodeID
	copy(id[NodeIDSize-len(b):], b)
	return id
}

func (id NodeID) BitLen() int {
	return 8 * NodeIDSize
}

func (id NodeID) Bit(i int) uint {
	return id.ID().Bit(i)
}

// ID returns a read-only bit view of the node id.
func (id NodeID) ID() BitView {
	return newBitView(id[:])
}

// IsMatch reports whether the bits of id are a prefix of the bits of other.
// Both span 160 bits, so this holds only when they are equal.
func (id NodeID) IsMatch(other NodeID) bool {
	return other.ID().HasPrefix(id.ID())
}

func (id NodeID) Xor(other NodeID) NodeID {
	var xored NodeID
	for i := range id {
		xored[i] = id[i] ^ other[i]
	}
	return xored
}

func (id NodeID) CommonPrefixLength(other NodeID) int {
	return id.ID().CommonPrefixLength(other.ID())
}

// Compare returns -1 if id < other, 0 if id == other, and 1 if id > other
func (id NodeID) Compare(other NodeID) int {
	return bytes.Compare(id[:], other[:])
}

func (id NodeID) Equal(other NodeID) bool {
	return id == other
}

// Identifier returns the variable-width form of the node id, without the
// leading zero bytes.
func (id NodeID) Identifier() Identifier {
	b := bytes.TrimLeft(id[:], "\x00")
	if len(b) == 0 {
		return Identifier{bytes: []byte{0}}
	}
	return Identifier{bytes: bytes.Clone(b)}
}

func (id NodeID) Hex() string {
	return hex.EncodeToString(id[:])
}

func (id NodeID) String() string {
	return id.Hex()
}
