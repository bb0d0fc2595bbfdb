package key_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/revistek/kademlia-dht/internal/testutil"
	"github.com/revistek/kademlia-dht/kaderr"
	"github.com/revistek/kademlia-dht/key"
	"github.com/revistek/kademlia-dht/numeric"
)

func mustNew(t *testing.T, b []byte) key.Identifier {
	t.Helper()
	id, err := key.New(b)
	require.NoError(t, err)
	return id
}

func mustDecimal(t *testing.T, s string) key.Identifier {
	t.Helper()
	id, err := key.FromDecimal(s)
	require.NoError(t, err)
	return id
}

func TestNew(t *testing.T) {
	_, err := key.New(nil)
	require.ErrorIs(t, err, kaderr.ErrInvalidValue)
	_, err = key.New([]byte{})
	require.ErrorIs(t, err, kaderr.ErrInvalidValue)

	data := []byte{0x12, 0x34}
	id := mustNew(t, data)
	data[0] = 0xff
	require.Equal(t, []byte{0x12, 0x34}, id.Bytes())

	// callers cannot reach the stored bytes through Bytes
	id.Bytes()[0] = 0xff
	require.Equal(t, "1234", id.String())
	require.Equal(t, 2, id.Size())
	require.Equal(t, 16, id.BitLen())
}

func TestFromDecimal(t *testing.T) {
	id := mustDecimal(t, "510")
	require.Equal(t, []byte{255, 255}, id.Bytes())

	id = mustDecimal(t, "530")
	require.Equal(t, []byte{20, 255, 255}, id.Bytes())

	require.True(t, mustDecimal(t, "1,234").Equal(mustDecimal(t, "1234")))
	require.True(t, mustDecimal(t, "98,765").Equal(mustDecimal(t, "98,765")))

	_, err := key.FromDecimal("1234567890J")
	require.ErrorIs(t, err, kaderr.ErrInvalidValue)

	_, err = key.FromDecimal("100000", numeric.WithMaxBytes(4))
	require.ErrorIs(t, err, kaderr.ErrValueOutOfRange)
}

func TestFromDecimalLargeValue(t *testing.T) {
	id := mustDecimal(t, "1234567890")
	require.Equal(t, (1234567890+254)/255, id.Size())

	var sum uint64
	for _, b := range id.Bytes() {
		sum += uint64(b)
	}
	require.Equal(t, uint64(1234567890), sum)
	require.Equal(t, byte(1234567890%255), id.Bytes()[0])
}

func TestFromHex(t *testing.T) {
	id, err := key.FromHex("0x212")
	require.NoError(t, err)
	require.True(t, id.Equal(mustDecimal(t, "530")))

	_, err = key.FromHex("NotAHexString")
	require.ErrorIs(t, err, kaderr.ErrInvalidValue)
}

func TestIsMatch(t *testing.T) {
	pattern := mustNew(t, []byte("101"))
	require.Equal(t, 24, pattern.BitLen())

	require.True(t, pattern.IsMatch(pattern))
	require.True(t, pattern.IsMatch(mustNew(t, []byte("1010"))))
	require.True(t, pattern.IsMatch(mustNew(t, append([]byte("101"), 0x00, 0xff))))
	require.False(t, pattern.IsMatch(mustNew(t, []byte("10"))))
	require.False(t, pattern.IsMatch(mustNew(t, []byte("100"))))
	require.False(t, pattern.IsMatch(mustNew(t, []byte("111"))))

	single := mustNew(t, []byte{0xa5})
	require.True(t, single.IsMatch(mustNew(t, []byte{0xa5, 0x01})))
	require.False(t, single.IsMatch(mustNew(t, []byte{0xa4, 0x01})))

	// a longer pattern never matches a shorter subject
	require.False(t, mustNew(t, []byte{0xa5, 0x01}).IsMatch(single))
}

func TestIsMatchZeroValue(t *testing.T) {
	var zero key.Identifier
	require.Equal(t, 0, zero.BitLen())
	require.False(t, zero.IsMatch(mustDecimal(t, "530")))
	require.False(t, zero.IsMatch(zero))
	require.False(t, mustDecimal(t, "530").IsMatch(zero))
}

func TestIsMatchRandomPrefix(t *testing.T) {
	prefixes := []string{"0", "1", "0110", "10100101", "110011001", "1111000011110000111100001111000011110000"}
	for _, p := range prefixes {
		bits := len(p)
		pattern := testutil.RandomWithPrefix(p, (bits+7)/8)
		subject := testutil.RandomWithPrefix(p, 32)
		require.Equal(t, p, pattern.ID().Prefix(bits).String())
		require.True(t, subject.ID().HasPrefix(pattern.ID().Prefix(bits)), "prefix %s", p)
		require.GreaterOrEqual(t, pattern.CommonPrefixLength(subject), bits)
	}
}

func TestCommonPrefixLength(t *testing.T) {
	a := mustNew(t, []byte{0x00, 0x00})
	require.Equal(t, 16, a.CommonPrefixLength(a))
	require.Equal(t, 15, a.CommonPrefixLength(mustNew(t, []byte{0x00, 0x01})))
	require.Equal(t, 0, a.CommonPrefixLength(mustNew(t, []byte{0x80, 0x00})))
	require.Equal(t, 1, a.CommonPrefixLength(mustNew(t, []byte{0x40, 0x00})))
	require.Equal(t, 8, a.CommonPrefixLength(mustNew(t, []byte{0x00})))
	require.Equal(t, 8, a.CommonPrefixLength(mustNew(t, []byte{0x00, 0xff, 0x00})))
}

func TestCompare(t *testing.T) {
	ids := []key.Identifier{
		mustDecimal(t, "0"),
		mustDecimal(t, "1"),
		mustDecimal(t, "255"),
		mustDecimal(t, "256"),
		mustDecimal(t, "510"),
		mustDecimal(t, "530"),
		mustDecimal(t, "10,000"),
	}

	for i := range ids {
		for j := range ids {
			res := ids[i].Compare(ids[j])
			switch {
			case i < j:
				require.Equal(t, -1, res)
			case i > j:
				require.Equal(t, 1, res)
			default:
				require.Equal(t, 0, res)
				require.True(t, ids[i].Equal(ids[j]))
			}
		}
	}
}

func TestIdentifierNodeID(t *testing.T) {
	nid, err := mustDecimal(t, "530").NodeID()
	require.NoError(t, err)
	require.Equal(t, "000000000000000000000000000000000014ffff", nid.String())

	_, err = mustDecimal(t, "5101").NodeID()
	require.ErrorIs(t, err, kaderr.ErrValueOutOfRange)
}
