package keyutil

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"strconv"

	"github.com/revistek/kademlia-dht/key"
)

// Random returns an Identifier of size bytes populated with random data.
func Random(size int) key.Identifier {
	return RandomFrom(rand.Reader, size)
}

// RandomFrom returns an Identifier of size bytes read from r.
func RandomFrom(r io.Reader, size int) key.Identifier {
	id, err := key.New(read(r, size))
	if err != nil {
		panic("Random: " + err.Error())
	}
	return id
}

// RandomNodeID returns a NodeID populated with random data.
func RandomNodeID() key.NodeID {
	var id key.NodeID
	copy(id[:], read(rand.Reader, key.NodeIDSize))
	return id
}

// RandomWithPrefix returns an Identifier of size bytes having a prefix equal to the bit pattern held in s.
// A prefix of up to 64 bits is supported.
func RandomWithPrefix(s string, size int) key.Identifier {
	return RandomWithPrefixFrom(rand.Reader, s, size)
}

// RandomWithPrefixFrom is RandomWithPrefix with the remaining bits read from r.
func RandomWithPrefixFrom(r io.Reader, s string, size int) key.Identifier {
	if s == "" {
		return RandomFrom(r, size)
	}

	bits := len(s)
	if bits > 64 {
		panic("RandomWithPrefix: prefix too long")
	} else if bits > 8*size {
		panic("RandomWithPrefix: prefix longer than key length")
	}
	n, err := strconv.ParseUint(s, 2, 64)
	if err != nil {
		panic("RandomWithPrefix: " + err.Error())
	}
	prefix := n << (64 - bits)

	bufSize := size
	if bufSize < 8 {
		bufSize = 8
	}
	buf := read(r, bufSize)

	lead := binary.BigEndian.Uint64(buf)
	lead <<= bits
	lead >>= bits
	lead |= prefix
	binary.BigEndian.PutUint64(buf, lead)

	id, err := key.New(buf[:size])
	if err != nil {
		panic("RandomWithPrefix: " + err.Error())
	}
	return id
}

func read(r io.Reader, size int) []byte {
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		panic("keyutil: failed to read enough entropy for key")
	}
	return buf
}
