// Package numeric converts decimal and hexadecimal text into the carry-split
// big-endian byte encoding used by identifiers.
//
// Carry-splitting accumulates digit values into a wide integer and, whenever
// the accumulator holds more than a byte, peels a 255 byte off it. The bytes
// of an encoding therefore sum to the value it denotes: 510 is {255, 255} and
// 530 is {20, 255, 255}. Every byte but the most significant one is 255 and
// the most significant byte is zero only for the value zero.
package numeric

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"

	"github.com/holiman/uint256"

	"github.com/revistek/kademlia-dht/kaderr"
)

var hexPattern = regexp.MustCompile(`^0[xX][0-9A-Fa-f]+$`)

// Decimal decodes a base 10 number. Commas are treated as grouping separators
// and may appear anywhere in s.
func Decimal(s string, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	digits := strings.ReplaceAll(s, ",", "")
	if digits == "" {
		return nil, kaderr.InvalidValue("empty decimal string")
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, kaderr.InvalidValue(fmt.Sprintf("%q is not a decimal number", s))
		}
	}
	return carrySplit(digits, 10, cfg)
}

// Hex decodes a base 16 number written as 0x or 0X followed by at least one
// hexadecimal digit of either case.
func Hex(s string, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	if !hexPattern.MatchString(s) {
		return nil, kaderr.InvalidValue(fmt.Sprintf("%q is not a hexadecimal number", s))
	}
	return carrySplit(s[2:], 16, cfg)
}

func newConfig(opts []Option) (*Config, error) {
	var cfg Config
	if err := cfg.Apply(append([]Option{DefaultConfig}, opts...)...); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// carrySplit runs the conversion over validated digits. Bytes are produced
// least significant first and reversed before returning.
func carrySplit(digits string, base uint64, cfg *Config) ([]byte, error) {
	var (
		temp    uint256.Int
		contrib uint256.Int
		peels   uint256.Int
		byteMax = uint256.NewInt(255)
		radix   = uint256.NewInt(base)
		pow     = uint256.NewInt(1)
		powWide bool // base^idx no longer fits the accumulator
	)

	var out []byte
	for idx := 0; idx < len(digits); idx++ {
		if d := digitValue(digits[len(digits)-1-idx]); d != 0 {
			if powWide {
				return nil, tooWide()
			}
			contrib.SetUint64(d)
			if _, overflow := contrib.MulOverflow(&contrib, pow); overflow {
				return nil, tooWide()
			}
			if _, overflow := temp.AddOverflow(&temp, &contrib); overflow {
				return nil, tooWide()
			}
		}

		// Peeling 255 off until the accumulator fits in a byte takes
		// (temp-1)/255 steps and leaves a remainder in [1,255].
		if temp.Gt(byteMax) {
			peels.SubUint64(&temp, 1)
			peels.Div(&peels, byteMax)
			if !peels.IsUint64() || peels.Uint64() > uint64(math.MaxInt-len(out)) {
				return nil, tooWide()
			}
			k := int(peels.Uint64())
			// every peel leaves a non-zero remainder that needs one more byte
			if cfg.MaxBytes > 0 && len(out)+k >= cfg.MaxBytes {
				return nil, outOfRange(cfg.MaxBytes)
			}

			n := len(out)
			out = slices.Grow(out, k)[:n+k]
			for i := n; i < len(out); i++ {
				out[i] = 255
			}
			temp.Sub(&temp, peels.Mul(&peels, byteMax))
		}

		if !powWide && idx+1 < len(digits) {
			if _, overflow := pow.MulOverflow(pow, radix); overflow {
				powWide = true
			}
		}
	}

	if !temp.IsZero() {
		out = append(out, byte(temp.Uint64()))
	}
	if len(out) == 0 {
		return []byte{0}, nil
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func digitValue(c byte) uint64 {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0')
	case c >= 'A' && c <= 'F':
		return uint64(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return uint64(c-'a') + 10
	}
	return 0
}

func outOfRange(maxBytes int) error {
	return kaderr.ValueOutOfRange(fmt.Sprintf("value does not fit in %d bytes", maxBytes))
}

func tooWide() error {
	return kaderr.ValueOutOfRange("value is wider than the 256-bit accumulator")
}
