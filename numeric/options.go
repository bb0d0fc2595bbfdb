package numeric

import (
	"fmt"
)

// Config is a structure containing all the options that can be used when
// decoding a number.
type Config struct {
	// MaxBytes is the number of bytes the encoding may occupy. Inputs whose
	// magnitude needs more bytes are rejected with kaderr.ErrValueOutOfRange.
	// Zero leaves the encoding unbounded.
	MaxBytes int
}

// Apply applies the given options to this Config
func (cfg *Config) Apply(opts ...Option) error {
	for i, opt := range opts {
		if err := opt(cfg); err != nil {
			return fmt.Errorf("numeric option %d failed: %w", i, err)
		}
	}
	return nil
}

// Option type for the decoders
type Option func(*Config) error

// DefaultConfig is the default options for the decoders. This option is
// always prepended to the list of options passed to Decimal and Hex.
var DefaultConfig = func(cfg *Config) error {
	cfg.MaxBytes = 0
	return nil
}

// WithMaxBytes bounds the size of the produced encoding.
func WithMaxBytes(n int) Option {
	return func(cfg *Config) error {
		if n <= 0 {
			return fmt.Errorf("max bytes must be positive, got %d", n)
		}
		cfg.MaxBytes = n
		return nil
	}
}
