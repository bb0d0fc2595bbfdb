// Package kaderr defines the errors returned when decoding and constructing
// identifiers.
package kaderr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidValue is returned when an input does not denote an unsigned
	// integer in the requested base, or when an identifier is built from no bytes.
	ErrInvalidValue = errors.New("invalid value")

	// ErrValueOutOfRange is returned when a decoded magnitude does not fit the
	// capacity of the identifier being built.
	ErrValueOutOfRange = errors.New("value out of range")
)

// Error pairs one of the sentinel errors of this package with the reason it
// was raised.
type Error struct {
	Kind   error
	Reason string
}

func (e *Error) Error() string {
	if e.Reason == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// InvalidValue returns an error wrapping ErrInvalidValue with the given reason.
func InvalidValue(reason string) error {
	return &Error{Kind: ErrInvalidValue, Reason: reason}
}

// ValueOutOfRange returns an error wrapping ErrValueOutOfRange with the given reason.
func ValueOutOfRange(reason string) error {
	return &Error{Kind: ErrValueOutOfRange, Reason: reason}
}
