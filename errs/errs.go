// Package errs defines the closed set of errors returned by dollcode.
//
// Every failure of the codec packages is one of three kinds:
//
//   - ErrInvalidInput: the input has the wrong shape (segment length, value out of
//     the alphabet range, a non-symbol element, a malformed pack container).
//   - ErrInvalidChar: a character could not be mapped. Always carried by an
//     *InvalidCharError holding the character and its 0-based rune position.
//   - ErrOverflow: a value would exceed the uint64 range or a fixed buffer would
//     exceed its capacity.
//
// More specific sentinels (for example the pack header errors) wrap one of the
// three, so errors.Is against the kind sentinels always works.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates a structurally invalid symbol sequence or container.
	ErrInvalidInput = errors.New("invalid dollcode sequence")
	// ErrInvalidChar indicates a character that cannot be mapped.
	ErrInvalidChar = errors.New("invalid character")
	// ErrOverflow indicates a value or buffer capacity overflow.
	ErrOverflow = errors.New("value overflow")
)

// Pack container errors.
var (
	ErrInvalidHeaderSize   = fmt.Errorf("%w: invalid pack header size", ErrInvalidInput)
	ErrInvalidHeaderFlags  = fmt.Errorf("%w: invalid pack header flags", ErrInvalidInput)
	ErrInvalidPayloadSize  = fmt.Errorf("%w: pack payload size does not match symbol count", ErrInvalidInput)
	ErrInvalidPayloadByte  = fmt.Errorf("%w: pack payload byte out of range", ErrInvalidInput)
	ErrChecksumMismatch    = fmt.Errorf("%w: pack checksum mismatch", ErrInvalidInput)
	ErrUnsupportedEncoding = fmt.Errorf("%w: unsupported compression", ErrInvalidInput)
)

// InvalidCharError reports a character that is not part of the expected alphabet.
type InvalidCharError struct {
	// Char is the offending character.
	Char rune
	// Pos is the 0-based rune index of Char in the caller-supplied input.
	Pos int
}

// NewInvalidChar returns an *InvalidCharError for c at pos.
func NewInvalidChar(c rune, pos int) error {
	return &InvalidCharError{Char: c, Pos: pos}
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Pos)
}

// Unwrap makes errors.Is(err, ErrInvalidChar) hold.
func (e *InvalidCharError) Unwrap() error {
	return ErrInvalidChar
}

// Kind identifies which of the three error kinds an error belongs to.
type Kind uint8

const (
	KindUnknown      Kind = 0x0 // KindUnknown is any error outside the dollcode taxonomy.
	KindInvalidInput Kind = 0x1 // KindInvalidInput matches ErrInvalidInput.
	KindInvalidChar  Kind = 0x2 // KindInvalidChar matches ErrInvalidChar.
	KindOverflow     Kind = 0x3 // KindOverflow matches ErrOverflow.
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "InvalidInput"
	case KindInvalidChar:
		return "InvalidChar"
	case KindOverflow:
		return "Overflow"
	default:
		return "Unknown"
	}
}

// KindOf classifies err. A nil error is KindUnknown.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrInvalidChar):
		return KindInvalidChar
	case errors.Is(err, ErrOverflow):
		return KindOverflow
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	default:
		return KindUnknown
	}
}
