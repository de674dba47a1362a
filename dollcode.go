// Package dollcode converts unsigned integers and printable ASCII text to
// sequences of three glyphs, ▖ ▘ ▌, and back.
//
// # Numbers
//
// Numbers use bijective (biased) base 3 with digit values ▖=1, ▘=2, ▌=3,
// most significant first. Zero is the empty sequence and every other value
// has exactly one representation, at most 41 symbols long:
//
//	s, _ := dollcode.EncodeNumber(42) // "▖▖▖▌"
//	v, _ := dollcode.DecodeNumber(s)  // 42
//
// # Text
//
// Each character of the 95-character printable ASCII alphabet becomes a
// fixed segment of five symbols, its alphabet position in standard ternary
// (▖=0, ▘=1, ▌=2):
//
//	s, _ := dollcode.EncodeText("Hi") // "▖▖▖▌▘▖▘▖▌▘"
//
// A delimited convention, one biased ternary ASCII code plus U+200D per
// character, is available through text.WithSegmentMode.
//
// # Pack
//
// Symbol streams can be stored in a compact binary container, five symbols
// per byte, optionally compressed and always checksummed:
//
//	data, _ := dollcode.Pack(s, pack.WithCompression(format.CompressionZstd))
//	s, _ = dollcode.Unpack(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the numeric,
// text and pack packages. Errors of every package belong to the closed set
// defined in package errs. Raw user input (decimal or hexadecimal strings,
// auto detection, error messages) is handled by package adapter.
package dollcode

import (
	"github.com/arloliu/dollcode/numeric"
	"github.com/arloliu/dollcode/pack"
	"github.com/arloliu/dollcode/text"
)

// EncodeNumber encodes v as a biased ternary symbol string.
//
// Parameters:
//   - v: The value to encode, 0 yields ""
//
// Returns:
//   - string: The symbols, most significant first
//   - error: errs.ErrOverflow if v needs more than numeric.MaxSequenceSize symbols
func EncodeNumber(v uint64) (string, error) {
	seq, err := numeric.Encode(v)
	if err != nil {
		return "", err
	}

	return seq.String(), nil
}

// DecodeNumber decodes a biased ternary symbol string.
//
// Returns errs.ErrInvalidInput for a non-symbol rune and errs.ErrOverflow
// when the value exceeds the uint64 range.
func DecodeNumber(s string) (uint64, error) {
	return numeric.DecodeString(s)
}

// NewTextCodec creates a text codec with custom options.
//
// Available options:
//   - text.WithSegmentMode(format.SegmentFixed|format.SegmentDelimited)
//
// Example:
//
//	codec, err := dollcode.NewTextCodec(text.WithSegmentMode(format.SegmentDelimited))
func NewTextCodec(opts ...text.CodecOption) (*text.Codec, error) {
	return text.NewCodec(opts...)
}

// EncodeText encodes printable ASCII text with fixed five-symbol segments.
//
// The first character outside the alphabet fails with *errs.InvalidCharError
// carrying the character and its rune position.
func EncodeText(s string) (string, error) {
	return text.Encode(s)
}

// DecodeText decodes a stream of fixed five-symbol segments.
func DecodeText(stream string) (string, error) {
	return text.Decode(stream)
}

// Pack stores a symbol stream in the binary pack format.
//
// Parameters:
//   - stream: Symbols only, no joiners
//   - opts: Optional configuration functions (see pack.EncoderOption)
//
// Returns:
//   - []byte: The header followed by the (compressed) payload
//   - error: An error if the options are invalid or the stream is not a plain symbol stream
//
// Available options:
//   - pack.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - pack.WithLittleEndian() / pack.WithBigEndian()
func Pack(stream string, opts ...pack.EncoderOption) ([]byte, error) {
	enc, err := pack.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return enc.Encode(stream)
}

// Unpack restores the symbol stream of a pack. Compression and byte order
// are read from the header.
func Unpack(data []byte) (string, error) {
	return pack.Decode(data)
}
