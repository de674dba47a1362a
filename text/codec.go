package text

import (
	"fmt"

	"github.com/arloliu/dollcode/errs"
	"github.com/arloliu/dollcode/format"
	"github.com/arloliu/dollcode/internal/options"
	"github.com/arloliu/dollcode/internal/pool"
)

// Codec encodes and decodes whole texts with one segment convention.
//
// The two conventions produce incompatible streams, so the choice is made
// once, at construction, and exposed through Mode:
//
//   - format.SegmentFixed (default): five symbols per character, no separators.
//   - format.SegmentDelimited: the ASCII code in biased ternary (3-5 symbols)
//     followed by U+200D ZERO WIDTH JOINER.
//
// A Codec is immutable and safe for concurrent use.
type Codec struct {
	mode format.SegmentMode
}

// CodecOption configures a Codec.
type CodecOption = options.Option[*Codec]

// WithSegmentMode selects the segment convention.
func WithSegmentMode(mode format.SegmentMode) CodecOption {
	return options.New(func(c *Codec) error {
		switch mode {
		case format.SegmentFixed, format.SegmentDelimited:
			c.mode = mode
			return nil
		default:
			return fmt.Errorf("invalid segment mode: %v", mode)
		}
	})
}

// NewCodec creates a Codec, fixed mode unless configured otherwise.
func NewCodec(opts ...CodecOption) (*Codec, error) {
	c := &Codec{mode: format.SegmentFixed}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

var defaultCodec = &Codec{mode: format.SegmentFixed}

// Mode returns the segment convention of c.
func (c *Codec) Mode() format.SegmentMode {
	return c.mode
}

// EncodeChar encodes a single character. pos is reported in *errs.InvalidCharError.
func (c *Codec) EncodeChar(r rune, pos int) (Segment, error) {
	if c.mode == format.SegmentDelimited {
		return encodeDelimited(r, pos)
	}

	return EncodeChar(r, pos)
}

// DecodeSegment decodes one segment as produced by EncodeChar.
// In delimited mode the segment must end with the joiner.
func (c *Codec) DecodeSegment(symbols []rune) (rune, error) {
	if c.mode != format.SegmentDelimited {
		return DecodeSegment(symbols)
	}

	n := len(symbols)
	if n == 0 || symbols[n-1] != rune(format.Joiner) {
		return 0, fmt.Errorf("%w: delimited segment must end with a joiner", errs.ErrInvalidInput)
	}

	return decodeDelimited(symbols[:n-1])
}

// Iterate returns an Iterator over text using the mode of c.
func (c *Codec) Iterate(text string) *Iterator {
	return newIterator(text, c.mode)
}

// NewDecoder returns a Decoder over symbols using the mode of c.
func (c *Codec) NewDecoder(symbols []rune) *Decoder {
	return newDecoder(symbols, c.mode)
}

// Encode encodes text into a symbol stream, stopping at the first invalid character.
func (c *Codec) Encode(text string) (string, error) {
	buf := pool.GetGlyphBuffer()
	defer pool.PutGlyphBuffer(buf)

	it := c.Iterate(text)
	for it.Next() {
		if err := it.Err(); err != nil {
			return "", err
		}
		buf.B = it.Segment().AppendTo(buf.B)
	}

	return buf.String(), nil
}

// Decode decodes a symbol stream, stopping at the first error.
//
// Characters that are neither symbols nor, in delimited mode, the joiner are
// reported as *errs.InvalidCharError with their rune position before any
// segment is decoded.
func (c *Codec) Decode(stream string) (string, error) {
	runes, cleanup := pool.GetRuneSlice(len(stream))
	defer cleanup()

	pos := 0
	for _, r := range stream {
		if !c.isStreamRune(r) {
			return "", errs.NewInvalidChar(r, pos)
		}
		runes = append(runes, r)
		pos++
	}

	buf := pool.GetGlyphBuffer()
	defer pool.PutGlyphBuffer(buf)

	dec := c.NewDecoder(runes)
	for dec.Next() {
		if err := dec.Err(); err != nil {
			return "", err
		}
		buf.WriteRune(dec.Char())
	}

	return buf.String(), nil
}

func (c *Codec) isStreamRune(r rune) bool {
	if _, ok := format.ParseSymbol(r); ok {
		return true
	}

	return c.mode == format.SegmentDelimited && r == rune(format.Joiner)
}

// Encode encodes text with fixed segments.
func Encode(text string) (string, error) {
	return defaultCodec.Encode(text)
}

// Decode decodes a fixed-segment stream.
func Decode(stream string) (string, error) {
	return defaultCodec.Decode(stream)
}
