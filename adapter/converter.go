package adapter

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arloliu/dollcode/errs"
	"github.com/arloliu/dollcode/format"
	"github.com/arloliu/dollcode/internal/options"
	"github.com/arloliu/dollcode/numeric"
	"github.com/arloliu/dollcode/text"
)

// DefaultMaxInput is the default limit of a single input, in runes.
const DefaultMaxInput = 2048

// Result is the outcome of Converter.Convert.
type Result struct {
	// Kind is the classification that selected the conversion.
	Kind Kind
	// Output is the converted value: symbols for decimal, hex and text
	// input, and text or "d:<decimal>,h:0x<hex>" for symbol input.
	Output string
}

// Converter turns raw strings into dollcode and back.
//
// A Converter is immutable after NewConverter and safe for concurrent use.
type Converter struct {
	mode     format.SegmentMode
	maxInput int
	codec    *text.Codec
}

// ConverterOption configures a Converter.
type ConverterOption = options.Option[*Converter]

// WithSegmentMode selects the text segment convention. The default is format.SegmentFixed.
func WithSegmentMode(mode format.SegmentMode) ConverterOption {
	return options.New(func(c *Converter) error {
		if mode != format.SegmentFixed && mode != format.SegmentDelimited {
			return fmt.Errorf("invalid segment mode: %v", mode)
		}
		c.mode = mode

		return nil
	})
}

// WithMaxInput sets the input limit in runes. The limit must be positive.
func WithMaxInput(n int) ConverterOption {
	return options.New(func(c *Converter) error {
		if n <= 0 {
			return fmt.Errorf("max input must be positive, got %d", n)
		}
		c.maxInput = n

		return nil
	})
}

// NewConverter creates a Converter.
func NewConverter(opts ...ConverterOption) (*Converter, error) {
	c := &Converter{
		mode:     format.SegmentFixed,
		maxInput: DefaultMaxInput,
	}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	codec, err := text.NewCodec(text.WithSegmentMode(c.mode))
	if err != nil {
		return nil, err
	}
	c.codec = codec

	return c, nil
}

// SegmentMode returns the text segment convention of c.
func (c *Converter) SegmentMode() format.SegmentMode {
	return c.mode
}

// MaxInput returns the input limit of c, in runes.
func (c *Converter) MaxInput() int {
	return c.maxInput
}

// Convert classifies input and runs the matching conversion.
func (c *Converter) Convert(input string) (Result, error) {
	kind := Classify(input)

	var (
		out string
		err error
	)
	switch kind {
	case KindEmpty:
		return Result{Kind: kind}, nil
	case KindSymbols:
		out, err = c.ConvertSymbols(input)
	case KindHex:
		out, err = c.ConvertHex(input)
	case KindDecimal:
		out, err = c.ConvertDecimal(input)
	case KindText:
		out, err = c.ConvertText(input)
	default:
		err = fmt.Errorf("unknown input kind %s", kind)
	}
	if err != nil {
		return Result{Kind: kind}, err
	}

	return Result{Kind: kind, Output: out}, nil
}

// ConvertDecimal encodes an unsigned decimal number.
func (c *Converter) ConvertDecimal(input string) (string, error) {
	if input == "" {
		return "", nil
	}
	if err := c.checkLimit(input); err != nil {
		return "", err
	}

	v, err := ParseDecimal(input)
	if err != nil {
		return "", err
	}

	return encodeNumber(v)
}

// ConvertHex encodes an unsigned hexadecimal number with an optional 0x or 0X prefix.
func (c *Converter) ConvertHex(input string) (string, error) {
	if input == "" {
		return "", nil
	}
	if err := c.checkLimit(input); err != nil {
		return "", err
	}

	v, err := ParseHex(input)
	if err != nil {
		return "", err
	}

	return encodeNumber(v)
}

// ConvertText encodes printable ASCII text with the segment convention of c.
func (c *Converter) ConvertText(input string) (string, error) {
	if input == "" {
		return "", nil
	}
	if err := c.checkLimit(input); err != nil {
		return "", err
	}

	return c.codec.Encode(input)
}

// ConvertSymbols decodes a symbol stream.
//
// A stream that looks like text is decoded as text: in fixed mode when its
// length is a multiple of text.SegmentSize, in delimited mode when it holds a
// joiner. Any other stream is decoded as a number and rendered as
// "d:<decimal>,h:0x<hex>".
func (c *Converter) ConvertSymbols(input string) (string, error) {
	if input == "" {
		return "", nil
	}

	n := utf8.RuneCountInString(input)
	if n > c.maxInput {
		return "", c.limitError(n)
	}

	if c.looksLikeText(input, n) {
		return c.codec.Decode(input)
	}

	v, err := numeric.DecodeString(input)
	if err != nil {
		return "", err
	}

	return FormatNumber(v), nil
}

func (c *Converter) looksLikeText(input string, runes int) bool {
	if c.mode == format.SegmentDelimited {
		return strings.ContainsRune(input, rune(format.Joiner))
	}

	return runes%text.SegmentSize == 0
}

func (c *Converter) checkLimit(input string) error {
	if n := utf8.RuneCountInString(input); n > c.maxInput {
		return c.limitError(n)
	}

	return nil
}

func (c *Converter) limitError(n int) error {
	return fmt.Errorf("%w: input of %d characters exceeds %d", errs.ErrOverflow, n, c.maxInput)
}

func encodeNumber(v uint64) (string, error) {
	seq, err := numeric.Encode(v)
	if err != nil {
		return "", err
	}

	return seq.String(), nil
}

// FormatNumber renders a decoded number as "d:<decimal>,h:0x<hex>".
func FormatNumber(v uint64) string {
	return fmt.Sprintf("d:%d,h:0x%x", v, v)
}
