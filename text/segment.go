package text

import (
	"fmt"
	"math/bits"
	"unicode/utf8"

	"github.com/arloliu/dollcode/errs"
	"github.com/arloliu/dollcode/format"
	"github.com/arloliu/dollcode/internal/fixed"
	"github.com/arloliu/dollcode/numeric"
)

const (
	// SegmentSize is the number of symbols of a fixed segment. 3^5 = 243 >= AlphabetSize.
	SegmentSize = 5

	// maxDelimitedSymbols bounds the symbols before the joiner: '~' (126) needs 5.
	maxDelimitedSymbols = 5
	maxSegmentSize      = maxDelimitedSymbols + 1
)

// ternaryDigits maps a standard ternary digit (0..2) to its glyph.
// It is independent of the biased digit table of package numeric.
var ternaryDigits = [3]format.Symbol{format.SymbolLowerLeft, format.SymbolUpperLeft, format.SymbolLeftHalf}

// Segment holds the symbols encoding one alphabet character.
type Segment struct {
	buf fixed.Buffer[format.Symbol]
}

func newSegment() Segment {
	return Segment{buf: fixed.New[format.Symbol](maxSegmentSize)}
}

// Symbols returns the symbols of the segment. The slice must not be modified.
func (s Segment) Symbols() []format.Symbol {
	return s.buf.Items()
}

// Len returns the number of symbols, including a trailing joiner.
func (s Segment) Len() int {
	return s.buf.Len()
}

// IsEmpty reports whether s holds no symbol.
func (s Segment) IsEmpty() bool {
	return s.buf.IsEmpty()
}

// AppendTo appends the UTF-8 form of s to dst.
func (s Segment) AppendTo(dst []byte) []byte {
	for _, sym := range s.buf.Items() {
		dst = utf8.AppendRune(dst, rune(sym))
	}

	return dst
}

func (s Segment) String() string {
	return string(s.AppendTo(make([]byte, 0, s.Len()*utf8.UTFMax)))
}

// EncodeChar encodes c as a fixed segment of SegmentSize symbols.
//
// pos is only used for the *errs.InvalidCharError returned when c is not in
// the Alphabet.
func EncodeChar(c rune, pos int) (Segment, error) {
	p, ok := Position(c)
	if !ok {
		return Segment{}, errs.NewInvalidChar(c, pos)
	}

	return fixedSegment(p), nil
}

// fixedSegment writes p in standard ternary, zero padded, most significant first.
func fixedSegment(p int) Segment {
	var digits [SegmentSize]format.Symbol
	for i := SegmentSize - 1; i >= 0; i-- {
		digits[i] = ternaryDigits[p%3]
		p /= 3
	}

	seg := newSegment()
	for _, d := range digits {
		_ = seg.buf.Push(d) // SegmentSize < maxSegmentSize
	}

	return seg
}

// DecodeSegment decodes exactly SegmentSize symbols into an alphabet character.
//
// Wrong length, a non-symbol element, or a value beyond the last alphabet
// position fail with errs.ErrInvalidInput.
func DecodeSegment[S ~[]E, E ~rune](symbols S) (rune, error) {
	if len(symbols) != SegmentSize {
		return 0, fmt.Errorf("%w: segment has %d symbols, want %d", errs.ErrInvalidInput, len(symbols), SegmentSize)
	}

	var value uint64
	for _, r := range symbols {
		digit := format.Symbol(r).Index()
		if digit < 0 {
			return 0, fmt.Errorf("%w: %q is not a dollcode symbol", errs.ErrInvalidInput, rune(r))
		}

		hi, lo := bits.Mul64(value, 3)
		if hi != 0 {
			return 0, errs.ErrOverflow
		}

		var carry uint64
		value, carry = bits.Add64(lo, uint64(digit), 0)
		if carry != 0 {
			return 0, errs.ErrOverflow
		}
	}

	if value >= uint64(AlphabetSize) {
		return 0, fmt.Errorf("%w: segment value %d outside alphabet", errs.ErrInvalidInput, value)
	}

	return CharAt(int(value))
}

// encodeDelimited encodes the ASCII code of c in biased ternary followed by the joiner.
func encodeDelimited(c rune, pos int) (Segment, error) {
	if _, ok := Position(c); !ok {
		return Segment{}, errs.NewInvalidChar(c, pos)
	}

	seq, err := numeric.Encode(uint64(c))
	if err != nil {
		return Segment{}, err
	}

	seg := newSegment()
	for _, sym := range seq.Symbols() {
		if err := seg.buf.Push(sym); err != nil {
			return Segment{}, err
		}
	}
	if err := seg.buf.Push(format.Joiner); err != nil {
		return Segment{}, err
	}

	return seg, nil
}

// decodeDelimited decodes the symbols of one delimited segment, joiner excluded.
func decodeDelimited[S ~[]E, E ~rune](symbols S) (rune, error) {
	if len(symbols) == 0 {
		return 0, fmt.Errorf("%w: empty delimited segment", errs.ErrInvalidInput)
	}
	if len(symbols) > maxDelimitedSymbols {
		return 0, fmt.Errorf("%w: delimited segment has %d symbols, want at most %d",
			errs.ErrInvalidInput, len(symbols), maxDelimitedSymbols)
	}

	code, err := numeric.Decode(symbols)
	if err != nil {
		return 0, err
	}

	if _, ok := Position(rune(code)); !ok {
		return 0, fmt.Errorf("%w: code %d outside alphabet", errs.ErrInvalidInput, code)
	}

	return rune(code), nil
}
