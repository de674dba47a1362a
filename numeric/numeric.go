// Package numeric converts unsigned 64-bit integers to and from dollcode
// symbol sequences.
//
// The encoding is bijective (biased) base 3: the glyphs ▖ ▘ ▌ carry digit
// values 1, 2 and 3, most significant first. Zero is the empty sequence and
// every positive value has exactly one representation, with no leading-zero
// ambiguity:
//
//	1 -> ▖     4 -> ▖▖     13 -> ▖▖▖
//	3 -> ▌    12 -> ▌▌     42 -> ▖▖▖▌
//
// A sequence of length L covers the values [(3^L-1)/2 ... (3^(L+1)-3)/2], so
// math.MaxUint64 needs MaxSequenceSize symbols.
package numeric

import (
	"fmt"
	"math/bits"
	"unicode/utf8"

	"github.com/arloliu/dollcode/errs"
	"github.com/arloliu/dollcode/format"
	"github.com/arloliu/dollcode/internal/fixed"
)

// MaxSequenceSize is the number of symbols needed for math.MaxUint64.
const MaxSequenceSize = 41

// digitSymbols maps a biased digit minus one to its glyph.
var digitSymbols = [3]format.Symbol{format.SymbolLowerLeft, format.SymbolUpperLeft, format.SymbolLeftHalf}

// digitValue returns the biased digit (1..3) of r, or 0 when r is not a symbol.
func digitValue(r rune) uint64 {
	switch format.Symbol(r) {
	case format.SymbolLowerLeft:
		return 1
	case format.SymbolUpperLeft:
		return 2
	case format.SymbolLeftHalf:
		return 3
	default:
		return 0
	}
}

// Sequence is an encoded value, most significant symbol first.
//
// A Sequence is immutable once returned by Encode.
type Sequence struct {
	buf fixed.Buffer[format.Symbol]
}

// Symbols returns the symbols of the sequence. The slice must not be modified.
func (s Sequence) Symbols() []format.Symbol {
	return s.buf.Items()
}

// Len returns the number of symbols.
func (s Sequence) Len() int {
	return s.buf.Len()
}

// IsEmpty reports whether s is the encoding of zero.
func (s Sequence) IsEmpty() bool {
	return s.buf.IsEmpty()
}

// AppendTo appends the UTF-8 form of s to dst.
func (s Sequence) AppendTo(dst []byte) []byte {
	for _, sym := range s.buf.Items() {
		dst = utf8.AppendRune(dst, rune(sym))
	}

	return dst
}

func (s Sequence) String() string {
	return string(s.AppendTo(make([]byte, 0, s.Len()*utf8.UTFMax)))
}

// Encode returns the symbol sequence of value. Zero encodes to the empty sequence.
func Encode(value uint64) (Sequence, error) {
	return encodeInto(value, MaxSequenceSize)
}

// encodeInto encodes value into a sequence holding at most capacity symbols.
func encodeInto(value uint64, capacity int) (Sequence, error) {
	seq := Sequence{buf: fixed.New[format.Symbol](capacity)}

	for rest := value; rest > 0; {
		rem := (rest - 1) % 3
		if err := seq.buf.Push(digitSymbols[rem]); err != nil {
			return Sequence{}, fmt.Errorf("%w: %d needs more than %d symbols", err, value, capacity)
		}
		rest = (rest - 1 - rem) / 3
	}

	// digits were produced least significant first
	seq.buf.Reverse()

	return seq, nil
}

// Decode returns the value of symbols, most significant first.
//
// The empty sequence decodes to zero. Any element that is not one of the three
// glyphs fails with errs.ErrInvalidInput; a value beyond math.MaxUint64 fails
// with errs.ErrOverflow.
func Decode[S ~[]E, E ~rune](symbols S) (uint64, error) {
	var acc uint64
	for i, r := range symbols {
		next, err := step(acc, rune(r), i)
		if err != nil {
			return 0, err
		}
		acc = next
	}

	return acc, nil
}

// DecodeString is Decode over the runes of s.
func DecodeString(s string) (uint64, error) {
	var acc uint64
	i := 0
	for _, r := range s {
		next, err := step(acc, r, i)
		if err != nil {
			return 0, err
		}
		acc = next
		i++
	}

	return acc, nil
}

// step computes acc*3 + digit(r) with both operations checked.
func step(acc uint64, r rune, pos int) (uint64, error) {
	digit := digitValue(r)
	if digit == 0 {
		return 0, fmt.Errorf("%w: %q at position %d is not a dollcode symbol", errs.ErrInvalidInput, r, pos)
	}

	hi, lo := bits.Mul64(acc, 3)
	if hi != 0 {
		return 0, errs.ErrOverflow
	}

	sum, carry := bits.Add64(lo, digit, 0)
	if carry != 0 {
		return 0, errs.ErrOverflow
	}

	return sum, nil
}
