package text

import (
	"fmt"
	"iter"
	"slices"

	"github.com/arloliu/dollcode/errs"
	"github.com/arloliu/dollcode/format"
)

// Decoder turns a symbol sequence back into characters, one segment at a time.
//
// In fixed mode the input is cut into consecutive windows of SegmentSize. A
// malformed window yields one error and decoding continues with the next
// window. A trailing window shorter than SegmentSize yields one
// errs.ErrInvalidInput and ends the sequence.
//
// In delimited mode the input is cut after every joiner. An empty segment
// yields one error and decoding continues; symbols after the last joiner yield
// one errs.ErrInvalidInput and end the sequence.
//
// Note: a Decoder is not reusable and not safe for concurrent use.
type Decoder struct {
	symbols []rune
	offset  int
	mode    format.SegmentMode
	char    rune
	err     error
}

// NewDecoder returns a fixed-mode Decoder over symbols.
func NewDecoder(symbols []rune) *Decoder {
	return newDecoder(symbols, format.SegmentFixed)
}

func newDecoder(symbols []rune, mode format.SegmentMode) *Decoder {
	return &Decoder{symbols: symbols, mode: mode}
}

// Next advances to the next segment. It returns false once the input is exhausted.
func (d *Decoder) Next() bool {
	d.char, d.err = 0, nil
	if d.offset >= len(d.symbols) {
		return false
	}

	if d.mode == format.SegmentDelimited {
		d.nextDelimited()
	} else {
		d.nextFixed()
	}

	return true
}

func (d *Decoder) nextFixed() {
	end := d.offset + SegmentSize
	if end > len(d.symbols) {
		d.err = fmt.Errorf("%w: trailing partial segment of %d symbols", errs.ErrInvalidInput, len(d.symbols)-d.offset)
		d.offset = len(d.symbols)

		return
	}

	d.char, d.err = DecodeSegment(d.symbols[d.offset:end])
	d.offset = end
}

func (d *Decoder) nextDelimited() {
	rest := d.symbols[d.offset:]

	idx := slices.Index(rest, rune(format.Joiner))
	if idx < 0 {
		d.err = fmt.Errorf("%w: %d symbols after the last joiner", errs.ErrInvalidInput, len(rest))
		d.offset = len(d.symbols)

		return
	}

	d.char, d.err = decodeDelimited(rest[:idx])
	d.offset += idx + 1
}

// Char returns the character of the current segment. It is zero when Err is set.
func (d *Decoder) Char() rune {
	return d.char
}

// Err returns the error of the current segment, if any.
func (d *Decoder) Err() error {
	return d.err
}

// All returns the remaining items as a single-use sequence.
func (d *Decoder) All() iter.Seq2[rune, error] {
	return func(yield func(rune, error) bool) {
		for d.Next() {
			if !yield(d.char, d.err) {
				return
			}
		}
	}
}
