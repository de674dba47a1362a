package text

import (
	"iter"
	"unicode/utf8"

	"github.com/arloliu/dollcode/format"
)

// Iterator walks a text and encodes one segment per character.
//
// Usage follows bufio.Scanner:
//
//	it := text.NewIterator("Hi")
//	for it.Next() {
//	    if err := it.Err(); err != nil {
//	        // it.Err() is an *errs.InvalidCharError for this character only
//	        continue
//	    }
//	    out = it.Segment().AppendTo(out)
//	}
//
// Errors belong to the current character; iteration continues with the next
// one. An Iterator is not reusable: construct a new one to start over, which
// also resets the position counter.
type Iterator struct {
	text   string
	offset int
	pos    int
	mode   format.SegmentMode
	seg    Segment
	err    error
}

// NewIterator returns an Iterator producing fixed segments for text.
func NewIterator(text string) *Iterator {
	return newIterator(text, format.SegmentFixed)
}

func newIterator(text string, mode format.SegmentMode) *Iterator {
	return &Iterator{text: text, mode: mode}
}

// Next advances to the next character. It returns false once the text is exhausted.
func (it *Iterator) Next() bool {
	if it.offset >= len(it.text) {
		it.seg, it.err = Segment{}, nil
		return false
	}

	r, size := utf8.DecodeRuneInString(it.text[it.offset:])
	it.offset += size

	pos := it.pos
	it.pos++

	if it.mode == format.SegmentDelimited {
		it.seg, it.err = encodeDelimited(r, pos)
	} else {
		it.seg, it.err = EncodeChar(r, pos)
	}

	return true
}

// Segment returns the segment of the current character. It is empty when Err is set.
func (it *Iterator) Segment() Segment {
	return it.seg
}

// Err returns the error of the current character, if any.
func (it *Iterator) Err() error {
	return it.err
}

// Position returns the number of characters consumed so far.
func (it *Iterator) Position() int {
	return it.pos
}

// All returns the remaining items as a single-use sequence.
func (it *Iterator) All() iter.Seq2[Segment, error] {
	return func(yield func(Segment, error) bool) {
		for it.Next() {
			if !yield(it.seg, it.err) {
				return
			}
		}
	}
}
