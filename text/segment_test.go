package text

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/dollcode/errs"
	"github.com/arloliu/dollcode/format"
)

func TestAlphabet(t *testing.T) {
	require.Equal(t, 95, AlphabetSize)

	seen := make(map[rune]bool, AlphabetSize)
	for i, c := range Alphabet {
		require.False(t, seen[c], "duplicate %q", c)
		seen[c] = true

		p, ok := Position(c)
		require.True(t, ok)
		require.Equal(t, i, p)

		back, err := CharAt(p)
		require.NoError(t, err)
		require.Equal(t, c, back)
	}

	// every printable ASCII character is present
	for c := rune(0x20); c <= 0x7E; c++ {
		require.True(t, seen[c], "missing %q", c)
	}
}

func TestPosition_Categories(t *testing.T) {
	tests := []struct {
		c    rune
		want int
	}{
		{'A', 0}, {'Z', 25}, {'a', 26}, {'z', 51},
		{'0', 52}, {'9', 61}, {' ', 62}, {'!', 63}, {'~', 94},
	}

	for _, tt := range tests {
		p, ok := Position(tt.c)
		require.True(t, ok)
		require.Equal(t, tt.want, p, "char %q", tt.c)
	}

	for _, c := range []rune{'\n', '\t', 0x7F, 0, -1, '±', '€', '⭐', '▖'} {
		_, ok := Position(c)
		require.False(t, ok, "char %q", c)
	}
}

func TestCharAt_OutOfRange(t *testing.T) {
	for _, p := range []int{-1, 95, 242, 1 << 20} {
		_, err := CharAt(p)
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	}
}

func TestEncodeChar(t *testing.T) {
	tests := []struct {
		c    rune
		want string
	}{
		{'A', "▖▖▖▖▖"},
		{'H', "▖▖▖▌▘"},
		{'i', "▖▘▖▌▘"},
		{'~', "▘▖▘▘▘"},
	}

	for _, tt := range tests {
		seg, err := EncodeChar(tt.c, 0)
		require.NoError(t, err)
		require.Equal(t, tt.want, seg.String())
		require.Equal(t, SegmentSize, seg.Len())
	}
}

func TestEncodeChar_Invalid(t *testing.T) {
	for _, c := range []rune{'\n', '\t', '±', '€', '⭐'} {
		_, err := EncodeChar(c, 7)
		require.ErrorIs(t, err, errs.ErrInvalidChar)

		var charErr *errs.InvalidCharError
		require.True(t, errors.As(err, &charErr))
		require.Equal(t, c, charErr.Char)
		require.Equal(t, 7, charErr.Pos)
	}
}

func TestSegment_AlphabetRoundTrip(t *testing.T) {
	for i, c := range Alphabet {
		seg, err := EncodeChar(c, i)
		require.NoError(t, err)
		require.Equal(t, SegmentSize, seg.Len())

		for _, sym := range seg.Symbols() {
			_, ok := format.ParseSymbol(rune(sym))
			require.True(t, ok)
		}

		decoded, err := DecodeSegment(seg.Symbols())
		require.NoError(t, err)
		require.Equal(t, c, decoded)
	}
}

func TestDecodeSegment_Shape(t *testing.T) {
	for _, input := range []string{"", "▖", "▖▖▖▖", "▖▖▖▖▖▖", "▖▖▖▖▖▖▖▖▖▖"} {
		_, err := DecodeSegment([]rune(input))
		require.ErrorIs(t, err, errs.ErrInvalidInput, "input %q", input)
	}
}

func TestDecodeSegment_OutOfAlphabet(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"position 95", "▘▖▘▘▌"},
		{"position 96", "▘▖▘▌▖"},
		{"position 242", "▌▌▌▌▌"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSegment([]rune(tt.input))
			require.ErrorIs(t, err, errs.ErrInvalidInput)
		})
	}

	c, err := DecodeSegment([]rune("▘▖▘▘▘"))
	require.NoError(t, err)
	require.Equal(t, '~', c)
}

func TestDecodeSegment_NonSymbol(t *testing.T) {
	for _, input := range []string{"▖▖▖▖a", "AAAAA", "▖▖\u200d▖▖"} {
		_, err := DecodeSegment([]rune(input))
		require.ErrorIs(t, err, errs.ErrInvalidInput, "input %q", input)
	}
}

func TestDelimitedSegment(t *testing.T) {
	tests := []struct {
		c    rune
		want string
	}{
		{' ', "▌▖▘\u200d"},
		{'A', "▖▌▌▘\u200d"},
		{'~', "▖▖▖▘▌\u200d"},
	}

	for _, tt := range tests {
		seg, err := encodeDelimited(tt.c, 0)
		require.NoError(t, err)
		require.Equal(t, tt.want, seg.String())

		symbols := []rune(tt.want)
		decoded, err := decodeDelimited(symbols[:len(symbols)-1])
		require.NoError(t, err)
		require.Equal(t, tt.c, decoded)
	}

	for _, c := range Alphabet {
		seg, err := encodeDelimited(c, 0)
		require.NoError(t, err)
		require.GreaterOrEqual(t, seg.Len(), 4)
		require.LessOrEqual(t, seg.Len(), 6)
	}
}

func TestDecodeDelimited_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", errs.ErrInvalidInput},
		{"below alphabet", "▖", errs.ErrInvalidInput},
		{"control code", "▖▖▖", errs.ErrInvalidInput},
		{"too long", "▖▖▖▖▖▖", errs.ErrInvalidInput},
		{"non symbol", "▖a▖", errs.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeDelimited([]rune(tt.input))
			require.ErrorIs(t, err, tt.want)
		})
	}
}
