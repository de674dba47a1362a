package text

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/dollcode/errs"
	"github.com/arloliu/dollcode/format"
)

func TestDecoder_Hi(t *testing.T) {
	dec := NewDecoder([]rune("▖▖▖▌▘▖▘▖▌▘"))

	var got []rune
	for dec.Next() {
		require.NoError(t, dec.Err())
		got = append(got, dec.Char())
	}

	require.Equal(t, []rune("Hi"), got)
	require.False(t, dec.Next())
}

func TestDecoder_PartialWindowEnds(t *testing.T) {
	dec := NewDecoder([]rune("▖▖▖▌▘▖▘"))

	require.True(t, dec.Next())
	require.NoError(t, dec.Err())
	require.Equal(t, 'H', dec.Char())

	require.True(t, dec.Next())
	require.ErrorIs(t, dec.Err(), errs.ErrInvalidInput)
	require.Zero(t, dec.Char())

	require.False(t, dec.Next())
	require.NoError(t, dec.Err())
}

func TestDecoder_MalformedWindowContinues(t *testing.T) {
	// 'A', an out-of-alphabet window, 'i'
	dec := NewDecoder([]rune("▖▖▖▖▖▌▌▌▌▌▖▘▖▌▘"))

	var (
		chars []rune
		nerrs int
	)
	for c, err := range dec.All() {
		if err != nil {
			require.ErrorIs(t, err, errs.ErrInvalidInput)
			nerrs++

			continue
		}
		chars = append(chars, c)
	}

	require.Equal(t, []rune("Ai"), chars)
	require.Equal(t, 1, nerrs)
}

func TestDecoder_Empty(t *testing.T) {
	dec := NewDecoder(nil)
	require.False(t, dec.Next())
	require.NoError(t, dec.Err())
}

func TestDecoder_Delimited(t *testing.T) {
	codec, err := NewCodec(WithSegmentMode(format.SegmentDelimited))
	require.NoError(t, err)

	// 'A', an empty segment, ' ', then trailing symbols without a joiner
	dec := codec.NewDecoder([]rune("▖▌▌▘\u200d\u200d▌▖▘\u200d▖▌"))

	type item struct {
		c   rune
		err error
	}
	var got []item
	for c, err := range dec.All() {
		got = append(got, item{c, err})
	}

	require.Len(t, got, 4)
	require.Equal(t, 'A', got[0].c)
	require.NoError(t, got[0].err)
	require.ErrorIs(t, got[1].err, errs.ErrInvalidInput)
	require.Equal(t, ' ', got[2].c)
	require.NoError(t, got[2].err)
	require.ErrorIs(t, got[3].err, errs.ErrInvalidInput)
}
