package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvalidCharError(t *testing.T) {
	err := NewInvalidChar('☺', 5)

	require.ErrorIs(t, err, ErrInvalidChar)
	require.Contains(t, err.Error(), "invalid character")
	require.Contains(t, err.Error(), "☺")
	require.Contains(t, err.Error(), "5")

	var charErr *InvalidCharError
	require.True(t, errors.As(err, &charErr))
	require.Equal(t, '☺', charErr.Char)
	require.Equal(t, 5, charErr.Pos)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindUnknown},
		{"invalid input", ErrInvalidInput, KindInvalidInput},
		{"wrapped invalid input", fmt.Errorf("%w: segment length 4", ErrInvalidInput), KindInvalidInput},
		{"header size", ErrInvalidHeaderSize, KindInvalidInput},
		{"checksum", ErrChecksumMismatch, KindInvalidInput},
		{"invalid char", NewInvalidChar('!', 0), KindInvalidChar},
		{"wrapped invalid char", fmt.Errorf("decode: %w", NewInvalidChar('x', 3)), KindInvalidChar},
		{"overflow", ErrOverflow, KindOverflow},
		{"foreign", errors.New("boom"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "InvalidInput", KindInvalidInput.String())
	require.Equal(t, "InvalidChar", KindInvalidChar.String())
	require.Equal(t, "Overflow", KindOverflow.String())
	require.Equal(t, "Unknown", KindUnknown.String())
	require.Equal(t, "Unknown", Kind(0xFF).String())
}
