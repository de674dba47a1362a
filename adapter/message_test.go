package adapter

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/dollcode/errs"
)

func TestMessageAndExitCode(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		code    int
	}{
		{"nil", nil, "", ExitOK},
		{"invalid input", errs.ErrInvalidInput, MessageInvalidInput, ExitInvalidInput},
		{"wrapped invalid input", fmt.Errorf("decode: %w", errs.ErrChecksumMismatch), MessageInvalidInput, ExitInvalidInput},
		{"invalid char", errs.NewInvalidChar('x', 3), "Invalid character 'x' at position 3", ExitInvalidChar},
		{"wrapped invalid char", fmt.Errorf("line 2: %w", errs.NewInvalidChar('€', 0)), "Invalid character '€' at position 0", ExitInvalidChar},
		{"overflow", errs.ErrOverflow, MessageOverflow, ExitOverflow},
		{"unknown", errors.New("boom"), MessageUnknown, ExitUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.message, Message(tt.err))
			require.Equal(t, tt.code, ExitCode(tt.err))
		})
	}
}

func TestMessage_Distinct(t *testing.T) {
	seen := map[string]bool{}
	for _, err := range []error{errs.ErrInvalidInput, errs.NewInvalidChar('a', 0), errs.ErrOverflow, errors.New("x")} {
		msg := Message(err)
		require.False(t, seen[msg], msg)
		seen[msg] = true
	}
}
