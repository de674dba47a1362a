package adapter

import (
	"errors"
	"fmt"

	"github.com/arloliu/dollcode/errs"
)

// Messages of the error kinds. They are stable and shown verbatim to users.
const (
	MessageInvalidInput = "Invalid dollcode sequence"
	MessageOverflow     = "Input limit exceeded"
	MessageUnknown      = "Conversion error occurred"
)

// Exit codes returned by ExitCode.
const (
	ExitOK           = 0
	ExitUnknown      = 1
	ExitInvalidInput = 2
	ExitInvalidChar  = 3
	ExitOverflow     = 4
)

// Message returns the user facing message of err, or "" for nil.
func Message(err error) string {
	if err == nil {
		return ""
	}

	switch errs.KindOf(err) {
	case errs.KindInvalidInput:
		return MessageInvalidInput
	case errs.KindInvalidChar:
		var charErr *errs.InvalidCharError
		if errors.As(err, &charErr) {
			return fmt.Sprintf("Invalid character '%c' at position %d", charErr.Char, charErr.Pos)
		}

		return "Invalid character"
	case errs.KindOverflow:
		return MessageOverflow
	case errs.KindUnknown:
		return MessageUnknown
	default:
		return MessageUnknown
	}
}

// ExitCode returns the process exit status for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	switch errs.KindOf(err) {
	case errs.KindInvalidInput:
		return ExitInvalidInput
	case errs.KindInvalidChar:
		return ExitInvalidChar
	case errs.KindOverflow:
		return ExitOverflow
	case errs.KindUnknown:
		return ExitUnknown
	default:
		return ExitUnknown
	}
}
