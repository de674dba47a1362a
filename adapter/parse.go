package adapter

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/arloliu/dollcode/errs"
)

// ParseDecimal parses an unsigned decimal number.
//
// The first non-digit fails with *errs.InvalidCharError at its rune position
// and a value beyond the uint64 range fails with errs.ErrOverflow.
func ParseDecimal(input string) (uint64, error) {
	if input == "" {
		return 0, fmt.Errorf("%w: empty decimal number", errs.ErrInvalidInput)
	}

	if err := checkDigits(input, 0, isDecimalDigit); err != nil {
		return 0, err
	}

	return parseUint(input, 10)
}

// ParseHex parses an unsigned hexadecimal number with an optional 0x or 0X prefix.
//
// Positions in *errs.InvalidCharError count the prefix.
func ParseHex(input string) (uint64, error) {
	digits, offset := input, 0
	if hasHexPrefix(input) {
		digits, offset = input[2:], 2
	}

	if digits == "" {
		return 0, fmt.Errorf("%w: empty hexadecimal number", errs.ErrInvalidInput)
	}

	if err := checkDigits(digits, offset, isHexDigit); err != nil {
		return 0, err
	}

	return parseUint(digits, 16)
}

// checkDigits reports the first rune of s rejected by valid, positioned from offset.
func checkDigits(s string, offset int, valid func(byte) bool) error {
	pos := offset
	for _, r := range s {
		if r >= 0x80 || !valid(byte(r)) {
			return errs.NewInvalidChar(r, pos)
		}
		pos++
	}

	return nil
}

func parseUint(digits string, base int) (uint64, error) {
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s does not fit in 64 bits", errs.ErrOverflow, digits)
		}

		return 0, fmt.Errorf("%w: %w", errs.ErrInvalidInput, err)
	}

	return v, nil
}
