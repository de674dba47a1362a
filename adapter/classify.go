package adapter

import (
	"fmt"

	"github.com/arloliu/dollcode/format"
)

// Kind is the shape of a raw input string.
type Kind uint8

const (
	KindEmpty   Kind = iota // KindEmpty is the empty string.
	KindSymbols             // KindSymbols consists of dollcode symbols and joiners only.
	KindHex                 // KindHex is 0x or 0X followed by hex digits.
	KindDecimal             // KindDecimal consists of ASCII digits only.
	KindText                // KindText is anything else.
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindSymbols:
		return "symbols"
	case KindHex:
		return "hex"
	case KindDecimal:
		return "decimal"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseKind parses the name returned by Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "empty":
		return KindEmpty, nil
	case "symbols":
		return KindSymbols, nil
	case "hex":
		return KindHex, nil
	case "decimal":
		return KindDecimal, nil
	case "text":
		return KindText, nil
	default:
		return 0, fmt.Errorf("unknown input kind %q", s)
	}
}

// Classify reports the shape of input.
//
// Symbols win over everything else, then a hex prefix, then plain digits.
// Note "0x" alone and "12a" are KindText.
func Classify(input string) Kind {
	switch {
	case input == "":
		return KindEmpty
	case isSymbols(input):
		return KindSymbols
	case hasHexPrefix(input) && len(input) > 2 && isHexDigits(input[2:]):
		return KindHex
	case isDecimalDigits(input):
		return KindDecimal
	default:
		return KindText
	}
}

func isSymbols(s string) bool {
	for _, r := range s {
		if _, ok := format.ParseSymbol(r); !ok && r != rune(format.Joiner) {
			return false
		}
	}

	return true
}

func hasHexPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func isDecimalDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDecimalDigit(s[i]) {
			return false
		}
	}

	return true
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}

	return true
}

func isDecimalDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDecimalDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
