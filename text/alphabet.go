package text

import (
	"fmt"

	"github.com/arloliu/dollcode/errs"
)

// Alphabet lists the encodable characters in position order:
//
//	 0-25  A-Z
//	26-51  a-z
//	52-61  0-9
//	   62  space
//	63-94  ! " # $ % & ' ( ) * + , - . / : ; < = > ? @ [ \ ] ^ _ ` { | } ~
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	" " +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// AlphabetSize is the number of characters in Alphabet.
const AlphabetSize = len(Alphabet)

// positions is the reverse of Alphabet indexed by ASCII code; -1 marks absent characters.
var positions = func() [128]int8 {
	var table [128]int8
	for i := range table {
		table[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		table[Alphabet[i]] = int8(i) //nolint:gosec
	}

	return table
}()

// Position returns the alphabet position of c.
func Position(c rune) (int, bool) {
	if c < 0 || int(c) >= len(positions) {
		return 0, false
	}

	p := positions[c]
	if p < 0 {
		return 0, false
	}

	return int(p), true
}

// CharAt returns the character at position p, failing with errs.ErrInvalidInput
// outside [0, AlphabetSize).
func CharAt(p int) (rune, error) {
	if p < 0 || p >= AlphabetSize {
		return 0, fmt.Errorf("%w: position %d outside alphabet", errs.ErrInvalidInput, p)
	}

	return rune(Alphabet[p]), nil
}
