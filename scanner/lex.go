package scanner

import (
	"unicode"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/minij"
)

// --- Category codes --------------------------------------------------------

// CatCode is the character class of a rune, used by the scanner to dispatch
// on the next input character.
type CatCode int8

// Character classes. Runes of class CatLexeme accumulate into lexemes
// (identifiers, keywords, numbers, char literals); all other classes
// terminate a pending lexeme or are handled specially.
const (
	CatLexeme CatCode = iota // letters, digits and anything not listed below
	CatSpace                 // white space
	CatQuote                 // "
	CatDot                   // .
	CatPunct                 // separators and first runes of operators
)

// RuneCategorizer assigns character classes to runes.
type RuneCategorizer interface {
	Cat(r rune) CatCode
}

// terminalCategorizer derives punctuation from the terminal sets of MiniJava.
type terminalCategorizer struct {
	punct *hashset.Set
}

var _ RuneCategorizer = terminalCategorizer{}

func newCategorizer() terminalCategorizer {
	tc := terminalCategorizer{punct: hashset.New()}
	for _, sep := range minij.Separators() {
		if sep != "." {
			tc.punct.Add([]rune(sep)[0])
		}
	}
	for _, op := range minij.Operators() {
		tc.punct.Add([]rune(op)[0])
	}
	return tc
}

// Cat returns the class of a rune.
func (tc terminalCategorizer) Cat(r rune) CatCode {
	switch {
	case r == '"':
		return CatQuote
	case r == '.':
		return CatDot
	case unicode.IsSpace(r):
		return CatSpace
	case tc.punct.Contains(r):
		return CatPunct
	}
	return CatLexeme
}

// --- Utilities -------------------------------------------------------------

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isDigit(r) {
			return false
		}
	}
	return true
}
