/*
Package scanner implements the lexical analysis of MiniJava source text.

A Scanner processes its input line by line. Line comments ("//") are
dropped, string literals are collected verbatim, and operators are
recognized by maximal munch. Every lexeme is classified as exactly one of
the token kinds of package minij; a lexeme which fits no class is reported
as a lexical error and does not produce a token. Scanning never stops on an
error.

Scanners are not safe for concurrent use. Each call to Scan starts a clean
analysis, so a scanner may be re-used sequentially.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/minij"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'minij.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("minij.scanner")
}

// Scanner splits MiniJava source text into tokens. Create one with New.
type Scanner struct {
	cls      *classifier
	cats     RuneCategorizer
	ops      *hashset.Set // multi-rune operators
	maxOpLen int          // length of the longest operator, in runes
	limit    int
	library  bool
	tokens   []minij.Token
	errors   *minij.Diagnostics
}

// New creates a scanner. Without options, the scanner reserves the library
// keywords and records at most minij.DefaultErrorLimit lexical errors.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		library: true,
		limit:   minij.DefaultErrorLimit,
		ops:     hashset.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cls = sharedClassifier(s.library)
	s.cats = newCategorizer()
	for _, op := range minij.Operators() {
		n := len([]rune(op))
		if n > 1 {
			s.ops.Add(op)
		}
		if n > s.maxOpLen {
			s.maxOpLen = n
		}
	}
	s.errors = minij.NewDiagnostics(s.limit)
	return s
}

// Scan splits source text into tokens. It returns the tokens in source
// order together with the lexical errors. Results of a previous call are
// discarded.
func (s *Scanner) Scan(source string) ([]minij.Token, []string) {
	s.tokens = nil
	s.errors.Reset()
	if source != "" {
		for i, line := range strings.Split(source, "\n") {
			s.scanLine([]rune(line), i+1)
		}
	}
	tracer().Infof("scanned %d tokens, %d lexical errors", len(s.tokens), s.errors.Len())
	return s.tokens, s.errors.Messages()
}

// Tokens returns the tokens of the last call to Scan.
func (s *Scanner) Tokens() []minij.Token {
	return s.tokens
}

// Errors returns the lexical errors of the last call to Scan.
func (s *Scanner) Errors() []string {
	return s.errors.Messages()
}

// Dropped returns the number of lexical errors of the last call to Scan
// which exceeded the error limit.
func (s *Scanner) Dropped() int {
	return s.errors.Dropped()
}

// --- Line scanning ---------------------------------------------------------

// pending is a lexeme under construction.
type pending struct {
	text  strings.Builder
	start int // column of its first rune
}

func (p *pending) append(r rune, col int) {
	if p.text.Len() == 0 {
		p.start = col
	}
	p.text.WriteRune(r)
}

func (s *Scanner) scanLine(runes []rune, line int) {
	var lx pending
	inString := false
	for i := 0; i < len(runes); i++ {
		r, col := runes[i], i+1
		if inString {
			lx.append(r, col)
			if r == '"' {
				inString = false
				s.flush(&lx, line)
			}
			continue
		}
		if r == '/' && i+1 < len(runes) && runes[i+1] == '/' {
			break // line comment
		}
		cat := s.cats.Cat(r)
		switch cat {
		case CatQuote:
			lx.append(r, col)
			inString = true
		case CatSpace:
			s.flush(&lx, line)
		case CatDot:
			if allDigits(lx.text.String()) && i+1 < len(runes) && isDigit(runes[i+1]) {
				lx.append(r, col) // decimal point
				continue
			}
			s.flush(&lx, line)
			s.emit(minij.Separator, ".", line, col)
		case CatPunct:
			s.flush(&lx, line)
			i += s.munch(runes, i, line) - 1
		default:
			lx.append(r, col)
		}
	}
	s.flush(&lx, line) // end of line, also catches unterminated strings
}

// munch recognizes the separator or operator starting at runes[i], preferring
// the longest operator. It returns the number of runes consumed.
func (s *Scanner) munch(runes []rune, i int, line int) int {
	for n := s.maxOpLen; n > 1; n-- {
		if i+n > len(runes) {
			continue
		}
		if op := string(runes[i : i+n]); s.ops.Contains(op) {
			s.emit(minij.Operator, op, line, i+1)
			return n
		}
	}
	s.classifyAndEmit(string(runes[i]), line, i+1)
	return 1
}

// flush classifies a pending lexeme, if any, and resets it.
func (s *Scanner) flush(lx *pending, line int) {
	if lx.text.Len() == 0 {
		return
	}
	s.classifyAndEmit(lx.text.String(), line, lx.start)
	lx.text.Reset()
}

func (s *Scanner) classifyAndEmit(lexeme string, line, col int) {
	kind, ok := s.cls.classify(lexeme)
	if !ok {
		tracer().Debugf("lexeme %q at %d:%d not recognized", lexeme, line, col)
		s.errors.Addf("lexical error at line %d: '%s' not recognized", line, lexeme)
		return
	}
	s.emit(kind, lexeme, line, col)
}

func (s *Scanner) emit(kind minij.TokKind, lexeme string, line, col int) {
	tok := minij.MakeToken(kind, lexeme, line, col)
	tracer().Debugf("token %v", tok)
	s.tokens = append(s.tokens, tok)
}

// --- Scanner options -------------------------------------------------------

// Option configures a scanner.
type Option func(s *Scanner)

// ErrorLimit sets the maximum number of lexical errors recorded per call to
// Scan. Values < 1 select minij.DefaultErrorLimit.
func ErrorLimit(n int) Option {
	return func(s *Scanner) {
		if n < 1 {
			n = minij.DefaultErrorLimit
		}
		s.limit = n
	}
}

// LibraryKeywords sets or clears whether the library names System, out and
// print are reserved as keywords. If cleared, they scan as identifiers.
func LibraryKeywords(b bool) Option {
	return func(s *Scanner) {
		s.library = b
	}
}
