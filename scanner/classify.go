package scanner

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/minij"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// classifier decides the token kind of a complete lexeme, using a lexmachine
// DFA. Patterns are added in classification precedence order; lexmachine
// resolves matches of equal length in favour of the pattern added first, thus
// keywords win over identifiers.
//
// A lexeme is classified iff the first match spans the whole lexeme.
type classifier struct {
	lexer *lexmachine.Lexer
}

// One DFA per keyword-set variant, index 1 includes the library keywords.
var (
	classifierOnce [2]sync.Once
	classifiers    [2]*classifier
)

func sharedClassifier(library bool) *classifier {
	inx := 0
	if library {
		inx = 1
	}
	classifierOnce[inx].Do(func() {
		c, err := newClassifier(library)
		if err != nil {
			panic(fmt.Sprintf("cannot create lexeme classifier: %v", err))
		}
		classifiers[inx] = c
	})
	return classifiers[inx]
}

func newClassifier(library bool) (*classifier, error) {
	lexer := lexmachine.NewLexer()
	for _, kw := range minij.Keywords(library) {
		lexer.Add([]byte(kw), makeClass(minij.Keyword))
	}
	lexer.Add([]byte(`([a-z]|[A-Z]|_|$)([a-z]|[A-Z]|[0-9]|_|$)*`), makeClass(minij.Identifier))
	lexer.Add([]byte(`[0-9]+`), makeClass(minij.Integer))
	lexer.Add([]byte(`[0-9]+\.[0-9]+`), makeClass(minij.Decimal))
	lexer.Add([]byte(`\"[^"]*\"`), makeClass(minij.StringLit))
	lexer.Add([]byte(`'(\\.|[^\\'])'`), makeClass(minij.CharLit))
	for _, sep := range minij.Separators() {
		lexer.Add(literal(sep), makeClass(minij.Separator))
	}
	for _, op := range minij.Operators() {
		lexer.Add(literal(op), makeClass(minij.Operator))
	}
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	tracer().Debugf("compiled classifier DFA (library keywords = %v)", library)
	return &classifier{lexer: lexer}, nil
}

// classify returns the token kind of a lexeme. If no class matches the
// complete lexeme, classify returns false.
func (c *classifier) classify(lexeme string) (minij.TokKind, bool) {
	if lexeme == "" {
		return minij.NoKind, false
	}
	if isWideCharLit(lexeme) {
		return minij.CharLit, true
	}
	s, err := c.lexer.Scanner([]byte(lexeme))
	if err != nil {
		return minij.NoKind, false
	}
	tok, err, eof := s.Next()
	if err != nil || eof {
		return minij.NoKind, false
	}
	token := tok.(*lexmachine.Token)
	if len(token.Lexeme) != len(lexeme) {
		return minij.NoKind, false
	}
	return minij.TokKind(token.Type), true
}

// isWideCharLit is a predicate: is lexeme a char literal enclosing exactly
// one non-ASCII rune? The DFA operates on bytes and accepts ASCII char
// literals only.
func isWideCharLit(lexeme string) bool {
	if len(lexeme) < 4 || lexeme[0] != '\'' || lexeme[len(lexeme)-1] != '\'' {
		return false
	}
	inner := lexeme[1 : len(lexeme)-1]
	return inner[0] >= utf8.RuneSelf && utf8.ValidString(inner) && utf8.RuneCountInString(inner) == 1
}

// literal escapes every character of a separator or operator.
func literal(lit string) []byte {
	r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
	return []byte(r)
}

// makeClass is an action which wraps a match into a token of a given kind.
func makeClass(kind minij.TokKind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(kind), string(m.Bytes), m), nil
	}
}
