package minij

import "fmt"

// --- Token kinds -----------------------------------------------------------

// TokKind is the lexical category of a token. Every token belongs to exactly
// one kind.
type TokKind int8

// Token kinds, in classification precedence order.
const (
	NoKind TokKind = iota
	Keyword
	Identifier
	Integer
	Decimal
	StringLit
	CharLit
	Separator
	Operator
)

var kindNames = [...]string{
	NoKind:     "<none>",
	Keyword:    "Keyword",
	Identifier: "Identifier",
	Integer:    "Integer",
	Decimal:    "Decimal",
	StringLit:  "String",
	CharLit:    "Char",
	Separator:  "Separator",
	Operator:   "Operator",
}

func (k TokKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("TokKind(%d)", int(k))
	}
	return kindNames[k]
}

// IsLiteral is a predicate: is k one of the literal kinds?
func (k TokKind) IsLiteral() bool {
	return k >= Integer && k <= CharLit
}

// --- Tokens ----------------------------------------------------------------

// Token is a classified lexeme together with its position in the source.
// Tokens are values and are never changed after the scanner produced them.
//
// An example would be a token for a floating point number:
//
//    Kind   = Decimal
//    Sym    = NoSym      // only keywords, separators and operators carry a Sym
//    Lexeme = "3.14"
//    Line   = 7
//    Column = 12         // column of the first character
//
type Token struct {
	Kind   TokKind
	Sym    Sym
	Lexeme string
	Line   int // 1-based
	Column int // 1-based, start of lexeme
}

// MakeToken creates a token. For keywords, separators and operators the
// terminal symbol is looked up from the lexeme.
func MakeToken(kind TokKind, lexeme string, line, col int) Token {
	t := Token{Kind: kind, Lexeme: lexeme, Line: line, Column: col}
	switch kind {
	case Keyword, Separator, Operator:
		t.Sym = SymFor(lexeme)
	}
	return t
}

// Pos returns the start position of a token.
func (t Token) Pos() Pos {
	return Pos{Line: t.Line, Column: t.Column}
}

// Is is a predicate: is t the terminal s?
func (t Token) Is(s Sym) bool {
	return s != NoSym && t.Sym == s
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Kind, t.Lexeme, t.Line, t.Column)
}

// --- Positions -------------------------------------------------------------

// Pos is a (line, column) position within a source text. Both components are
// 1-based. The column resets to 1 on every line.
type Pos struct {
	Line, Column int
}

// Before is a predicate: does p come strictly before q?
func (p Pos) Before(q Pos) bool {
	return p.Line < q.Line || (p.Line == q.Line && p.Column < q.Column)
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}
