/*
Package parser implements a recursive-descent parser for MiniJava, which
builds the symbol table of a program.

The parser consumes the token sequence of package scanner. It has one
function per production of the grammar

   Program          := ClassDeclaration+
   ClassDeclaration := Modifiers "class" Identifier ["extends" Identifier]
                       ["implements" Identifier ("," Identifier)*] "{" ClassMember* "}"
   ClassMember      := MainMethod | Constructor | MethodDeclaration
                     | FieldDeclaration | StaticBlock
   Block            := "{" (FieldDeclaration | Statement)* "}"
   Expression       := SimpleExpr (BinaryOp SimpleExpr)*

and decides between alternatives with single-token lookahead, plus a few
predicates which peek further ahead without consuming tokens. Binary
operators are chained from left to right without precedence levels.

The parser never gives up on malformed input. A missing terminal results in
one diagnostic, without consuming the offending token; loops over members,
statements and block items force progress by skipping a token which starts
no production. The number of recorded diagnostics is bounded.

Symbol entries are recorded for every class, method, constructor, parameter
and variable declaration, carrying the label of the enclosing scope as
owner ("ClassName" or "ClassName.methodName").

Parsers are not safe for concurrent use. Each call to Parse starts a clean
analysis.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/minij"
	"github.com/npillmayer/minij/symtab"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'minij.parser'.
func tracer() tracing.Trace {
	return tracing.Select("minij.parser")
}

// Parser is a recursive-descent parser for MiniJava. Create one with New.
type Parser struct {
	toks   []minij.Token
	pos    int // cursor into toks
	limit  int
	errors *minij.Diagnostics
	table  *symtab.Table
	scopes symtab.ScopeTree
}

// New creates a parser. Without options, at most minij.DefaultErrorLimit
// syntax errors are recorded per call to Parse.
func New(opts ...Option) *Parser {
	p := &Parser{
		limit: minij.DefaultErrorLimit,
		table: symtab.NewTable(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.errors = minij.NewDiagnostics(p.limit)
	return p
}

// Parse parses a token sequence, as produced by a scanner. It returns the
// symbol entries in order of declaration and the syntax errors. Results of a
// previous call are discarded.
func (p *Parser) Parse(tokens []minij.Token) ([]symtab.Entry, []string) {
	p.toks = tokens
	p.pos = 0
	p.errors.Reset()
	p.table.Clear()
	p.scopes.Reset()
	if len(tokens) == 0 {
		p.errors.Addf("syntax error: empty file, expected at least one class")
	} else {
		p.program()
	}
	tracer().Infof("parsed %d tokens: %d symbols, %d syntax errors", len(tokens),
		p.table.Size(), p.errors.Len())
	return p.table.Entries(), p.errors.Messages()
}

// Symbols returns the symbol entries of the last call to Parse.
func (p *Parser) Symbols() []symtab.Entry {
	return p.table.Entries()
}

// Table returns the symbol table filled by the last call to Parse. The next
// call to Parse clears it.
func (p *Parser) Table() *symtab.Table {
	return p.table
}

// Errors returns the syntax errors of the last call to Parse.
func (p *Parser) Errors() []string {
	return p.errors.Messages()
}

// Dropped returns the number of syntax errors of the last call to Parse
// which exceeded the error limit.
func (p *Parser) Dropped() int {
	return p.errors.Dropped()
}

// Program := ClassDeclaration+
func (p *Parser) program() {
	for !p.atEnd() && p.startsClass() {
		start := p.pos
		p.classDeclaration()
		if p.pos == start { // no progress
			p.next()
		}
	}
	if p.atEnd() {
		return
	}
	if p.pos == 0 {
		p.errorf("expected a class declaration")
	} else {
		p.errorf("unexpected tokens after end of program")
	}
}

// --- Token cursor ----------------------------------------------------------

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.toks)
}

// current returns the token under the cursor.
func (p *Parser) current() (minij.Token, bool) {
	return p.at(p.pos)
}

// at returns the token at index i of the token sequence.
func (p *Parser) at(i int) (minij.Token, bool) {
	if i < 0 || i >= len(p.toks) {
		return minij.Token{}, false
	}
	return p.toks[i], true
}

// next advances the cursor by one token, if not at the end.
func (p *Parser) next() {
	if p.pos < len(p.toks) {
		p.pos++
	}
}

// is is a predicate: is the current token the terminal s?
func (p *Parser) is(s minij.Sym) bool {
	return p.symAt(p.pos, s)
}

func (p *Parser) isKind(k minij.TokKind) bool {
	t, ok := p.current()
	return ok && t.Kind == k
}

// isWord is a predicate: is the current token the identifier w? Some words of
// the grammar ("main", "String", "println") are not reserved.
func (p *Parser) isWord(w string) bool {
	t, ok := p.current()
	return ok && t.Kind == minij.Identifier && t.Lexeme == w
}

func (p *Parser) symAt(i int, s minij.Sym) bool {
	t, ok := p.at(i)
	return ok && t.Is(s)
}

func (p *Parser) kindAt(i int, k minij.TokKind) bool {
	t, ok := p.at(i)
	return ok && t.Kind == k
}

// match consumes the terminal s. If the current token is not s, match records
// a diagnostic and leaves the cursor alone.
func (p *Parser) match(s minij.Sym) bool {
	if p.is(s) {
		p.pos++
		return true
	}
	p.expected(s.String())
	return false
}

// identifier consumes an identifier token. If the current token is not an
// identifier, identifier records msg as a diagnostic and leaves the cursor
// alone.
func (p *Parser) identifier(msg string) (minij.Token, bool) {
	if t, ok := p.current(); ok && t.Kind == minij.Identifier {
		p.pos++
		return t, true
	}
	p.errorf(msg)
	return minij.Token{}, false
}

// --- Diagnostics -----------------------------------------------------------

func (p *Parser) expected(what string) {
	if t, ok := p.current(); ok {
		p.errors.Addf("syntax error at line %d, column %d: expected '%s' but found '%s'",
			t.Line, t.Column, what, t.Lexeme)
		return
	}
	p.errors.Addf("syntax error: unexpected end of file, expected '%s'", what)
}

func (p *Parser) errorf(msg string) {
	if t, ok := p.current(); ok {
		p.errors.Addf("syntax error at line %d, column %d: %s (token: '%s')",
			t.Line, t.Column, msg, t.Lexeme)
		return
	}
	p.errors.Addf("syntax error: %s (end of file)", msg)
}

// saturated is a predicate: has the error limit been reached? Loops over
// members, statements and block items stop iterating once it has.
func (p *Parser) saturated() bool {
	return p.errors.Full()
}

// --- Symbols ---------------------------------------------------------------

// declare appends a symbol entry for the declared name t.
func (p *Parser) declare(t minij.Token, typ string, vis symtab.Visibility, value string,
	role symtab.Role, owner string) {
	//
	if owner == "" {
		owner = symtab.NoValue
	}
	p.table.Add(symtab.Entry{
		Name:       t.Lexeme,
		Type:       typ,
		Owner:      owner,
		Value:      value,
		Visibility: vis,
		Pos:        t.Pos(),
		Role:       role,
	})
}

// enterScope pushes the scope of a class or method. Callers defer leaveScope
// immediately, so the enclosing label is restored on every exit path.
func (p *Parser) enterScope(name string) {
	p.scopes.PushNewScope(name)
}

func (p *Parser) leaveScope() {
	p.scopes.PopScope()
}

// owner returns the label of the innermost scope.
func (p *Parser) owner() string {
	return p.scopes.Label()
}

// --- Parser options --------------------------------------------------------

// Option configures a parser.
type Option func(p *Parser)

// ErrorLimit sets the maximum number of syntax errors recorded per call to
// Parse. Values < 1 select minij.DefaultErrorLimit.
func ErrorLimit(n int) Option {
	return func(p *Parser) {
		if n < 1 {
			n = minij.DefaultErrorLimit
		}
		p.limit = n
	}
}
