package parser

import (
	"github.com/npillmayer/minij"
)

// Predicates in this file peek at tokens ahead of the cursor. They never
// consume input. Every predicate skips exactly the tokens the corresponding
// production will consume, so a positive decision always makes progress.

func isModifier(s minij.Sym) bool {
	switch s {
	case minij.KwPublic, minij.KwPrivate, minij.KwProtected, minij.KwStatic,
		minij.KwFinal, minij.KwAbstract, minij.KwNative, minij.KwSynchronized,
		minij.KwTransient, minij.KwVolatile, minij.KwStrictfp:
		return true
	}
	return false
}

func isPrimitive(s minij.Sym) bool {
	switch s {
	case minij.KwInt, minij.KwBoolean, minij.KwDouble, minij.KwFloat, minij.KwChar,
		minij.KwByte, minij.KwShort, minij.KwLong, minij.KwVoid:
		return true
	}
	return false
}

func isBinaryOp(s minij.Sym) bool {
	switch s {
	case minij.Plus, minij.Minus, minij.Star, minij.Slash, minij.Percent,
		minij.Eql, minij.Neq, minij.Gtr, minij.Lss, minij.Geq, minij.Leq,
		minij.LAnd, minij.LOr, minij.And, minij.Or, minij.Xor,
		minij.Shl, minij.Shr, minij.UShr, minij.KwInstanceof:
		return true
	}
	return false
}

func isUnaryOp(s minij.Sym) bool {
	switch s {
	case minij.Not, minij.Minus, minij.Plus, minij.Tilde, minij.Inc, minij.Dec:
		return true
	}
	return false
}

func isAssignOp(s minij.Sym) bool {
	switch s {
	case minij.Assign, minij.AddAssign, minij.SubAssign, minij.MulAssign, minij.QuoAssign,
		minij.RemAssign, minij.AndAssign, minij.OrAssign, minij.XorAssign,
		minij.ShlAssign, minij.ShrAssign, minij.UShrAssign:
		return true
	}
	return false
}

// typeAt is a predicate: does a type name start at index i?
func (p *Parser) typeAt(i int) bool {
	t, ok := p.at(i)
	return ok && (t.Kind == minij.Identifier || isPrimitive(t.Sym))
}

func (p *Parser) isType() bool {
	return p.typeAt(p.pos)
}

// nameAt is a predicate: may the token at index i be used as a name in an
// expression? Library keywords qualify, as in System.out.println.
func (p *Parser) nameAt(i int) bool {
	t, ok := p.at(i)
	return ok && (t.Kind == minij.Identifier || t.Sym.LibraryKeyword())
}

// skipModifiers returns the index of the first token at or after i which is
// neither a modifier nor part of an annotation.
func (p *Parser) skipModifiers(i int) int {
	for {
		t, ok := p.at(i)
		switch {
		case !ok:
			return i
		case isModifier(t.Sym):
			i++
		case t.Is(minij.At) && p.kindAt(i+1, minij.Identifier):
			i += 2
		default:
			return i
		}
	}
}

// skipBrackets skips pairs of "[" "]".
func (p *Parser) skipBrackets(i int) int {
	for p.symAt(i, minij.LBrack) && p.symAt(i+1, minij.RBrack) {
		i += 2
	}
	return i
}

// skipType returns the index behind a type name with optional array brackets.
func (p *Parser) skipType(i int) (int, bool) {
	if !p.typeAt(i) {
		return i, false
	}
	return p.skipBrackets(i + 1), true
}

// startsClass is a predicate: may a class declaration start at the cursor?
func (p *Parser) startsClass() bool {
	t, ok := p.current()
	if !ok {
		return false
	}
	if t.Is(minij.At) {
		return p.kindAt(p.pos+1, minij.Identifier)
	}
	return t.Is(minij.KwClass) || isModifier(t.Sym)
}

// isMainMethod checks for "public" "static" "void" "main".
func (p *Parser) isMainMethod() bool {
	i := p.pos
	if !p.symAt(i, minij.KwPublic) || !p.symAt(i+1, minij.KwStatic) || !p.symAt(i+2, minij.KwVoid) {
		return false
	}
	t, ok := p.at(i + 3)
	return ok && t.Kind == minij.Identifier && t.Lexeme == "main"
}

// isConstructor checks for Modifiers ClassName "(", where ClassName is the
// name of the class whose body is being parsed.
func (p *Parser) isConstructor() bool {
	sc := p.scopes.Current()
	if sc == nil {
		return false
	}
	i := p.skipModifiers(p.pos)
	t, ok := p.at(i)
	return ok && t.Kind == minij.Identifier && t.Lexeme == sc.Name && p.symAt(i+1, minij.LParen)
}

// isMethodDecl checks for Modifiers Type Identifier "(".
func (p *Parser) isMethodDecl() bool {
	i, ok := p.skipType(p.skipModifiers(p.pos))
	if !ok || !p.kindAt(i, minij.Identifier) {
		return false
	}
	return p.symAt(i+1, minij.LParen)
}

// isFieldDecl checks for Modifiers Type Identifier, followed by one of
// ";" "=" "," (possibly with array brackets after the identifier).
func (p *Parser) isFieldDecl() bool {
	i, ok := p.skipType(p.skipModifiers(p.pos))
	if !ok || !p.kindAt(i, minij.Identifier) {
		return false
	}
	i = p.skipBrackets(i + 1)
	return p.symAt(i, minij.Semicolon) || p.symAt(i, minij.Assign) || p.symAt(i, minij.Comma)
}

// isForEach checks for the header of an enhanced for loop:
// Type Identifier ":".
func (p *Parser) isForEach() bool {
	i, ok := p.skipType(p.skipModifiers(p.pos))
	return ok && p.kindAt(i, minij.Identifier) && p.symAt(i+1, minij.Colon)
}

// isStaticBlock checks for "static" "{".
func (p *Parser) isStaticBlock() bool {
	return p.is(minij.KwStatic) && p.symAt(p.pos+1, minij.LBrace)
}

// startsStatement is a predicate: may a statement start at the cursor?
func (p *Parser) startsStatement() bool {
	t, ok := p.current()
	if !ok {
		return false
	}
	switch t.Sym {
	case minij.LBrace, minij.Semicolon, minij.KwIf, minij.KwWhile, minij.KwFor,
		minij.KwDo, minij.KwSwitch, minij.KwTry, minij.KwSystem, minij.KwReturn,
		minij.KwBreak, minij.KwContinue, minij.KwThrow:
		return true
	}
	return p.startsExprStatement()
}

// startsExprStatement is a predicate: may an expression or assignment
// statement start at the cursor?
func (p *Parser) startsExprStatement() bool {
	t, ok := p.current()
	if !ok {
		return false
	}
	switch t.Sym {
	case minij.KwThis, minij.KwSuper, minij.KwNew, minij.Inc, minij.Dec:
		return true
	}
	return p.nameAt(p.pos)
}
