package parser

import (
	"github.com/npillmayer/minij"
)

// --- Expressions -----------------------------------------------------------

// Expression := SimpleExpr (BinaryOp SimpleExpr)*
//
// No precedence is established; the parser validates the form of an
// expression, not its structure.
func (p *Parser) expression() {
	p.simpleExpression()
	for {
		t, ok := p.current()
		if !ok || !isBinaryOp(t.Sym) {
			return
		}
		p.next()
		p.simpleExpression()
	}
}

// SimpleExpr := [UnaryOp] ( Primary | Literal | "(" Expression ")" Selectors )
func (p *Parser) simpleExpression() {
	if t, ok := p.current(); ok && isUnaryOp(t.Sym) {
		p.next()
	}
	t, ok := p.current()
	switch {
	case !ok:
		p.errorf("expected an expression")
	case p.startsExprStatement():
		p.primary()
	case t.Kind == minij.StringLit:
		p.next()
		p.selectors()
	case t.Kind.IsLiteral() || t.Is(minij.KwTrue) || t.Is(minij.KwFalse) || t.Is(minij.KwNull):
		p.next()
	case t.Is(minij.LParen):
		p.next()
		p.expression()
		p.match(minij.RParen)
		p.selectors()
	default:
		p.errorf("unrecognized expression")
		if !closes(t.Sym) {
			p.next()
		}
	}
}

// closes is a predicate: does s terminate an enclosing construct? The parser
// does not skip such tokens when an expression is malformed.
func closes(s minij.Sym) bool {
	switch s {
	case minij.Semicolon, minij.RParen, minij.RBrack, minij.RBrace, minij.Comma, minij.Colon:
		return true
	}
	return false
}

// Primary := (Name | "this" | "super" | New) Selectors
func (p *Parser) primary() {
	switch {
	case p.is(minij.KwNew):
		p.newExpression()
	case p.is(minij.KwThis) || p.is(minij.KwSuper) || p.nameAt(p.pos):
		p.next()
	default:
		p.errorf("expected an identifier")
		return
	}
	p.selectors()
}

// Selectors := ( "." Name | "[" Expression "]" | Arguments )* ["++" | "--"]
func (p *Parser) selectors() {
	for {
		switch {
		case p.is(minij.Dot):
			p.next()
			if !p.nameAt(p.pos) {
				p.errorf("expected an identifier after '.'")
				return
			}
			p.next()
		case p.is(minij.LBrack):
			p.next()
			p.expression()
			p.match(minij.RBrack)
		case p.is(minij.LParen):
			p.arguments()
		default:
			if p.is(minij.Inc) || p.is(minij.Dec) {
				p.next()
			}
			return
		}
	}
}

// Arguments := "(" [Expression ("," Expression)*] ")"
func (p *Parser) arguments() {
	p.match(minij.LParen)
	if !p.is(minij.RParen) {
		for {
			p.expression()
			if !p.is(minij.Comma) {
				break
			}
			p.next()
		}
	}
	p.match(minij.RParen)
}

// New := "new" Type ( Arguments | ("[" [Expression] "]")+ [ArrayInitializer] )
func (p *Parser) newExpression() {
	p.next()
	if p.isType() {
		p.next()
	} else {
		p.errorf("expected a type after 'new'")
	}
	switch {
	case p.is(minij.LParen):
		p.arguments()
	case p.is(minij.LBrack):
		for p.is(minij.LBrack) {
			p.next()
			if !p.is(minij.RBrack) {
				p.expression()
			}
			p.match(minij.RBrack)
		}
		if p.is(minij.LBrace) {
			p.arrayInitializer()
		}
	default:
		p.expected(minij.LParen.String())
	}
}
