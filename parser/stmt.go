package parser

import (
	"github.com/npillmayer/minij"
	"github.com/npillmayer/minij/symtab"
)

// --- Blocks and statements -------------------------------------------------

// Block := "{" BlockItem* "}"
//
// msg is the diagnostic for tokens which start neither a declaration nor a
// statement.
func (p *Parser) block(msg string) {
	if !p.match(minij.LBrace) {
		return
	}
	for !p.atEnd() && !p.is(minij.RBrace) && !p.saturated() {
		p.blockItem(msg)
	}
	p.match(minij.RBrace)
}

// BlockItem := FieldDeclaration | Statement
func (p *Parser) blockItem(msg string) {
	switch {
	case p.isFieldDecl():
		p.fieldDeclaration(true)
	case p.startsStatement():
		p.statement()
	default:
		p.errorf(msg)
		p.next()
	}
}

// Statement := Block | ";" | If | While | DoWhile | For | Switch | Try
//            | Print | Return | Break | Continue | Throw | ExprStatement
func (p *Parser) statement() {
	t, ok := p.current()
	if !ok {
		p.errorf("expected a statement")
		return
	}
	switch t.Sym {
	case minij.LBrace:
		p.block("unexpected token in block")
	case minij.Semicolon:
		p.next()
	case minij.KwIf:
		p.next()
		p.condition()
		p.statement()
		if p.is(minij.KwElse) {
			p.next()
			p.statement()
		}
	case minij.KwWhile:
		p.next()
		p.condition()
		p.statement()
	case minij.KwDo:
		p.next()
		p.statement()
		p.match(minij.KwWhile)
		p.condition()
		p.match(minij.Semicolon)
	case minij.KwFor:
		p.forStatement()
	case minij.KwSwitch:
		p.switchStatement()
	case minij.KwTry:
		p.tryStatement()
	case minij.KwSystem:
		p.printStatement()
	case minij.KwReturn:
		p.next()
		if !p.is(minij.Semicolon) {
			p.expression()
		}
		p.match(minij.Semicolon)
	case minij.KwBreak, minij.KwContinue:
		p.next()
		p.match(minij.Semicolon)
	case minij.KwThrow:
		p.next()
		p.expression()
		p.match(minij.Semicolon)
	default:
		if p.startsExprStatement() {
			p.exprStatement()
			p.match(minij.Semicolon)
			return
		}
		p.errorf("unrecognized statement")
		p.next()
	}
}

// condition := "(" Expression ")"
func (p *Parser) condition() {
	p.match(minij.LParen)
	p.expression()
	p.match(minij.RParen)
}

// For     := "for" "(" (ForEach | ForInit ";" [Expression] ";" [ForUpdate]) ")" Statement
// ForEach := Type Identifier ":" Expression
//
// The loop variable of a for-each loop and variables declared in the init
// part are locals of the enclosing method.
func (p *Parser) forStatement() {
	p.next()
	p.match(minij.LParen)
	if p.isForEach() {
		p.modifiers()
		typ, _ := p.typeName("expected a data type")
		name, _ := p.current()
		p.next()
		p.declare(name, typ, symtab.Local, symtab.NoValue, symtab.Variable, p.owner())
		p.match(minij.Colon)
		p.expression()
	} else {
		switch {
		case p.isFieldDecl():
			p.fieldDeclaration(true) // consumes the ';'
		case p.is(minij.Semicolon):
			p.next()
		default:
			p.forUpdates()
			p.match(minij.Semicolon)
		}
		if !p.is(minij.Semicolon) {
			p.expression()
		}
		p.match(minij.Semicolon)
		if !p.is(minij.RParen) {
			p.forUpdates()
		}
	}
	p.match(minij.RParen)
	p.statement()
}

// forUpdates := forUpdate ("," forUpdate)*
func (p *Parser) forUpdates() {
	p.forUpdate()
	for p.is(minij.Comma) {
		p.next()
		p.forUpdate()
	}
}

// forUpdate is an assignment, an increment or any other expression, without
// a terminating ";".
func (p *Parser) forUpdate() {
	if p.startsExprStatement() {
		p.exprStatement()
		return
	}
	p.expression()
}

// Switch := "switch" "(" Expression ")" "{" (("case" Expression | "default") ":" BlockItem*)* "}"
func (p *Parser) switchStatement() {
	p.next()
	p.condition()
	if !p.match(minij.LBrace) {
		return
	}
	for (p.is(minij.KwCase) || p.is(minij.KwDefault)) && !p.saturated() {
		if p.is(minij.KwCase) {
			p.next()
			p.expression()
		} else {
			p.next()
		}
		p.match(minij.Colon)
		for !p.atEnd() && !p.is(minij.KwCase) && !p.is(minij.KwDefault) && !p.is(minij.RBrace) &&
			!p.saturated() {
			//
			p.blockItem("unexpected token in switch case")
		}
	}
	p.match(minij.RBrace)
}

// Try := "try" Statement ("catch" "(" Type Identifier ")" Statement)* ["finally" Statement]
//
// Catch parameters are recorded as parameters of the enclosing method.
func (p *Parser) tryStatement() {
	p.next()
	p.statement()
	for p.is(minij.KwCatch) {
		p.next()
		p.match(minij.LParen)
		if typ, ok := p.typeName("expected an exception type"); ok {
			if param, ok := p.identifier("expected an identifier as exception parameter"); ok {
				p.declare(param, typ, symtab.Local, symtab.NoValue, symtab.Parameter, p.owner())
			}
		}
		p.match(minij.RParen)
		p.statement()
	}
	if p.is(minij.KwFinally) {
		p.next()
		p.statement()
	}
}

// Print := "System" "." "out" "." ("println" | "print") Arguments ";"
//
// Only taken if System is a reserved word. Otherwise the statement is parsed
// as an ordinary method call.
func (p *Parser) printStatement() {
	p.next()
	p.match(minij.Dot)
	p.match(minij.KwOut)
	p.match(minij.Dot)
	switch {
	case p.isWord("println") || p.is(minij.KwPrint):
		p.next()
	case p.isKind(minij.Identifier):
		p.errorf("expected 'println' or 'print' after 'System.out.'")
		p.next()
	default:
		p.errorf("expected 'println' or 'print' after 'System.out.'")
	}
	if p.is(minij.LParen) {
		p.arguments()
	} else {
		p.expected(minij.LParen.String())
	}
	p.match(minij.Semicolon)
}

// ExprStatement := ("++" | "--") Primary
//                | Primary [AssignOp (Initializer)]
//
// where Primary includes selectors, indexing, calls and postfix increments.
// The terminating ";" is matched by the caller.
func (p *Parser) exprStatement() {
	if p.is(minij.Inc) || p.is(minij.Dec) {
		p.next()
		p.primary()
		return
	}
	p.primary()
	if t, ok := p.current(); ok && isAssignOp(t.Sym) {
		p.next()
		p.initializer()
	}
}
