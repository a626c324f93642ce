package parser

import (
	"github.com/npillmayer/minij"
	"github.com/npillmayer/minij/symtab"
)

// --- Declarations ----------------------------------------------------------

// ClassDeclaration := Modifiers "class" Identifier ["extends" Identifier]
//                     ["implements" Identifier ("," Identifier)*] "{" ClassMember* "}"
//
// The superclass, if any, becomes the owner of the class entry.
func (p *Parser) classDeclaration() {
	vis := p.modifiers()
	if !p.match(minij.KwClass) {
		return
	}
	name, ok := p.identifier("expected an identifier as class name")
	if !ok {
		return
	}
	super := symtab.NoValue
	if p.is(minij.KwExtends) {
		p.next()
		if t, ok := p.identifier("expected an identifier after 'extends'"); ok {
			super = t.Lexeme
		}
	}
	if p.is(minij.KwImplements) {
		p.next()
		p.identifier("expected an identifier after 'implements'")
		for p.is(minij.Comma) {
			p.next()
			p.identifier("expected an identifier after ','")
		}
	}
	tracer().Debugf("class %s", name.Lexeme)
	p.declare(name, "class", vis, symtab.NoValue, symtab.Class, super)
	p.enterScope(name.Lexeme)
	defer p.leaveScope()
	if !p.match(minij.LBrace) {
		return
	}
	for !p.atEnd() && !p.is(minij.RBrace) && !p.saturated() {
		p.classMember()
	}
	p.match(minij.RBrace)
}

// ClassMember := MainMethod | Constructor | MethodDeclaration | FieldDeclaration | StaticBlock
func (p *Parser) classMember() {
	switch {
	case p.isMainMethod():
		p.mainMethod()
	case p.isConstructor():
		p.constructor()
	case p.isMethodDecl():
		p.methodDeclaration()
	case p.isFieldDecl():
		p.fieldDeclaration(false)
	case p.isStaticBlock():
		p.next()
		p.block("unexpected token in static initializer")
	default:
		p.errorf("unrecognized declaration in class body")
		p.next()
	}
}

// modifiers consumes modifiers and annotations. It returns the visibility
// of the first access modifier.
func (p *Parser) modifiers() symtab.Visibility {
	vis := symtab.Default
	for {
		t, ok := p.current()
		switch {
		case !ok:
			return vis
		case isModifier(t.Sym):
			if v := symtab.VisibilityOf(t.Sym); v != symtab.Default && vis == symtab.Default {
				vis = v
			}
			p.next()
		case t.Is(minij.At) && p.kindAt(p.pos+1, minij.Identifier):
			p.next()
			p.next()
		default:
			return vis
		}
	}
}

// typeName consumes a type name, followed by any number of "[" "]". It
// returns the type as written, e.g. "int[][]".
func (p *Parser) typeName(msg string) (string, bool) {
	if !p.isType() {
		p.errorf(msg)
		return "", false
	}
	t, _ := p.current()
	p.next()
	return t.Lexeme + p.dimensions(), true
}

// dimensions consumes pairs of "[" "]" and returns them as a type suffix.
func (p *Parser) dimensions() string {
	dims := ""
	for p.is(minij.LBrack) {
		p.next()
		p.match(minij.RBrack)
		dims += "[]"
	}
	return dims
}

// MainMethod := "public" "static" "void" "main" "(" ["String" "[" "]" Identifier] ")" Block
func (p *Parser) mainMethod() {
	p.match(minij.KwPublic)
	p.match(minij.KwStatic)
	p.match(minij.KwVoid)
	name, _ := p.current()
	p.next()
	tracer().Debugf("main method")
	p.declare(name, "void", symtab.Public, symtab.NoValue, symtab.Method, p.owner())
	p.enterScope(name.Lexeme)
	defer p.leaveScope()
	p.match(minij.LParen)
	if p.isWord("String") {
		p.next()
		p.match(minij.LBrack)
		p.match(minij.RBrack)
		if arg, ok := p.identifier("expected an identifier as parameter of 'main'"); ok {
			p.declare(arg, "String[]", symtab.Local, symtab.NoValue, symtab.Parameter, p.owner())
		}
	}
	p.match(minij.RParen)
	p.block("unexpected token in body of 'main'")
}

// Constructor := Modifiers ClassName "(" Parameters ")" [Throws] Block
//
// Constructors are recorded as methods of the class type.
func (p *Parser) constructor() {
	vis := p.modifiers()
	name, _ := p.current()
	p.next()
	p.declare(name, name.Lexeme, vis, symtab.NoValue, symtab.Method, p.owner())
	p.enterScope(name.Lexeme)
	defer p.leaveScope()
	p.match(minij.LParen)
	p.parameters()
	p.match(minij.RParen)
	p.throwsClause()
	p.block("unexpected token in constructor body")
}

// MethodDeclaration := Modifiers Type Identifier "(" Parameters ")" [Throws] (Block | ";")
func (p *Parser) methodDeclaration() {
	vis := p.modifiers()
	typ, ok := p.typeName("expected a return type")
	if !ok {
		return
	}
	name, ok := p.identifier("expected an identifier as method name")
	if !ok {
		return
	}
	tracer().Debugf("method %s.%s", p.owner(), name.Lexeme)
	p.declare(name, typ, vis, symtab.NoValue, symtab.Method, p.owner())
	p.enterScope(name.Lexeme)
	defer p.leaveScope()
	p.match(minij.LParen)
	p.parameters()
	p.match(minij.RParen)
	p.throwsClause()
	if p.is(minij.Semicolon) { // abstract or native
		p.next()
		return
	}
	p.block("unexpected token in method body")
}

// Parameters := [Parameter ("," Parameter)*]
// Parameter  := ["final"] Type Identifier
func (p *Parser) parameters() {
	if !p.is(minij.KwFinal) && !p.isType() {
		return
	}
	for {
		if p.is(minij.KwFinal) {
			p.next()
		}
		typ, ok := p.typeName("expected a parameter type")
		if !ok {
			return
		}
		param, ok := p.identifier("expected an identifier as parameter name")
		if !ok {
			return
		}
		typ += p.dimensions()
		p.declare(param, typ, symtab.Local, symtab.NoValue, symtab.Parameter, p.owner())
		if !p.is(minij.Comma) {
			return
		}
		p.next()
	}
}

// Throws := "throws" Identifier ("," Identifier)*
func (p *Parser) throwsClause() {
	if !p.is(minij.KwThrows) {
		return
	}
	p.next()
	p.identifier("expected an exception type after 'throws'")
	for p.is(minij.Comma) {
		p.next()
		p.identifier("expected an exception type after ','")
	}
}

// FieldDeclaration := Modifiers Type Declarator ("," Declarator)* ";"
// Declarator       := Identifier ("[" "]")* ["=" Initializer]
//
// Fields and local variables share this production. Locals are recorded
// with visibility 'local', fields with the visibility of their modifiers.
func (p *Parser) fieldDeclaration(local bool) {
	vis := p.modifiers()
	if local {
		vis = symtab.Local
	}
	typ, ok := p.typeName("expected a data type")
	if !ok {
		return
	}
	owner := p.owner()
	for {
		name, ok := p.identifier("expected an identifier after the data type")
		if !ok {
			return
		}
		vtyp := typ + p.dimensions()
		value := symtab.NoValue
		if p.is(minij.Assign) {
			p.next()
			value = p.literalValue()
			p.initializer()
		}
		p.declare(name, vtyp, vis, value, symtab.Variable, owner)
		if !p.is(minij.Comma) {
			break
		}
		p.next()
	}
	p.match(minij.Semicolon)
}

// literalValue returns the lexeme of the current token if it is a literal,
// without consuming it. Otherwise it returns symtab.NoValue. Initializers
// which start with a literal are captured by their first token only.
func (p *Parser) literalValue() string {
	t, ok := p.current()
	if !ok {
		return symtab.NoValue
	}
	if t.Kind.IsLiteral() || t.Is(minij.KwTrue) || t.Is(minij.KwFalse) || t.Is(minij.KwNull) {
		return t.Lexeme
	}
	return symtab.NoValue
}

// Initializer := ArrayInitializer | Expression
func (p *Parser) initializer() {
	if p.is(minij.LBrace) {
		p.arrayInitializer()
		return
	}
	p.expression()
}

// ArrayInitializer := "{" [Initializer ("," Initializer)* [","]] "}"
func (p *Parser) arrayInitializer() {
	p.match(minij.LBrace)
	for !p.atEnd() && !p.is(minij.RBrace) && !p.saturated() {
		p.initializer()
		if !p.is(minij.Comma) {
			break
		}
		p.next()
	}
	p.match(minij.RBrace)
}
