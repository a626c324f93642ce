package minij

import "fmt"

// Sym is a terminal symbol of MiniJava: a keyword, a separator or an
// operator. Sym is decided once, when the scanner classifies a lexeme, so the
// parser never has to compare lexemes of reserved words.
type Sym int16

// NoSym is the Sym of identifiers and literals.
const NoSym Sym = 0

// Keywords. The last three are library names, reserved unless disabled,
// see LibraryKeyword.
const (
	keywordsBegin Sym = iota + 1
	KwAbstract
	KwAssert
	KwBoolean
	KwBreak
	KwByte
	KwCase
	KwCatch
	KwChar
	KwClass
	KwConst
	KwContinue
	KwDefault
	KwDo
	KwDouble
	KwElse
	KwEnum
	KwExtends
	KwFinal
	KwFinally
	KwFloat
	KwFor
	KwGoto
	KwIf
	KwImplements
	KwImport
	KwInstanceof
	KwInt
	KwInterface
	KwLong
	KwNative
	KwNew
	KwPackage
	KwPrivate
	KwProtected
	KwPublic
	KwReturn
	KwShort
	KwStatic
	KwStrictfp
	KwSuper
	KwSwitch
	KwSynchronized
	KwThis
	KwThrow
	KwThrows
	KwTransient
	KwTry
	KwVoid
	KwVolatile
	KwWhile
	KwTrue
	KwFalse
	KwNull
	KwSystem
	KwOut
	KwPrint
	keywordsEnd
)

// Separators.
const (
	separatorsBegin Sym = iota + keywordsEnd
	LParen
	RParen
	LBrack
	RBrack
	LBrace
	RBrace
	Semicolon
	Comma
	Dot
	Colon
	separatorsEnd
)

// Operators.
const (
	operatorsBegin Sym = iota + separatorsEnd
	Plus
	Minus
	Star
	Assign
	Slash
	Percent
	Inc
	Dec
	Eql
	Neq
	Gtr
	Lss
	Geq
	Leq
	LAnd
	LOr
	Not
	And
	Or
	Xor
	Tilde
	Shl
	Shr
	UShr
	AddAssign
	SubAssign
	MulAssign
	QuoAssign
	RemAssign
	AndAssign
	OrAssign
	XorAssign
	ShlAssign
	ShrAssign
	UShrAssign
	Arrow
	ColonColon
	At
	operatorsEnd
)

var symLexemes = map[Sym]string{
	KwAbstract: "abstract", KwAssert: "assert", KwBoolean: "boolean", KwBreak: "break",
	KwByte: "byte", KwCase: "case", KwCatch: "catch", KwChar: "char", KwClass: "class",
	KwConst: "const", KwContinue: "continue", KwDefault: "default", KwDo: "do",
	KwDouble: "double", KwElse: "else", KwEnum: "enum", KwExtends: "extends",
	KwFinal: "final", KwFinally: "finally", KwFloat: "float", KwFor: "for",
	KwGoto: "goto", KwIf: "if", KwImplements: "implements", KwImport: "import",
	KwInstanceof: "instanceof", KwInt: "int", KwInterface: "interface", KwLong: "long",
	KwNative: "native", KwNew: "new", KwPackage: "package", KwPrivate: "private",
	KwProtected: "protected", KwPublic: "public", KwReturn: "return", KwShort: "short",
	KwStatic: "static", KwStrictfp: "strictfp", KwSuper: "super", KwSwitch: "switch",
	KwSynchronized: "synchronized", KwThis: "this", KwThrow: "throw", KwThrows: "throws",
	KwTransient: "transient", KwTry: "try", KwVoid: "void", KwVolatile: "volatile",
	KwWhile: "while", KwTrue: "true", KwFalse: "false", KwNull: "null",
	KwSystem: "System", KwOut: "out", KwPrint: "print",

	LParen: "(", RParen: ")", LBrack: "[", RBrack: "]", LBrace: "{", RBrace: "}",
	Semicolon: ";", Comma: ",", Dot: ".", Colon: ":",

	Plus: "+", Minus: "-", Star: "*", Assign: "=", Slash: "/", Percent: "%",
	Inc: "++", Dec: "--", Eql: "==", Neq: "!=", Gtr: ">", Lss: "<", Geq: ">=",
	Leq: "<=", LAnd: "&&", LOr: "||", Not: "!", And: "&", Or: "|", Xor: "^",
	Tilde: "~", Shl: "<<", Shr: ">>", UShr: ">>>", AddAssign: "+=", SubAssign: "-=",
	MulAssign: "*=", QuoAssign: "/=", RemAssign: "%=", AndAssign: "&=", OrAssign: "|=",
	XorAssign: "^=", ShlAssign: "<<=", ShrAssign: ">>=", UShrAssign: ">>>=",
	Arrow: "->", ColonColon: "::", At: "@",
}

var lexemeSyms map[string]Sym

func init() {
	lexemeSyms = make(map[string]Sym, len(symLexemes))
	for s, lx := range symLexemes {
		lexemeSyms[lx] = s
	}
}

// SymFor returns the terminal symbol for a lexeme, or NoSym.
func SymFor(lexeme string) Sym {
	return lexemeSyms[lexeme]
}

func (s Sym) String() string {
	if lx, ok := symLexemes[s]; ok {
		return lx
	}
	if s == NoSym {
		return "<nosym>"
	}
	return fmt.Sprintf("Sym(%d)", int(s))
}

// IsKeyword is a predicate: is s a reserved word?
func (s Sym) IsKeyword() bool {
	return s > keywordsBegin && s < keywordsEnd
}

// IsSeparator is a predicate: is s a separator?
func (s Sym) IsSeparator() bool {
	return s > separatorsBegin && s < separatorsEnd
}

// IsOperator is a predicate: is s an operator?
func (s Sym) IsOperator() bool {
	return s > operatorsBegin && s < operatorsEnd
}

// LibraryKeyword is a predicate: is s one of the library names (System, out,
// print) reserved as keywords? Scanners may be configured to treat them as
// identifiers instead.
func (s Sym) LibraryKeyword() bool {
	return s == KwSystem || s == KwOut || s == KwPrint
}

// --- Terminal sets ---------------------------------------------------------

// Keywords returns the reserved words. If library is false, the library
// names System, out and print are left out.
func Keywords(library bool) []string {
	return lexemesIn(keywordsBegin, keywordsEnd, func(s Sym) bool {
		return library || !s.LibraryKeyword()
	})
}

// Separators returns the lexemes of all separators.
func Separators() []string {
	return lexemesIn(separatorsBegin, separatorsEnd, nil)
}

// Operators returns the lexemes of all operators.
func Operators() []string {
	return lexemesIn(operatorsBegin, operatorsEnd, nil)
}

func lexemesIn(from, to Sym, filter func(Sym) bool) []string {
	var lx []string
	for s := from + 1; s < to; s++ {
		if filter == nil || filter(s) {
			lx = append(lx, symLexemes[s])
		}
	}
	return lx
}
