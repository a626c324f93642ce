package parser

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/minij"
	"github.com/npillmayer/minij/scanner"
	"github.com/npillmayer/minij/symtab"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func parse(t *testing.T, input string, opts ...Option) ([]symtab.Entry, []string) {
	tokens, lexerrs := scanner.New().Scan(input)
	if len(lexerrs) != 0 {
		t.Fatalf("test input has lexical errors: %v", lexerrs)
	}
	return New(opts...).Parse(tokens)
}

// ignorePos compares symbol entries without their source positions.
var ignorePos = cmpopts.IgnoreFields(symtab.Entry{}, "Pos")

func TestParseEmptyClass(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minij.parser")
	defer teardown()
	//
	syms, errs := parse(t, "public class A { }")
	if len(errs) != 0 {
		t.Errorf("expected no syntax errors, have %v", errs)
	}
	expected := []symtab.Entry{
		{Name: "A", Type: "class", Owner: "-", Value: "-", Visibility: symtab.Public, Role: symtab.Class},
	}
	if diff := cmp.Diff(expected, syms, ignorePos); diff != "" {
		t.Errorf("symbol mismatch (-want +got):\n%s", diff)
	}
	if syms[0].Pos != (minij.Pos{Line: 1, Column: 14}) {
		t.Errorf("expected class name at 1:14, is %v", syms[0].Pos)
	}
}

func TestParseEmptyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minij.parser")
	defer teardown()
	//
	syms, errs := New().Parse(nil)
	if len(syms) != 0 {
		t.Errorf("expected no symbols, have %v", syms)
	}
	if len(errs) != 1 || errs[0] != "syntax error: empty file, expected at least one class" {
		t.Errorf("expected a single empty-file diagnostic, have %v", errs)
	}
}

func TestParseProgram(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minij.parser")
	defer teardown()
	//
	input := `public class Calc extends Base implements Runnable, Cloneable {
	private int count = 0;
	public static double PI = 3.14, E;
	String[] names;
	public static void main(String[] args) {
		int a, b;
		char c = 'x';
		boolean ok = true;
		System.out.println("sum: " + a);
	}
	protected int add(int x, final double[] ys) {
		String s = "hi";
		return x + ys[0];
	}
}
class Other { }`
	syms, errs := parse(t, input)
	if len(errs) != 0 {
		t.Errorf("expected no syntax errors, have %v", errs)
	}
	expected := []symtab.Entry{
		{Name: "Calc", Type: "class", Owner: "Base", Value: "-", Visibility: symtab.Public, Role: symtab.Class},
		{Name: "count", Type: "int", Owner: "Calc", Value: "0", Visibility: symtab.Private, Role: symtab.Variable},
		{Name: "PI", Type: "double", Owner: "Calc", Value: "3.14", Visibility: symtab.Public, Role: symtab.Variable},
		{Name: "E", Type: "double", Owner: "Calc", Value: "-", Visibility: symtab.Public, Role: symtab.Variable},
		{Name: "names", Type: "String[]", Owner: "Calc", Value: "-", Visibility: symtab.Default, Role: symtab.Variable},
		{Name: "main", Type: "void", Owner: "Calc", Value: "-", Visibility: symtab.Public, Role: symtab.Method},
		{Name: "args", Type: "String[]", Owner: "Calc.main", Value: "-", Visibility: symtab.Local, Role: symtab.Parameter},
		{Name: "a", Type: "int", Owner: "Calc.main", Value: "-", Visibility: symtab.Local, Role: symtab.Variable},
		{Name: "b", Type: "int", Owner: "Calc.main", Value: "-", Visibility: symtab.Local, Role: symtab.Variable},
		{Name: "c", Type: "char", Owner: "Calc.main", Value: "'x'", Visibility: symtab.Local, Role: symtab.Variable},
		{Name: "ok", Type: "boolean", Owner: "Calc.main", Value: "true", Visibility: symtab.Local, Role: symtab.Variable},
		{Name: "add", Type: "int", Owner: "Calc", Value: "-", Visibility: symtab.Protected, Role: symtab.Method},
		{Name: "x", Type: "int", Owner: "Calc.add", Value: "-", Visibility: symtab.Local, Role: symtab.Parameter},
		{Name: "ys", Type: "double[]", Owner: "Calc.add", Value: "-", Visibility: symtab.Local, Role: symtab.Parameter},
		{Name: "s", Type: "String", Owner: "Calc.add", Value: `"hi"`, Visibility: symtab.Local, Role: symtab.Variable},
		{Name: "Other", Type: "class", Owner: "-", Value: "-", Visibility: symtab.Default, Role: symtab.Class},
	}
	if diff := cmp.Diff(expected, syms, ignorePos); diff != "" {
		t.Errorf("symbol mismatch (-want +got):\n%s", diff)
	}
}

func TestParseStatements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minij.parser")
	defer teardown()
	//
	input := `class S {
	void run() {
		int[] xs = new int[] { 1, 2, 3 };
		int[][] grid = new int[3][4];
		for (int i = 0; i < 10; i++) { x += i; }
		for (i = 0, j = 1; ; i++, j--) break;
		for (final String s : names) System.out.print(s);
		while (a && !b) { a = b == null; }
		do { n--; } while (n > 0);
		if (x instanceof Foo) ; else { y = -x * (2 + z) >>> 1; }
		switch (k) {
		case 1:
			int local = 1;
			break;
		case 2:
		default:
			k = 0;
		}
		try { this.m(1, "a"); } catch (Exception e) { throw e; } finally { ++count; }
		obj.field[2].call().x = new Point(1, 2);
		super.run();
		return;
	}
	Point origin() throws IOException, Other { return new Point(); }
	abstract void todo();
}`
	syms, errs := parse(t, input)
	if len(errs) != 0 {
		t.Errorf("expected no syntax errors, have:\n%s", strings.Join(errs, "\n"))
	}
	var names []string
	for _, e := range syms {
		names = append(names, e.Name)
	}
	expected := []string{"S", "run", "xs", "grid", "i", "s", "local", "e", "origin", "todo"}
	if diff := cmp.Diff(expected, names); diff != "" {
		t.Errorf("symbol mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConstructorAndStaticBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minij.parser")
	defer teardown()
	//
	input := `public class P {
	static int n;
	static { n = 1; int tmp = 2; }
	@Override public P(int n) { this.n = n; }
}`
	syms, errs := parse(t, input)
	if len(errs) != 0 {
		t.Errorf("expected no syntax errors, have %v", errs)
	}
	if len(syms) != 5 {
		t.Fatalf("expected 5 symbols, have %v", syms)
	}
	if syms[2].Name != "tmp" || syms[2].Owner != "P" {
		t.Errorf("expected static block local to be owned by class, is %v", syms[2])
	}
	if syms[3].Role != symtab.Method || syms[3].Type != "P" || syms[3].Visibility != symtab.Public {
		t.Errorf("expected public constructor P, is %v", syms[3])
	}
	if syms[4].Owner != "P.P" {
		t.Errorf("expected constructor parameter owned by P.P, is %v", syms[4])
	}
}

func TestParseWithoutLibraryKeywords(t *testing.T) {
	tokens, _ := scanner.New(scanner.LibraryKeywords(false)).Scan(
		"class A { void m() { System.out.println(1); out = 2; } }")
	_, errs := New().Parse(tokens)
	if len(errs) != 0 {
		t.Errorf("expected print call to parse as method call, have %v", errs)
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minij.parser")
	defer teardown()
	//
	for i, test := range []struct {
		input    string
		expected []string
	}{
		{"class A {", []string{
			"syntax error: unexpected end of file, expected '}'",
		}},
		{"class { }", []string{
			"syntax error at line 1, column 7: expected an identifier as class name (token: '{')",
			"syntax error at line 1, column 7: unexpected tokens after end of program (token: '{')",
		}},
		{"int x = 5;", []string{
			"syntax error at line 1, column 1: expected a class declaration (token: 'int')",
		}},
		{"class A { } }", []string{
			"syntax error at line 1, column 13: unexpected tokens after end of program (token: '}')",
		}},
		{"class A { int x = 5 }", []string{
			"syntax error at line 1, column 21: expected ';' but found '}'",
		}},
		{"class A { void m() { x = ; } }", []string{
			"syntax error at line 1, column 26: unrecognized expression (token: ';')",
		}},
		{"class A {\n  void m() { 5; }\n}", []string{
			"syntax error at line 2, column 14: unexpected token in method body (token: '5')",
		}},
		{"class A { void m() { System.out.printf(1); } }", []string{
			"syntax error at line 1, column 33: expected 'println' or 'print' after 'System.out.' (token: 'printf')",
		}},
	} {
		_, errs := parse(t, test.input)
		if diff := cmp.Diff(test.expected, errs); diff != "" {
			t.Errorf("test %d (%q): diagnostics mismatch (-want +got):\n%s", i, test.input, diff)
		}
	}
}

func TestParseTerminatesOnGarbage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minij.parser")
	defer teardown()
	//
	for _, input := range []string{
		"class A { ) ) ) ( ( ; ; } } }",
		"public public class",
		"class A { void m( { if while for ( ; } }",
		"class A { int x = { 1, ; abstract final }",
		"class A { void m() { switch (x) { ; ; ) } } }",
		"class A { void m() { new ; new 5 ; a.; } }",
		"public static void main(String[] args) { }",
		"class A { void m() { try catch finally } }",
	} {
		p := New()
		_, errs := p.Parse(tokenize(input))
		if len(errs) == 0 {
			t.Errorf("expected diagnostics for %q", input)
		}
		if p.scopes.Depth() != 0 {
			t.Errorf("scope stack not restored after %q, depth is %d", input, p.scopes.Depth())
		}
	}
}

// parseWithin parses tokens on a separate goroutine and fails the test if
// Parse does not return within d.
func parseWithin(t *testing.T, p *Parser, tokens []minij.Token, d time.Duration) ([]symtab.Entry, []string) {
	t.Helper()
	type result struct {
		syms []symtab.Entry
		errs []string
	}
	done := make(chan result, 1)
	go func() {
		syms, errs := p.Parse(tokens)
		done <- result{syms, errs}
	}()
	select {
	case r := <-done:
		return r.syms, r.errs
	case <-time.After(d):
		t.Fatalf("parser did not terminate within %v on %v", d, tokens)
	}
	return nil, nil
}

func TestParseStrayAnnotationSign(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minij.parser")
	defer teardown()
	//
	for _, input := range []string{
		"@",
		"@ @ @",
		"class A { } @ ;",
		"public @ 5 class A { }",
		"@ class A { }",
		"class A { } @ 5",
	} {
		p := New(ErrorLimit(5))
		_, errs := parseWithin(t, p, tokenize(input), 2*time.Second)
		if len(errs) == 0 {
			t.Errorf("expected diagnostics for %q", input)
		}
		if p.scopes.Depth() != 0 {
			t.Errorf("scope stack not restored after %q, depth is %d", input, p.scopes.Depth())
		}
	}
	// annotations proper are still accepted in front of a class
	syms, errs := parse(t, "@Deprecated public class A { }")
	if len(errs) != 0 || len(syms) != 1 {
		t.Errorf("expected annotated class to parse, have %v, %v", syms, errs)
	}
}

// tokenSoup returns a random sequence of n lexemes, drawn from all terminals
// plus a few identifiers and literals.
func tokenSoup(rnd *rand.Rand, n int) string {
	vocabulary := append([]string{}, minij.Keywords(true)...)
	vocabulary = append(vocabulary, minij.Separators()...)
	vocabulary = append(vocabulary, minij.Operators()...)
	vocabulary = append(vocabulary, "A", "x", "main", "String", "println",
		"0", "42", "2.5", `"s"`, "'c'", "@", "\n")
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(vocabulary[rnd.Intn(len(vocabulary))])
		if rnd.Intn(8) == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	return b.String()
}

func TestParseTerminatesOnTokenSoup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minij.parser")
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(20221016))
	p := New(ErrorLimit(5))
	for round := 0; round < 500; round++ {
		input := tokenSoup(rnd, 1+rnd.Intn(60))
		if round%2 == 1 { // give the parser a chance to get into class bodies
			input = "class A { void m() { " + input
		}
		syms, _ := parseWithin(t, p, tokenize(input), 2*time.Second)
		if p.scopes.Depth() != 0 {
			t.Fatalf("scope stack not restored after %q, depth is %d", input, p.scopes.Depth())
		}
		for i := 1; i < len(syms); i++ {
			if syms[i].Pos.Before(syms[i-1].Pos) {
				t.Fatalf("symbol %v declared before its predecessor %v in %q", syms[i], syms[i-1], input)
			}
		}
	}
}

func TestParseErrorLimit(t *testing.T) {
	input := "class A { " + strings.Repeat(") ", 50) + "}"
	p := New(ErrorLimit(5))
	_, errs := p.Parse(tokenize(input))
	if len(errs) != 5 {
		t.Errorf("expected error list to be capped at 5, have %d", len(errs))
	}
	_, errs = New().Parse(tokenize(input))
	if len(errs) != 50 {
		t.Errorf("expected one error per stray token, have %d", len(errs))
	}
}

func TestParserReuse(t *testing.T) {
	p := New()
	p.Parse(tokenize("class A { int a; ) }"))
	syms, errs := p.Parse(tokenize("class B { }"))
	if len(syms) != 1 || len(errs) != 0 {
		t.Errorf("expected a clean second analysis, have %v / %v", syms, errs)
	}
	if len(p.Symbols()) != 1 || len(p.Errors()) != 0 || p.Dropped() != 0 {
		t.Errorf("accessors do not reflect last analysis")
	}
}

func tokenize(input string) []minij.Token {
	tokens, _ := scanner.New().Scan(input)
	return tokens
}
