/*
Package inspect runs a complete analysis of MiniJava source text: lexical
analysis followed by parsing.

   report := inspect.Inspect(source, config.Default())
   if !report.OK() {
       for _, msg := range report.Diagnostics() { ... }
   }

Every call to Inspect uses a fresh scanner and parser, so reports of
different calls share no state.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package inspect

import (
	"github.com/npillmayer/minij"
	"github.com/npillmayer/minij/config"
	"github.com/npillmayer/minij/parser"
	"github.com/npillmayer/minij/scanner"
	"github.com/npillmayer/minij/symtab"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'minij.inspect'.
func tracer() tracing.Trace {
	return tracing.Select("minij.inspect")
}

// Report is the outcome of an analysis.
type Report struct {
	Tokens       []minij.Token
	LexErrors    []string
	Symbols      []symtab.Entry
	SyntaxErrors []string
	Dropped      int // diagnostics beyond the error limits
	table        *symtab.Table
}

// Inspect scans and parses source text.
func Inspect(source string, opts config.Options) *Report {
	sc := scanner.New(scanner.ErrorLimit(opts.ErrorLimit), scanner.LibraryKeywords(opts.LibraryKeywords))
	p := parser.New(parser.ErrorLimit(opts.ErrorLimit))
	r := &Report{}
	r.Tokens, r.LexErrors = sc.Scan(source)
	r.Symbols, r.SyntaxErrors = p.Parse(r.Tokens)
	r.Dropped = sc.Dropped() + p.Dropped()
	r.table = p.Table()
	tracer().Infof("inspected %d tokens, %d symbols, %d diagnostics", len(r.Tokens),
		len(r.Symbols), len(r.LexErrors)+len(r.SyntaxErrors))
	return r
}

// OK is true if the analysis found neither lexical nor syntax errors.
func (r *Report) OK() bool {
	return len(r.LexErrors) == 0 && len(r.SyntaxErrors) == 0
}

// Diagnostics returns all diagnostics, lexical errors first.
func (r *Report) Diagnostics() []string {
	d := make([]string, 0, len(r.LexErrors)+len(r.SyntaxErrors))
	d = append(d, r.LexErrors...)
	return append(d, r.SyntaxErrors...)
}

// Counts returns the number of tokens per token kind.
func (r *Report) Counts() map[minij.TokKind]int {
	counts := make(map[minij.TokKind]int)
	for _, t := range r.Tokens {
		counts[t.Kind]++
	}
	return counts
}

// SymbolsByOwner groups the symbol entries by owner label, with owners in
// lexicographic order.
func (r *Report) SymbolsByOwner() []symtab.OwnerGroup {
	return symtab.GroupByOwner(r.Symbols)
}

// Lookup finds all symbol entries declared with a given name, in order of
// declaration.
func (r *Report) Lookup(name string) []symtab.Entry {
	if r.table == nil {
		return nil
	}
	return r.table.Lookup(name)
}
