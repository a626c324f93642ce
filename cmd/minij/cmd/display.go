package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/npillmayer/minij"
	"github.com/npillmayer/minij/inspect"
	"github.com/npillmayer/minij/symtab"
	"github.com/pterm/pterm"
)

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func printTokens(report *inspect.Report) {
	if len(report.Tokens) == 0 {
		pterm.Info.Println("no tokens")
		return
	}
	data := pterm.TableData{{"Kind", "Lexeme", "Line", "Column"}}
	for _, t := range report.Tokens {
		data = append(data, []string{t.Kind.String(), t.Lexeme, strconv.Itoa(t.Line), strconv.Itoa(t.Column)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printSymbols(report *inspect.Report) {
	printEntries(report.Symbols)
}

func printEntries(entries []symtab.Entry) {
	if len(entries) == 0 {
		pterm.Info.Println("no symbols")
		return
	}
	data := pterm.TableData{{"Name", "Type", "Owner", "Value", "Visibility", "Position", "Role"}}
	for _, e := range entries {
		data = append(data, []string{e.Name, e.Type, e.Owner, e.Value, e.Visibility.String(),
			e.Position(), e.Role.String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// printOwnerTree displays the symbols grouped by owner label.
func printOwnerTree(report *inspect.Report) {
	groups := report.SymbolsByOwner()
	if len(groups) == 0 {
		return
	}
	ll := pterm.LeveledList{}
	for _, g := range groups {
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: g.Owner})
		for _, e := range g.Entries {
			ll = append(ll, pterm.LeveledListItem{
				Level: 1,
				Text:  fmt.Sprintf("%s %s : %s", e.Role, e.Name, e.Type),
			})
		}
	}
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

func printDiagnostics(msgs []string, dropped int) {
	for _, msg := range msgs {
		pterm.Error.Println(msg)
	}
	if dropped > 0 {
		pterm.Warning.Printf("%d more errors not shown\n", dropped)
	}
}

// printSummary prints token counts per kind and the number of symbols.
func printSummary(report *inspect.Report) {
	counts := report.Counts()
	kinds := make([]minij.TokKind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	s := ""
	for _, k := range kinds {
		s += fmt.Sprintf("%s=%d ", k, counts[k])
	}
	pterm.Info.Printf("%d tokens [ %s], %d symbols\n", len(report.Tokens), s, len(report.Symbols))
}
