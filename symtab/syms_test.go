package symtab

import (
	"testing"

	"github.com/npillmayer/minij"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewSymTab(t *testing.T) {
	symtab := NewTable()
	if symtab == nil || symtab.Size() != 0 {
		t.Error("no empty symbol table created")
	}
}

func TestTableKeepsDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minij.symtab")
	defer teardown()
	//
	symtab := NewTable()
	symtab.Add(Entry{Name: "x", Type: "int", Owner: "A", Value: NoValue, Role: Variable})
	symtab.Add(Entry{Name: "x", Type: "int", Owner: "A.m", Value: "5", Visibility: Local, Role: Variable})
	if symtab.Size() != 2 {
		t.Fatalf("expected 2 entries, have %d", symtab.Size())
	}
	xs := symtab.Lookup("x")
	if len(xs) != 2 || xs[0].Owner != "A" || xs[1].Owner != "A.m" {
		t.Errorf("expected both declarations of x in order, have %v", xs)
	}
	if e := symtab.Entries()[1]; e.Value != "5" {
		t.Errorf("expected entry #1 to have value 5")
	}
	if len(symtab.Lookup("y")) != 0 {
		t.Errorf("did not expect to find undeclared y")
	}
	symtab.Clear()
	if len(symtab.Entries()) != 0 {
		t.Errorf("expected table to be cleared")
	}
}

func TestEntryPosition(t *testing.T) {
	e := Entry{Name: "A", Pos: minij.Pos{Line: 3, Column: 14}, Role: Class, Visibility: Public}
	if e.Position() != "line 3, column 14" {
		t.Errorf("unexpected position %q", e.Position())
	}
	if e.Role.String() != "class" || e.Visibility.String() != "public" {
		t.Errorf("unexpected role/visibility strings %s/%s", e.Role, e.Visibility)
	}
	if VisibilityOf(minij.KwProtected) != Protected || VisibilityOf(minij.KwStatic) != Default {
		t.Errorf("visibility mapping broken")
	}
}

func TestGroupByOwner(t *testing.T) {
	entries := []Entry{
		{Name: "B", Owner: NoValue, Role: Class},
		{Name: "m", Owner: "B", Role: Method},
		{Name: "a", Owner: "B.m", Role: Parameter},
		{Name: "f", Owner: "B", Role: Variable},
	}
	groups := GroupByOwner(entries)
	if len(groups) != 3 {
		t.Fatalf("expected 3 owner groups, have %d", len(groups))
	}
	if groups[1].Owner != "B" || len(groups[1].Entries) != 2 || groups[1].Entries[1].Name != "f" {
		t.Errorf("unexpected group for B: %v", groups[1])
	}
}

func TestScopePushPop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minij.symtab")
	defer teardown()
	//
	var scopes ScopeTree
	if scopes.Label() != "" || scopes.Depth() != 0 {
		t.Errorf("expected empty scope tree")
	}
	scopes.PushNewScope("Point")
	scopes.PushNewScope("move")
	if scopes.Label() != "Point.move" || scopes.Depth() != 2 {
		t.Errorf("expected label Point.move, have %q", scopes.Label())
	}
	if sc := scopes.PopScope(); sc.Name != "move" {
		t.Errorf("expected to pop scope 'move', popped %v", sc)
	}
	if scopes.Label() != "Point" || scopes.Current().Name != "Point" {
		t.Errorf("expected enclosing label to be restored, have %q", scopes.Label())
	}
	scopes.PopScope()
	if scopes.Current() != nil || scopes.Depth() != 0 {
		t.Errorf("expected empty stack")
	}
}

func TestPopEmptyPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected pop of empty scope stack to panic")
		}
	}()
	var scopes ScopeTree
	scopes.PopScope()
}
