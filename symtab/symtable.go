package symtab

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/minij"
)

// --- Roles and visibility --------------------------------------------------

// Role tells which kind of declaration an entry stems from.
type Role int8

// Roles of declarations.
const (
	Class Role = iota
	Method
	Parameter
	Variable
)

func (r Role) String() string {
	switch r {
	case Class:
		return "class"
	case Method:
		return "method"
	case Parameter:
		return "parameter"
	case Variable:
		return "variable"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Visibility is the access level of a declaration. Parameters and local
// variables have visibility Local.
type Visibility int8

// Access levels.
const (
	Default Visibility = iota
	Public
	Private
	Protected
	Local
)

func (v Visibility) String() string {
	switch v {
	case Default:
		return "default"
	case Public:
		return "public"
	case Private:
		return "private"
	case Protected:
		return "protected"
	case Local:
		return "local"
	}
	return fmt.Sprintf("Visibility(%d)", int(v))
}

// VisibilityOf maps an access modifier to a visibility. Any other terminal
// results in Default.
func VisibilityOf(s minij.Sym) Visibility {
	switch s {
	case minij.KwPublic:
		return Public
	case minij.KwPrivate:
		return Private
	case minij.KwProtected:
		return Protected
	}
	return Default
}

// --- Entries ---------------------------------------------------------------

// NoValue is recorded for entries without a captured initial value and for
// entries without an owner.
const NoValue = "-"

// Entry describes one declared name.
type Entry struct {
	Name       string
	Type       string     // declared type, "class" for classes
	Owner      string     // scope label, e.g. "Point" or "Point.move"
	Value      string     // simple initial value, or NoValue
	Visibility Visibility
	Pos        minij.Pos  // position of the declared name
	Role       Role
}

// Position renders the position of the declared name as
// "line L, column C".
func (e Entry) Position() string {
	return e.Pos.String()
}

// String is a debug Stringer for entries.
func (e Entry) String() string {
	return fmt.Sprintf("<%s %s:%s in %s>", e.Role, e.Name, e.Type, e.Owner)
}

// === Symbol Tables =========================================================

// Table stores entries in order of declaration. It is append-only and does
// not deduplicate.
type Table struct {
	entries *arraylist.List
}

// NewTable creates an empty symbol table.
func NewTable() *Table {
	return &Table{entries: arraylist.New()}
}

// Add appends an entry.
func (t *Table) Add(e Entry) {
	tracer().P("owner", e.Owner).Debugf("declare %s %s", e.Role, e.Name)
	t.entries.Add(e)
}

// Size counts the entries of a table.
func (t *Table) Size() int {
	return t.entries.Size()
}

// Each iterates over the entries in order of declaration.
func (t *Table) Each(mapper func(int, Entry)) {
	t.entries.Each(func(i int, v interface{}) {
		mapper(i, v.(Entry))
	})
}

// Entries returns a copy of all entries, in order of declaration.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, t.entries.Size())
	t.Each(func(_ int, e Entry) {
		entries = append(entries, e)
	})
	return entries
}

// Lookup finds all entries of a given name, in order of declaration.
func (t *Table) Lookup(name string) []Entry {
	var found []Entry
	t.Each(func(_ int, e Entry) {
		if e.Name == name {
			found = append(found, e)
		}
	})
	return found
}

// Clear removes all entries.
func (t *Table) Clear() {
	t.entries.Clear()
}

// OwnerGroup collects the entries declared under one owner label.
type OwnerGroup struct {
	Owner   string
	Entries []Entry
}

// GroupByOwner groups entries by owner label. Groups are sorted by label,
// entries within a group keep their order of declaration.
func GroupByOwner(entries []Entry) []OwnerGroup {
	m := treemap.NewWithStringComparator()
	for _, e := range entries {
		var group []Entry
		if g, found := m.Get(e.Owner); found {
			group = g.([]Entry)
		}
		m.Put(e.Owner, append(group, e))
	}
	groups := make([]OwnerGroup, 0, m.Size())
	m.Each(func(k, v interface{}) {
		groups = append(groups, OwnerGroup{Owner: k.(string), Entries: v.([]Entry)})
	})
	return groups
}

// === Scopes ================================================================

// Scope is a named scope of a class or method. Scopes link back to a parent
// scope, forming a tree.
type Scope struct {
	Name   string
	Parent *Scope
	label  string
}

// NewScope creates a new scope. The label of the scope is the parent's label
// qualified by name.
func NewScope(nm string, parent *Scope) *Scope {
	sc := &Scope{
		Name:   nm,
		Parent: parent,
		label:  nm,
	}
	if parent != nil && parent.label != "" {
		sc.label = parent.label + "." + nm
	}
	return sc
}

// Label returns the qualified name of a scope, e.g. "Point.move".
func (s *Scope) Label() string {
	return s.label
}

// Prettyfied Stringer.
func (s *Scope) String() string {
	return fmt.Sprintf("<scope %s>", s.label)
}

// ---------------------------------------------------------------------------

// ScopeTree is treated as a stack during parsing, thus building a tree from
// scopes which are pushed and popped to/from the stack. Every push has to be
// matched by a pop on every exit path of the construct which opened the
// scope.
//
// The zero value is an empty tree.
type ScopeTree struct {
	ScopeTOS *Scope
}

// Current gets the current scope of a stack (TOS), or nil for an empty stack.
func (scst *ScopeTree) Current() *Scope {
	return scst.ScopeTOS
}

// Label returns the label of the current scope, or "" for an empty stack.
func (scst *ScopeTree) Label() string {
	if scst.ScopeTOS == nil {
		return ""
	}
	return scst.ScopeTOS.label
}

// Depth counts the scopes on the stack.
func (scst *ScopeTree) Depth() int {
	d := 0
	for sc := scst.ScopeTOS; sc != nil; sc = sc.Parent {
		d++
	}
	return d
}

// PushNewScope pushes a scope onto the stack of scopes.
func (scst *ScopeTree) PushNewScope(nm string) *Scope {
	scp := scst.ScopeTOS
	newsc := NewScope(nm, scp)
	scst.ScopeTOS = newsc
	tracer().P("scope", newsc.label).Debugf("pushing new scope")
	return newsc
}

// PopScope pops the top-most (recent) scope.
func (scst *ScopeTree) PopScope() *Scope {
	if scst.ScopeTOS == nil {
		panic("attempt to pop scope from empty stack")
	}
	sc := scst.ScopeTOS
	tracer().Debugf("popping scope [%s]", sc.label)
	scst.ScopeTOS = scst.ScopeTOS.Parent
	return sc
}

// Reset empties the stack.
func (scst *ScopeTree) Reset() {
	scst.ScopeTOS = nil
}
