// Package symtab implements the compiler's two-level scoped symbol table:
// one scope lives for the whole class, the other is cleared at the start of
// each subroutine. Each kind of declared name is independently indexed, and
// those indices double as the VM memory offsets the compiler emits.
package symtab

// Kind is the storage class of a declared name. None is returned only from
// lookups of undeclared names; it is never assigned to a real symbol.
type Kind int

const (
	None Kind = iota
	Static
	Field
	Argument
	Local
)

// String names a Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Field:
		return "field"
	case Argument:
		return "argument"
	case Local:
		return "local"
	default:
		return "none"
	}
}

// Segment returns the VM memory segment a variable of this kind is pushed
// to or popped from.
func (k Kind) Segment() string {
	switch k {
	case Static:
		return "static"
	case Field:
		return "this"
	case Argument:
		return "argument"
	case Local:
		return "local"
	default:
		return ""
	}
}

// symbol is the (declared type, kind, index) triple recorded for one name.
type symbol struct {
	declaredType string
	kind         Kind
	index        int
}

// Table is a two-level scoped symbol table: classScope persists for an
// entire class compilation, subroutineScope is cleared at the start of
// every subroutine. Four independent counters assign indices within the
// live scope for each kind, so that the indices assigned for a kind are
// always exactly 0..count-1 without gaps.
type Table struct {
	classScope      map[string]symbol
	subroutineScope map[string]symbol
	counters        map[Kind]int
}

// New returns an empty Table ready for one class compilation.
func New() *Table {
	return &Table{
		classScope:      make(map[string]symbol),
		subroutineScope: make(map[string]symbol),
		counters:        make(map[Kind]int),
	}
}

// StartSubroutine clears the subroutine scope and resets the Argument and
// Local counters. Static and Field, and the class scope, are untouched.
func (t *Table) StartSubroutine() {
	t.subroutineScope = make(map[string]symbol)
	t.counters[Argument] = 0
	t.counters[Local] = 0
}

// Define records name with the given declared type and kind, assigning it
// the next free index for that kind. Argument and Local go into the
// subroutine scope; Static and Field go into the class scope. Redefining a
// name already present in its scope silently overwrites the previous entry
// and still consumes a fresh index. The source language leaves
// redefinition undefined, and the reference implementation does the same.
func (t *Table) Define(name, declaredType string, kind Kind) {
	sym := symbol{declaredType: declaredType, kind: kind, index: t.counters[kind]}
	t.counters[kind]++

	switch kind {
	case Argument, Local:
		t.subroutineScope[name] = sym
	case Static, Field:
		t.classScope[name] = sym
	}
}

// VarCount returns how many Define calls of the given kind have been made
// since that kind's counter was last reset. A redefined name is counted
// once per Define call.
func (t *Table) VarCount(kind Kind) int {
	return t.counters[kind]
}

// lookup resolves name by first consulting the subroutine scope, then the
// class scope, returning the zero symbol and false if neither holds it.
func (t *Table) lookup(name string) (symbol, bool) {
	if sym, ok := t.subroutineScope[name]; ok {
		return sym, true
	}
	if sym, ok := t.classScope[name]; ok {
		return sym, true
	}
	return symbol{}, false
}

// KindOf returns the kind of name, or None if it is undeclared.
func (t *Table) KindOf(name string) Kind {
	sym, ok := t.lookup(name)
	if !ok {
		return None
	}
	return sym.kind
}

// TypeOf returns the declared type of name, or "" if it is undeclared.
func (t *Table) TypeOf(name string) string {
	sym, ok := t.lookup(name)
	if !ok {
		return ""
	}
	return sym.declaredType
}

// IndexOf returns the assigned index of name, or -1 if it is undeclared.
func (t *Table) IndexOf(name string) int {
	sym, ok := t.lookup(name)
	if !ok {
		return -1
	}
	return sym.index
}
