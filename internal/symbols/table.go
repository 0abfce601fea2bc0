package symbols

import (
	"maps"
	"slices"

	"github.com/tliron/commonlog"
	"gitlab.com/tozd/go/errors"
)

var log = commonlog.GetLogger("mangrove.symbols")

// ErrDuplicateSymbol is returned by Add when the name is already bound in the
// table itself. Bindings in enclosing tables never conflict.
var ErrDuplicateSymbol = errors.Base("symbol already defined in current scope")

// Context is the parser capability that holds the current scope. Only
// NewSymbolTable and Pop write it.
type Context interface {
	SymbolTable() *SymbolTable
	SetSymbolTable(table *SymbolTable)
}

// SymbolTable is one lexical scope, chained to the scope that was current
// when it was entered.
type SymbolTable struct {
	parent *SymbolTable
	table  map[string]*MangroveSymbol
}

// NewSymbolTable enters a new scope: the table captures the context's current
// table as its parent and installs itself as current. Every call must be
// matched by exactly one Pop.
func NewSymbolTable(ctx Context) *SymbolTable {
	t := &SymbolTable{
		parent: ctx.SymbolTable(),
		table:  make(map[string]*MangroveSymbol),
	}
	ctx.SetSymbolTable(t)
	return t
}

func (t *SymbolTable) Parent() *SymbolTable { return t.parent }

// Add binds a new untyped symbol. A name already bound in this table is left
// untouched and reported with ErrDuplicateSymbol.
func (t *SymbolTable) Add(ident string) (*MangroveSymbol, error) {
	if _, ok := t.table[ident]; ok {
		log.Warningf("symbol %q already defined in current scope", ident)
		return nil, errors.Errorf("%w: %s", ErrDuplicateSymbol, ident)
	}
	sym := NewSymbol(ident)
	t.table[ident] = sym
	return sym, nil
}

// Insert registers a symbol built elsewhere, replacing any binding of the
// same name in this table.
func (t *SymbolTable) Insert(sym *MangroveSymbol) {
	t.table[sym.Value()] = sym
}

func (t *SymbolTable) FindLocal(ident string) *MangroveSymbol {
	return t.table[ident]
}

// Find resolves ident from this table outward. The innermost binding wins.
func (t *SymbolTable) Find(ident string) *MangroveSymbol {
	for table := t; table != nil; table = table.parent {
		if sym, ok := table.table[ident]; ok {
			return sym
		}
	}
	return nil
}

// Shadows reports the binding in an enclosing table that a local binding of
// ident would hide, if any.
func (t *SymbolTable) Shadows(ident string) *MangroveSymbol {
	if t.parent == nil {
		return nil
	}
	return t.parent.Find(ident)
}

// Pop leaves the scope, restoring the parent as current. Popping the root is
// a no-op. Symbols stay valid for nodes that already reference them.
func (t *SymbolTable) Pop(ctx Context) {
	if t.parent == nil {
		return
	}
	ctx.SetSymbolTable(t.parent)
}

// Names returns the names bound in this table, sorted.
func (t *SymbolTable) Names() []string {
	return slices.Sorted(maps.Keys(t.table))
}

// VisibleNames returns every name reachable by Find from this table, sorted
// and without duplicates.
func (t *SymbolTable) VisibleNames() []string {
	seen := make(map[string]struct{})
	for table := t; table != nil; table = table.parent {
		for name := range table.table {
			seen[name] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

func (t *SymbolTable) Len() int { return len(t.table) }
