package symbols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

type scopeContext struct {
	current *SymbolTable
}

func (c *scopeContext) SymbolTable() *SymbolTable         { return c.current }
func (c *scopeContext) SetSymbolTable(table *SymbolTable) { c.current = table }

func TestNewSymbolTableInstallsItself(t *testing.T) {
	ctx := &scopeContext{}
	root := NewSymbolTable(ctx)
	assert.Same(t, root, ctx.current)
	assert.Nil(t, root.Parent())

	child := NewSymbolTable(ctx)
	assert.Same(t, child, ctx.current)
	assert.Same(t, root, child.Parent())

	child.Pop(ctx)
	assert.Same(t, root, ctx.current)
}

func TestPopRootIsNoop(t *testing.T) {
	ctx := &scopeContext{}
	root := NewSymbolTable(ctx)

	assert.NotPanics(t, func() { root.Pop(ctx) })
	assert.Same(t, root, ctx.current)
}

func TestFindWalksScopeChain(t *testing.T) {
	ctx := &scopeContext{}
	t0 := NewSymbolTable(ctx)
	outer, err := t0.Add("x")
	require.NoError(t, err)

	t1 := NewSymbolTable(ctx)
	t2 := NewSymbolTable(ctx)

	assert.Same(t, outer, t2.Find("x"))
	assert.Nil(t, t2.FindLocal("x"))

	middle, err := t1.Add("x")
	require.NoError(t, err)
	assert.Same(t, middle, t2.Find("x"))
	assert.Same(t, outer, t0.Find("x"))
	assert.Nil(t, t2.Find("y"))
}

func TestAddDuplicateKeepsFirst(t *testing.T) {
	ctx := &scopeContext{}
	NewSymbolTable(ctx)
	t1 := NewSymbolTable(ctx)

	first, err := t1.Add("x")
	require.NoError(t, err)

	second, err := t1.Add("x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateSymbol))
	assert.Nil(t, second)
	assert.Same(t, first, t1.FindLocal("x"))
	assert.Equal(t, 1, t1.Len())
}

func TestInsertOverwrites(t *testing.T) {
	ctx := &scopeContext{}
	table := NewSymbolTable(ctx)

	first, err := table.Add("x")
	require.NoError(t, err)

	replacement := NewTypedSymbol("x", NewSymbolType(String))
	table.Insert(replacement)
	assert.Same(t, replacement, table.FindLocal("x"))
	assert.NotSame(t, first, table.FindLocal("x"))
}

func TestSymbolsSurvivePop(t *testing.T) {
	ctx := &scopeContext{}
	root := NewSymbolTable(ctx)
	inner := NewSymbolTable(ctx)

	sym, err := inner.Add("tmp")
	require.NoError(t, err)
	sym.Type().Assign(Integer | Int32Bit)
	inner.Pop(ctx)

	assert.Nil(t, root.Find("tmp"))
	assert.Equal(t, "tmp", sym.Value())
	assert.Equal(t, Integer|Int32Bit, sym.Type().Value())
}

func TestNestedScopeRedeclaration(t *testing.T) {
	// { x; { x; } }
	ctx := &scopeContext{}
	outerScope := NewSymbolTable(ctx)
	outer, err := ctx.SymbolTable().Add("x")
	require.NoError(t, err)

	innerScope := NewSymbolTable(ctx)
	inner, err := ctx.SymbolTable().Add("x")
	require.NoError(t, err, "inner declaration lives in a different table")
	assert.NotSame(t, outer, inner)
	assert.Same(t, outer, innerScope.Shadows("x"))

	innerScope.Pop(ctx)
	assert.Same(t, outerScope, ctx.SymbolTable())
	assert.Same(t, outer, ctx.SymbolTable().Find("x"))
}

func TestVisibleNames(t *testing.T) {
	ctx := &scopeContext{}
	root := NewSymbolTable(ctx)
	_, _ = root.Add("b")
	_, _ = root.Add("a")
	child := NewSymbolTable(ctx)
	_, _ = child.Add("c")
	_, _ = child.Add("a")

	assert.Equal(t, []string{"a", "c"}, child.Names())
	assert.Equal(t, []string{"a", "b", "c"}, child.VisibleNames())
	assert.Equal(t, []string{"a", "b"}, root.VisibleNames())
}

func TestSymbolEquality(t *testing.T) {
	a := NewTypedSymbol("a", NewSymbolType(String))
	b := NewTypedSymbol("a", NewSymbolType(Character|List))
	c := NewTypedSymbol("a", NewSymbolType(List))
	d := NewTypedSymbol("b", NewSymbolType(String))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(nil))
	assert.True(t, NewSymbol("u").Equal(NewSymbol("u")))
}

func TestAllocStruct(t *testing.T) {
	ctx := &scopeContext{}
	root := NewSymbolTable(ctx)

	point, err := root.Add("Point")
	require.NoError(t, err)
	structure := point.AllocStruct(ctx)

	assert.Same(t, structure, point.Structure())
	assert.Equal(t, Struct, point.Type().Value())
	assert.Same(t, structure.SymbolTable(), ctx.SymbolTable())
	assert.Same(t, root, structure.SymbolTable().Parent())

	x, err := structure.SymbolTable().Add("x")
	require.NoError(t, err)
	structure.AddMember(x)
	y, err := structure.SymbolTable().Add("y")
	require.NoError(t, err)
	structure.AddMember(y)

	structure.SymbolTable().Pop(ctx)
	assert.Same(t, root, ctx.SymbolTable())

	require.Len(t, structure.Members(), 2)
	assert.Equal(t, "x", structure.Members()[0].Value())
	assert.Equal(t, "y", structure.Members()[1].Value())
	assert.Same(t, y, structure.Member("y"))
	assert.Nil(t, structure.Member("z"))
	assert.Nil(t, root.Find("x"))
}

func TestSymbolStructSeedsMembersWithoutInserting(t *testing.T) {
	ctx := &scopeContext{}
	NewSymbolTable(ctx)

	a := NewSymbol("a")
	b := NewSymbol("b")
	structure := NewSymbolStruct(ctx, a, b)

	assert.Equal(t, []*MangroveSymbol{a, b}, structure.Members())
	assert.Nil(t, structure.SymbolTable().FindLocal("a"))
	assert.Zero(t, structure.SymbolTable().Len())
}
