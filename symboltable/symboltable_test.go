package symboltable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dunst0/waitui/str"
	"github.com/dunst0/waitui/symbol"
	"github.com/dunst0/waitui/symboltable"
)

func TestDeclareThenReference(t *testing.T) {
	tbl := symboltable.New()

	tbl.EnterDeclarationMode()
	decl, err := tbl.AddSymbol(str.View("x"), symbol.KindVariable, 1, 1)
	require.NoError(t, err)
	tbl.LeaveDeclarationMode()

	ref, err := tbl.AddSymbol(str.View("x"), symbol.KindVariable, 2, 5)
	require.NoError(t, err)

	assert.Same(t, decl, ref)
	assert.Len(t, ref.References(), 2)
}

func TestDuplicateDeclarationInSameScopeErrors(t *testing.T) {
	tbl := symboltable.New()
	tbl.EnterDeclarationMode()

	first, err := tbl.AddSymbol(str.View("x"), symbol.KindVariable, 1, 1)
	require.NoError(t, err)

	second, err := tbl.AddSymbol(str.View("x"), symbol.KindVariable, 2, 1)
	assert.Error(t, err)
	assert.Same(t, first, second, "the error carries the pre-existing symbol, not a new one")
}

func TestShadowingInNestedScopeIsNotADuplicate(t *testing.T) {
	tbl := symboltable.New()

	tbl.EnterDeclarationMode()
	outer, err := tbl.AddSymbol(str.View("x"), symbol.KindVariable, 1, 1)
	require.NoError(t, err)

	tbl.EnterScope()
	inner, err := tbl.AddSymbol(str.View("x"), symbol.KindVariable, 2, 1)
	require.NoError(t, err)
	tbl.LeaveDeclarationMode()

	assert.NotSame(t, outer, inner)

	resolved, ok := tbl.Lookup(str.View("x"))
	require.True(t, ok)
	assert.Same(t, inner, resolved, "reference inside the nested scope should resolve to the shadowing symbol")
}

func TestExitScopeUnshadows(t *testing.T) {
	tbl := symboltable.New()

	tbl.EnterDeclarationMode()
	outer, err := tbl.AddSymbol(str.View("x"), symbol.KindVariable, 1, 1)
	require.NoError(t, err)

	tbl.EnterScope()
	_, err = tbl.AddSymbol(str.View("x"), symbol.KindVariable, 2, 1)
	require.NoError(t, err)
	tbl.ExitScope()
	tbl.LeaveDeclarationMode()

	resolved, ok := tbl.Lookup(str.View("x"))
	require.True(t, ok)
	assert.Same(t, outer, resolved)
}

func TestForwardReferenceThenDeclarationPromotes(t *testing.T) {
	tbl := symboltable.New()

	ref, err := tbl.AddSymbol(str.View("Later"), symbol.KindClass, 1, 1)
	require.NoError(t, err)
	assert.False(t, ref.Declared)

	tbl.EnterDeclarationMode()
	decl, err := tbl.AddSymbol(str.View("Later"), symbol.KindClass, 5, 1)
	require.NoError(t, err)

	assert.Same(t, ref, decl)
	assert.True(t, decl.Declared)
}

func TestExitScopeReleasesRefcount(t *testing.T) {
	tbl := symboltable.New()

	tbl.EnterScope()
	tbl.EnterDeclarationMode()
	s, err := tbl.AddSymbol(str.View("x"), symbol.KindVariable, 1, 1)
	require.NoError(t, err)
	tbl.LeaveDeclarationMode()

	assert.EqualValues(t, 1, s.Refcount())
	tbl.ExitScope()
	assert.EqualValues(t, 0, s.Refcount())
}
