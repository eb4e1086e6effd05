package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dunst0/waitui/ast"
	"github.com/dunst0/waitui/str"
	"github.com/dunst0/waitui/symbol"
)

func newSym(id string) *symbol.Symbol {
	return symbol.New(str.View(id), symbol.KindVariable, 0, 1, 1)
}

func TestConstructorsRetainSymbolHandles(t *testing.T) {
	name := newSym("Point")
	before := name.Refcount()

	class := ast.NewClass(ast.Position{Line: 1}, name, nil, symbol.Null, nil, nil, nil)

	assert.Equal(t, before+1, class.Name.Refcount())
}

func TestDestroyReleasesEveryRetainedHandle(t *testing.T) {
	typ := newSym("Int")
	ident := newSym("x")
	assert.EqualValues(t, 0, typ.Refcount())

	formal := ast.NewFormal(ast.Position{}, ident, typ, false)
	assert.EqualValues(t, 1, typ.Refcount())

	ast.Destroy(formal)
	assert.EqualValues(t, 0, typ.Refcount())
	assert.EqualValues(t, 0, ident.Refcount())
}

func TestKindDiscriminatorsAreClosed(t *testing.T) {
	var n ast.Node = ast.NewBlock(ast.Position{}, nil)
	assert.Equal(t, ast.KindExpression, n.Kind())

	expr, ok := n.(ast.Expression)
	assert.True(t, ok)
	assert.Equal(t, ast.ExpressionBlock, expr.ExpressionKind())

	_, ok = n.(ast.Definition)
	assert.False(t, ok)
}

func TestClassWithNoSuperclassUsesNullSentinel(t *testing.T) {
	class := ast.NewClass(ast.Position{}, newSym("Object"), nil, symbol.Null, nil, nil, nil)
	assert.Same(t, symbol.Null, class.SuperClass)
}

func TestBinaryExpressionOperatorString(t *testing.T) {
	left := ast.NewIntegerLiteral(ast.Position{}, str.View("1"))
	right := ast.NewIntegerLiteral(ast.Position{}, str.View("2"))
	expr := ast.NewBinaryExpression(ast.Position{}, left, ast.BinaryOperatorPlus, right)
	assert.Equal(t, "+", expr.String())
}
