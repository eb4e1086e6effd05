package dot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dunst0/waitui/ast"
	"github.com/dunst0/waitui/dot"
	"github.com/dunst0/waitui/sink"
	"github.com/dunst0/waitui/str"
	"github.com/dunst0/waitui/symbol"
)

func render(t *testing.T, root ast.Node) string {
	t.Helper()
	buf := sink.NewBuffer()
	dot.NewPrinter(buf).Print(root)
	return buf.String()
}

func TestPrintEmptyGraphForNilRoot(t *testing.T) {
	assert.Equal(t, "digraph AST {\n\tnode [shape=plain]\n}\n", render(t, nil))
}

func TestPrintLeafNode(t *testing.T) {
	lit := ast.NewIntegerLiteral(ast.Position{Line: 1, Column: 1}, str.View("42"))

	out := render(t, lit)

	assert.Contains(t, out, "digraph AST {")
	assert.Contains(t, out, `<B>IntegerLiteral</B>`)
	assert.Contains(t, out, `<TD>value</TD><TD>42</TD>`)
	assert.NotContains(t, out, "->")
}

func TestPrintIsDeterministicAcrossRuns(t *testing.T) {
	build := func() ast.Node {
		left := ast.NewIntegerLiteral(ast.Position{Line: 1, Column: 1}, str.View("1"))
		right := ast.NewIntegerLiteral(ast.Position{Line: 1, Column: 5}, str.View("2"))
		return ast.NewBinaryExpression(ast.Position{Line: 1, Column: 3}, left, ast.BinaryOperatorPlus, right)
	}

	first := render(t, build())
	second := render(t, build())

	assert.Equal(t, first, second)
}

func TestPrintEmitsPortQualifiedEdges(t *testing.T) {
	left := ast.NewIntegerLiteral(ast.Position{}, str.View("1"))
	right := ast.NewIntegerLiteral(ast.Position{}, str.View("2"))
	bin := ast.NewBinaryExpression(ast.Position{}, left, ast.BinaryOperatorPlus, right)

	out := render(t, bin)

	assert.Contains(t, out, "n0:left -> n1;")
	assert.Contains(t, out, "n0:right -> n2;")
}

func TestPrintIndexedSliceFieldsGetPerElementPorts(t *testing.T) {
	one := ast.NewIntegerLiteral(ast.Position{}, str.View("1"))
	two := ast.NewIntegerLiteral(ast.Position{}, str.View("2"))
	block := ast.NewBlock(ast.Position{}, []ast.Expression{one, two})

	out := render(t, block)

	assert.Contains(t, out, `PORT="expressions_0"`)
	assert.Contains(t, out, `PORT="expressions_1"`)
	assert.Contains(t, out, "n0:expressions_0 -> n1;")
	assert.Contains(t, out, "n0:expressions_1 -> n2;")
}

func TestPrintEscapesReservedHTMLCharacters(t *testing.T) {
	name := symbol.New(str.View("A<B>&C"), symbol.KindClass, 0, 1, 1)
	class := ast.NewClass(ast.Position{}, name, nil, symbol.Null, nil, nil, nil)

	out := render(t, class)

	assert.Contains(t, out, "A&lt;B&gt;&amp;C")
	assert.NotContains(t, out, "A<B>&C")
}
