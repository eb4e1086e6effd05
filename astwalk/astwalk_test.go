package astwalk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dunst0/waitui/ast"
	"github.com/dunst0/waitui/astwalk"
	"github.com/dunst0/waitui/str"
)

func TestVisitRunsPreSelfPostInOrder(t *testing.T) {
	var order []string
	n := ast.NewIntegerLiteral(ast.Position{}, str.View("1"))

	cb := astwalk.Callbacks{
		Pre:  func(ast.Node, any) { order = append(order, "pre") },
		Self: func(ast.Node, any) { order = append(order, "self") },
		Post: func(ast.Node, any) { order = append(order, "post") },
	}
	astwalk.Visit(cb, n, nil)

	assert.Equal(t, []string{"pre", "self", "post"}, order)
}

// TestSelfRecursesThroughVisit models how a real consumer (dot.Printer)
// composes the walker: Self owns the knowledge of what n's children are
// and recurses by calling Visit again for each one, so Pre/Post still
// fire for every node in the tree, not just the root.
func TestSelfRecursesThroughVisit(t *testing.T) {
	one := ast.NewIntegerLiteral(ast.Position{}, str.View("1"))
	two := ast.NewIntegerLiteral(ast.Position{}, str.View("2"))
	block := ast.NewBlock(ast.Position{}, []ast.Expression{one, two})

	var visited []string
	var cb astwalk.Callbacks
	cb.Pre = func(n ast.Node, _ any) { visited = append(visited, n.String()) }
	cb.Self = func(n ast.Node, state any) {
		if b, ok := n.(*ast.Block); ok {
			for _, e := range b.Expressions {
				astwalk.Visit(cb, e, state)
			}
		}
	}

	astwalk.Visit(cb, block, nil)

	assert.Equal(t, []string{"Block", "1", "2"}, visited)
}
