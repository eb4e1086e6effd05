// Package astwalk provides the one piece of traversal machinery every
// AST consumer shares: invoke Pre, then Self, then Post for a node. Self
// is supplied by the caller and owns recursion — the walker does not
// recurse on its own — so a concrete visitor like dot.Printer decides for
// itself which children to descend into and in what order.
package astwalk

import "github.com/dunst0/waitui/ast"

// Callbacks groups the three hooks Visit invokes for one node. Any of
// them may be nil.
type Callbacks struct {
	Pre  func(n ast.Node, state any)
	Self func(n ast.Node, state any)
	Post func(n ast.Node, state any)
}

// Visit runs cb.Pre, cb.Self, cb.Post in order for n, threading state
// through unchanged. Self is responsible for recursing into n's
// children by calling Visit again; Visit itself never looks inside n.
//
// astwalk deliberately ships no generic, label-less Descend/children
// helper: a concrete visitor's notion of "child" is not uniform across
// consumers. dot.Printer, for one, must recurse through exactly the
// named ports spec §4.6 requires ("a class's parameters port vs. its
// functions port"), which only dot/fields.go's field-aware enumeration
// can produce; a generic child list would have to throw that naming
// away. Every concrete Self — dot.Printer's included — therefore owns
// its own child enumeration and recurses by calling Visit again per
// child, exactly as this doc comment describes.
func Visit(cb Callbacks, n ast.Node, state any) {
	if n == nil {
		return
	}
	if cb.Pre != nil {
		cb.Pre(n, state)
	}
	if cb.Self != nil {
		cb.Self(n, state)
	}
	if cb.Post != nil {
		cb.Post(n, state)
	}
}
