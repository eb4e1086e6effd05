// Package symbol implements waitui's refcounted symbol handles: a
// Symbol identifies one declared name and the line/column of every place
// it was referenced. Handles are retained and released manually rather
// than left to the garbage collector, because their refcount balance and
// their destruction-on-release-to-zero are both directly testable
// properties of the front-end.
package symbol

import (
	"github.com/dunst0/waitui/list"
	"github.com/dunst0/waitui/str"
	"github.com/dunst0/waitui/wlog"
)

// Kind classifies what a Symbol was declared as.
type Kind int

const (
	KindNone Kind = iota
	KindClass
	KindFormal
	KindProperty
	KindFunction
	KindVariable
	KindNamespace
)

// Reference records one occurrence — declaration or use — of a Symbol's
// name at a source position.
type Reference struct {
	Line   int
	Column int
}

// NewReference creates a Reference for the given position.
func NewReference(line, column int) *Reference {
	return &Reference{Line: line, Column: column}
}

// Symbol is a refcounted handle to one declared name. Scope is the
// symboltable scope depth the symbol was declared in; symboltable uses it
// to decide shadowing and to drain scopes on exit.
type Symbol struct {
	Identifier str.View
	Kind       Kind
	Scope      int

	// Declared is true once the real declaration for Identifier has been
	// processed. symboltable creates symbols with Declared == false to
	// stand in for a forward reference, then flips it to true when the
	// matching declaration is seen later in the same scope.
	Declared bool

	references *list.List[*Reference]
	refcount   int32
}

// Null is the distinguished "no symbol" handle used, for example, for a
// class with no explicit superclass. It is never retained or released.
var Null = &Symbol{Identifier: "", Kind: KindNone, Scope: -1}

// New creates a Symbol with one initial reference at (line, column) and a
// refcount of zero; the first call to Retain brings it to one. This
// mirrors the source semantics, where a symbol's reference list always
// starts non-empty but ownership only begins once something retains it.
func New(identifier str.View, kind Kind, scope, line, column int) *Symbol {
	s := &Symbol{
		Identifier: identifier,
		Kind:       kind,
		Scope:      scope,
		references: list.New[*Reference](nil),
	}
	s.references.Push(NewReference(line, column))
	return s
}

// AddReference records another occurrence of this symbol's name.
func (s *Symbol) AddReference(line, column int) {
	if s == Null {
		return
	}
	s.references.Push(NewReference(line, column))
}

// References returns every recorded reference, in recording order.
func (s *Symbol) References() []*Reference {
	if s == Null {
		return nil
	}
	it := s.references.Iterator()
	var out []*Reference
	for it.HasNext() {
		out = append(out, it.Next())
	}
	return out
}

// Refcount returns the current reference count.
func (s *Symbol) Refcount() int32 {
	if s == Null {
		return 0
	}
	return s.refcount
}

// Retain increments the refcount and returns s, so callers can write
// `held := sym.Retain()`.
func (s *Symbol) Retain() *Symbol {
	if s == Null || s == nil {
		return s
	}
	s.refcount++
	wlog.Trace("retained symbol %q, refcount now %d", s.Identifier, s.refcount)
	return s
}

// Release decrements the refcount. At zero it destroys the symbol's
// reference list; releasing below zero is a usage bug and logs at error
// level rather than panicking, since a front-end bug here should not take
// down an otherwise-successful parse.
func (s *Symbol) Release() {
	if s == Null || s == nil {
		return
	}
	s.refcount--
	switch {
	case s.refcount == 0:
		wlog.Trace("releasing symbol %q, refcount reached zero", s.Identifier)
		s.references.Destroy()
	case s.refcount < 0:
		wlog.Error("symbol %q released more times than retained", s.Identifier)
	default:
		wlog.Trace("released symbol %q, refcount now %d", s.Identifier, s.refcount)
	}
}
