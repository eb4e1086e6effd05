// Package symboltable implements waitui's scoped symbol table: a single
// hash table shared by every scope, disambiguated by a scope number
// stored on each Symbol, plus a declaration-mode flag the parser toggles
// around binding occurrences so the same identifier text can mean
// "declare" in one grammar production and "reference" in another.
package symboltable

import (
	"fmt"

	"github.com/dunst0/waitui/hashtable"
	"github.com/dunst0/waitui/str"
	"github.com/dunst0/waitui/symbol"
	"github.com/dunst0/waitui/wlog"
)

// ErrDuplicateDeclaration is returned by AddSymbol when an identifier is
// declared twice in the same scope. It is recoverable: the caller should
// log it and continue parsing with the existing Symbol.
type ErrDuplicateDeclaration struct {
	Identifier str.View
	Scope      int
}

func (e *ErrDuplicateDeclaration) Error() string {
	return fmt.Sprintf("%q already declared in this scope", e.Identifier)
}

// Table is a scoped symbol table. The zero value is not usable; use New.
type Table struct {
	table           *hashtable.HashTable[*symbol.Symbol]
	currentScope    int
	declarationMode bool
}

// New creates an empty Table at scope 0, in reference mode.
func New() *Table {
	t := &Table{}
	t.table = hashtable.New[*symbol.Symbol](hashtable.DefaultSize, func(s *symbol.Symbol) { s.Release() })
	return t
}

// CurrentScope returns the scope depth new declarations are placed in.
func (t *Table) CurrentScope() int {
	return t.currentScope
}

// EnterScope opens a new, nested scope.
func (t *Table) EnterScope() {
	t.currentScope++
	wlog.Trace("entered scope %d", t.currentScope)
}

// ExitScope closes the current scope, releasing every symbol declared or
// forward-referenced in it. Because Insert always prepends, each
// bucket's chain holds the current scope's entries at (or near) its
// head, in newest-first order, so draining heads while they match the
// exiting scope removes exactly that scope's entries and leaves
// everything beneath untouched.
func (t *Table) ExitScope() {
	exiting := t.currentScope
	t.table.DrainBucketHeadsWhile(
		func(s *symbol.Symbol) bool { return s.Scope == exiting },
		func(s *symbol.Symbol) { s.Release() },
	)
	wlog.Trace("exited scope %d", exiting)
	t.currentScope--
}

// EnterDeclarationMode switches AddSymbol into declaration semantics:
// an identifier that is new in the current scope is declared; one that
// already has a real declaration in the current scope is an error; one
// that exists only as a forward-reference placeholder is promoted to a
// full declaration.
func (t *Table) EnterDeclarationMode() {
	t.declarationMode = true
}

// LeaveDeclarationMode switches AddSymbol back to reference semantics.
func (t *Table) LeaveDeclarationMode() {
	t.declarationMode = false
}

// AddSymbol records one occurrence (declaration or reference, depending
// on the current mode) of identifier at (line, column) and returns the
// Symbol it now denotes.
//
// In declaration mode:
//   - no entry for identifier exists in the current scope: a new Symbol
//     is declared and returned.
//   - an entry exists in the current scope and was already a full
//     declaration: ErrDuplicateDeclaration is returned alongside the
//     existing Symbol.
//   - an entry exists in the current scope but was only a forward
//     reference: it is promoted to a full declaration and returned.
//
// In reference mode:
//   - an entry for identifier is visible (declared in the current scope
//     or an enclosing one still open): a reference is recorded against it
//     and it is returned.
//   - no entry is visible anywhere: a forward-reference placeholder is
//     created in the current scope and returned, to be promoted later if
//     a matching declaration follows.
func (t *Table) AddSymbol(identifier str.View, kind symbol.Kind, line, column int) (*symbol.Symbol, error) {
	if t.declarationMode {
		return t.addDeclaration(identifier, kind, line, column)
	}
	return t.addReference(identifier, kind, line, column)
}

func (t *Table) addDeclaration(identifier str.View, kind symbol.Kind, line, column int) (*symbol.Symbol, error) {
	scope := t.currentScope
	sameScope := func(s *symbol.Symbol) bool { return s.Scope == scope }
	existing, found := t.table.LookupCheck(identifier, sameScope)
	if !found {
		s := symbol.New(identifier, kind, scope, line, column)
		s.Declared = true
		s.Retain()
		_ = t.table.InsertCheck(identifier, s, sameScope)
		wlog.Debug("declared %q in scope %d", identifier, scope)
		return s, nil
	}
	if existing.Declared {
		wlog.Error("duplicate declaration of %q in scope %d", identifier, scope)
		return existing, &ErrDuplicateDeclaration{Identifier: identifier, Scope: scope}
	}
	existing.Declared = true
	existing.Kind = kind
	wlog.Debug("promoted forward reference %q to declaration in scope %d", identifier, scope)
	return existing, nil
}

func (t *Table) addReference(identifier str.View, kind symbol.Kind, line, column int) (*symbol.Symbol, error) {
	if existing, found := t.table.Lookup(identifier); found {
		existing.AddReference(line, column)
		return existing, nil
	}
	s := symbol.New(identifier, kind, t.currentScope, line, column)
	s.Declared = false
	s.Retain()
	t.table.Insert(identifier, s)
	wlog.Debug("forward reference to %q in scope %d", identifier, t.currentScope)
	return s, nil
}

// Has reports whether identifier currently resolves to any symbol.
func (t *Table) Has(identifier str.View) bool {
	return t.table.Has(identifier)
}

// Lookup returns the symbol identifier currently resolves to, if any.
func (t *Table) Lookup(identifier str.View) (*symbol.Symbol, bool) {
	return t.table.Lookup(identifier)
}

// Destroy releases every symbol still held by the table, regardless of
// scope. Callers normally reach scope 0 via matched EnterScope/ExitScope
// pairs before calling Destroy; it exists mainly to make early-abort
// error paths leak-free.
func (t *Table) Destroy() {
	t.table.Destroy()
}
