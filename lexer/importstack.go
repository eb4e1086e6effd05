package lexer

import "github.com/dunst0/waitui/list"

// SavedState is one entry on the import stack: the position range of the
// `import` statement that triggered the include, and an opaque State slot
// in which the parser keeps what it needs to resume the outer scanner. It
// carries no
// behavior of its own, matching parser_yy_state in
// original_source/library/parser/src/parser_helper.c, whose constructor
// is a genuine stub in the source this was ported from.
type SavedState struct {
	Filename    string
	FirstLine   int
	LastLine    int
	FirstColumn int
	LastColumn  int
	State       any
}

// NewSavedState creates a SavedState describing one include site.
func NewSavedState(filename string, firstLine, lastLine, firstColumn, lastColumn int, state any) *SavedState {
	return &SavedState{
		Filename:    filename,
		FirstLine:   firstLine,
		LastLine:    lastLine,
		FirstColumn: firstColumn,
		LastColumn:  lastColumn,
		State:       state,
	}
}

// ImportStack tracks the chain of files currently being included, so the
// parser can resume the outer file's scanner when an inner one reaches
// EOF and reject a file that is already present in the chain.
type ImportStack struct {
	states *list.List[*SavedState]
}

// NewImportStack creates an empty ImportStack.
func NewImportStack() *ImportStack {
	return &ImportStack{states: list.New[*SavedState](nil)}
}

// Push records state as the innermost saved state.
func (s *ImportStack) Push(state *SavedState) {
	s.states.Push(state)
}

// Pop removes and returns the innermost saved state, or nil if the stack
// is empty.
func (s *ImportStack) Pop() *SavedState {
	state, ok := s.states.Pop()
	if !ok {
		return nil
	}
	return state
}

// Len reports how many files are currently being included.
func (s *ImportStack) Len() int {
	return s.states.Len()
}

// Contains reports whether filename is already present anywhere on the
// stack, the check the parser uses to reject a cyclic import.
func (s *ImportStack) Contains(filename string) bool {
	it := s.states.Iterator()
	for it.HasNext() {
		if it.Next().Filename == filename {
			return true
		}
	}
	return false
}

// Destroy releases the stack's backing list.
func (s *ImportStack) Destroy() {
	s.states.Destroy()
}
