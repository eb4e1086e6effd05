package parser

import (
	"fmt"

	"github.com/dunst0/waitui/ast"
)

// LexError reports a token the lexer could not recognize — an
// unrecognized character sequence or a malformed operator.
type LexError struct {
	Pos  ast.Position
	File string
	Err  error
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s:%s: lex error: %v", e.File, e.Pos.String(), e.Err)
}

func (e *LexError) Unwrap() error { return e.Err }

// ParseError reports a grammar mismatch: an unexpected token where the
// grammar expected something else.
type ParseError struct {
	Pos  ast.Position
	File string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%s: %s", e.File, e.Pos.String(), e.Msg)
}
