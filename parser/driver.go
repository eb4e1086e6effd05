// Package parser drives a hand-written recursive-descent grammar over
// lexer.Lexer's token stream, building an *ast.Program while feeding
// identifiers through a symboltable.Table exactly as grammar actions
// would in the original yacc/flex sources. No parser generator runs in
// this environment, so Driver plays the role both of the driver
// described by the core design and of the grammar itself.
package parser

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/dunst0/waitui/ast"
	"github.com/dunst0/waitui/lexer"
	"github.com/dunst0/waitui/str"
	"github.com/dunst0/waitui/symbol"
	"github.com/dunst0/waitui/symboltable"
	"github.com/dunst0/waitui/wlog"
)

// stdinSentinel is the source file name that means "read os.Stdin",
// matching the CLI contract: an absent positional argument passes this
// name through instead of a path.
const stdinSentinel = "stdin"

// Debug is a bitmask of which subsystems should emit trace-level
// logging while driving a parse. It is an API, never a CLI flag in its
// own right — main.go turns flags into this bitmask.
type Debug int

const (
	DebugLexer Debug = 1 << iota
	DebugParser
)

// resumeState is what pushImport saves on the lexer import stack: the
// outer file's handle, lexer, and already-primed lookahead pair, so
// popImport can resume exactly where the `import` statement left off
// without re-lexing anything.
type resumeState struct {
	file     io.ReadCloser
	lex      *lexer.Lexer
	filename string
	cur      lexer.Token
	next     lexer.Token
}

// Driver owns everything one parse needs: the open source, the scanner
// state, the symbol table, and the lexer's import stack. It is built by
// New, run to completion by Parse, and torn down by Destroy.
type Driver struct {
	sourceFileName   string
	workingDirectory string
	debug            Debug

	file        io.ReadCloser
	filename    string
	lex         *lexer.Lexer
	currentFile string

	importStack *lexer.ImportStack
	symtab      *symboltable.Table

	cur, next lexer.Token

	resultAST *ast.Program
}

// New opens sourceFileName as given (relative to the process's current
// directory, matching the original's plain fopen), or os.Stdin when
// sourceFileName is the sentinel "stdin", and primes the driver's
// two-token lookahead. workingDirectory is used only to resolve files
// named by later `import` statements. On any failure it unwinds fully
// and returns a non-nil error.
func New(sourceFileName, workingDirectory string, debug Debug) (*Driver, error) {
	d := &Driver{
		sourceFileName:   sourceFileName,
		workingDirectory: workingDirectory,
		debug:            debug,
		importStack:      lexer.NewImportStack(),
		symtab:           symboltable.New(),
	}

	var (
		rc   io.ReadCloser
		name string
		key  string
	)
	if sourceFileName == stdinSentinel {
		rc = io.NopCloser(os.Stdin)
		name = stdinSentinel
		key = stdinSentinel
	} else {
		f, err := os.Open(sourceFileName)
		if err != nil {
			d.importStack.Destroy()
			d.symtab.Destroy()
			return nil, errors.Wrapf(err, "opening %s", sourceFileName)
		}
		rc = f
		name = sourceFileName
		key = filepath.Clean(sourceFileName)
	}

	d.file = rc
	d.filename = name
	d.currentFile = key
	d.lex = lexer.New(name, rc)

	if err := d.primeTokens(); err != nil {
		d.Destroy()
		return nil, err
	}
	return d, nil
}

// GetAST returns the root of the AST built by the most recent Parse, or
// nil if Parse has not yet succeeded. The driver never mutates it after
// Parse returns.
func (d *Driver) GetAST() *ast.Program {
	return d.resultAST
}

// Destroy releases the symbol table, the lexer import stack (closing the
// file of every outer buffer still suspended on it), and the currently
// open file. It does not destroy the AST — callers own that separately
// via ast.Destroy, since the AST may outlive the driver.
func (d *Driver) Destroy() {
	if d.importStack != nil {
		for saved := d.importStack.Pop(); saved != nil; saved = d.importStack.Pop() {
			if rs, ok := saved.State.(*resumeState); ok {
				_ = rs.file.Close()
			}
		}
		d.importStack.Destroy()
	}
	if d.symtab != nil {
		d.symtab.Destroy()
	}
	if d.file != nil {
		_ = d.file.Close()
	}
}

// Parse drives the grammar to completion. On success, GetAST returns the
// resulting *ast.Program. A non-recoverable lex or parse error aborts
// immediately and is returned; a recoverable DuplicateDeclaration is
// logged via wlog.Error and parsing continues, matching the core
// design's "recovery is the grammar's responsibility" rule.
func (d *Driver) Parse(ctx context.Context) error {
	program, err := d.parseProgram(ctx)
	if err != nil {
		return err
	}
	d.resultAST = program
	return nil
}

// curPos returns the position of the token the parser is currently
// looking at.
func (d *Driver) curPos() ast.Position {
	return d.cur.Pos
}

// advance consumes the current token and pulls one more token of
// lookahead from the lexer, transparently resuming an outer file when
// an imported buffer runs out.
func (d *Driver) advance() error {
	d.cur = d.next
	tok, err := d.lex.Next()
	if err != nil {
		return &LexError{Pos: d.cur.Pos, File: d.filename, Err: err}
	}
	d.next = tok
	d.skipExhaustedIncludes()
	if d.debug&DebugParser != 0 {
		wlog.Trace("parser: advanced to %s", d.cur.String())
	}
	return nil
}

// expect verifies the current token's kind, reports a ParseError if it
// does not match, and otherwise advances past it.
func (d *Driver) expect(kind lexer.Kind) error {
	if d.cur.Kind != kind {
		return d.parseErrorf("expected %s, got %s", kind, d.cur.Kind)
	}
	return d.advance()
}

func (d *Driver) parseErrorf(format string, args ...any) error {
	err := &ParseError{Pos: d.cur.Pos, File: d.filename, Msg: fmt.Sprintf(format, args...)}
	wlog.Error("%s", err.Error())
	return err
}

// primeTokens fills cur/next from a freshly opened lexer. Used both at
// driver construction and after switching to an imported file.
func (d *Driver) primeTokens() error {
	first, err := d.lex.Next()
	if err != nil {
		return &LexError{Pos: ast.Position{}, File: d.filename, Err: err}
	}
	second, err := d.lex.Next()
	if err != nil {
		return &LexError{Pos: first.Pos, File: d.filename, Err: err}
	}
	d.cur, d.next = first, second
	d.skipExhaustedIncludes()
	if d.debug&DebugLexer != 0 {
		wlog.Trace("lexer: primed %s, %s", d.cur.String(), d.next.String())
	}
	return nil
}

// skipExhaustedIncludes pops the import stack while the current token is
// EOF and an outer buffer is waiting to resume, restoring that outer
// buffer's saved lookahead pair wholesale. It may pop more than one
// level for a chain of back-to-back empty includes.
func (d *Driver) skipExhaustedIncludes() {
	for d.cur.Kind == lexer.TokenEOF && d.importStack.Len() > 0 {
		d.popImport()
	}
}

// resolvePath resolves an `import` path against workingDirectory and
// cleans it, giving the key pushImport's cycle check compares. The
// initial source is keyed by filepath.Clean(sourceFileName) instead; the
// two agree when workingDirectory is the source file's own directory.
func (d *Driver) resolvePath(path string) string {
	if d.workingDirectory == "" || filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(d.workingDirectory, path))
}

// pushImport opens path (resolved relative to workingDirectory), saves
// the current scanner state onto the import stack, and switches scanning
// to the imported file. It rejects a path already present anywhere on
// the active include chain, the minimal cycle guard the core design
// leaves to the grammar: the chain is the file currently being scanned
// plus every file the import stack has suspended, so
// lexer.ImportStack.Contains is the sole owner of "is this file already
// being imported" beyond the one file that isn't suspended yet.
func (d *Driver) pushImport(path string, pos ast.Position) error {
	full := d.resolvePath(path)

	if d.currentFile == full || d.importStack.Contains(full) {
		return d.parseErrorf("import cycle detected: %q is already being imported", path)
	}

	f, err := os.Open(full)
	if err != nil {
		return errors.Wrapf(err, "importing %s", path)
	}

	saved := lexer.NewSavedState(d.currentFile, pos.Line, pos.Line, pos.Column, pos.Column, &resumeState{
		file:     d.file,
		lex:      d.lex,
		filename: d.filename,
		cur:      d.cur,
		next:     d.next,
	})
	d.importStack.Push(saved)

	d.file = f
	d.filename = path
	d.currentFile = full
	d.lex = lexer.New(path, f)

	return d.primeTokens()
}

// popImport restores the innermost saved state, closing the file that
// just finished being included.
func (d *Driver) popImport() {
	saved := d.importStack.Pop()
	if saved == nil {
		return
	}
	_ = d.file.Close()

	rs := saved.State.(*resumeState)
	d.file = rs.file
	d.lex = rs.lex
	d.filename = rs.filename
	d.currentFile = saved.Filename
	d.cur = rs.cur
	d.next = rs.next
}

// declareSymbol records identifier as a binding occurrence. A duplicate
// declaration in the same scope is logged and swallowed — per the core
// design it is recoverable — returning the pre-existing Symbol so the
// caller can keep building the AST.
func (d *Driver) declareSymbol(kind symbol.Kind, identifier str.View, pos ast.Position) (*symbol.Symbol, error) {
	d.symtab.EnterDeclarationMode()
	sym, err := d.symtab.AddSymbol(identifier, kind, pos.Line, pos.Column)
	d.symtab.LeaveDeclarationMode()
	if err != nil {
		if dup, ok := err.(*symboltable.ErrDuplicateDeclaration); ok {
			wlog.Error("%s:%s: %v", d.filename, pos.String(), dup)
			return sym, nil
		}
		return nil, err
	}
	return sym, nil
}

// referenceSymbol records identifier as a use occurrence.
func (d *Driver) referenceSymbol(kind symbol.Kind, identifier str.View, pos ast.Position) (*symbol.Symbol, error) {
	return d.symtab.AddSymbol(identifier, kind, pos.Line, pos.Column)
}
