// Package lexer tokenizes waitui source text. It wraps text/scanner with
// a custom IsIdentRune, a longest-match table for multi-character
// operators built by registering each operator's every prefix, and
// scanner.Position carried alongside every token instead of being
// recovered after the fact.
package lexer

import (
	"fmt"
	"io"
	"text/scanner"

	"github.com/dunst0/waitui/ast"
	"github.com/dunst0/waitui/str"
)

// Token is one lexical unit: its kind, the source text it came from, and
// the position it started at.
type Token struct {
	Kind Kind
	Text str.View
	Pos  ast.Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Text.String(), t.Pos.String())
}

// Lexer scans one source into a stream of Tokens.
type Lexer struct {
	sc      scanner.Scanner
	curPos  scanner.Position
	opTable opTable
}

// New creates a Lexer reading from in. filename is attached to every
// position text/scanner reports, so diagnostics read "file:line:col".
func New(filename string, in io.Reader) *Lexer {
	lex := &Lexer{opTable: newOpTable()}
	lex.sc.Init(in)
	lex.sc.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats |
		scanner.ScanStrings | scanner.ScanComments | scanner.SkipComments
	lex.sc.Filename = filename
	lex.sc.IsIdentRune = isIdentRune
	return lex
}

func isIdentRune(ch rune, i int) bool {
	return ch == '_' || isLetter(ch) || (i > 0 && isDigit(ch))
}

func isLetter(ch rune) bool { return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') }
func isDigit(ch rune) bool  { return '0' <= ch && ch <= '9' }

func (l *Lexer) pos() ast.Position {
	return ast.Position{Line: l.curPos.Line, Column: l.curPos.Column}
}

// Next scans and returns the next Token. At end of input it returns a
// Token with Kind == TokenEOF. A malformed operator sequence or an
// out-of-range rune is reported as an error rather than a panic, so the
// parser can turn it into a LexError diagnostic instead of crashing the
// driver.
func (l *Lexer) Next() (Token, error) {
	tok := l.sc.Scan()
	l.curPos = l.sc.Position

	switch tok {
	case scanner.EOF:
		return Token{Kind: TokenEOF, Pos: l.pos()}, nil
	case scanner.Ident:
		text := l.sc.TokenText()
		if kw, ok := keywords[text]; ok {
			return Token{Kind: kw, Text: str.View(text), Pos: l.pos()}, nil
		}
		return Token{Kind: TokenIdentifier, Text: str.View(text), Pos: l.pos()}, nil
	case scanner.Int:
		return Token{Kind: TokenInteger, Text: str.View(l.sc.TokenText()), Pos: l.pos()}, nil
	case scanner.Float:
		return Token{Kind: TokenDecimal, Text: str.View(l.sc.TokenText()), Pos: l.pos()}, nil
	case scanner.String:
		text := l.sc.TokenText()
		return Token{Kind: TokenString, Text: str.View(unquote(text)), Pos: l.pos()}, nil
	default:
		return l.scanOperator(tok)
	}
}

// unquote strips the surrounding double quotes text/scanner leaves on a
// scanned string literal.
func unquote(text string) string {
	if len(text) >= 2 {
		return text[1 : len(text)-1]
	}
	return text
}

// scanOperator extends tok with as many further runes as the opTable's
// registered operators allow, always preferring the longest operator that
// is actually registered.
func (l *Lexer) scanOperator(tok rune) (Token, error) {
	if tok <= 0 {
		return Token{}, fmt.Errorf("%s: invalid rune in input", l.sc.Pos())
	}

	buf := string(tok)
	if !l.opTable.hasPrefix(buf) {
		return Token{}, fmt.Errorf("%s: unknown operator %q", l.sc.Pos(), buf)
	}

	for {
		ch := l.sc.Peek()
		candidate := buf + string(ch)
		if ch == scanner.EOF || !l.opTable.hasPrefix(candidate) {
			break
		}
		l.sc.Next()
		buf = candidate
	}

	kind, ok := l.opTable.lookup(buf)
	if !ok {
		return Token{}, fmt.Errorf("%s: unknown operator %q", l.sc.Pos(), buf)
	}
	return Token{Kind: kind, Text: str.View(buf), Pos: l.pos()}, nil
}
