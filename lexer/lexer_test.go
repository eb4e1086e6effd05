package lexer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dunst0/waitui/lexer"
)

func scanAll(t *testing.T, src string) []lexer.Token {
	t.Helper()
	lex := lexer.New("test.wai", strings.NewReader(src))
	var toks []lexer.Token
	for {
		tok, err := lex.Next()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == lexer.TokenEOF {
			return toks
		}
	}
}

func kinds(toks []lexer.Token) []lexer.Kind {
	out := make([]lexer.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestScansKeywordsAndIdentifiers(t *testing.T) {
	toks := scanAll(t, "class Foo extends Bar")

	assert.Equal(t, []lexer.Kind{
		lexer.TokenClass, lexer.TokenIdentifier, lexer.TokenExtends, lexer.TokenIdentifier, lexer.TokenEOF,
	}, kinds(toks))
	assert.Equal(t, "Foo", toks[1].Text.String())
}

func TestScansLiterals(t *testing.T) {
	toks := scanAll(t, `42 3.14 "hello" true false null`)

	assert.Equal(t, []lexer.Kind{
		lexer.TokenInteger, lexer.TokenDecimal, lexer.TokenString,
		lexer.TokenTrue, lexer.TokenFalse, lexer.TokenNull, lexer.TokenEOF,
	}, kinds(toks))
	assert.Equal(t, "42", toks[0].Text.String())
	assert.Equal(t, "hello", toks[2].Text.String())
}

func TestGreedilyMatchesLongestOperator(t *testing.T) {
	toks := scanAll(t, "a += b == c")

	assert.Equal(t, []lexer.Kind{
		lexer.TokenIdentifier, lexer.TokenPlusAssign, lexer.TokenIdentifier,
		lexer.TokenEqual, lexer.TokenIdentifier, lexer.TokenEOF,
	}, kinds(toks))
}

func TestDisambiguatesSharedPrefixOperators(t *testing.T) {
	toks := scanAll(t, "a = b == c != d")

	assert.Equal(t, []lexer.Kind{
		lexer.TokenIdentifier, lexer.TokenAssign, lexer.TokenIdentifier,
		lexer.TokenEqual, lexer.TokenIdentifier, lexer.TokenNotEqual, lexer.TokenIdentifier, lexer.TokenEOF,
	}, kinds(toks))
}

func TestTracksLineAndColumn(t *testing.T) {
	toks := scanAll(t, "class\nFoo")

	assert.Equal(t, 1, toks[0].Pos.Line)
	assert.Equal(t, 1, toks[0].Pos.Column)
	assert.Equal(t, 2, toks[1].Pos.Line)
	assert.Equal(t, 1, toks[1].Pos.Column)
}

func TestSkipsComments(t *testing.T) {
	toks := scanAll(t, "a // a line comment\n/* a block comment */ b")

	assert.Equal(t, []lexer.Kind{lexer.TokenIdentifier, lexer.TokenIdentifier, lexer.TokenEOF}, kinds(toks))
}
