package parser_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dunst0/waitui/ast"
	"github.com/dunst0/waitui/parser"
)

func newDriverFromSource(t *testing.T, source string) *parser.Driver {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "main.wai")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))

	d, err := parser.New(path, dir, 0)
	require.NoError(t, err)
	t.Cleanup(d.Destroy)
	return d
}

func TestParseTrivialClass(t *testing.T) {
	d := newDriverFromSource(t, `class Foo {}`)

	require.NoError(t, d.Parse(context.Background()))

	program := d.GetAST()
	require.NotNil(t, program)
	defer ast.Destroy(program)

	require.Len(t, program.Namespaces, 1)
	require.Len(t, program.Namespaces[0].Classes, 1)
	assert.Equal(t, "Foo", program.Namespaces[0].Classes[0].Name.Identifier.String())
}

func TestParseClassWithPropertyAndFunction(t *testing.T) {
	d := newDriverFromSource(t, `
class Counter {
	value: Int = 0;

	public increment(): Int = value + 1;
}
`)

	require.NoError(t, d.Parse(context.Background()))
	program := d.GetAST()
	require.NotNil(t, program)
	defer ast.Destroy(program)

	cls := program.Namespaces[0].Classes[0]
	require.Len(t, cls.Properties, 1)
	assert.Equal(t, "value", cls.Properties[0].Name.Identifier.String())

	require.Len(t, cls.Functions, 1)
	fn := cls.Functions[0]
	assert.Equal(t, "increment", fn.FunctionName.Identifier.String())
	assert.Equal(t, ast.VisibilityPublic, fn.Visibility)
}

func TestParseClassWithSuperclassAndConstructorArgs(t *testing.T) {
	d := newDriverFromSource(t, `
class Base {}
class Derived extends Base() {}
`)

	require.NoError(t, d.Parse(context.Background()))
	program := d.GetAST()
	require.NotNil(t, program)
	defer ast.Destroy(program)

	classes := program.Namespaces[0].Classes
	require.Len(t, classes, 2)
	derived := classes[1]
	assert.Equal(t, "Base", derived.SuperClass.Identifier.String())
}

func TestDuplicateDeclarationIsLoggedAndParsingContinues(t *testing.T) {
	d := newDriverFromSource(t, `
class Foo {}
class Foo {}
`)

	err := d.Parse(context.Background())
	require.NoError(t, err, "a duplicate declaration is recoverable and must not abort the parse")

	program := d.GetAST()
	require.NotNil(t, program)
	defer ast.Destroy(program)

	require.Len(t, program.Namespaces[0].Classes, 2)
}

func TestParseLeftAssociativeBinaryExpression(t *testing.T) {
	d := newDriverFromSource(t, `
class Foo {
	public compute(): Int = 1 + 2 + 3;
}
`)

	require.NoError(t, d.Parse(context.Background()))
	program := d.GetAST()
	require.NotNil(t, program)
	defer ast.Destroy(program)

	body := program.Namespaces[0].Classes[0].Functions[0].Body
	top, ok := body.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, ast.BinaryOperatorPlus, top.Operator)

	left, ok := top.Left.(*ast.BinaryExpression)
	require.True(t, ok, "left-associativity means the left child is the earlier (1 + 2), not the right")
	assert.Equal(t, ast.BinaryOperatorPlus, left.Operator)

	_, ok = top.Right.(*ast.IntegerLiteral)
	assert.True(t, ok)
}

func TestParseAssignmentOperatorForms(t *testing.T) {
	for _, tc := range []struct {
		source string
		op     ast.AssignmentOperator
	}{
		{"x += 1", ast.AssignmentOperatorPlusEqual},
		{"x -= 1", ast.AssignmentOperatorMinusEqual},
		{"x |= 1", ast.AssignmentOperatorPipeEqual},
	} {
		d := newDriverFromSource(t, `
class Foo {
	public run(): Int = let x: Int = 0 in `+tc.source+`;
}
`)
		require.NoError(t, d.Parse(context.Background()))
		program := d.GetAST()
		require.NotNil(t, program)

		let := program.Namespaces[0].Classes[0].Functions[0].Body.(*ast.Let)
		assign, ok := let.Body.(*ast.Assignment)
		require.True(t, ok)
		assert.Equal(t, tc.op, assign.Operator)

		ast.Destroy(program)
	}
}

func TestParseImportIncludesFile(t *testing.T) {
	dir := t.TempDir()
	mainPath := filepath.Join(dir, "main.wai")
	libPath := filepath.Join(dir, "lib.wai")

	require.NoError(t, os.WriteFile(libPath, []byte(`class Lib {}`), 0o644))
	require.NoError(t, os.WriteFile(mainPath, []byte(`
import "lib.wai";
class Main {}
`), 0o644))

	d, err := parser.New(mainPath, dir, 0)
	require.NoError(t, err)
	defer d.Destroy()

	require.NoError(t, d.Parse(context.Background()))
	program := d.GetAST()
	require.NotNil(t, program)
	defer ast.Destroy(program)

	ns := program.Namespaces[0]
	require.Len(t, ns.Imports, 1)
	require.Len(t, ns.Classes, 2)
	assert.Equal(t, "Lib", ns.Classes[0].Name.Identifier.String())
	assert.Equal(t, "Main", ns.Classes[1].Name.Identifier.String())
}

func TestParseImportCycleIsRejected(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.wai")
	bPath := filepath.Join(dir, "b.wai")

	require.NoError(t, os.WriteFile(aPath, []byte(`import "b.wai";`), 0o644))
	require.NoError(t, os.WriteFile(bPath, []byte(`import "a.wai";`), 0o644))

	d, err := parser.New(aPath, dir, 0)
	require.NoError(t, err)
	defer d.Destroy()

	err = d.Parse(context.Background())
	assert.Error(t, err)
}

func TestParseFromStdinSentinel(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString(`class Foo {}`)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	origStdin := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = origStdin }()

	d, err := parser.New("stdin", "", 0)
	require.NoError(t, err)
	defer d.Destroy()

	require.NoError(t, d.Parse(context.Background()))
	require.NotNil(t, d.GetAST())
	ast.Destroy(d.GetAST())
}

func TestParseSyntaxErrorReturnsParseError(t *testing.T) {
	d := newDriverFromSource(t, `class {}`)

	err := d.Parse(context.Background())
	require.Error(t, err)

	var parseErr *parser.ParseError
	assert.ErrorAs(t, err, &parseErr)
}
