package parser

import (
	"context"

	"github.com/dunst0/waitui/ast"
	"github.com/dunst0/waitui/lexer"
	"github.com/dunst0/waitui/str"
	"github.com/dunst0/waitui/symbol"
)

// parseProgram recognizes a program as a sequence of (optionally
// namespaced) import and class declarations. Bare top-level imports and
// classes — the common case, and the only one exercised by a trivial
// program like `class Foo {}` — are collected into one implicit,
// empty-named default namespace, flushed whenever an explicit `namespace`
// block is encountered and once more at end of input.
func (d *Driver) parseProgram(ctx context.Context) (*ast.Program, error) {
	var namespaces []*ast.Namespace
	var pendingImports []*ast.Import
	var pendingClasses []*ast.Class

	flushDefault := func(pos ast.Position) error {
		if len(pendingImports) == 0 && len(pendingClasses) == 0 {
			return nil
		}
		name, err := d.declareSymbol(symbol.KindNamespace, str.View(""), pos)
		if err != nil {
			return err
		}
		namespaces = append(namespaces, ast.NewNamespace(pos, name, pendingImports, pendingClasses))
		pendingImports, pendingClasses = nil, nil
		return nil
	}

	for d.cur.Kind != lexer.TokenEOF {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		switch d.cur.Kind {
		case lexer.TokenNamespace:
			if err := flushDefault(d.curPos()); err != nil {
				return nil, err
			}
			ns, err := d.parseNamespace()
			if err != nil {
				return nil, err
			}
			namespaces = append(namespaces, ns)
		case lexer.TokenImport:
			imp, err := d.parseImportDecl()
			if err != nil {
				return nil, err
			}
			pendingImports = append(pendingImports, imp)
		case lexer.TokenClass:
			cls, err := d.parseClass()
			if err != nil {
				return nil, err
			}
			pendingClasses = append(pendingClasses, cls)
		default:
			return nil, d.parseErrorf("expected namespace, import, or class declaration, got %s", d.cur.Kind)
		}
	}
	if err := flushDefault(ast.Position{}); err != nil {
		return nil, err
	}

	return ast.NewProgram(ast.Position{}, namespaces), nil
}

// parseNamespace recognizes `namespace Name { (import | class)* }`.
func (d *Driver) parseNamespace() (*ast.Namespace, error) {
	pos := d.curPos()
	if err := d.expect(lexer.TokenNamespace); err != nil {
		return nil, err
	}
	nameTok := d.cur
	if nameTok.Kind != lexer.TokenIdentifier {
		return nil, d.parseErrorf("expected namespace name, got %s", d.cur.Kind)
	}
	if err := d.advance(); err != nil {
		return nil, err
	}

	name, err := d.declareSymbol(symbol.KindNamespace, nameTok.Text, nameTok.Pos)
	if err != nil {
		return nil, err
	}

	if err := d.expect(lexer.TokenLBrace); err != nil {
		return nil, err
	}

	var imports []*ast.Import
	var classes []*ast.Class
	for d.cur.Kind != lexer.TokenRBrace {
		switch d.cur.Kind {
		case lexer.TokenImport:
			imp, err := d.parseImportDecl()
			if err != nil {
				return nil, err
			}
			imports = append(imports, imp)
		case lexer.TokenClass:
			cls, err := d.parseClass()
			if err != nil {
				return nil, err
			}
			classes = append(classes, cls)
		default:
			return nil, d.parseErrorf("expected import or class declaration, got %s", d.cur.Kind)
		}
	}
	if err := d.expect(lexer.TokenRBrace); err != nil {
		return nil, err
	}

	return ast.NewNamespace(pos, name, imports, classes), nil
}

// parseImportDecl recognizes `import "path";`. Beyond producing the
// reserved Import AST node, it triggers #include-style inclusion of the
// named file via pushImport, per the lexer import stack design.
func (d *Driver) parseImportDecl() (*ast.Import, error) {
	pos := d.curPos()
	if err := d.expect(lexer.TokenImport); err != nil {
		return nil, err
	}
	if d.cur.Kind != lexer.TokenString {
		return nil, d.parseErrorf("expected string literal path after 'import', got %s", d.cur.Kind)
	}
	path := d.cur.Text.String()
	if err := d.advance(); err != nil {
		return nil, err
	}
	if err := d.expect(lexer.TokenSemicolon); err != nil {
		return nil, err
	}

	node := ast.NewImport(pos)
	if err := d.pushImport(path, pos); err != nil {
		return nil, err
	}
	return node, nil
}

// parseClass recognizes
// `class Name [(formals)] [extends Super[(args)]] { member* }`.
func (d *Driver) parseClass() (*ast.Class, error) {
	pos := d.curPos()
	if err := d.expect(lexer.TokenClass); err != nil {
		return nil, err
	}
	nameTok := d.cur
	if nameTok.Kind != lexer.TokenIdentifier {
		return nil, d.parseErrorf("expected class name, got %s", d.cur.Kind)
	}
	if err := d.advance(); err != nil {
		return nil, err
	}

	name, err := d.declareSymbol(symbol.KindClass, nameTok.Text, nameTok.Pos)
	if err != nil {
		return nil, err
	}

	d.symtab.EnterScope()
	defer d.symtab.ExitScope()

	var parameters []*ast.Formal
	if d.cur.Kind == lexer.TokenLParen {
		if parameters, err = d.parseFormalList(); err != nil {
			return nil, err
		}
	}

	superClass := symbol.Null
	var superArgs []ast.Expression
	if d.cur.Kind == lexer.TokenExtends {
		if err := d.advance(); err != nil {
			return nil, err
		}
		superTok := d.cur
		if superTok.Kind != lexer.TokenIdentifier {
			return nil, d.parseErrorf("expected superclass name, got %s", d.cur.Kind)
		}
		if err := d.advance(); err != nil {
			return nil, err
		}
		superClass, err = d.referenceSymbol(symbol.KindClass, superTok.Text, superTok.Pos)
		if err != nil {
			return nil, err
		}
		if d.cur.Kind == lexer.TokenLParen {
			if superArgs, err = d.parseArgList(); err != nil {
				return nil, err
			}
		}
	}

	if err := d.expect(lexer.TokenLBrace); err != nil {
		return nil, err
	}

	var properties []*ast.Property
	var functions []*ast.Function
	for d.cur.Kind != lexer.TokenRBrace {
		if isVisibilityToken(d.cur.Kind) {
			fn, err := d.parseFunction()
			if err != nil {
				return nil, err
			}
			functions = append(functions, fn)
		} else {
			prop, err := d.parseProperty()
			if err != nil {
				return nil, err
			}
			properties = append(properties, prop)
		}
	}
	if err := d.expect(lexer.TokenRBrace); err != nil {
		return nil, err
	}

	return ast.NewClass(pos, name, parameters, superClass, superArgs, properties, functions), nil
}

func isVisibilityToken(k lexer.Kind) bool {
	return k == lexer.TokenPublic || k == lexer.TokenProtected || k == lexer.TokenPrivate
}

// parseFormalList recognizes a parenthesized, comma-separated Formal
// list; an empty `()` yields a nil slice.
func (d *Driver) parseFormalList() ([]*ast.Formal, error) {
	if err := d.expect(lexer.TokenLParen); err != nil {
		return nil, err
	}
	if d.cur.Kind == lexer.TokenRParen {
		return nil, d.advance()
	}

	var formals []*ast.Formal
	for {
		f, err := d.parseFormal()
		if err != nil {
			return nil, err
		}
		formals = append(formals, f)
		if d.cur.Kind != lexer.TokenComma {
			break
		}
		if err := d.advance(); err != nil {
			return nil, err
		}
	}
	if err := d.expect(lexer.TokenRParen); err != nil {
		return nil, err
	}
	return formals, nil
}

// parseFormal recognizes `[lazy] name: Type`.
func (d *Driver) parseFormal() (*ast.Formal, error) {
	pos := d.curPos()
	isLazy := false
	if d.cur.Kind == lexer.TokenLazy {
		isLazy = true
		if err := d.advance(); err != nil {
			return nil, err
		}
	}

	idTok := d.cur
	if idTok.Kind != lexer.TokenIdentifier {
		return nil, d.parseErrorf("expected formal parameter name, got %s", d.cur.Kind)
	}
	if err := d.advance(); err != nil {
		return nil, err
	}
	if err := d.expect(lexer.TokenColon); err != nil {
		return nil, err
	}
	typeTok := d.cur
	if typeTok.Kind != lexer.TokenIdentifier {
		return nil, d.parseErrorf("expected formal parameter type, got %s", d.cur.Kind)
	}
	if err := d.advance(); err != nil {
		return nil, err
	}

	ident, err := d.declareSymbol(symbol.KindFormal, idTok.Text, idTok.Pos)
	if err != nil {
		return nil, err
	}
	typ, err := d.referenceSymbol(symbol.KindClass, typeTok.Text, typeTok.Pos)
	if err != nil {
		return nil, err
	}
	return ast.NewFormal(pos, ident, typ, isLazy), nil
}

// parseProperty recognizes `name: Type [= expr];`.
func (d *Driver) parseProperty() (*ast.Property, error) {
	pos := d.curPos()
	idTok := d.cur
	if idTok.Kind != lexer.TokenIdentifier {
		return nil, d.parseErrorf("expected property or function declaration, got %s", d.cur.Kind)
	}
	if err := d.advance(); err != nil {
		return nil, err
	}
	if err := d.expect(lexer.TokenColon); err != nil {
		return nil, err
	}
	typeTok := d.cur
	if typeTok.Kind != lexer.TokenIdentifier {
		return nil, d.parseErrorf("expected property type, got %s", d.cur.Kind)
	}
	if err := d.advance(); err != nil {
		return nil, err
	}

	name, err := d.declareSymbol(symbol.KindProperty, idTok.Text, idTok.Pos)
	if err != nil {
		return nil, err
	}
	typ, err := d.referenceSymbol(symbol.KindClass, typeTok.Text, typeTok.Pos)
	if err != nil {
		return nil, err
	}

	var value ast.Expression
	if d.cur.Kind == lexer.TokenAssign {
		if err := d.advance(); err != nil {
			return nil, err
		}
		if value, err = d.parseExpression(); err != nil {
			return nil, err
		}
	}
	if err := d.expect(lexer.TokenSemicolon); err != nil {
		return nil, err
	}
	return ast.NewProperty(pos, name, typ, value), nil
}

// parseFunction recognizes
// `visibility modifier* name(formals): ReturnType (';' | '=' expr ';')`.
func (d *Driver) parseFunction() (*ast.Function, error) {
	pos := d.curPos()
	vis, err := d.parseVisibility()
	if err != nil {
		return nil, err
	}

	var isAbstract, isFinal, isOverwrite bool
loop:
	for {
		switch d.cur.Kind {
		case lexer.TokenAbstract:
			isAbstract = true
		case lexer.TokenFinal:
			isFinal = true
		case lexer.TokenOverwrite:
			isOverwrite = true
		default:
			break loop
		}
		if err := d.advance(); err != nil {
			return nil, err
		}
	}

	nameTok := d.cur
	if nameTok.Kind != lexer.TokenIdentifier {
		return nil, d.parseErrorf("expected function name, got %s", d.cur.Kind)
	}
	if err := d.advance(); err != nil {
		return nil, err
	}

	name, err := d.declareSymbol(symbol.KindFunction, nameTok.Text, nameTok.Pos)
	if err != nil {
		return nil, err
	}

	d.symtab.EnterScope()
	defer d.symtab.ExitScope()

	var parameters []*ast.Formal
	if d.cur.Kind == lexer.TokenLParen {
		if parameters, err = d.parseFormalList(); err != nil {
			return nil, err
		}
	}

	if err := d.expect(lexer.TokenColon); err != nil {
		return nil, err
	}
	retTok := d.cur
	if retTok.Kind != lexer.TokenIdentifier {
		return nil, d.parseErrorf("expected return type, got %s", d.cur.Kind)
	}
	if err := d.advance(); err != nil {
		return nil, err
	}
	retType, err := d.referenceSymbol(symbol.KindClass, retTok.Text, retTok.Pos)
	if err != nil {
		return nil, err
	}

	var body ast.Expression
	switch d.cur.Kind {
	case lexer.TokenSemicolon:
		if err := d.advance(); err != nil {
			return nil, err
		}
	case lexer.TokenAssign:
		if err := d.advance(); err != nil {
			return nil, err
		}
		if body, err = d.parseExpression(); err != nil {
			return nil, err
		}
		if err := d.expect(lexer.TokenSemicolon); err != nil {
			return nil, err
		}
	default:
		return nil, d.parseErrorf("expected ';' or '=' after function signature, got %s", d.cur.Kind)
	}

	return ast.NewFunction(pos, name, parameters, retType, body, vis, isAbstract, isFinal, isOverwrite), nil
}

func (d *Driver) parseVisibility() (ast.Visibility, error) {
	var vis ast.Visibility
	switch d.cur.Kind {
	case lexer.TokenPublic:
		vis = ast.VisibilityPublic
	case lexer.TokenProtected:
		vis = ast.VisibilityProtected
	case lexer.TokenPrivate:
		vis = ast.VisibilityPrivate
	default:
		return ast.VisibilityUndefined, d.parseErrorf("expected visibility modifier, got %s", d.cur.Kind)
	}
	if err := d.advance(); err != nil {
		return ast.VisibilityUndefined, err
	}
	return vis, nil
}

// parseArgList recognizes a parenthesized, comma-separated Expression
// list, consuming both parentheses.
func (d *Driver) parseArgList() ([]ast.Expression, error) {
	if err := d.expect(lexer.TokenLParen); err != nil {
		return nil, err
	}
	return d.parseArgListTail()
}

// parseArgListTail recognizes the same list, assuming the opening '('
// was already consumed by the caller (postfix call sites peek it first
// to distinguish a call from a bare reference).
func (d *Driver) parseArgListTail() ([]ast.Expression, error) {
	if d.cur.Kind == lexer.TokenRParen {
		return nil, d.advance()
	}

	var args []ast.Expression
	for {
		arg, err := d.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if d.cur.Kind != lexer.TokenComma {
			break
		}
		if err := d.advance(); err != nil {
			return nil, err
		}
	}
	if err := d.expect(lexer.TokenRParen); err != nil {
		return nil, err
	}
	return args, nil
}
