package parser

import (
	"github.com/dunst0/waitui/ast"
	"github.com/dunst0/waitui/lexer"
	"github.com/dunst0/waitui/symbol"
)

// assignOps maps each compound-assignment token to its AssignmentOperator.
var assignOps = map[lexer.Kind]ast.AssignmentOperator{
	lexer.TokenAssign:       ast.AssignmentOperatorEqual,
	lexer.TokenPlusAssign:   ast.AssignmentOperatorPlusEqual,
	lexer.TokenMinusAssign:  ast.AssignmentOperatorMinusEqual,
	lexer.TokenTimesAssign:  ast.AssignmentOperatorTimesEqual,
	lexer.TokenDivAssign:    ast.AssignmentOperatorDivEqual,
	lexer.TokenModuloAssign: ast.AssignmentOperatorModuloEqual,
	lexer.TokenAndAssign:    ast.AssignmentOperatorAndEqual,
	lexer.TokenCaretAssign:  ast.AssignmentOperatorCaretEqual,
	lexer.TokenTildeAssign:  ast.AssignmentOperatorTildeEqual,
	lexer.TokenPipeAssign:   ast.AssignmentOperatorPipeEqual,
}

var orOps = map[lexer.Kind]ast.BinaryOperator{lexer.TokenPipePipe: ast.BinaryOperatorDoublePipe}
var andOps = map[lexer.Kind]ast.BinaryOperator{lexer.TokenAndAnd: ast.BinaryOperatorDoubleAnd}
var bitOrOps = map[lexer.Kind]ast.BinaryOperator{lexer.TokenPipe: ast.BinaryOperatorPipe}
var bitXorOps = map[lexer.Kind]ast.BinaryOperator{
	lexer.TokenCaret: ast.BinaryOperatorCaret,
	lexer.TokenTilde: ast.BinaryOperatorTilde,
}
var bitAndOps = map[lexer.Kind]ast.BinaryOperator{lexer.TokenAnd: ast.BinaryOperatorAnd}
var equalityOps = map[lexer.Kind]ast.BinaryOperator{
	lexer.TokenEqual:    ast.BinaryOperatorEqual,
	lexer.TokenNotEqual: ast.BinaryOperatorNotEqual,
}
var relationalOps = map[lexer.Kind]ast.BinaryOperator{
	lexer.TokenLess:         ast.BinaryOperatorLess,
	lexer.TokenLessEqual:    ast.BinaryOperatorLessEqual,
	lexer.TokenGreater:      ast.BinaryOperatorGreater,
	lexer.TokenGreaterEqual: ast.BinaryOperatorGreaterEqual,
}
var additiveOps = map[lexer.Kind]ast.BinaryOperator{
	lexer.TokenPlus:  ast.BinaryOperatorPlus,
	lexer.TokenMinus: ast.BinaryOperatorMinus,
}
var multiplicativeOps = map[lexer.Kind]ast.BinaryOperator{
	lexer.TokenTimes:  ast.BinaryOperatorTimes,
	lexer.TokenDiv:    ast.BinaryOperatorDiv,
	lexer.TokenModulo: ast.BinaryOperatorModulo,
}
var unaryOps = map[lexer.Kind]ast.UnaryOperator{
	lexer.TokenMinus:      ast.UnaryOperatorMinus,
	lexer.TokenNot:        ast.UnaryOperatorNot,
	lexer.TokenPlusPlus:   ast.UnaryOperatorDoublePlus,
	lexer.TokenMinusMinus: ast.UnaryOperatorDoubleMinus,
}

// parseExpression is the grammar's expression entry point. An identifier
// immediately followed by an assignment operator is an Assignment;
// everything else falls through the standard precedence climb, from
// `||` (lowest) down to unary, postfix-cast, and postfix-call (highest),
// matching spec §4.7.2's tier list with bitwise operators slotted in
// between equality and `&&` per the standard C-family convention the
// spec leaves unspecified.
func (d *Driver) parseExpression() (ast.Expression, error) {
	if d.cur.Kind == lexer.TokenIdentifier {
		if op, ok := assignOps[d.next.Kind]; ok {
			return d.parseAssignment(op)
		}
	}
	return d.parseOr()
}

func (d *Driver) parseAssignment(op ast.AssignmentOperator) (ast.Expression, error) {
	pos := d.curPos()
	idTok := d.cur
	if err := d.advance(); err != nil { // consume identifier
		return nil, err
	}
	if err := d.advance(); err != nil { // consume assignment operator
		return nil, err
	}
	ident, err := d.referenceSymbol(symbol.KindVariable, idTok.Text, idTok.Pos)
	if err != nil {
		return nil, err
	}
	value, err := d.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewAssignment(pos, ident, op, value), nil
}

// parseBinaryTier is shared by every left-associative binary precedence
// tier: parse one operand via next, then fold in further `<op> operand`
// pairs left-to-right for as long as the current token is in ops.
func (d *Driver) parseBinaryTier(next func() (ast.Expression, error), ops map[lexer.Kind]ast.BinaryOperator) (ast.Expression, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := ops[d.cur.Kind]
		if !ok {
			return left, nil
		}
		pos := d.curPos()
		if err := d.advance(); err != nil {
			return nil, err
		}
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(pos, left, op, right)
	}
}

func (d *Driver) parseOr() (ast.Expression, error)    { return d.parseBinaryTier(d.parseAnd, orOps) }
func (d *Driver) parseAnd() (ast.Expression, error)   { return d.parseBinaryTier(d.parseBitOr, andOps) }
func (d *Driver) parseBitOr() (ast.Expression, error) { return d.parseBinaryTier(d.parseBitXor, bitOrOps) }
func (d *Driver) parseBitXor() (ast.Expression, error) {
	return d.parseBinaryTier(d.parseBitAnd, bitXorOps)
}
func (d *Driver) parseBitAnd() (ast.Expression, error) {
	return d.parseBinaryTier(d.parseEquality, bitAndOps)
}
func (d *Driver) parseEquality() (ast.Expression, error) {
	return d.parseBinaryTier(d.parseRelational, equalityOps)
}
func (d *Driver) parseRelational() (ast.Expression, error) {
	return d.parseBinaryTier(d.parseAdditive, relationalOps)
}
func (d *Driver) parseAdditive() (ast.Expression, error) {
	return d.parseBinaryTier(d.parseMultiplicative, additiveOps)
}
func (d *Driver) parseMultiplicative() (ast.Expression, error) {
	return d.parseBinaryTier(d.parseUnary, multiplicativeOps)
}

func (d *Driver) parseUnary() (ast.Expression, error) {
	if op, ok := unaryOps[d.cur.Kind]; ok {
		pos := d.curPos()
		if err := d.advance(); err != nil {
			return nil, err
		}
		expr, err := d.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression(pos, op, expr), nil
	}
	return d.parseCast()
}

// parseCast recognizes zero or more `as Type` suffixes, binding tighter
// than any binary operator.
func (d *Driver) parseCast() (ast.Expression, error) {
	expr, err := d.parsePostfix()
	if err != nil {
		return nil, err
	}
	for d.cur.Kind == lexer.TokenAs {
		pos := d.curPos()
		if err := d.advance(); err != nil {
			return nil, err
		}
		typeTok := d.cur
		if typeTok.Kind != lexer.TokenIdentifier {
			return nil, d.parseErrorf("expected type name after 'as', got %s", d.cur.Kind)
		}
		if err := d.advance(); err != nil {
			return nil, err
		}
		typ, err := d.referenceSymbol(symbol.KindClass, typeTok.Text, typeTok.Pos)
		if err != nil {
			return nil, err
		}
		expr = ast.NewCast(pos, expr, typ)
	}
	return expr, nil
}

// parsePostfix recognizes `.name(args)` method-call chains off a
// primary expression. The grammar has no field-access expression, so a
// '.' is always followed by a call.
func (d *Driver) parsePostfix() (ast.Expression, error) {
	expr, err := d.parsePrimary()
	if err != nil {
		return nil, err
	}
	for d.cur.Kind == lexer.TokenDot {
		pos := d.curPos()
		if err := d.advance(); err != nil {
			return nil, err
		}
		nameTok := d.cur
		if nameTok.Kind != lexer.TokenIdentifier {
			return nil, d.parseErrorf("expected method name after '.', got %s", d.cur.Kind)
		}
		if err := d.advance(); err != nil {
			return nil, err
		}
		fn, err := d.referenceSymbol(symbol.KindFunction, nameTok.Text, nameTok.Pos)
		if err != nil {
			return nil, err
		}
		if err := d.expect(lexer.TokenLParen); err != nil {
			return nil, err
		}
		args, err := d.parseArgListTail()
		if err != nil {
			return nil, err
		}
		expr = ast.NewFunctionCall(pos, expr, fn, args)
	}
	return expr, nil
}

func (d *Driver) parsePrimary() (ast.Expression, error) {
	pos := d.curPos()
	switch d.cur.Kind {
	case lexer.TokenInteger:
		v := d.cur.Text
		if err := d.advance(); err != nil {
			return nil, err
		}
		return ast.NewIntegerLiteral(pos, v), nil
	case lexer.TokenDecimal:
		v := d.cur.Text
		if err := d.advance(); err != nil {
			return nil, err
		}
		return ast.NewDecimalLiteral(pos, v), nil
	case lexer.TokenString:
		v := d.cur.Text
		if err := d.advance(); err != nil {
			return nil, err
		}
		return ast.NewStringLiteral(pos, v), nil
	case lexer.TokenTrue:
		if err := d.advance(); err != nil {
			return nil, err
		}
		return ast.NewBooleanLiteral(pos, true), nil
	case lexer.TokenFalse:
		if err := d.advance(); err != nil {
			return nil, err
		}
		return ast.NewBooleanLiteral(pos, false), nil
	case lexer.TokenNull:
		if err := d.advance(); err != nil {
			return nil, err
		}
		return ast.NewNullLiteral(pos), nil
	case lexer.TokenThis:
		if err := d.advance(); err != nil {
			return nil, err
		}
		return ast.NewThisLiteral(pos), nil
	case lexer.TokenNew:
		return d.parseConstructorCall()
	case lexer.TokenSuper:
		return d.parseSuperCall()
	case lexer.TokenLet:
		return d.parseLet()
	case lexer.TokenIf:
		return d.parseIfElse()
	case lexer.TokenWhile:
		return d.parseWhile()
	case lexer.TokenLBrace:
		return d.parseBlock()
	case lexer.TokenLParen:
		if err := d.advance(); err != nil {
			return nil, err
		}
		expr, err := d.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := d.expect(lexer.TokenRParen); err != nil {
			return nil, err
		}
		return expr, nil
	case lexer.TokenIdentifier:
		nameTok := d.cur
		if err := d.advance(); err != nil {
			return nil, err
		}
		if d.cur.Kind == lexer.TokenLParen {
			if err := d.advance(); err != nil {
				return nil, err
			}
			fn, err := d.referenceSymbol(symbol.KindFunction, nameTok.Text, nameTok.Pos)
			if err != nil {
				return nil, err
			}
			args, err := d.parseArgListTail()
			if err != nil {
				return nil, err
			}
			return ast.NewFunctionCall(pos, nil, fn, args), nil
		}
		ref, err := d.referenceSymbol(symbol.KindVariable, nameTok.Text, nameTok.Pos)
		if err != nil {
			return nil, err
		}
		return ast.NewReference(pos, ref), nil
	default:
		return nil, d.parseErrorf("unexpected token %s in expression", d.cur.Kind)
	}
}

func (d *Driver) parseConstructorCall() (ast.Expression, error) {
	pos := d.curPos()
	if err := d.expect(lexer.TokenNew); err != nil {
		return nil, err
	}
	nameTok := d.cur
	if nameTok.Kind != lexer.TokenIdentifier {
		return nil, d.parseErrorf("expected class name after 'new', got %s", d.cur.Kind)
	}
	if err := d.advance(); err != nil {
		return nil, err
	}
	name, err := d.referenceSymbol(symbol.KindClass, nameTok.Text, nameTok.Pos)
	if err != nil {
		return nil, err
	}
	args, err := d.parseArgList()
	if err != nil {
		return nil, err
	}
	return ast.NewConstructorCall(pos, name, args), nil
}

func (d *Driver) parseSuperCall() (ast.Expression, error) {
	pos := d.curPos()
	if err := d.expect(lexer.TokenSuper); err != nil {
		return nil, err
	}
	if err := d.expect(lexer.TokenDot); err != nil {
		return nil, err
	}
	nameTok := d.cur
	if nameTok.Kind != lexer.TokenIdentifier {
		return nil, d.parseErrorf("expected method name after 'super.', got %s", d.cur.Kind)
	}
	if err := d.advance(); err != nil {
		return nil, err
	}
	fn, err := d.referenceSymbol(symbol.KindFunction, nameTok.Text, nameTok.Pos)
	if err != nil {
		return nil, err
	}
	args, err := d.parseArgList()
	if err != nil {
		return nil, err
	}
	return ast.NewSuperFunctionCall(pos, fn, args), nil
}

// parseLet recognizes `let init (',' init)* in expr`, opening a scope
// for the bindings that remains active across the body.
func (d *Driver) parseLet() (ast.Expression, error) {
	pos := d.curPos()
	if err := d.expect(lexer.TokenLet); err != nil {
		return nil, err
	}

	d.symtab.EnterScope()
	defer d.symtab.ExitScope()

	var inits []*ast.Initialization
	for {
		init, err := d.parseInitialization()
		if err != nil {
			return nil, err
		}
		inits = append(inits, init)
		if d.cur.Kind != lexer.TokenComma {
			break
		}
		if err := d.advance(); err != nil {
			return nil, err
		}
	}
	if err := d.expect(lexer.TokenIn); err != nil {
		return nil, err
	}
	body, err := d.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewLet(pos, inits, body), nil
}

func (d *Driver) parseInitialization() (*ast.Initialization, error) {
	pos := d.curPos()
	idTok := d.cur
	if idTok.Kind != lexer.TokenIdentifier {
		return nil, d.parseErrorf("expected binding name, got %s", d.cur.Kind)
	}
	if err := d.advance(); err != nil {
		return nil, err
	}
	if err := d.expect(lexer.TokenColon); err != nil {
		return nil, err
	}
	typeTok := d.cur
	if typeTok.Kind != lexer.TokenIdentifier {
		return nil, d.parseErrorf("expected binding type, got %s", d.cur.Kind)
	}
	if err := d.advance(); err != nil {
		return nil, err
	}

	ident, err := d.declareSymbol(symbol.KindVariable, idTok.Text, idTok.Pos)
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
	return ast.NewInitialization(pos, ident, typ, value), nil
}

func (d *Driver) parseIfElse() (ast.Expression, error) {
	pos := d.curPos()
	if err := d.expect(lexer.TokenIf); err != nil {
		return nil, err
	}
	if err := d.expect(lexer.TokenLParen); err != nil {
		return nil, err
	}
	cond, err := d.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := d.expect(lexer.TokenRParen); err != nil {
		return nil, err
	}
	thenBranch, err := d.parseExpression()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Expression
	if d.cur.Kind == lexer.TokenElse {
		if err := d.advance(); err != nil {
			return nil, err
		}
		if elseBranch, err = d.parseExpression(); err != nil {
			return nil, err
		}
	}
	return ast.NewIfElse(pos, cond, thenBranch, elseBranch), nil
}

func (d *Driver) parseWhile() (ast.Expression, error) {
	pos := d.curPos()
	if err := d.expect(lexer.TokenWhile); err != nil {
		return nil, err
	}
	if err := d.expect(lexer.TokenLParen); err != nil {
		return nil, err
	}
	cond, err := d.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := d.expect(lexer.TokenRParen); err != nil {
		return nil, err
	}
	body, err := d.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewWhile(pos, cond, body), nil
}

// parseBlock recognizes `{ expr (';' expr)* }`.
func (d *Driver) parseBlock() (ast.Expression, error) {
	pos := d.curPos()
	if err := d.expect(lexer.TokenLBrace); err != nil {
		return nil, err
	}
	var exprs []ast.Expression
	for d.cur.Kind != lexer.TokenRBrace {
		e, err := d.parseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		if d.cur.Kind == lexer.TokenSemicolon {
			if err := d.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := d.expect(lexer.TokenRBrace); err != nil {
		return nil, err
	}
	return ast.NewBlock(pos, exprs), nil
}
