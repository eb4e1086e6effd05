package ast

import (
	"github.com/dunst0/waitui/str"
	"github.com/dunst0/waitui/symbol"
)

// AssignmentOperator is the compound-assignment operator used by an
// Assignment expression.
type AssignmentOperator int

const (
	AssignmentOperatorUndefined AssignmentOperator = iota
	AssignmentOperatorEqual
	AssignmentOperatorPlusEqual
	AssignmentOperatorMinusEqual
	AssignmentOperatorTimesEqual
	AssignmentOperatorDivEqual
	AssignmentOperatorModuloEqual
	AssignmentOperatorAndEqual
	AssignmentOperatorCaretEqual
	AssignmentOperatorTildeEqual
	AssignmentOperatorPipeEqual
)

var assignmentOperatorNames = map[AssignmentOperator]string{
	AssignmentOperatorEqual:       "=",
	AssignmentOperatorPlusEqual:   "+=",
	AssignmentOperatorMinusEqual:  "-=",
	AssignmentOperatorTimesEqual:  "*=",
	AssignmentOperatorDivEqual:    "/=",
	AssignmentOperatorModuloEqual: "%=",
	AssignmentOperatorAndEqual:    "&=",
	AssignmentOperatorCaretEqual:  "^=",
	AssignmentOperatorTildeEqual:  "~=",
	AssignmentOperatorPipeEqual:   "|=",
}

func (op AssignmentOperator) String() string {
	if s, ok := assignmentOperatorNames[op]; ok {
		return s
	}
	return "?="
}

// BinaryOperator is the operator of a BinaryExpression.
type BinaryOperator int

const (
	BinaryOperatorUndefined BinaryOperator = iota
	BinaryOperatorPlus
	BinaryOperatorMinus
	BinaryOperatorTimes
	BinaryOperatorDiv
	BinaryOperatorModulo
	BinaryOperatorAnd
	BinaryOperatorCaret
	BinaryOperatorTilde
	BinaryOperatorPipe
	BinaryOperatorLess
	BinaryOperatorLessEqual
	BinaryOperatorGreater
	BinaryOperatorGreaterEqual
	BinaryOperatorEqual
	BinaryOperatorNotEqual
	BinaryOperatorDoubleAnd
	BinaryOperatorDoublePipe
)

var binaryOperatorNames = map[BinaryOperator]string{
	BinaryOperatorPlus:         "+",
	BinaryOperatorMinus:        "-",
	BinaryOperatorTimes:        "*",
	BinaryOperatorDiv:          "/",
	BinaryOperatorModulo:       "%",
	BinaryOperatorAnd:          "&",
	BinaryOperatorCaret:        "^",
	BinaryOperatorTilde:        "~",
	BinaryOperatorPipe:         "|",
	BinaryOperatorLess:         "<",
	BinaryOperatorLessEqual:    "<=",
	BinaryOperatorGreater:      ">",
	BinaryOperatorGreaterEqual: ">=",
	BinaryOperatorEqual:        "==",
	BinaryOperatorNotEqual:     "!=",
	BinaryOperatorDoubleAnd:    "&&",
	BinaryOperatorDoublePipe:   "||",
}

func (op BinaryOperator) String() string {
	if s, ok := binaryOperatorNames[op]; ok {
		return s
	}
	return "?"
}

// UnaryOperator is the operator of a UnaryExpression.
type UnaryOperator int

const (
	UnaryOperatorUndefined UnaryOperator = iota
	UnaryOperatorMinus
	UnaryOperatorNot
	UnaryOperatorDoublePlus
	UnaryOperatorDoubleMinus
)

var unaryOperatorNames = map[UnaryOperator]string{
	UnaryOperatorMinus:       "-",
	UnaryOperatorNot:         "!",
	UnaryOperatorDoublePlus:  "++",
	UnaryOperatorDoubleMinus: "--",
}

func (op UnaryOperator) String() string {
	if s, ok := unaryOperatorNames[op]; ok {
		return s
	}
	return "?"
}

// IntegerLiteral is an integer literal, kept as the source text it was
// scanned from rather than a parsed numeric value — this front-end does
// no arithmetic, only structure.
type IntegerLiteral struct {
	pos   Position
	Value str.View
}

func NewIntegerLiteral(pos Position, value str.View) *IntegerLiteral {
	return &IntegerLiteral{pos: pos, Value: value}
}
func (n *IntegerLiteral) Pos() Position                  { return n.pos }
func (n *IntegerLiteral) Kind() Kind                     { return KindExpression }
func (n *IntegerLiteral) ExpressionKind() ExpressionKind { return ExpressionIntegerLiteral }
func (n *IntegerLiteral) String() string                 { return n.Value.String() }
func (n *IntegerLiteral) astNode()                       {}

var _ Expression = (*IntegerLiteral)(nil)

// DecimalLiteral is a decimal literal, kept as source text.
type DecimalLiteral struct {
	pos   Position
	Value str.View
}

func NewDecimalLiteral(pos Position, value str.View) *DecimalLiteral {
	return &DecimalLiteral{pos: pos, Value: value}
}
func (n *DecimalLiteral) Pos() Position                  { return n.pos }
func (n *DecimalLiteral) Kind() Kind                     { return KindExpression }
func (n *DecimalLiteral) ExpressionKind() ExpressionKind { return ExpressionDecimalLiteral }
func (n *DecimalLiteral) String() string                 { return n.Value.String() }
func (n *DecimalLiteral) astNode()                       {}

var _ Expression = (*DecimalLiteral)(nil)

// StringLiteral is a string literal, unescaped source text between
// quotes.
type StringLiteral struct {
	pos   Position
	Value str.View
}

func NewStringLiteral(pos Position, value str.View) *StringLiteral {
	return &StringLiteral{pos: pos, Value: value}
}
func (n *StringLiteral) Pos() Position                  { return n.pos }
func (n *StringLiteral) Kind() Kind                     { return KindExpression }
func (n *StringLiteral) ExpressionKind() ExpressionKind { return ExpressionStringLiteral }
func (n *StringLiteral) String() string                 { return "\"" + n.Value.String() + "\"" }
func (n *StringLiteral) astNode()                       {}

var _ Expression = (*StringLiteral)(nil)

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	pos   Position
	Value bool
}

func NewBooleanLiteral(pos Position, value bool) *BooleanLiteral {
	return &BooleanLiteral{pos: pos, Value: value}
}
func (n *BooleanLiteral) Pos() Position                  { return n.pos }
func (n *BooleanLiteral) Kind() Kind                     { return KindExpression }
func (n *BooleanLiteral) ExpressionKind() ExpressionKind { return ExpressionBooleanLiteral }
func (n *BooleanLiteral) String() string {
	if n.Value {
		return "true"
	}
	return "false"
}
func (n *BooleanLiteral) astNode() {}

var _ Expression = (*BooleanLiteral)(nil)

// NullLiteral is `null`.
type NullLiteral struct {
	pos Position
}

func NewNullLiteral(pos Position) *NullLiteral { return &NullLiteral{pos: pos} }
func (n *NullLiteral) Pos() Position                  { return n.pos }
func (n *NullLiteral) Kind() Kind                     { return KindExpression }
func (n *NullLiteral) ExpressionKind() ExpressionKind { return ExpressionNullLiteral }
func (n *NullLiteral) String() string                 { return "null" }
func (n *NullLiteral) astNode()                       {}

var _ Expression = (*NullLiteral)(nil)

// ThisLiteral is `this`.
type ThisLiteral struct {
	pos Position
}

func NewThisLiteral(pos Position) *ThisLiteral { return &ThisLiteral{pos: pos} }
func (n *ThisLiteral) Pos() Position                  { return n.pos }
func (n *ThisLiteral) Kind() Kind                     { return KindExpression }
func (n *ThisLiteral) ExpressionKind() ExpressionKind { return ExpressionThisLiteral }
func (n *ThisLiteral) String() string                 { return "this" }
func (n *ThisLiteral) astNode()                       {}

var _ Expression = (*ThisLiteral)(nil)

// Reference is a use of a previously declared identifier.
type Reference struct {
	pos   Position
	Value *symbol.Symbol
}

// NewReference creates a Reference node, retaining value.
func NewReference(pos Position, value *symbol.Symbol) *Reference {
	return &Reference{pos: pos, Value: value.Retain()}
}
func (n *Reference) Pos() Position                  { return n.pos }
func (n *Reference) Kind() Kind                     { return KindExpression }
func (n *Reference) ExpressionKind() ExpressionKind { return ExpressionReference }
func (n *Reference) String() string                 { return n.Value.Identifier.String() }
func (n *Reference) astNode()                       {}

var _ Expression = (*Reference)(nil)

// Assignment assigns Value to Identifier using Operator.
type Assignment struct {
	pos        Position
	Identifier *symbol.Symbol
	Operator   AssignmentOperator
	Value      Expression
}

// NewAssignment creates an Assignment node, retaining identifier.
func NewAssignment(pos Position, identifier *symbol.Symbol, operator AssignmentOperator, value Expression) *Assignment {
	return &Assignment{pos: pos, Identifier: identifier.Retain(), Operator: operator, Value: value}
}
func (n *Assignment) Pos() Position                  { return n.pos }
func (n *Assignment) Kind() Kind                     { return KindExpression }
func (n *Assignment) ExpressionKind() ExpressionKind { return ExpressionAssignment }
func (n *Assignment) String() string {
	return n.Identifier.Identifier.String() + " " + n.Operator.String()
}
func (n *Assignment) astNode() {}

var _ Expression = (*Assignment)(nil)

// Cast reinterprets Object as Type.
type Cast struct {
	pos    Position
	Object Expression
	Type   *symbol.Symbol
}

// NewCast creates a Cast node, retaining typ.
func NewCast(pos Position, object Expression, typ *symbol.Symbol) *Cast {
	return &Cast{pos: pos, Object: object, Type: typ.Retain()}
}
func (n *Cast) Pos() Position                  { return n.pos }
func (n *Cast) Kind() Kind                     { return KindExpression }
func (n *Cast) ExpressionKind() ExpressionKind { return ExpressionCast }
func (n *Cast) String() string                 { return "as " + n.Type.Identifier.String() }
func (n *Cast) astNode()                       {}

var _ Expression = (*Cast)(nil)

// Initialization binds Identifier (declared Type, optional Value) inside
// a Let.
type Initialization struct {
	pos        Position
	Identifier *symbol.Symbol
	Type       *symbol.Symbol
	Value      Expression
}

// NewInitialization creates an Initialization node, retaining identifier
// and typ. value may be nil.
func NewInitialization(pos Position, identifier, typ *symbol.Symbol, value Expression) *Initialization {
	return &Initialization{pos: pos, Identifier: identifier.Retain(), Type: typ.Retain(), Value: value}
}
func (n *Initialization) Pos() Position                  { return n.pos }
func (n *Initialization) Kind() Kind                     { return KindExpression }
func (n *Initialization) ExpressionKind() ExpressionKind { return ExpressionInitialization }
func (n *Initialization) String() string {
	return n.Identifier.Identifier.String() + ": " + n.Type.Identifier.String()
}
func (n *Initialization) astNode() {}

var _ Expression = (*Initialization)(nil)

// Let binds Initializations, then evaluates Body in their scope.
type Let struct {
	pos             Position
	Initializations []*Initialization
	Body            Expression
}

func NewLet(pos Position, initializations []*Initialization, body Expression) *Let {
	return &Let{pos: pos, Initializations: initializations, Body: body}
}
func (n *Let) Pos() Position                  { return n.pos }
func (n *Let) Kind() Kind                     { return KindExpression }
func (n *Let) ExpressionKind() ExpressionKind { return ExpressionLet }
func (n *Let) String() string                 { return "let" }
func (n *Let) astNode()                       {}

var _ Expression = (*Let)(nil)

// Block evaluates Expressions in order; its value is the last one's.
type Block struct {
	pos         Position
	Expressions []Expression
}

func NewBlock(pos Position, expressions []Expression) *Block {
	return &Block{pos: pos, Expressions: expressions}
}
func (n *Block) Pos() Position                  { return n.pos }
func (n *Block) Kind() Kind                     { return KindExpression }
func (n *Block) ExpressionKind() ExpressionKind { return ExpressionBlock }
func (n *Block) String() string                 { return "Block" }
func (n *Block) astNode()                       {}

var _ Expression = (*Block)(nil)

// ConstructorCall is `new Name(Args...)`.
type ConstructorCall struct {
	pos  Position
	Name *symbol.Symbol
	Args []Expression
}

// NewConstructorCall creates a ConstructorCall node, retaining name.
func NewConstructorCall(pos Position, name *symbol.Symbol, args []Expression) *ConstructorCall {
	return &ConstructorCall{pos: pos, Name: name.Retain(), Args: args}
}
func (n *ConstructorCall) Pos() Position                  { return n.pos }
func (n *ConstructorCall) Kind() Kind                     { return KindExpression }
func (n *ConstructorCall) ExpressionKind() ExpressionKind { return ExpressionConstructorCall }
func (n *ConstructorCall) String() string                 { return "new " + n.Name.Identifier.String() }
func (n *ConstructorCall) astNode()                       {}

var _ Expression = (*ConstructorCall)(nil)

// FunctionCall invokes FunctionName on Object (nil Object means an
// implicit `this`) with Args.
type FunctionCall struct {
	pos          Position
	Object       Expression
	FunctionName *symbol.Symbol
	Args         []Expression
}

// NewFunctionCall creates a FunctionCall node, retaining functionName.
func NewFunctionCall(pos Position, object Expression, functionName *symbol.Symbol, args []Expression) *FunctionCall {
	return &FunctionCall{pos: pos, Object: object, FunctionName: functionName.Retain(), Args: args}
}
func (n *FunctionCall) Pos() Position                  { return n.pos }
func (n *FunctionCall) Kind() Kind                     { return KindExpression }
func (n *FunctionCall) ExpressionKind() ExpressionKind { return ExpressionFunctionCall }
func (n *FunctionCall) String() string                 { return n.FunctionName.Identifier.String() + "(...)" }
func (n *FunctionCall) astNode()                       {}

var _ Expression = (*FunctionCall)(nil)

// SuperFunctionCall invokes FunctionName on the superclass instance.
type SuperFunctionCall struct {
	pos          Position
	FunctionName *symbol.Symbol
	Args         []Expression
}

// NewSuperFunctionCall creates a SuperFunctionCall node, retaining
// functionName.
func NewSuperFunctionCall(pos Position, functionName *symbol.Symbol, args []Expression) *SuperFunctionCall {
	return &SuperFunctionCall{pos: pos, FunctionName: functionName.Retain(), Args: args}
}
func (n *SuperFunctionCall) Pos() Position                  { return n.pos }
func (n *SuperFunctionCall) Kind() Kind                     { return KindExpression }
func (n *SuperFunctionCall) ExpressionKind() ExpressionKind { return ExpressionSuperFunctionCall }
func (n *SuperFunctionCall) String() string {
	return "super." + n.FunctionName.Identifier.String() + "(...)"
}
func (n *SuperFunctionCall) astNode() {}

var _ Expression = (*SuperFunctionCall)(nil)

// BinaryExpression applies Operator to Left and Right.
type BinaryExpression struct {
	pos      Position
	Left     Expression
	Operator BinaryOperator
	Right    Expression
}

func NewBinaryExpression(pos Position, left Expression, operator BinaryOperator, right Expression) *BinaryExpression {
	return &BinaryExpression{pos: pos, Left: left, Operator: operator, Right: right}
}
func (n *BinaryExpression) Pos() Position                  { return n.pos }
func (n *BinaryExpression) Kind() Kind                     { return KindExpression }
func (n *BinaryExpression) ExpressionKind() ExpressionKind { return ExpressionBinaryExpression }
func (n *BinaryExpression) String() string                 { return n.Operator.String() }
func (n *BinaryExpression) astNode()                       {}

var _ Expression = (*BinaryExpression)(nil)

// UnaryExpression applies Operator to Expr.
type UnaryExpression struct {
	pos      Position
	Operator UnaryOperator
	Expr     Expression
}

func NewUnaryExpression(pos Position, operator UnaryOperator, expr Expression) *UnaryExpression {
	return &UnaryExpression{pos: pos, Operator: operator, Expr: expr}
}
func (n *UnaryExpression) Pos() Position                  { return n.pos }
func (n *UnaryExpression) Kind() Kind                     { return KindExpression }
func (n *UnaryExpression) ExpressionKind() ExpressionKind { return ExpressionUnaryExpression }
func (n *UnaryExpression) String() string                 { return n.Operator.String() }
func (n *UnaryExpression) astNode()                       {}

var _ Expression = (*UnaryExpression)(nil)

// IfElse evaluates ThenBranch if Condition holds, else ElseBranch
// (which may be nil).
type IfElse struct {
	pos        Position
	Condition  Expression
	ThenBranch Expression
	ElseBranch Expression
}

func NewIfElse(pos Position, condition, thenBranch, elseBranch Expression) *IfElse {
	return &IfElse{pos: pos, Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}
}
func (n *IfElse) Pos() Position                  { return n.pos }
func (n *IfElse) Kind() Kind                     { return KindExpression }
func (n *IfElse) ExpressionKind() ExpressionKind { return ExpressionIfElse }
func (n *IfElse) String() string                 { return "if" }
func (n *IfElse) astNode()                       {}

var _ Expression = (*IfElse)(nil)

// While repeats Body while Condition holds.
type While struct {
	pos       Position
	Condition Expression
	Body      Expression
}

func NewWhile(pos Position, condition, body Expression) *While {
	return &While{pos: pos, Condition: condition, Body: body}
}
func (n *While) Pos() Position                  { return n.pos }
func (n *While) Kind() Kind                     { return KindExpression }
func (n *While) ExpressionKind() ExpressionKind { return ExpressionWhile }
func (n *While) String() string                 { return "while" }
func (n *While) astNode()                       {}

var _ Expression = (*While)(nil)

// LazyExpression defers Expr; Annotation is an opaque slot later
// compiler phases may populate and this front-end never interprets.
type LazyExpression struct {
	pos        Position
	Expr       Expression
	Annotation any
}

func NewLazyExpression(pos Position, expr Expression, annotation any) *LazyExpression {
	return &LazyExpression{pos: pos, Expr: expr, Annotation: annotation}
}
func (n *LazyExpression) Pos() Position                  { return n.pos }
func (n *LazyExpression) Kind() Kind                     { return KindExpression }
func (n *LazyExpression) ExpressionKind() ExpressionKind { return ExpressionLazyExpression }
func (n *LazyExpression) String() string                 { return "lazy" }
func (n *LazyExpression) astNode()                       {}

var _ Expression = (*LazyExpression)(nil)

// NativeExpression names a native (non-waitui) implementation; Func is
// opaque, populated and interpreted only by later phases.
type NativeExpression struct {
	pos  Position
	Func any
}

func NewNativeExpression(pos Position, fn any) *NativeExpression {
	return &NativeExpression{pos: pos, Func: fn}
}
func (n *NativeExpression) Pos() Position                  { return n.pos }
func (n *NativeExpression) Kind() Kind                     { return KindExpression }
func (n *NativeExpression) ExpressionKind() ExpressionKind { return ExpressionNativeExpression }
func (n *NativeExpression) String() string                 { return "native" }
func (n *NativeExpression) astNode()                       {}

var _ Expression = (*NativeExpression)(nil)
