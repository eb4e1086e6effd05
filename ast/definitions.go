package ast

import "github.com/dunst0/waitui/symbol"

// Program is the root of every AST: the set of namespaces a single
// parse produced.
type Program struct {
	pos        Position
	Namespaces []*Namespace
}

// NewProgram creates a Program node.
func NewProgram(pos Position, namespaces []*Namespace) *Program {
	return &Program{pos: pos, Namespaces: namespaces}
}

func (n *Program) Pos() Position                  { return n.pos }
func (n *Program) Kind() Kind                     { return KindDefinition }
func (n *Program) DefinitionKind() DefinitionKind { return DefinitionProgram }
func (n *Program) String() string                 { return "Program" }
func (n *Program) astNode()                       {}

var _ Definition = (*Program)(nil)

// Namespace groups imports and class definitions under a named scope.
type Namespace struct {
	pos     Position
	Name    *symbol.Symbol
	Imports []*Import
	Classes []*Class
}

// NewNamespace creates a Namespace node, retaining name.
func NewNamespace(pos Position, name *symbol.Symbol, imports []*Import, classes []*Class) *Namespace {
	return &Namespace{pos: pos, Name: name.Retain(), Imports: imports, Classes: classes}
}

func (n *Namespace) Pos() Position                  { return n.pos }
func (n *Namespace) Kind() Kind                     { return KindDefinition }
func (n *Namespace) DefinitionKind() DefinitionKind { return DefinitionNamespace }
func (n *Namespace) String() string                 { return "Namespace(" + n.Name.Identifier.String() + ")" }
func (n *Namespace) astNode()                       {}

var _ Definition = (*Namespace)(nil)

// Import names one file to bring into the current namespace's scope. The
// parser includes the referenced file's declarations directly while
// scanning, so Import carries no path — it is a placeholder the parser
// produces and the printer renders, same as in the source this was
// ported from.
type Import struct {
	pos Position
}

// NewImport creates an Import node.
func NewImport(pos Position) *Import {
	return &Import{pos: pos}
}

func (n *Import) Pos() Position                  { return n.pos }
func (n *Import) Kind() Kind                     { return KindDefinition }
func (n *Import) DefinitionKind() DefinitionKind { return DefinitionImport }
func (n *Import) String() string                 { return "Import" }
func (n *Import) astNode()                       {}

var _ Definition = (*Import)(nil)

// Class is a class definition: its formal parameters, optional
// superclass and superclass constructor arguments, properties and
// functions.
type Class struct {
	pos            Position
	Name           *symbol.Symbol
	Parameters     []*Formal
	SuperClass     *symbol.Symbol
	SuperClassArgs []Expression
	Properties     []*Property
	Functions      []*Function
}

// NewClass creates a Class node, retaining name and superClass.
// superClass should be symbol.Null when the class has no explicit
// superclass.
func NewClass(pos Position, name *symbol.Symbol, parameters []*Formal, superClass *symbol.Symbol, superClassArgs []Expression, properties []*Property, functions []*Function) *Class {
	return &Class{
		pos:            pos,
		Name:           name.Retain(),
		Parameters:     parameters,
		SuperClass:     superClass.Retain(),
		SuperClassArgs: superClassArgs,
		Properties:     properties,
		Functions:      functions,
	}
}

func (n *Class) Pos() Position                  { return n.pos }
func (n *Class) Kind() Kind                     { return KindDefinition }
func (n *Class) DefinitionKind() DefinitionKind { return DefinitionClass }
func (n *Class) String() string                 { return "Class(" + n.Name.Identifier.String() + ")" }
func (n *Class) astNode()                       {}

var _ Definition = (*Class)(nil)

// Formal is one formal parameter: an identifier, its declared type, and
// whether it is lazily evaluated.
type Formal struct {
	pos        Position
	Identifier *symbol.Symbol
	Type       *symbol.Symbol
	IsLazy     bool
}

// NewFormal creates a Formal node, retaining identifier and typ.
func NewFormal(pos Position, identifier, typ *symbol.Symbol, isLazy bool) *Formal {
	return &Formal{pos: pos, Identifier: identifier.Retain(), Type: typ.Retain(), IsLazy: isLazy}
}

func (n *Formal) Pos() Position                  { return n.pos }
func (n *Formal) Kind() Kind                     { return KindDefinition }
func (n *Formal) DefinitionKind() DefinitionKind { return DefinitionFormal }
func (n *Formal) String() string                 { return "Formal(" + n.Identifier.Identifier.String() + ")" }
func (n *Formal) astNode()                       {}

var _ Definition = (*Formal)(nil)

// Property is a class-level field with an optional initializer.
type Property struct {
	pos   Position
	Name  *symbol.Symbol
	Type  *symbol.Symbol
	Value Expression
}

// NewProperty creates a Property node, retaining name and typ. value may
// be nil (no initializer).
func NewProperty(pos Position, name, typ *symbol.Symbol, value Expression) *Property {
	return &Property{pos: pos, Name: name.Retain(), Type: typ.Retain(), Value: value}
}

func (n *Property) Pos() Position                  { return n.pos }
func (n *Property) Kind() Kind                     { return KindDefinition }
func (n *Property) DefinitionKind() DefinitionKind { return DefinitionProperty }
func (n *Property) String() string                 { return "Property(" + n.Name.Identifier.String() + ")" }
func (n *Property) astNode()                       {}

var _ Definition = (*Property)(nil)

// Visibility is a function's access visibility.
type Visibility int

const (
	VisibilityUndefined Visibility = iota
	VisibilityPublic
	VisibilityProtected
	VisibilityPrivate
)

func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return "public"
	case VisibilityProtected:
		return "protected"
	case VisibilityPrivate:
		return "private"
	default:
		return "undefined"
	}
}

// Function is a class-level method. Body is nil for an abstract
// function.
type Function struct {
	pos          Position
	FunctionName *symbol.Symbol
	Parameters   []*Formal
	ReturnType   *symbol.Symbol
	Body         Expression
	Visibility   Visibility
	IsAbstract   bool
	IsFinal      bool
	IsOverwrite  bool
}

// NewFunction creates a Function node, retaining functionName and
// returnType.
func NewFunction(pos Position, functionName *symbol.Symbol, parameters []*Formal, returnType *symbol.Symbol, body Expression, visibility Visibility, isAbstract, isFinal, isOverwrite bool) *Function {
	return &Function{
		pos:          pos,
		FunctionName: functionName.Retain(),
		Parameters:   parameters,
		ReturnType:   returnType.Retain(),
		Body:         body,
		Visibility:   visibility,
		IsAbstract:   isAbstract,
		IsFinal:      isFinal,
		IsOverwrite:  isOverwrite,
	}
}

func (n *Function) Pos() Position                  { return n.pos }
func (n *Function) Kind() Kind                     { return KindDefinition }
func (n *Function) DefinitionKind() DefinitionKind { return DefinitionFunction }
func (n *Function) String() string {
	return "Function(" + n.FunctionName.Identifier.String() + ")"
}
func (n *Function) astNode() {}

var _ Definition = (*Function)(nil)
