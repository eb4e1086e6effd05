package ast

// Destroy releases every symbol.Symbol handle a subtree holds, walking
// children recursively. It is the one place outside dot that interprets
// a node's concrete type directly, matching how a generic
// destructor is the only place the source's own node tag was inspected
// by hand.
func Destroy(n Node) {
	if n == nil {
		return
	}
	switch v := n.(type) {
	case *Program:
		for _, ns := range v.Namespaces {
			Destroy(ns)
		}
	case *Namespace:
		v.Name.Release()
		for _, i := range v.Imports {
			Destroy(i)
		}
		for _, c := range v.Classes {
			Destroy(c)
		}
	case *Import:
		// no owned handles
	case *Class:
		v.Name.Release()
		v.SuperClass.Release()
		for _, p := range v.Parameters {
			Destroy(p)
		}
		for _, a := range v.SuperClassArgs {
			Destroy(a)
		}
		for _, p := range v.Properties {
			Destroy(p)
		}
		for _, f := range v.Functions {
			Destroy(f)
		}
	case *Formal:
		v.Identifier.Release()
		v.Type.Release()
	case *Property:
		v.Name.Release()
		v.Type.Release()
		Destroy(v.Value)
	case *Function:
		v.FunctionName.Release()
		v.ReturnType.Release()
		for _, p := range v.Parameters {
			Destroy(p)
		}
		Destroy(v.Body)

	case *IntegerLiteral, *DecimalLiteral, *StringLiteral, *BooleanLiteral, *NullLiteral, *ThisLiteral:
		// no owned handles
	case *Reference:
		v.Value.Release()
	case *Assignment:
		v.Identifier.Release()
		Destroy(v.Value)
	case *Cast:
		v.Type.Release()
		Destroy(v.Object)
	case *Initialization:
		v.Identifier.Release()
		v.Type.Release()
		Destroy(v.Value)
	case *Let:
		for _, i := range v.Initializations {
			Destroy(i)
		}
		Destroy(v.Body)
	case *Block:
		for _, e := range v.Expressions {
			Destroy(e)
		}
	case *ConstructorCall:
		v.Name.Release()
		for _, a := range v.Args {
			Destroy(a)
		}
	case *FunctionCall:
		v.FunctionName.Release()
		Destroy(v.Object)
		for _, a := range v.Args {
			Destroy(a)
		}
	case *SuperFunctionCall:
		v.FunctionName.Release()
		for _, a := range v.Args {
			Destroy(a)
		}
	case *BinaryExpression:
		Destroy(v.Left)
		Destroy(v.Right)
	case *UnaryExpression:
		Destroy(v.Expr)
	case *IfElse:
		Destroy(v.Condition)
		Destroy(v.ThenBranch)
		Destroy(v.ElseBranch)
	case *While:
		Destroy(v.Condition)
		Destroy(v.Body)
	case *LazyExpression:
		Destroy(v.Expr)
	case *NativeExpression:
		// Func is opaque; nothing owned here
	}
}
