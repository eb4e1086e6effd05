package dot

import (
	"fmt"

	"github.com/dunst0/waitui/ast"
)

// fields enumerates one row per scalar field (rendered inline) and one
// port-bearing row per child node field (wired up by visit), in
// declaration order, for every concrete node type. Besides ast.Destroy,
// this package is the only place that inspects a node's concrete type
// directly.
func fields(n ast.Node) []row {
	switch v := n.(type) {
	case *ast.Program:
		return listRows("namespaces", len(v.Namespaces), func(i int) ast.Node { return v.Namespaces[i] })
	case *ast.Namespace:
		rows := []row{{field: "name", value: v.Name.Identifier.String()}}
		rows = append(rows, listRows("imports", len(v.Imports), func(i int) ast.Node { return v.Imports[i] })...)
		rows = append(rows, listRows("classes", len(v.Classes), func(i int) ast.Node { return v.Classes[i] })...)
		return rows
	case *ast.Import:
		return nil
	case *ast.Class:
		rows := []row{
			{field: "name", value: v.Name.Identifier.String()},
			{field: "superClass", value: v.SuperClass.Identifier.String()},
		}
		rows = append(rows, listRows("parameters", len(v.Parameters), func(i int) ast.Node { return v.Parameters[i] })...)
		rows = append(rows, listRows("superClassArgs", len(v.SuperClassArgs), func(i int) ast.Node { return v.SuperClassArgs[i] })...)
		rows = append(rows, listRows("properties", len(v.Properties), func(i int) ast.Node { return v.Properties[i] })...)
		rows = append(rows, listRows("functions", len(v.Functions), func(i int) ast.Node { return v.Functions[i] })...)
		return rows
	case *ast.Formal:
		return []row{
			{field: "identifier", value: v.Identifier.Identifier.String()},
			{field: "type", value: v.Type.Identifier.String()},
			{field: "isLazy", value: fmt.Sprint(v.IsLazy)},
		}
	case *ast.Property:
		return []row{
			{field: "name", value: v.Name.Identifier.String()},
			{field: "type", value: v.Type.Identifier.String()},
			{field: "value", port: "value", child: v.Value},
		}
	case *ast.Function:
		rows := []row{
			{field: "functionName", value: v.FunctionName.Identifier.String()},
			{field: "returnType", value: v.ReturnType.Identifier.String()},
			{field: "visibility", value: v.Visibility.String()},
			{field: "isAbstract", value: fmt.Sprint(v.IsAbstract)},
			{field: "isFinal", value: fmt.Sprint(v.IsFinal)},
			{field: "isOverwrite", value: fmt.Sprint(v.IsOverwrite)},
		}
		rows = append(rows, listRows("parameters", len(v.Parameters), func(i int) ast.Node { return v.Parameters[i] })...)
		rows = append(rows, row{field: "body", port: "body", child: v.Body})
		return rows

	case *ast.IntegerLiteral:
		return []row{{field: "value", value: v.Value.String()}}
	case *ast.DecimalLiteral:
		return []row{{field: "value", value: v.Value.String()}}
	case *ast.StringLiteral:
		return []row{{field: "value", value: v.Value.String()}}
	case *ast.BooleanLiteral:
		return []row{{field: "value", value: fmt.Sprint(v.Value)}}
	case *ast.NullLiteral:
		return nil
	case *ast.ThisLiteral:
		return nil
	case *ast.Reference:
		return []row{{field: "value", value: v.Value.Identifier.String()}}
	case *ast.Assignment:
		return []row{
			{field: "identifier", value: v.Identifier.Identifier.String()},
			{field: "operator", value: v.Operator.String()},
			{field: "value", port: "value", child: v.Value},
		}
	case *ast.Cast:
		return []row{
			{field: "type", value: v.Type.Identifier.String()},
			{field: "object", port: "object", child: v.Object},
		}
	case *ast.Initialization:
		return []row{
			{field: "identifier", value: v.Identifier.Identifier.String()},
			{field: "type", value: v.Type.Identifier.String()},
			{field: "value", port: "value", child: v.Value},
		}
	case *ast.Let:
		rows := listRows("initializations", len(v.Initializations), func(i int) ast.Node { return v.Initializations[i] })
		rows = append(rows, row{field: "body", port: "body", child: v.Body})
		return rows
	case *ast.Block:
		return listRows("expressions", len(v.Expressions), func(i int) ast.Node { return v.Expressions[i] })
	case *ast.ConstructorCall:
		rows := []row{{field: "name", value: v.Name.Identifier.String()}}
		rows = append(rows, listRows("args", len(v.Args), func(i int) ast.Node { return v.Args[i] })...)
		return rows
	case *ast.FunctionCall:
		rows := []row{
			{field: "functionName", value: v.FunctionName.Identifier.String()},
			{field: "object", port: "object", child: v.Object},
		}
		rows = append(rows, listRows("args", len(v.Args), func(i int) ast.Node { return v.Args[i] })...)
		return rows
	case *ast.SuperFunctionCall:
		rows := []row{{field: "functionName", value: v.FunctionName.Identifier.String()}}
		rows = append(rows, listRows("args", len(v.Args), func(i int) ast.Node { return v.Args[i] })...)
		return rows
	case *ast.BinaryExpression:
		return []row{
			{field: "operator", value: v.Operator.String()},
			{field: "left", port: "left", child: v.Left},
			{field: "right", port: "right", child: v.Right},
		}
	case *ast.UnaryExpression:
		return []row{
			{field: "operator", value: v.Operator.String()},
			{field: "expr", port: "expr", child: v.Expr},
		}
	case *ast.IfElse:
		return []row{
			{field: "condition", port: "condition", child: v.Condition},
			{field: "thenBranch", port: "thenBranch", child: v.ThenBranch},
			{field: "elseBranch", port: "elseBranch", child: v.ElseBranch},
		}
	case *ast.While:
		return []row{
			{field: "condition", port: "condition", child: v.Condition},
			{field: "body", port: "body", child: v.Body},
		}
	case *ast.LazyExpression:
		return []row{
			{field: "expr", port: "expr", child: v.Expr},
		}
	case *ast.NativeExpression:
		return nil
	default:
		return nil
	}
}
