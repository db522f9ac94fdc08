package ast

import (
	"fmt"
	"reflect"
)

// Children returns the direct children of n in source order. Absent optional
// children are omitted. Children panics on a node type it does not know.
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if !isNil(c) {
			out = append(out, c)
		}
	}

	switch n := n.(type) {
	case *SourceFile:
		for _, s := range n.Stmts {
			add(s)
		}
	case *BadStmt, *BadExpr, *EmptyStmt, *Ident, *Literal:
	case *VarDecl:
		for _, d := range n.Decls {
			add(d)
		}
	case *VarDeclarator:
		add(n.Name)
		add(n.Init)
	case *FuncDecl:
		add(n.Name)
		for _, p := range n.Params {
			add(p)
		}
		add(n.Body)
	case *BlockStmt:
		for _, s := range n.Stmts {
			add(s)
		}
	case *ExprStmt:
		add(n.X)
	case *IfStmt:
		add(n.Cond)
		add(n.Then)
		add(n.Else)
	case *WhileStmt:
		add(n.Cond)
		add(n.Body)
	case *DoWhileStmt:
		add(n.Body)
		add(n.Cond)
	case *ForStmt:
		add(n.Init)
		add(n.Cond)
		add(n.Post)
		add(n.Body)
	case *SwitchStmt:
		add(n.Tag)
		for _, c := range n.Clauses {
			add(c)
		}
	case *CaseClause:
		add(n.Expr)
		for _, s := range n.Body {
			add(s)
		}
	case *DefaultClause:
		for _, s := range n.Body {
			add(s)
		}
	case *BreakStmt:
		add(n.Label)
	case *ContinueStmt:
		add(n.Label)
	case *ReturnStmt:
		add(n.Result)
	case *ThrowStmt:
		add(n.X)
	case *BinaryExpr:
		add(n.Left)
		add(n.Right)
	case *AssignExpr:
		add(n.Target)
		add(n.Value)
	case *ConditionalExpr:
		add(n.Cond)
		add(n.Then)
		add(n.Else)
	case *UnaryExpr:
		add(n.X)
	case *PostfixExpr:
		add(n.X)
	case *CallExpr:
		add(n.Fun)
		for _, a := range n.Args {
			add(a)
		}
	case *NewExpr:
		add(n.Callee)
		for _, a := range n.Args {
			add(a)
		}
	case *MemberExpr:
		add(n.X)
		add(n.Name)
	case *IndexExpr:
		add(n.X)
		add(n.Index)
	case *ParenExpr:
		add(n.X)
	case *ArrayLit:
		for _, e := range n.Elems {
			add(e)
		}
	case *ObjectLit:
		for _, p := range n.Props {
			add(p)
		}
	case *Property:
		add(n.Key)
		add(n.Value)
	case *FuncExpr:
		add(n.Name)
		for _, p := range n.Params {
			add(p)
		}
		add(n.Body)
	default:
		panic(fmt.Sprintf("ast.Children: unexpected node type %T", n))
	}
	return out
}

// isNil отсекает как nil-интерфейс, так и типизированный nil-указатель.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
