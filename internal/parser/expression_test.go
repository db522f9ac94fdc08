package parser_test

import (
	"testing"

	"caselint/internal/ast"
	"caselint/internal/token"
)

// render восстанавливает структуру выражения со скобками.
func render(e ast.Expr) string {
	switch e := e.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.Literal:
		return e.Value
	case *ast.BinaryExpr:
		return "(" + render(e.Left) + " " + e.Op.String() + " " + render(e.Right) + ")"
	case *ast.AssignExpr:
		return "(" + render(e.Target) + " " + e.Op.String() + " " + render(e.Value) + ")"
	case *ast.ConditionalExpr:
		return "(" + render(e.Cond) + " ? " + render(e.Then) + " : " + render(e.Else) + ")"
	case *ast.UnaryExpr:
		return "(" + e.Op.String() + " " + render(e.X) + ")"
	case *ast.PostfixExpr:
		return "(" + render(e.X) + " " + e.Op.String() + ")"
	case *ast.ParenExpr:
		return "[" + render(e.X) + "]"
	case *ast.CallExpr:
		s := render(e.Fun) + "("
		for i, a := range e.Args {
			if i > 0 {
				s += "; "
			}
			s += render(a)
		}
		return s + ")"
	case *ast.MemberExpr:
		return render(e.X) + "." + e.Name.Name
	case *ast.IndexExpr:
		return render(e.X) + "{" + render(e.Index) + "}"
	case *ast.NewExpr:
		return "new " + render(e.Callee)
	case *ast.ArrayLit:
		return "array"
	case *ast.ObjectLit:
		return "object"
	case *ast.FuncExpr:
		return "function"
	}
	return "?"
}

func TestExpressionPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a, b, c", "((a , b) , c)"},
		{"a, b, c, d", "(((a , b) , c) , d)"},
		{"a = b, c", "((a = b) , c)"},
		{"a = b = c", "(a = (b = c))"},
		{"a + b * c", "(a + (b * c))"},
		{"a - b - c", "((a - b) - c)"},
		{"a || b && c", "(a || (b && c))"},
		{"a === b || c !== d", "((a === b) || (c !== d))"},
		{"a ? b : c ? d : e", "(a ? b : (c ? d : e))"},
		{"x += y ? 1 : 2", "(x += (y ? 1 : 2))"},
		{"!a && -b", "((! a) && (- b))"},
		{"typeof a == 'string'", "((typeof a) == 'string')"},
		{"a in b instanceof C", "((a in b) instanceof C)"},
		{"a << 1 | b & c ^ d", "((a << 1) | ((b & c) ^ d))"},
		{"i++ + ++j", "((i ++) + (++ j))"},
		{"(a, b)", "[(a , b)]"},
		{"f(a, b), c", "(f(a; b) , c)"},
		{"a.b.c(d)[e]", "a.b.c(d){e}"},
		{"new Foo(a).bar", "new Foo.bar"},
		{"obj.default", "obj.default"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			x, _ := exprOf(t, tt.input+";")
			if got := render(x); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

// Запятая левоассоциативна: правый операнд каждого узла никогда не является
// запятой, а самый левый лист стоит первым в исходнике.
func TestCommaIsLeftAssociative(t *testing.T) {
	x, content := exprOf(t, "w, x, y, z")
	var rights []string
	cur := x
	for {
		bin, ok := cur.(*ast.BinaryExpr)
		if !ok || bin.Op != ast.BinaryComma {
			break
		}
		if r, ok := bin.Right.(*ast.BinaryExpr); ok && r.Op == ast.BinaryComma {
			t.Fatalf("right operand is a comma expression: %s", ast.Text(r, content))
		}
		rights = append([]string{ast.Text(bin.Right, content)}, rights...)
		cur = bin.Left
	}
	operands := append([]string{ast.Text(cur, content)}, rights...)
	want := []string{"w", "x", "y", "z"}
	if len(operands) != len(want) {
		t.Fatalf("operands = %v", operands)
	}
	for i := range want {
		if operands[i] != want[i] {
			t.Fatalf("operands = %v, want %v", operands, want)
		}
	}
}

func TestCommaIsSeparatorInsideLiterals(t *testing.T) {
	x, _ := exprOf(t, "f([1, 2], {a: 1, b: 2}, function (p, q) { return p, q })")
	call := x.(*ast.CallExpr)
	if len(call.Args) != 3 {
		t.Fatalf("args = %d, want 3", len(call.Args))
	}
	arr := call.Args[0].(*ast.ArrayLit)
	if len(arr.Elems) != 2 {
		t.Errorf("array elems = %d", len(arr.Elems))
	}
	obj := call.Args[1].(*ast.ObjectLit)
	if len(obj.Props) != 2 {
		t.Errorf("object props = %d", len(obj.Props))
	}
	fn := call.Args[2].(*ast.FuncExpr)
	if len(fn.Params) != 2 {
		t.Errorf("params = %d", len(fn.Params))
	}
	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	if bin, ok := ret.Result.(*ast.BinaryExpr); !ok || bin.Op != ast.BinaryComma {
		t.Errorf("return value should be a comma expression, got %T", ret.Result)
	}
}

func TestLiteralKinds(t *testing.T) {
	for input, kind := range map[string]token.Kind{
		"1.5":  token.NumberLit,
		"'s'":  token.StringLit,
		"`t`":  token.TemplateLit,
		"true": token.KwTrue,
		"null": token.KwNull,
		"this": token.KwThis,
	} {
		x, _ := exprOf(t, input)
		lit, ok := x.(*ast.Literal)
		if !ok || lit.Tok != kind || lit.Value != input {
			t.Errorf("%s: got %#v", input, x)
		}
	}
}

func TestPostfixNotAcrossNewline(t *testing.T) {
	root, _ := parseClean(t, "a\n++b")
	if len(root.Stmts) != 2 {
		t.Fatalf("statements = %d, want 2", len(root.Stmts))
	}
	if _, ok := root.Stmts[1].(*ast.ExprStmt).X.(*ast.UnaryExpr); !ok {
		t.Fatalf("second statement should be prefix increment")
	}
}

func TestExpressionSpans(t *testing.T) {
	x, content := exprOf(t, "  /* c */ a ,  b")
	if got := ast.Text(x, content); got != "a ,  b" {
		t.Errorf("Text = %q", got)
	}
	if got := ast.FullText(x, content); got != "  /* c */ a ,  b" {
		t.Errorf("FullText = %q", got)
	}
	bin := x.(*ast.BinaryExpr)
	if got := ast.FullText(bin.Right, content); got != "  b" {
		t.Errorf("right FullText = %q", got)
	}
	if got := string(content[bin.OpPos.Start:bin.OpPos.End]); got != "," {
		t.Errorf("OpPos text = %q", got)
	}
}
