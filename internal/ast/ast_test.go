package ast_test

import (
	"bytes"
	"strings"
	"testing"

	"caselint/internal/ast"
	"caselint/internal/source"
	"caselint/internal/token"
)

func sp(start, end uint32) source.Span { return source.Span{Start: start, End: end} }

// sampleNodes returns one instance of every node kind.
func sampleNodes() []ast.Node {
	id := &ast.Ident{Base: ast.At(sp(0, 1), 0), Name: "a"}
	lit := &ast.Literal{Base: ast.At(sp(2, 3), 2), Tok: token.NumberLit, Value: "1"}
	block := &ast.BlockStmt{Base: ast.At(sp(0, 2), 0)}
	return []ast.Node{
		&ast.SourceFile{},
		&ast.BadStmt{},
		&ast.BadExpr{},
		&ast.VarDecl{Keyword: token.KwLet, Decls: []*ast.VarDeclarator{{Name: id}}},
		&ast.VarDeclarator{Name: id, Init: lit},
		&ast.FuncDecl{Name: id, Params: []*ast.Ident{id}, Body: block},
		block,
		&ast.EmptyStmt{},
		&ast.ExprStmt{X: id},
		&ast.IfStmt{Cond: id, Then: block},
		&ast.WhileStmt{Cond: id, Body: block},
		&ast.DoWhileStmt{Body: block, Cond: id},
		&ast.ForStmt{Body: block},
		&ast.SwitchStmt{Tag: id},
		&ast.CaseClause{Expr: lit},
		&ast.DefaultClause{},
		&ast.BreakStmt{},
		&ast.ContinueStmt{},
		&ast.ReturnStmt{},
		&ast.ThrowStmt{X: id},
		id,
		lit,
		&ast.BinaryExpr{Op: ast.BinaryComma, Left: id, Right: lit},
		&ast.AssignExpr{Op: token.Assign, Target: id, Value: lit},
		&ast.ConditionalExpr{Cond: id, Then: lit, Else: lit},
		&ast.UnaryExpr{Op: token.Bang, X: id},
		&ast.PostfixExpr{Op: token.PlusPlus, X: id},
		&ast.CallExpr{Fun: id, Args: []ast.Expr{lit}},
		&ast.NewExpr{Callee: id},
		&ast.MemberExpr{X: id, Name: id},
		&ast.IndexExpr{X: id, Index: lit},
		&ast.ParenExpr{X: id},
		&ast.ArrayLit{Elems: []ast.Expr{lit}},
		&ast.ObjectLit{Props: []*ast.Property{{Key: id}}},
		&ast.Property{Key: id, Value: lit},
		&ast.FuncExpr{Body: block},
	}
}

func TestChildrenCoversEveryKind(t *testing.T) {
	seen := make(map[ast.Kind]bool)
	for _, n := range sampleNodes() {
		seen[n.Kind()] = true
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Children(%s) panicked: %v", n.Kind(), r)
				}
			}()
			for _, c := range ast.Children(n) {
				if c == nil {
					t.Errorf("Children(%s) returned nil child", n.Kind())
				}
			}
		}()
	}
	for _, k := range ast.Kinds() {
		if !seen[k] {
			t.Errorf("kind %s has no sample node", k)
		}
		if k.String() == "Unknown" {
			t.Errorf("kind %d has no name", k)
		}
	}
}

type foreignNode struct{ ast.Base }

func (*foreignNode) Kind() ast.Kind { return ast.KindInvalid }

func TestChildrenPanicsOnUnknownNode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown node type")
		}
	}()
	ast.Children(&foreignNode{})
}

func TestChildrenSkipsAbsentOptionals(t *testing.T) {
	var noElse *ast.BlockStmt
	n := &ast.IfStmt{Cond: &ast.Ident{Name: "x"}, Then: &ast.EmptyStmt{}, Else: noElse}
	if got := len(ast.Children(n)); got != 2 {
		t.Fatalf("children = %d, want 2", got)
	}
	if got := len(ast.Children(&ast.CaseClause{})); got != 0 {
		t.Fatalf("case clause without expr has %d children", got)
	}
}

func TestKindOnNilPointer(t *testing.T) {
	var sw *ast.SwitchStmt
	var bin *ast.BinaryExpr
	if sw.Kind() != ast.KindSwitchStmt || bin.Kind() != ast.KindBinaryExpr {
		t.Fatal("Kind must not dereference the receiver")
	}
}

func TestFullText(t *testing.T) {
	content := []byte("switch (x) {\n  case 1:\n}")
	clause := &ast.CaseClause{Base: ast.At(sp(15, 22), 12)}
	if got := ast.FullText(clause, content); got != "\n  case 1:" {
		t.Errorf("FullText = %q", got)
	}
	if got := ast.Text(clause, content); got != "case 1:" {
		t.Errorf("Text = %q", got)
	}
	if got := ast.LeadingTrivia(clause, content); got != "\n  " {
		t.Errorf("LeadingTrivia = %q", got)
	}
	far := &ast.Ident{Base: ast.At(sp(20, 99), 20)}
	if got := ast.Text(far, content); got != "1:\n}" {
		t.Errorf("clamped Text = %q", got)
	}
}

func TestAtClampsFullStart(t *testing.T) {
	b := ast.At(sp(5, 6), 9)
	if b.FullStart() != 5 {
		t.Fatalf("FullStart = %d, want 5", b.FullStart())
	}
}

func TestBinaryOpString(t *testing.T) {
	if ast.BinaryComma.String() != "," || ast.BinaryStrictEq.String() != "===" || ast.BinaryIn.String() != "in" {
		t.Fatal("unexpected operator text")
	}
}

func TestDump(t *testing.T) {
	content := []byte("a, 1")
	a := &ast.Ident{Base: ast.At(sp(0, 1), 0), Name: "a"}
	one := &ast.Literal{Base: ast.At(sp(3, 4), 2), Tok: token.NumberLit, Value: "1"}
	bin := &ast.BinaryExpr{Base: ast.At(sp(0, 4), 0), Op: ast.BinaryComma, Left: a, Right: one}
	var buf bytes.Buffer
	if err := ast.Dump(&buf, bin, content); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		`BinaryExpr [0..4) op=","`,
		`  Ident [0..1) a`,
		`  Literal [3..4) 1`,
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("Dump =\n%s\nwant\n%s", buf.String(), want)
	}
}
