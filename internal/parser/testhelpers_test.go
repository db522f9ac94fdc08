package parser_test

import (
	"testing"

	"caselint/internal/ast"
	"caselint/internal/diag"
	"caselint/internal/parser"
	"caselint/internal/source"
	"caselint/internal/walk"
)

// parseSource разбирает строку как виртуальный файл и возвращает дерево и диагностики.
func parseSource(t *testing.T, input string) (*ast.SourceFile, *diag.Bag, []byte) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.js", []byte(input))
	bag := diag.NewBag(0)
	res := parser.ParseFile(fs.Get(id), parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if res.Root == nil {
		t.Fatal("ParseFile returned nil root")
	}
	return res.Root, bag, fs.Get(id).Content
}

// parseClean ожидает разбор без диагностик.
func parseClean(t *testing.T, input string) (*ast.SourceFile, []byte) {
	t.Helper()
	root, bag, content := parseSource(t, input)
	if bag.Len() != 0 {
		for _, d := range bag.Items() {
			t.Errorf("unexpected diagnostic %s at %s: %s", d.Code.ID(), d.Primary, d.Message)
		}
		t.FailNow()
	}
	return root, content
}

// exprOf разбирает одно выражение-оператор.
func exprOf(t *testing.T, input string) (ast.Expr, []byte) {
	t.Helper()
	root, content := parseClean(t, input)
	if len(root.Stmts) != 1 {
		t.Fatalf("expected one statement, got %d", len(root.Stmts))
	}
	es, ok := root.Stmts[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("expected ExprStmt, got %T", root.Stmts[0])
	}
	return es.X, content
}

// firstOf ищет первый узел типа T в пре-порядке.
func firstOf[T ast.Node](root ast.Node) (T, bool) {
	var found T
	ok := false
	walk.Inspect(root, func(n ast.Node) bool {
		if ok {
			return false
		}
		found, ok = n.(T)
		return !ok
	})
	return found, ok
}

// checkSpans проверяет инварианты дерева: дети внутри родителя, соседи
// не пересекаются и идут по возрастанию, FullStart <= Start.
func checkSpans(t *testing.T, root ast.Node) {
	t.Helper()
	walk.Inspect(root, func(n ast.Node) bool {
		sp := n.Span()
		if n.FullStart() > sp.Start || sp.Start > sp.End {
			t.Errorf("%s: bad positions full=%d span=%s", n.Kind(), n.FullStart(), sp)
		}
		var prevEnd uint32
		for i, c := range ast.Children(n) {
			cs := c.Span()
			if cs.Start < sp.Start || cs.End > sp.End {
				t.Errorf("%s child %s %s escapes parent %s", n.Kind(), c.Kind(), cs, sp)
			}
			if i > 0 && cs.Start < prevEnd {
				t.Errorf("%s child %s %s overlaps previous sibling ending at %d", n.Kind(), c.Kind(), cs, prevEnd)
			}
			prevEnd = cs.End
		}
		return true
	})
}
