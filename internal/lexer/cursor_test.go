package lexer_test

import (
	"testing"

	"caselint/internal/lexer"
	"caselint/internal/source"
)

func TestCursor(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("c.js", []byte("ab===")))
	c := lexer.NewCursor(f)

	if c.Peek() != 'a' || c.PeekAt(1) != 'b' || c.PeekAt(10) != 0 {
		t.Fatal("unexpected peek results")
	}
	m := c.Mark()
	if !c.Eat('a') || c.Eat('a') {
		t.Fatal("Eat mismatch")
	}
	c.Bump()
	if !c.EatSeq("===") {
		t.Fatal("EatSeq should match")
	}
	if !c.EOF() || c.Bump() != 0 || c.EatSeq("x") {
		t.Fatal("expected EOF")
	}
	if sp := c.SpanFrom(m); sp.Start != 0 || sp.End != 5 {
		t.Fatalf("SpanFrom = %v", sp)
	}
	c.Reset(m)
	if c.Off != 0 || c.EatSeq("abc") {
		t.Fatal("Reset or EatSeq failed")
	}
}
