// Package testkit holds checks shared by parser, rule and fuzz tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"caselint/internal/ast"
	"caselint/internal/fix"
	"caselint/internal/lint"
	"caselint/internal/source"
	"caselint/internal/walk"
)

// CheckSpanInvariants walks the tree rooted at root and checks that:
// 1) every span is ordered and lies within the file content
// 2) leading trivia never starts after the node
// 3) every child lies within its parent
func CheckSpanInvariants(root ast.Node, sf *source.File) error {
	if root == nil || sf == nil {
		return fmt.Errorf("nil root or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	var firstErr error
	walk.Inspect(root, func(n ast.Node) bool {
		if firstErr == nil {
			firstErr = checkNode(n, sf.ID, lenContent)
		}
		return firstErr == nil
	})
	return firstErr
}

func checkNode(n ast.Node, file source.FileID, lenContent uint32) error {
	sp := n.Span()
	if sp.File != file {
		return fmt.Errorf("%s: span points to file %d, want %d", n.Kind(), sp.File, file)
	}
	if sp.End < sp.Start {
		return fmt.Errorf("%s: reversed span %v", n.Kind(), sp)
	}
	if sp.End > lenContent {
		return fmt.Errorf("%s: span end beyond content: %d > %d", n.Kind(), sp.End, lenContent)
	}
	if n.FullStart() > sp.Start {
		return fmt.Errorf("%s: full start %d after start %d", n.Kind(), n.FullStart(), sp.Start)
	}
	for _, c := range ast.Children(n) {
		if csp := c.Span(); csp.Start < sp.Start || csp.End > sp.End {
			return fmt.Errorf("%s %v escapes parent %s %v", c.Kind(), csp, n.Kind(), sp)
		}
	}
	return nil
}

// CheckFailures checks that every failure points into sf and that its fix,
// if any, applies cleanly to the content.
func CheckFailures(failures []*lint.Failure, sf *source.File) error {
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	for _, f := range failures {
		sp := f.Span()
		if sp.File != sf.ID || sp.End < sp.Start || sp.End > lenContent {
			return fmt.Errorf("%s: bad failure span %v", f.RuleName(), sp)
		}
		if !f.HasFix() {
			continue
		}
		if f.Fix().RuleName() != f.RuleName() {
			return fmt.Errorf("%s: fix belongs to %q", f.RuleName(), f.Fix().RuleName())
		}
		if _, err := fix.ApplyEdits(sf.Content, f.Fix().Edits()); err != nil {
			return fmt.Errorf("%s at %v: %w", f.RuleName(), sp, err)
		}
	}
	return nil
}
