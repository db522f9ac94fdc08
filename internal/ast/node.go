package ast

import "caselint/internal/source"

// Node is implemented by every syntax tree node.
type Node interface {
	Kind() Kind
	Span() source.Span
	FullStart() uint32
	base() *Base
}

// Expr is a node that can appear in expression position.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a node that can appear in a statement list.
type Stmt interface {
	Node
	stmtNode()
}

// Clause is either a *CaseClause or a *DefaultClause.
type Clause interface {
	Node
	clauseNode()
}

// Base carries the position shared by all nodes.
type Base struct {
	Loc  source.Span
	Full uint32
}

// At builds a Base for a node covering span whose leading trivia starts at full.
func At(span source.Span, full uint32) Base {
	if full > span.Start {
		full = span.Start
	}
	return Base{Loc: span, Full: full}
}

func (b *Base) Span() source.Span { return b.Loc }
func (b *Base) FullStart() uint32 { return b.Full }
func (b *Base) base() *Base       { return b }
