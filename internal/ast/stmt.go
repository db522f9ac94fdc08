package ast

import (
	"caselint/internal/source"
	"caselint/internal/token"
)

// SourceFile is the root of a parsed file.
type SourceFile struct {
	Base
	Stmts []Stmt
	// EOF is the end-of-file token; its leading trivia holds trailing comments.
	EOF token.Token
}

// BadStmt marks a statement the parser could not recognise.
type BadStmt struct {
	Base
}

// VarDecl: var/let/const a = 1, b;
type VarDecl struct {
	Base
	Keyword token.Kind
	Decls   []*VarDeclarator
}

type VarDeclarator struct {
	Base
	Name *Ident
	Init Expr // nil без инициализатора
}

type FuncDecl struct {
	Base
	Name   *Ident
	Params []*Ident
	Body   *BlockStmt
}

type BlockStmt struct {
	Base
	Stmts []Stmt
}

type EmptyStmt struct {
	Base
}

type ExprStmt struct {
	Base
	X Expr
}

type IfStmt struct {
	Base
	Cond Expr
	Then Stmt
	Else Stmt // nil без else
}

type WhileStmt struct {
	Base
	Cond Expr
	Body Stmt
}

type DoWhileStmt struct {
	Base
	Body Stmt
	Cond Expr
}

// ForStmt is the classic three-part loop. Init is a *VarDecl, an Expr or nil.
type ForStmt struct {
	Base
	Init Node
	Cond Expr
	Post Expr
	Body Stmt
}

// SwitchStmt: switch (Tag) { Clauses }.
type SwitchStmt struct {
	Base
	Tag     Expr
	Clauses []Clause
}

// CaseClause: case Expr: Body.
// Expr is nil when the parser found no expression. Colon is the zero span
// when the colon is missing; BodyPos is then the end of Expr.
type CaseClause struct {
	Base
	Expr    Expr
	Colon   source.Span
	Body    []Stmt
	BodyPos uint32 // full start of the statement list (= end of colon)
}

// HasColon reports whether the clause was terminated by ':'.
func (c *CaseClause) HasColon() bool {
	return c.Colon.End > c.Colon.Start
}

type DefaultClause struct {
	Base
	Colon   source.Span
	Body    []Stmt
	BodyPos uint32
}

type BreakStmt struct {
	Base
	Label *Ident
}

type ContinueStmt struct {
	Base
	Label *Ident
}

type ReturnStmt struct {
	Base
	Result Expr
}

type ThrowStmt struct {
	Base
	X Expr
}

func (*SourceFile) Kind() Kind    { return KindSourceFile }
func (*BadStmt) Kind() Kind       { return KindBadStmt }
func (*VarDecl) Kind() Kind       { return KindVarDecl }
func (*VarDeclarator) Kind() Kind { return KindVarDeclarator }
func (*FuncDecl) Kind() Kind      { return KindFuncDecl }
func (*BlockStmt) Kind() Kind     { return KindBlockStmt }
func (*EmptyStmt) Kind() Kind     { return KindEmptyStmt }
func (*ExprStmt) Kind() Kind      { return KindExprStmt }
func (*IfStmt) Kind() Kind        { return KindIfStmt }
func (*WhileStmt) Kind() Kind     { return KindWhileStmt }
func (*DoWhileStmt) Kind() Kind   { return KindDoWhileStmt }
func (*ForStmt) Kind() Kind       { return KindForStmt }
func (*SwitchStmt) Kind() Kind    { return KindSwitchStmt }
func (*CaseClause) Kind() Kind    { return KindCaseClause }
func (*DefaultClause) Kind() Kind { return KindDefaultClause }
func (*BreakStmt) Kind() Kind     { return KindBreakStmt }
func (*ContinueStmt) Kind() Kind  { return KindContinueStmt }
func (*ReturnStmt) Kind() Kind    { return KindReturnStmt }
func (*ThrowStmt) Kind() Kind     { return KindThrowStmt }

func (*BadStmt) stmtNode()      {}
func (*VarDecl) stmtNode()      {}
func (*FuncDecl) stmtNode()     {}
func (*BlockStmt) stmtNode()    {}
func (*EmptyStmt) stmtNode()    {}
func (*ExprStmt) stmtNode()     {}
func (*IfStmt) stmtNode()       {}
func (*WhileStmt) stmtNode()    {}
func (*DoWhileStmt) stmtNode()  {}
func (*ForStmt) stmtNode()      {}
func (*SwitchStmt) stmtNode()   {}
func (*BreakStmt) stmtNode()    {}
func (*ContinueStmt) stmtNode() {}
func (*ReturnStmt) stmtNode()   {}
func (*ThrowStmt) stmtNode()    {}

func (*CaseClause) clauseNode()    {}
func (*DefaultClause) clauseNode() {}
