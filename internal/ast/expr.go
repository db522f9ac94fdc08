package ast

import (
	"caselint/internal/source"
	"caselint/internal/token"
)

// BinaryOp enumerates binary operator kinds.
type BinaryOp uint8

const (
	BinaryInvalid BinaryOp = iota
	// BinaryComma is the sequence operator: evaluates both operands, yields the right one.
	BinaryComma
	BinaryOrOr
	BinaryAndAnd
	BinaryBitOr
	BinaryBitXor
	BinaryBitAnd
	BinaryEq
	BinaryNotEq
	BinaryStrictEq
	BinaryStrictNotEq
	BinaryLt
	BinaryLtEq
	BinaryGt
	BinaryGtEq
	BinaryInstanceof
	BinaryIn
	BinaryShl
	BinaryShr
	BinaryUShr
	BinaryAdd
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryMod
)

var binaryOpText = [...]string{
	BinaryInvalid:     "?",
	BinaryComma:       ",",
	BinaryOrOr:        "||",
	BinaryAndAnd:      "&&",
	BinaryBitOr:       "|",
	BinaryBitXor:      "^",
	BinaryBitAnd:      "&",
	BinaryEq:          "==",
	BinaryNotEq:       "!=",
	BinaryStrictEq:    "===",
	BinaryStrictNotEq: "!==",
	BinaryLt:          "<",
	BinaryLtEq:        "<=",
	BinaryGt:          ">",
	BinaryGtEq:        ">=",
	BinaryInstanceof:  "instanceof",
	BinaryIn:          "in",
	BinaryShl:         "<<",
	BinaryShr:         ">>",
	BinaryUShr:        ">>>",
	BinaryAdd:         "+",
	BinarySub:         "-",
	BinaryMul:         "*",
	BinaryDiv:         "/",
	BinaryMod:         "%",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryOpText) {
		return binaryOpText[op]
	}
	return "?"
}

// BadExpr marks an expression the parser could not recognise.
type BadExpr struct {
	Base
}

type Ident struct {
	Base
	Name string
}

// Literal covers numbers, strings, templates, true/false/null and this.
type Literal struct {
	Base
	Tok   token.Kind
	Value string // исходный текст литерала
}

// BinaryExpr: Left Op Right. A chain of commas nests to the left:
// a, b, c is ((a, b), c).
type BinaryExpr struct {
	Base
	Op    BinaryOp
	OpPos source.Span
	Left  Expr
	Right Expr
}

// AssignExpr: Target Op Value, Op is '=' or a compound assignment.
type AssignExpr struct {
	Base
	Op     token.Kind
	Target Expr
	Value  Expr
}

type ConditionalExpr struct {
	Base
	Cond Expr
	Then Expr
	Else Expr
}

// UnaryExpr is a prefix operator: ! ~ + - typeof void delete ++ --.
type UnaryExpr struct {
	Base
	Op token.Kind
	X  Expr
}

// PostfixExpr is x++ or x--.
type PostfixExpr struct {
	Base
	Op token.Kind
	X  Expr
}

type CallExpr struct {
	Base
	Fun  Expr
	Args []Expr
}

// NewExpr: new Callee(Args). HasArgs is false for `new Foo`.
type NewExpr struct {
	Base
	Callee  Expr
	Args    []Expr
	HasArgs bool
}

type MemberExpr struct {
	Base
	X    Expr
	Name *Ident
}

type IndexExpr struct {
	Base
	X     Expr
	Index Expr
}

type ParenExpr struct {
	Base
	X Expr
}

type ArrayLit struct {
	Base
	Elems []Expr
}

type ObjectLit struct {
	Base
	Props []*Property
}

// Property: Key: Value. Shorthand `{a}` has Value == nil.
type Property struct {
	Base
	Key   Expr
	Value Expr
}

type FuncExpr struct {
	Base
	Name   *Ident // nil для анонимной функции
	Params []*Ident
	Body   *BlockStmt
}

func (*BadExpr) Kind() Kind         { return KindBadExpr }
func (*Ident) Kind() Kind           { return KindIdent }
func (*Literal) Kind() Kind         { return KindLiteral }
func (*BinaryExpr) Kind() Kind      { return KindBinaryExpr }
func (*AssignExpr) Kind() Kind      { return KindAssignExpr }
func (*ConditionalExpr) Kind() Kind { return KindConditionalExpr }
func (*UnaryExpr) Kind() Kind       { return KindUnaryExpr }
func (*PostfixExpr) Kind() Kind     { return KindPostfixExpr }
func (*CallExpr) Kind() Kind        { return KindCallExpr }
func (*NewExpr) Kind() Kind         { return KindNewExpr }
func (*MemberExpr) Kind() Kind      { return KindMemberExpr }
func (*IndexExpr) Kind() Kind       { return KindIndexExpr }
func (*ParenExpr) Kind() Kind       { return KindParenExpr }
func (*ArrayLit) Kind() Kind        { return KindArrayLit }
func (*ObjectLit) Kind() Kind       { return KindObjectLit }
func (*Property) Kind() Kind        { return KindProperty }
func (*FuncExpr) Kind() Kind        { return KindFuncExpr }

func (*BadExpr) exprNode()         {}
func (*Ident) exprNode()           {}
func (*Literal) exprNode()         {}
func (*BinaryExpr) exprNode()      {}
func (*AssignExpr) exprNode()      {}
func (*ConditionalExpr) exprNode() {}
func (*UnaryExpr) exprNode()       {}
func (*PostfixExpr) exprNode()     {}
func (*CallExpr) exprNode()        {}
func (*NewExpr) exprNode()         {}
func (*MemberExpr) exprNode()      {}
func (*IndexExpr) exprNode()       {}
func (*ParenExpr) exprNode()       {}
func (*ArrayLit) exprNode()        {}
func (*ObjectLit) exprNode()       {}
func (*FuncExpr) exprNode()        {}
