package ast

// Kind tags every concrete node type.
type Kind uint8

const (
	KindInvalid Kind = iota

	KindSourceFile
	KindBadStmt
	KindBadExpr

	// Операторы
	KindVarDecl
	KindVarDeclarator
	KindFuncDecl
	KindBlockStmt
	KindEmptyStmt
	KindExprStmt
	KindIfStmt
	KindWhileStmt
	KindDoWhileStmt
	KindForStmt
	KindSwitchStmt
	KindCaseClause
	KindDefaultClause
	KindBreakStmt
	KindContinueStmt
	KindReturnStmt
	KindThrowStmt

	// Выражения
	KindIdent
	KindLiteral
	KindBinaryExpr
	KindAssignExpr
	KindConditionalExpr
	KindUnaryExpr
	KindPostfixExpr
	KindCallExpr
	KindNewExpr
	KindMemberExpr
	KindIndexExpr
	KindParenExpr
	KindArrayLit
	KindObjectLit
	KindProperty
	KindFuncExpr

	kindCount
)

var kindNames = [...]string{
	KindInvalid:         "Invalid",
	KindSourceFile:      "SourceFile",
	KindBadStmt:         "BadStmt",
	KindBadExpr:         "BadExpr",
	KindVarDecl:         "VarDecl",
	KindVarDeclarator:   "VarDeclarator",
	KindFuncDecl:        "FuncDecl",
	KindBlockStmt:       "BlockStmt",
	KindEmptyStmt:       "EmptyStmt",
	KindExprStmt:        "ExprStmt",
	KindIfStmt:          "IfStmt",
	KindWhileStmt:       "WhileStmt",
	KindDoWhileStmt:     "DoWhileStmt",
	KindForStmt:         "ForStmt",
	KindSwitchStmt:      "SwitchStmt",
	KindCaseClause:      "CaseClause",
	KindDefaultClause:   "DefaultClause",
	KindBreakStmt:       "BreakStmt",
	KindContinueStmt:    "ContinueStmt",
	KindReturnStmt:      "ReturnStmt",
	KindThrowStmt:       "ThrowStmt",
	KindIdent:           "Ident",
	KindLiteral:         "Literal",
	KindBinaryExpr:      "BinaryExpr",
	KindAssignExpr:      "AssignExpr",
	KindConditionalExpr: "ConditionalExpr",
	KindUnaryExpr:       "UnaryExpr",
	KindPostfixExpr:     "PostfixExpr",
	KindCallExpr:        "CallExpr",
	KindNewExpr:         "NewExpr",
	KindMemberExpr:      "MemberExpr",
	KindIndexExpr:       "IndexExpr",
	KindParenExpr:       "ParenExpr",
	KindArrayLit:        "ArrayLit",
	KindObjectLit:       "ObjectLit",
	KindProperty:        "Property",
	KindFuncExpr:        "FuncExpr",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// Kinds returns every valid node kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindSourceFile; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}
