package rules

import "caselint/internal/ast"

// IsCommaExpression reports whether n is a binary expression joined by the
// comma operator. Nil and every other node shape yield false.
func IsCommaExpression(n ast.Node) bool {
	b, ok := n.(*ast.BinaryExpr)
	return ok && b != nil && b.Op == ast.BinaryComma
}

// commaOperands flattens a left-associative comma chain into its operands
// in source order: ((a, b), c) -> [a b c].
func commaOperands(e ast.Expr) []ast.Expr {
	var rights []ast.Expr
	for IsCommaExpression(e) {
		b := e.(*ast.BinaryExpr)
		rights = append(rights, b.Right)
		e = b.Left
	}
	out := make([]ast.Expr, 0, len(rights)+1)
	out = append(out, e)
	for i := len(rights) - 1; i >= 0; i-- {
		out = append(out, rights[i])
	}
	return out
}
