package rules

import (
	"strings"

	"caselint/internal/ast"
	"caselint/internal/fix"
	"caselint/internal/lint"
	"caselint/internal/walk"
)

const (
	// NoSwitchCaseCommaOperatorName is the rule name used in configuration.
	NoSwitchCaseCommaOperatorName = "no-switch-case-comma-operator"
	// NoSwitchCaseCommaOperatorFailure is the message of every failure.
	NoSwitchCaseCommaOperatorFailure = "Do not use comma operator in case clauses. Create case clause for each option instead."
)

// NoSwitchCaseCommaOperator flags `case a, b:` labels. The comma operator
// evaluates to its right operand, so such a clause only ever matches the
// last value. The fix splits the label into one clause per operand.
type NoSwitchCaseCommaOperator struct{}

func (NoSwitchCaseCommaOperator) Metadata() lint.Metadata {
	return lint.Metadata{
		RuleName:    NoSwitchCaseCommaOperatorName,
		Description: "Disallows comma operator in case clauses",
		DescriptionDetails: "The comma operator is disallowed in case clauses because the result is rarely what was meant.\n\n" +
			"For example, the following is not allowed:\n\n" +
			"```ts\n" +
			"switch (foo) {\n" +
			"    case 0, 1:\n" +
			"        someFunc(foo);\n" +
			"    case 2:\n" +
			"        someOtherFunc(foo);\n" +
			"}\n" +
			"```\n\n" +
			"Here `foo = 0` never matches: the comma operator returns the value of its right operand.",
		Rationale:          "The comma operator silently discards every operand but the last one in a case label.",
		OptionsDescription: "Not configurable.",
		Options:            nil,
		OptionExamples:     []string{"true"},
		Type:               lint.TypeFunctionality,
		HasFix:             true,
	}
}

// Apply reports one failure per case clause whose expression is a comma
// expression, including clauses of nested switches.
func (NoSwitchCaseCommaOperator) Apply(file *lint.File) []*lint.Failure {
	failures := make([]*lint.Failure, 0)
	if file == nil || file.Root == nil {
		return failures
	}
	content := file.Source.Content

	w := walk.New()
	walk.Visit(w, func(sw *ast.SwitchStmt) walk.Decision {
		for _, clause := range sw.Clauses {
			cc, ok := clause.(*ast.CaseClause)
			if !ok || !IsCommaExpression(cc.Expr) {
				continue
			}
			failures = append(failures, lint.NewFailure(
				NoSwitchCaseCommaOperatorName,
				NoSwitchCaseCommaOperatorFailure,
				cc.Expr.Span(),
				splitCaseClause(cc, content),
			))
		}
		// вложенные switch проверяются своим вызовом хука
		return walk.Continue
	})
	w.Walk(file.Root)
	return failures
}

// splitCaseClause rewrites `case a, b, c:` into one label per operand,
// joined by the clause's own leading trivia so every new label keeps the
// original indentation. Malformed clauses get no fix.
func splitCaseClause(cc *ast.CaseClause, content []byte) *fix.Fix {
	if !cc.HasColon() {
		return nil
	}
	operands := commaOperands(cc.Expr)
	labels := make([]string, 0, len(operands))
	for _, op := range operands {
		if op == nil || op.Kind() == ast.KindBadExpr {
			return nil
		}
		labels = append(labels, "case "+strings.TrimSpace(ast.FullText(op, content))+":")
	}

	padding := ast.LeadingTrivia(cc, content)
	start := cc.Span().Start
	return fix.New(NoSwitchCaseCommaOperatorName, []fix.TextEdit{
		fix.Delete(start, cc.BodyPos-start),
		fix.Insert(start, strings.Join(labels, padding)),
	}, fix.WithTitle("Split into one case clause per value"))
}
