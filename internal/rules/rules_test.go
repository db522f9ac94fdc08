package rules_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"caselint/internal/ast"
	"caselint/internal/diag"
	"caselint/internal/fix"
	"caselint/internal/lint"
	"caselint/internal/parser"
	"caselint/internal/rules"
	"caselint/internal/source"
)

// lintSource разбирает input и применяет правило.
func lintSource(t *testing.T, input string) ([]*lint.Failure, []byte, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.js", []byte(input))
	file := fs.Get(id)
	bag := diag.NewBag(0)
	res := parser.ParseFile(file, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	failures := rules.NoSwitchCaseCommaOperator{}.Apply(&lint.File{Source: file, Root: res.Root})
	if failures == nil {
		t.Fatal("Apply must return a non-nil slice")
	}
	return failures, file.Content, bag
}

// applyFixes применяет все фиксы сразу к исходному тексту.
func applyFixes(t *testing.T, content []byte, failures []*lint.Failure) string {
	t.Helper()
	var edits []fix.TextEdit
	for _, f := range failures {
		if f.Fix() == nil {
			t.Fatalf("failure at %s has no fix", f.Span())
		}
		edits = append(edits, f.Fix().Edits()...)
	}
	out, err := fix.ApplyEdits(content, edits)
	if err != nil {
		t.Fatalf("ApplyEdits: %v", err)
	}
	return string(out)
}

func TestIsCommaExpression(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"a, b;", true},
		{"a, b, c;", true},
		{"f(a), g(b);", true},
		{"a + b;", false},
		{"a || b;", false},
		{"(a, b);", false},
		{"a = b;", false},
		{"f(a, b);", false},
		{"[a, b];", false},
		{"a;", false},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			fs := source.NewFileSet()
			res := parser.ParseFile(fs.Get(fs.AddVirtual("e.js", []byte(tt.src))), parser.Options{})
			stmt, ok := res.Root.Stmts[0].(*ast.ExprStmt)
			if !ok {
				t.Fatalf("expected expression statement, got %s", res.Root.Stmts[0].Kind())
			}
			if got := rules.IsCommaExpression(stmt.X); got != tt.want {
				t.Fatalf("IsCommaExpression(%q) = %v, want %v", tt.src, got, tt.want)
			}
		})
	}

	if rules.IsCommaExpression(nil) {
		t.Error("nil must not be a comma expression")
	}
	if rules.IsCommaExpression((*ast.BinaryExpr)(nil)) {
		t.Error("typed nil must not be a comma expression")
	}
	if !rules.IsCommaExpression(&ast.BinaryExpr{Op: ast.BinaryComma}) {
		t.Error("bare comma node must match")
	}
	if rules.IsCommaExpression(&ast.Ident{Name: "a"}) {
		t.Error("identifier must not match")
	}
}

func TestNoCommaNoFailures(t *testing.T) {
	inputs := []string{
		"",
		"var x = (a, b);",
		"switch (x) {}",
		"switch (x) { case 1: f(); break; default: g(); }",
		"switch (x) { case a + b: case a || b: case f(a, b): case [a, b]: case (a, b): }",
		"switch (a, b) { case 1: }",
		"for (i = 0, j = 1; i < j; i++, j--) {}",
	}
	for _, input := range inputs {
		failures, _, bag := lintSource(t, input)
		if bag.Len() != 0 {
			t.Fatalf("%q: unexpected diagnostics %v", input, bag.Items())
		}
		if len(failures) != 0 {
			t.Errorf("%q: expected no failures, got %d", input, len(failures))
		}
	}
}

func TestSplitsTwoValues(t *testing.T) {
	input := "switch (foo) {\n" +
		"    case 0, 1:\n" +
		"        someFunc(foo);\n" +
		"    case 2:\n" +
		"        someOtherFunc(foo);\n" +
		"}\n"
	want := "switch (foo) {\n" +
		"    case 0:\n" +
		"    case 1:\n" +
		"        someFunc(foo);\n" +
		"    case 2:\n" +
		"        someOtherFunc(foo);\n" +
		"}\n"

	failures, content, _ := lintSource(t, input)
	if len(failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(failures))
	}
	f := failures[0]
	if f.RuleName() != rules.NoSwitchCaseCommaOperatorName || f.Message() != rules.NoSwitchCaseCommaOperatorFailure {
		t.Fatalf("unexpected failure %s: %s", f.RuleName(), f.Message())
	}
	if got := string(content[f.Span().Start:f.Span().End]); got != "0, 1" {
		t.Fatalf("failure span covers %q, want the comma expression", got)
	}
	if got := applyFixes(t, content, failures); got != want {
		t.Fatalf("fixed text mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestSplitsThreeValues(t *testing.T) {
	input := "switch (x) {\n\tcase a, b, c:\n\t\treturn 1;\n}\n"
	want := "switch (x) {\n\tcase a:\n\tcase b:\n\tcase c:\n\t\treturn 1;\n}\n"

	failures, content, _ := lintSource(t, input)
	if len(failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(failures))
	}
	if got := applyFixes(t, content, failures); got != want {
		t.Fatalf("fixed text mismatch:\n got: %q\nwant: %q", got, want)
	}
	edits := failures[0].Fix().Edits()
	if len(edits) != 2 || edits[0].Kind != fix.EditDelete || edits[1].Kind != fix.EditInsert {
		t.Fatalf("expected delete+insert, got %v", edits)
	}
}

func TestChainProducesOneLabelPerOperand(t *testing.T) {
	for n := 2; n <= 6; n++ {
		values := make([]string, n)
		for i := range values {
			values[i] = "v" + string(rune('a'+i))
		}
		input := "switch (x) {\n  case " + strings.Join(values, ", ") + ":\n    go();\n}"
		failures, content, _ := lintSource(t, input)
		if len(failures) != 1 {
			t.Fatalf("n=%d: expected 1 failure, got %d", n, len(failures))
		}
		fixed := applyFixes(t, content, failures)
		if got := strings.Count(fixed, "case "); got != n {
			t.Fatalf("n=%d: %d case labels in %q", n, got, fixed)
		}
		last := -1
		for _, v := range values {
			idx := strings.Index(fixed, "case "+v+":")
			if idx <= last {
				t.Fatalf("n=%d: label %s out of order in %q", n, v, fixed)
			}
			last = idx
		}
		again, _, _ := lintSource(t, fixed)
		if len(again) != 0 {
			t.Fatalf("n=%d: fixed text still has %d failures", n, len(again))
		}
	}
}

func TestFixIsIdempotent(t *testing.T) {
	input := "function f(x) {\n  switch (x) {\n    case 1, 2, 3:\n      return 'low';\n    case 4, 5:\n      return 'high';\n    default:\n      return '';\n  }\n}\n"
	failures, content, _ := lintSource(t, input)
	if len(failures) != 2 {
		t.Fatalf("expected 2 failures, got %d", len(failures))
	}
	fixed := applyFixes(t, content, failures)
	again, fixedContent, bag := lintSource(t, fixed)
	if bag.Len() != 0 {
		t.Fatalf("fixed text does not parse: %v", bag.Items())
	}
	if len(again) != 0 {
		t.Fatalf("expected no failures after fix, got %d", len(again))
	}
	if string(fixedContent) != fixed {
		t.Fatal("content snapshot changed")
	}
}

func TestNestedSwitchesReportIndependently(t *testing.T) {
	input := "switch (a) {\n" +
		"  case 1, 2:\n" +
		"    switch (b) {\n" +
		"      case 3, 4:\n" +
		"        break;\n" +
		"    }\n" +
		"    break;\n" +
		"  case 5:\n" +
		"    switch (c) { case 6, 7: }\n" +
		"}\n"
	failures, content, _ := lintSource(t, input)
	if len(failures) != 3 {
		t.Fatalf("expected 3 failures, got %d", len(failures))
	}
	var spans []string
	for _, f := range failures {
		spans = append(spans, string(content[f.Span().Start:f.Span().End]))
	}
	if strings.Join(spans, "|") != "1, 2|3, 4|6, 7" {
		t.Fatalf("failures in unexpected order: %v", spans)
	}
	fixed := applyFixes(t, content, failures)
	for _, label := range []string{"  case 1:\n  case 2:", "      case 3:\n      case 4:", "{ case 6: case 7: }"} {
		if !strings.Contains(fixed, label) {
			t.Errorf("fixed text lacks %q:\n%s", label, fixed)
		}
	}
}

func TestDefaultClauseNeverFlagged(t *testing.T) {
	failures, _, _ := lintSource(t, "switch (x) { default: a, b; case 1, 2: }")
	if len(failures) != 1 {
		t.Fatalf("expected only the case clause, got %d failures", len(failures))
	}
}

func TestCommaInBodyNotFlagged(t *testing.T) {
	failures, _, _ := lintSource(t, "switch (x) { case 1: a, b; }")
	if len(failures) != 0 {
		t.Fatalf("comma in clause body flagged: %d", len(failures))
	}
}

func TestFixKeepsOperandComments(t *testing.T) {
	failures, content, _ := lintSource(t, "switch (x) {\n  case /* zero */ 0, /* one */ 1:\n}")
	fixed := applyFixes(t, content, failures)
	want := "switch (x) {\n  case /* zero */ 0:\n  case /* one */ 1:\n}"
	if fixed != want {
		t.Fatalf("got %q, want %q", fixed, want)
	}
}

func TestMissingColonHasNoFix(t *testing.T) {
	failures, _, bag := lintSource(t, "switch (x) { case a, b }")
	if !bag.HasErrors() {
		t.Fatal("expected a syntax error")
	}
	if len(failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(failures))
	}
	if failures[0].Fix() != nil {
		t.Fatal("malformed clause must not carry a fix")
	}
}

func TestMetadata(t *testing.T) {
	md := rules.NoSwitchCaseCommaOperator{}.Metadata()
	if md.RuleName != "no-switch-case-comma-operator" {
		t.Errorf("RuleName = %q", md.RuleName)
	}
	if md.Description != "Disallows comma operator in case clauses" {
		t.Errorf("Description = %q", md.Description)
	}
	if md.OptionsDescription != "Not configurable." || md.Options != nil {
		t.Errorf("options = %q %v", md.OptionsDescription, md.Options)
	}
	if len(md.OptionExamples) != 1 || md.OptionExamples[0] != "true" {
		t.Errorf("OptionExamples = %v", md.OptionExamples)
	}
	if md.Type != lint.TypeFunctionality || md.TypeScriptOnly {
		t.Errorf("Type = %q", md.Type)
	}
	if !strings.Contains(md.DescriptionDetails, "case 0, 1:") || md.Rationale == "" {
		t.Error("extended description must carry the example")
	}

	names := rules.Registry().Names()
	if len(names) != 1 || names[0] != md.RuleName {
		t.Fatalf("registry names = %v", names)
	}
}

func TestRunnerFixesFilesOnDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "switch.js")
	input := "switch (x) {\r\n  case 'a', 'b':\r\n    y();\r\n}\r\n"
	if err := os.WriteFile(path, []byte(input), 0o600); err != nil {
		t.Fatal(err)
	}

	selected, err := rules.Registry().Select(map[string]string{rules.NoSwitchCaseCommaOperatorName: "warning"})
	if err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSetWithBase(dir)
	results, err := lint.NewRunner(selected, lint.Options{}).Run(context.Background(), fs, []string{path})
	if err != nil {
		t.Fatal(err)
	}
	sum := lint.Summarize(results)
	if sum.Failures != 1 || sum.Warnings != 1 || sum.Fixable != 1 || sum.Failed() {
		t.Fatalf("summary = %+v", sum)
	}

	if _, err := fix.Apply(fs, lint.AllFailures(results), fix.ApplyOptions{Mode: fix.ApplyModeAll}); err != nil {
		t.Fatal(err)
	}
	got, _ := os.ReadFile(path)
	want := "switch (x) {\r\n  case 'a':\r\n  case 'b':\r\n    y();\r\n}\r\n"
	if string(got) != want {
		t.Fatalf("file = %q, want %q", got, want)
	}
}
