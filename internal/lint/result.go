package lint

import (
	"fmt"

	"caselint/internal/diag"
	"caselint/internal/source"
)

// RuleError records a rule that panicked on a file.
type RuleError struct {
	Rule  string
	Path  string
	Value any
	Stack []byte
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %s crashed on %s: %v", e.Rule, e.Path, e.Value)
}

// Result is the outcome of linting one file.
type Result struct {
	Path     string
	FileID   source.FileID
	Failures []*Failure
	// Bag holds load and syntax diagnostics.
	Bag        *diag.Bag
	RuleErrors []*RuleError
	Cached     bool
	// LoadErr is set when the file could not be read; FileID is then invalid.
	LoadErr error
}

// Summary aggregates counts over results.
type Summary struct {
	Files        int `json:"files"`
	Failures     int `json:"failures"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Infos        int `json:"infos"`
	Fixable      int `json:"fixable"`
	SyntaxErrors int `json:"syntaxErrors"`
	RuleErrors   int `json:"ruleErrors"`
	Cached       int `json:"cached"`
}

// Summarize counts failures by severity and collects error totals.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		s.Files++
		if r.Cached {
			s.Cached++
		}
		s.RuleErrors += len(r.RuleErrors)
		for _, d := range r.Bag.Items() {
			if d.Severity == diag.SevError {
				s.SyntaxErrors++
			}
		}
		for _, f := range r.Failures {
			s.Failures++
			switch f.Severity() {
			case diag.SevError:
				s.Errors++
			case diag.SevWarning:
				s.Warnings++
			default:
				s.Infos++
			}
			if f.HasFix() {
				s.Fixable++
			}
		}
	}
	return s
}

// Failed reports whether the run should exit non-zero.
func (s Summary) Failed() bool {
	return s.Errors > 0 || s.SyntaxErrors > 0 || s.RuleErrors > 0
}

// AllFailures flattens failures of every result in result order.
func AllFailures(results []Result) []*Failure {
	var out []*Failure
	for _, r := range results {
		out = append(out, r.Failures...)
	}
	return out
}
