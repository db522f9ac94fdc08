package report

import (
	"cmp"
	"slices"
	"strings"

	"caselint/internal/diag"
	"caselint/internal/fix"
	"caselint/internal/lint"
	"caselint/internal/source"
)

// Item is one printable finding: a rule failure or a load/syntax diagnostic.
type Item struct {
	Severity diag.Severity
	// Code is the rule name for failures and the diagnostic ID otherwise.
	Code     string
	Message  string
	Span     source.Span
	Path     string
	// NoSource marks items whose file could not be loaded; Span is unset.
	NoSource bool
	Notes    []diag.Note
	Fix      *fix.Fix
}

// Items flattens results into a sorted list: file order of results, then
// position, then code.
func Items(results []lint.Result) []Item {
	var items []Item
	for _, r := range results {
		start := len(items)
		for _, d := range r.Bag.Items() {
			items = append(items, Item{
				Severity: d.Severity,
				Code:     d.Code.ID(),
				Message:  d.Message,
				Span:     d.Primary,
				Path:     r.Path,
				NoSource: r.LoadErr != nil,
				Notes:    d.Notes,
			})
		}
		for _, e := range r.RuleErrors {
			items = append(items, Item{
				Severity: diag.SevError,
				Code:     e.Rule,
				Message:  e.Error(),
				Span:     source.Span{File: r.FileID},
				Path:     r.Path,
			})
		}
		for _, f := range r.Failures {
			items = append(items, Item{
				Severity: f.Severity(),
				Code:     f.RuleName(),
				Message:  f.Message(),
				Span:     f.Span(),
				Path:     r.Path,
				Fix:      f.Fix(),
			})
		}
		slices.SortStableFunc(items[start:], func(a, b Item) int {
			if c := cmp.Compare(a.Span.Start, b.Span.Start); c != 0 {
				return c
			}
			if c := cmp.Compare(a.Span.End, b.Span.End); c != 0 {
				return c
			}
			return strings.Compare(a.Code, b.Code)
		})
	}
	return items
}
