package lint

import (
	"cmp"
	"slices"
	"strings"

	"caselint/internal/diag"
	"caselint/internal/fix"
	"caselint/internal/source"
)

// Failure is one rule violation. It is immutable once built.
type Failure struct {
	ruleName string
	message  string
	span     source.Span
	fix      *fix.Fix
	severity diag.Severity
}

// NewFailure builds an error-severity failure; f may be nil.
func NewFailure(ruleName, message string, span source.Span, f *fix.Fix) *Failure {
	return &Failure{
		ruleName: ruleName,
		message:  message,
		span:     span,
		fix:      f,
		severity: diag.SevError,
	}
}

func (f *Failure) RuleName() string        { return f.ruleName }
func (f *Failure) Message() string         { return f.message }
func (f *Failure) Span() source.Span       { return f.span }
func (f *Failure) Fix() *fix.Fix           { return f.fix }
func (f *Failure) HasFix() bool            { return f.fix != nil && f.fix.Len() > 0 }
func (f *Failure) Severity() diag.Severity { return f.severity }

// WithSeverity returns a copy of f with sev.
func (f *Failure) WithSeverity(sev diag.Severity) *Failure {
	cp := *f
	cp.severity = sev
	return &cp
}

// Equal compares everything but the fix edits.
func (f *Failure) Equal(other *Failure) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.ruleName == other.ruleName &&
		f.message == other.message &&
		f.span == other.span &&
		f.severity == other.severity
}

var _ fix.Fixable = (*Failure)(nil)

func sortFailures(items []*Failure) {
	slices.SortStableFunc(items, func(a, b *Failure) int {
		if c := cmp.Compare(a.span.Start, b.span.Start); c != 0 {
			return c
		}
		if c := cmp.Compare(a.span.End, b.span.End); c != 0 {
			return c
		}
		return strings.Compare(a.ruleName, b.ruleName)
	})
}
