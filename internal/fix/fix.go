package fix

// Applicability describes how confident the producer is in a fix.
type Applicability uint8

const (
	// AlwaysSafe fixes preserve behaviour and may be applied in bulk.
	AlwaysSafe Applicability = iota
	// ManualReview fixes are applied only when selected explicitly.
	ManualReview
)

func (a Applicability) String() string {
	if a == ManualReview {
		return "manual-review"
	}
	return "always-safe"
}

// Fix is an immutable set of edits proposed by one rule. Edits are
// independent: each offset refers to the text the rule inspected.
type Fix struct {
	ruleName      string
	title         string
	applicability Applicability
	edits         []TextEdit
}

// Option mutates fix during construction.
type Option func(*Fix)

// WithTitle sets a short label for listings.
func WithTitle(title string) Option {
	return func(f *Fix) {
		f.title = title
	}
}

// WithApplicability overrides applicability metadata.
func WithApplicability(app Applicability) Option {
	return func(f *Fix) {
		f.applicability = app
	}
}

// New builds a Fix owned by ruleName. The edits slice is copied.
func New(ruleName string, edits []TextEdit, opts ...Option) *Fix {
	f := &Fix{
		ruleName: ruleName,
		edits:    append([]TextEdit(nil), edits...),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

func (f *Fix) RuleName() string { return f.ruleName }

// Title returns the fix label, falling back to the rule name.
func (f *Fix) Title() string {
	if f.title == "" {
		return f.ruleName
	}
	return f.title
}

func (f *Fix) Applicability() Applicability { return f.applicability }

// Edits returns a copy of the fix's edits in construction order.
func (f *Fix) Edits() []TextEdit {
	return append([]TextEdit(nil), f.edits...)
}

func (f *Fix) Len() int { return len(f.edits) }

// Range returns the smallest [lo, hi) covering every edit.
func (f *Fix) Range() (lo, hi uint32) {
	for i, e := range f.edits {
		if i == 0 || e.Offset < lo {
			lo = e.Offset
		}
		if i == 0 || e.End() > hi {
			hi = e.End()
		}
	}
	return lo, hi
}

// Apply returns src with the fix applied; src is not modified.
func (f *Fix) Apply(src []byte) ([]byte, error) {
	return ApplyEdits(src, f.edits)
}
