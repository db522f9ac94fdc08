package lint

import (
	"fmt"
	"sort"
	"strings"

	"caselint/internal/diag"
)

// LevelOff disables a rule in configuration.
const LevelOff = "off"

// Registry maps rule names to rules.
type Registry struct {
	rules map[string]Rule
}

func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// Register adds r; names must be unique.
func (reg *Registry) Register(r Rule) error {
	name := r.Metadata().RuleName
	if name == "" {
		return fmt.Errorf("lint: rule %T has no name", r)
	}
	if _, dup := reg.rules[name]; dup {
		return fmt.Errorf("lint: rule %q registered twice", name)
	}
	reg.rules[name] = r
	return nil
}

// MustRegister is Register that panics on error.
func (reg *Registry) MustRegister(rules ...Rule) *Registry {
	for _, r := range rules {
		if err := reg.Register(r); err != nil {
			panic(err)
		}
	}
	return reg
}

func (reg *Registry) Lookup(name string) (Rule, bool) {
	r, ok := reg.rules[name]
	return r, ok
}

// Names returns rule names in sorted order.
func (reg *Registry) Names() []string {
	names := make([]string, 0, len(reg.rules))
	for name := range reg.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Rules returns all rules sorted by name.
func (reg *Registry) Rules() []Rule {
	out := make([]Rule, 0, len(reg.rules))
	for _, name := range reg.Names() {
		out = append(out, reg.rules[name])
	}
	return out
}

// EnabledRule is a rule together with the severity it reports at.
type EnabledRule struct {
	Rule     Rule
	Severity diag.Severity
}

func (e EnabledRule) Name() string { return e.Rule.Metadata().RuleName }

// Select resolves per-rule levels ("error", "warning", "info", "off").
// Rules missing from levels are enabled at error severity; naming an
// unknown rule is an error.
func (reg *Registry) Select(levels map[string]string) ([]EnabledRule, error) {
	for name := range levels {
		if _, ok := reg.rules[name]; !ok {
			return nil, fmt.Errorf("lint: unknown rule %q", name)
		}
	}
	out := make([]EnabledRule, 0, len(reg.rules))
	for _, name := range reg.Names() {
		sev := diag.SevError
		if level, ok := levels[name]; ok {
			if strings.EqualFold(strings.TrimSpace(level), LevelOff) {
				continue
			}
			parsed, err := diag.ParseSeverity(level)
			if err != nil {
				return nil, fmt.Errorf("lint: rule %q: %w", name, err)
			}
			sev = parsed
		}
		out = append(out, EnabledRule{Rule: reg.rules[name], Severity: sev})
	}
	return out, nil
}

// Fingerprint identifies a rule selection for cache keys.
func Fingerprint(rules []EnabledRule) string {
	parts := make([]string, 0, len(rules))
	for _, r := range rules {
		parts = append(parts, r.Name()+"="+r.Severity.String())
	}
	sort.Strings(parts)
	return strings.Join(parts, ";")
}
