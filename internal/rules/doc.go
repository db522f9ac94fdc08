// Package rules holds the built-in lint rules.
package rules

import "caselint/internal/lint"

// All returns a fresh instance of every built-in rule.
func All() []lint.Rule {
	return []lint.Rule{
		NoSwitchCaseCommaOperator{},
	}
}

// Registry returns a registry with every built-in rule.
func Registry() *lint.Registry {
	return lint.NewRegistry().MustRegister(All()...)
}
