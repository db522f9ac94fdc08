package lint

import (
	"caselint/internal/ast"
	"caselint/internal/source"
)

// RuleType groups rules in listings.
type RuleType string

const (
	TypeFunctionality   RuleType = "functionality"
	TypeMaintainability RuleType = "maintainability"
	TypeStyle           RuleType = "style"
	TypeTypeScript      RuleType = "typescript"
)

// Metadata documents a rule.
type Metadata struct {
	RuleName           string   `json:"ruleName"`
	Description        string   `json:"description"`
	DescriptionDetails string   `json:"descriptionDetails,omitempty"`
	Rationale          string   `json:"rationale,omitempty"`
	OptionsDescription string   `json:"optionsDescription"`
	Options            any      `json:"options"`
	OptionExamples     []string `json:"optionExamples,omitempty"`
	Type               RuleType `json:"type"`
	TypeScriptOnly     bool     `json:"typescriptOnly"`
	RequiresTypeInfo   bool     `json:"requiresTypeInfo,omitempty"`
	HasFix             bool     `json:"hasFix"`
}

// File is the input of a rule: the source text and its parsed tree.
type File struct {
	Source *source.File
	Root   *ast.SourceFile
}

// Text returns the source slice covered by sp.
func (f *File) Text(sp source.Span) string {
	return f.Source.Text(sp)
}

// Rule checks one file. Apply must return failures in source order and a
// non-nil empty slice when there are none.
type Rule interface {
	Metadata() Metadata
	Apply(file *File) []*Failure
}
