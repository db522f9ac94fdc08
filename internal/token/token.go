package token

import (
	"caselint/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// FullStart returns the offset where the token's leading trivia begins.
func (t Token) FullStart() uint32 {
	if len(t.Leading) > 0 {
		return t.Leading[0].Span.Start
	}
	return t.Span.Start
}

// NewlineBefore reports whether a line break separates this token from the previous one.
func (t Token) NewlineBefore() bool {
	for _, tr := range t.Leading {
		if tr.HasNewline() {
			return true
		}
	}
	return false
}

// IsLiteral reports whether the token is a numeric, string or template literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, TemplateLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
