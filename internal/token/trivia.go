package token

import "caselint/internal/source"

// TriviaKind classifies non-semantic source text.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	}
	return "Unknown"
}

// Trivia is one run of whitespace or one comment.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// HasNewline reports whether the trivia spans a line break.
func (t Trivia) HasNewline() bool {
	switch t.Kind {
	case TriviaNewline:
		return true
	case TriviaBlockComment:
		for i := 0; i < len(t.Text); i++ {
			if t.Text[i] == '\n' {
				return true
			}
		}
	}
	return false
}
