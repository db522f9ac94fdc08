// Package token defines lexical token kinds and trivia for the script dialect
// understood by caselint.
// Invariants:
//   - Token.Text is exactly the source bytes covered by Token.Span.
//   - Whitespace, newlines and comments never appear in the token stream; they
//     are attached to the following token as Leading trivia.
//   - A token's full start is the start of its first leading trivia.
package token
