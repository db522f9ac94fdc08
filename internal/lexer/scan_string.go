package lexer

import (
	"caselint/internal/diag"
	"caselint/internal/token"
)

// scanString сканирует '...' или "..." с escape-последовательностями.
// Escape не валидируются; перевод строки без '\' — ошибка.
func (lx *Lexer) scanString(quote byte) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case quote:
			lx.cursor.Bump()
			return lx.emit(token.StringLit, start)
		case '\\':
			lx.cursor.Bump()
			lx.cursor.Bump()
		case '\n':
			tok := lx.emit(token.Invalid, start)
			lx.errLex(diag.LexUnterminatedString, tok.Span, "newline in string literal")
			return tok
		default:
			lx.cursor.Bump()
		}
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	return tok
}

// scanTemplate сканирует `...` целиком, включая ${...} подстановки.
// Подстановки не разбираются: отслеживаются только парные скобки и вложенные строки.
func (lx *Lexer) scanTemplate() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	depth := 0
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '\\':
			lx.cursor.Bump()
			lx.cursor.Bump()
			continue
		case depth == 0 && b == '`':
			lx.cursor.Bump()
			return lx.emit(token.TemplateLit, start)
		case b == '$' && lx.cursor.PeekAt(1) == '{':
			lx.cursor.Bump()
			depth++
		case depth > 0 && b == '{':
			depth++
		case depth > 0 && b == '}':
			depth--
		case depth > 0 && (b == '"' || b == '\''):
			inner := lx.scanString(b)
			if inner.Kind == token.Invalid {
				return lx.emit(token.Invalid, start)
			}
			continue
		}
		lx.cursor.Bump()
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedTemplate, tok.Span, "unterminated template literal")
	return tok
}
