package lexer

import (
	"caselint/internal/diag"
	"caselint/internal/token"
)

// scanNumber: 0, 123, 1_000, 0b1010, 0o17, 0xff, 1.5, .5, 1e-3, 2.5E+10, 10n.
// Значение не вычисляется; неверные формы репортятся, токен завершается по возможности.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		var digit func(byte) bool
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X':
			digit = isHex
		case 'b', 'B':
			digit = func(b byte) bool { return b == '0' || b == '1' }
		case 'o', 'O':
			digit = func(b byte) bool { return b >= '0' && b <= '7' }
		}
		if digit != nil {
			lx.cursor.Bump()
			lx.cursor.Bump()
			if !lx.eatDigits(digit) {
				return lx.badNumber(start, "expected digits after radix prefix")
			}
			lx.cursor.Eat('n')
			return lx.finishNumber(start)
		}
	}

	lx.eatDigits(isDec)
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		lx.eatDigits(isDec)
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		lx.cursor.Bump()
		if s := lx.cursor.Peek(); s == '+' || s == '-' {
			lx.cursor.Bump()
		}
		if !lx.eatDigits(isDec) {
			return lx.badNumber(start, "expected exponent digits")
		}
	} else {
		lx.cursor.Eat('n')
	}
	return lx.finishNumber(start)
}

// eatDigits consumes digits with '_' separators; reports whether any digit was seen.
func (lx *Lexer) eatDigits(digit func(byte) bool) bool {
	seen := false
	for {
		b := lx.cursor.Peek()
		switch {
		case digit(b):
			seen = true
		case b == '_' && seen:
		default:
			return seen
		}
		lx.cursor.Bump()
	}
}

// finishNumber отклоняет идентификатор, прилипший к числу (3in, 0xfg).
func (lx *Lexer) finishNumber(start Mark) token.Token {
	if b := lx.cursor.Peek(); isIdentContinueByte(b) && !lx.cursor.EOF() {
		for isIdentContinueByte(lx.cursor.Peek()) && !lx.cursor.EOF() {
			lx.cursor.Bump()
		}
		return lx.badNumber(start, "identifier starts immediately after numeric literal")
	}
	return lx.emit(token.NumberLit, start)
}

func (lx *Lexer) badNumber(start Mark, msg string) token.Token {
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexBadNumber, tok.Span, msg)
	return tok
}
