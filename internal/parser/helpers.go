package parser

import (
	"caselint/internal/ast"
	"caselint/internal/diag"
	"caselint/internal/source"
	"caselint/internal/token"
)

// advance — съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
		p.prevEnd = tok.Span.End
	}
	return tok
}

// marker запоминает начало узла: смещение первого токена и начало его trivia.
type marker struct {
	start uint32
	full  uint32
}

func (p *Parser) mark() marker {
	tok := p.lx.Peek()
	return marker{start: tok.Span.Start, full: tok.FullStart()}
}

// missing — позиция для узла, которого нет в исходнике: сразу за последним
// съеденным токеном, чтобы узел не выходил за границы родителя.
func (p *Parser) missing() marker {
	return marker{start: p.prevEnd, full: p.prevEnd}
}

// markOf начинает узел в позиции уже разобранного узла.
func markOf(n ast.Node) marker {
	return marker{start: n.Span().Start, full: n.FullStart()}
}

// finish закрывает узел на конце последнего съеденного токена.
func (p *Parser) finish(m marker) ast.Base {
	end := p.prevEnd
	if end < m.start {
		end = m.start
	}
	return ast.At(source.Span{File: p.file, Start: m.start, End: end}, m.full)
}

// getDiagnosticSpan — лучший span для диагностики: на EOF указываем сразу
// за последним съеденным токеном.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.file, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// expect — ожидаем конкретный токен. Если нет — репортим и возвращаем (invalid,false).
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.getDiagnosticSpan()
	p.report(code, diag.SevError, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp}, false
}

// expectClose ожидает закрывающую скобку и добавляет note на открывающую.
func (p *Parser) expectClose(k token.Kind, open token.Token, code diag.Code) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.getDiagnosticSpan()
	msg := "expected '" + k.String() + "', got " + describe(p.lx.Peek())
	if p.countError() {
		diag.ReportError(p.opts.Reporter, code, sp, msg).
			WithNote(open.Span, "to match this '"+open.Kind.String()+"'").
			Emit()
	}
	return token.Token{Kind: token.Invalid, Span: sp}, false
}

// semicolon реализует упрощённую автоматическую вставку ';':
// точка с запятой необязательна перед '}', концом файла или переводом строки.
func (p *Parser) semicolon() {
	if p.at(token.Semicolon) {
		p.advance()
		return
	}
	tok := p.lx.Peek()
	if tok.Kind == token.RBrace || tok.Kind == token.EOF || tok.NewlineBefore() {
		return
	}
	p.err(diag.SynExpectSemicolon, "expected ';', got "+describe(tok))
}

// репортует ошибку и передает текущий спан
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if sev == diag.SevError && !p.countError() {
		return false
	}
	if p.opts.Reporter == nil {
		return false
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
	return true
}

// countError учитывает ошибку и сообщает, можно ли ещё репортить.
func (p *Parser) countError() bool {
	p.opts.CurrentErrors++
	if p.opts.Reporter == nil {
		return false
	}
	return p.opts.MaxErrors == 0 || p.opts.CurrentErrors <= p.opts.MaxErrors
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	case token.Ident:
		return "identifier \"" + tok.Text + "\""
	case token.NumberLit, token.StringLit, token.TemplateLit:
		return "literal " + tok.Text
	}
	return "'" + tok.Text + "'"
}
