package parser

import (
	"caselint/internal/ast"
	"caselint/internal/diag"
	"caselint/internal/token"
)

// parseSwitchStmt: switch (tag) { case ...: ... default: ... }
func (p *Parser) parseSwitchStmt() ast.Stmt {
	m := p.mark()
	p.advance()
	s := &ast.SwitchStmt{Tag: p.parseParenCond()}

	open, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after switch condition")
	if !ok {
		s.Base = p.finish(m)
		return s
	}

	var seenDefault *ast.DefaultClause
	for !p.atOr(token.RBrace, token.EOF) {
		switch tok := p.lx.Peek(); tok.Kind {
		case token.KwCase:
			s.Clauses = append(s.Clauses, p.parseCaseClause())
		case token.KwDefault:
			d := p.parseDefaultClause()
			if seenDefault != nil {
				diag.ReportError(p.reporter(), diag.SynDuplicateDefault, d.Span(), "more than one default clause in switch statement").
					WithNote(seenDefault.Span(), "first default clause is here").
					Emit()
			} else {
				seenDefault = d
			}
			s.Clauses = append(s.Clauses, d)
		default:
			p.err(diag.SynExpectCaseOrBrace, "expected 'case', 'default' or '}', got "+describe(tok))
			p.advance()
		}
	}
	p.expectClose(token.RBrace, open, diag.SynUnclosedBrace)
	s.Base = p.finish(m)
	return s
}

// parseCaseClause: case expr: body. Выражение разбирается целиком, с
// оператором запятая. Без ':' тело начинается сразу за выражением.
func (p *Parser) parseCaseClause() *ast.CaseClause {
	m := p.mark()
	p.advance()
	c := &ast.CaseClause{}
	if p.at(token.Colon) {
		p.err(diag.SynExpectExpression, "expected expression after 'case'")
	} else {
		c.Expr = p.parseExpr()
	}
	if colon, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after case expression"); ok {
		c.Colon = colon.Span
		c.BodyPos = colon.Span.End
	} else {
		c.BodyPos = p.prevEnd
	}
	c.Body = p.parseStmtList(token.KwCase, token.KwDefault, token.RBrace)
	c.Base = p.finish(m)
	return c
}

func (p *Parser) parseDefaultClause() *ast.DefaultClause {
	m := p.mark()
	p.advance()
	d := &ast.DefaultClause{}
	if colon, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after 'default'"); ok {
		d.Colon = colon.Span
		d.BodyPos = colon.Span.End
	} else {
		d.BodyPos = p.prevEnd
	}
	d.Body = p.parseStmtList(token.KwCase, token.KwDefault, token.RBrace)
	d.Base = p.finish(m)
	return d
}

// reporter возвращает Reporter, если лимит ошибок ещё не исчерпан.
func (p *Parser) reporter() diag.Reporter {
	if !p.countError() {
		return nil
	}
	return p.opts.Reporter
}
