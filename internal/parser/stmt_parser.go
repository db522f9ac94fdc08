package parser

import (
	"slices"

	"caselint/internal/ast"
	"caselint/internal/diag"
	"caselint/internal/token"
)

// parseStmtList разбирает операторы до одного из стоп-токенов (не съедая его).
// Если оператор не продвинул поток, токен съедается в BadStmt — так цикл
// гарантированно завершается.
func (p *Parser) parseStmtList(stop ...token.Kind) []ast.Stmt {
	var stmts []ast.Stmt
	for {
		tok := p.lx.Peek()
		if tok.Kind == token.EOF || slices.Contains(stop, tok.Kind) {
			return stmts
		}
		before := tok.Span.Start
		stmt := p.parseStmt()
		if next := p.lx.Peek(); next.Span.Start == before && next.Kind != token.EOF {
			m := p.mark()
			p.advance()
			stmt = &ast.BadStmt{Base: p.finish(m)}
		}
		stmts = append(stmts, stmt)
	}
}

// parseStmt выбирает по первому токену нужный распознаватель оператора.
func (p *Parser) parseStmt() ast.Stmt {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.EOF:
		p.err(diag.SynUnexpectedToken, "expected statement, got end of file")
		return &ast.BadStmt{Base: p.finish(p.missing())}
	case token.LBrace:
		return p.parseBlock()
	case token.Semicolon:
		m := p.mark()
		p.advance()
		return &ast.EmptyStmt{Base: p.finish(m)}
	case token.KwVar, token.KwLet, token.KwConst:
		decl := p.parseVarDecl()
		p.semicolon()
		decl.Base = p.finish(markOf(decl))
		return decl
	case token.KwFunction:
		return p.parseFuncDecl()
	case token.KwIf:
		return p.parseIfStmt()
	case token.KwWhile:
		return p.parseWhileStmt()
	case token.KwDo:
		return p.parseDoWhileStmt()
	case token.KwFor:
		return p.parseForStmt()
	case token.KwSwitch:
		return p.parseSwitchStmt()
	case token.KwBreak, token.KwContinue:
		return p.parseJumpStmt()
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwThrow:
		return p.parseThrowStmt()
	case token.KwCase, token.KwDefault:
		p.err(diag.SynUnexpectedToken, "'"+tok.Text+"' outside of switch")
		m := p.mark()
		p.advance()
		return &ast.BadStmt{Base: p.finish(m)}
	}

	if !canStartExpr(tok.Kind) && tok.Kind != token.Invalid {
		p.err(diag.SynUnexpectedToken, "unexpected "+describe(tok))
		m := p.mark()
		p.advance()
		return &ast.BadStmt{Base: p.finish(m)}
	}
	m := p.mark()
	x := p.parseExpr()
	p.semicolon()
	return &ast.ExprStmt{Base: p.finish(m), X: x}
}

func (p *Parser) parseBlock() *ast.BlockStmt {
	m := p.mark()
	open := p.advance()
	stmts := p.parseStmtList(token.RBrace)
	p.expectClose(token.RBrace, open, diag.SynUnclosedBrace)
	return &ast.BlockStmt{Base: p.finish(m), Stmts: stmts}
}

// parseVarDecl: var|let|const a = 1, b — без завершающей ';'.
func (p *Parser) parseVarDecl() *ast.VarDecl {
	m := p.mark()
	kw := p.advance()
	decl := &ast.VarDecl{Keyword: kw.Kind}
	for {
		dm := p.mark()
		d := &ast.VarDeclarator{Name: p.parseIdent()}
		if p.at(token.Assign) {
			p.advance()
			d.Init = p.parseAssignExpr()
		}
		d.Base = p.finish(dm)
		decl.Decls = append(decl.Decls, d)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	decl.Base = p.finish(m)
	return decl
}

func (p *Parser) parseFuncDecl() ast.Stmt {
	m := p.mark()
	p.advance()
	fn := &ast.FuncDecl{Name: p.parseIdent()}
	fn.Params, fn.Body = p.parseFuncSignatureAndBody()
	fn.Base = p.finish(m)
	return fn
}

// parseParenCond: ( expr )
func (p *Parser) parseParenCond() ast.Expr {
	open, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '('")
	x := p.parseExpr()
	if ok {
		p.expectClose(token.RParen, open, diag.SynUnclosedParen)
	}
	return x
}

func (p *Parser) parseIfStmt() ast.Stmt {
	m := p.mark()
	p.advance()
	s := &ast.IfStmt{Cond: p.parseParenCond()}
	s.Then = p.parseStmt()
	if p.at(token.KwElse) {
		p.advance()
		s.Else = p.parseStmt()
	}
	s.Base = p.finish(m)
	return s
}

func (p *Parser) parseWhileStmt() ast.Stmt {
	m := p.mark()
	p.advance()
	s := &ast.WhileStmt{Cond: p.parseParenCond()}
	s.Body = p.parseStmt()
	s.Base = p.finish(m)
	return s
}

func (p *Parser) parseDoWhileStmt() ast.Stmt {
	m := p.mark()
	p.advance()
	s := &ast.DoWhileStmt{Body: p.parseStmt()}
	p.expect(token.KwWhile, diag.SynUnexpectedToken, "expected 'while' after do-block")
	s.Cond = p.parseParenCond()
	if p.at(token.Semicolon) {
		p.advance()
	}
	s.Base = p.finish(m)
	return s
}

// parseForStmt: for (init; cond; post) body. for-in/for-of не поддерживаются.
func (p *Parser) parseForStmt() ast.Stmt {
	m := p.mark()
	p.advance()
	s := &ast.ForStmt{}
	open, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'for'")
	if ok {
		switch {
		case p.atOr(token.KwVar, token.KwLet, token.KwConst):
			s.Init = p.parseVarDecl()
		case !p.at(token.Semicolon):
			s.Init = p.parseExpr()
		}
		p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after for-loop initializer")
		if !p.at(token.Semicolon) {
			s.Cond = p.parseExpr()
		}
		p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after for-loop condition")
		if !p.at(token.RParen) {
			s.Post = p.parseExpr()
		}
		p.expectClose(token.RParen, open, diag.SynUnclosedParen)
	}
	s.Body = p.parseStmt()
	s.Base = p.finish(m)
	return s
}

// parseJumpStmt: break/continue с необязательной меткой на той же строке.
func (p *Parser) parseJumpStmt() ast.Stmt {
	m := p.mark()
	kw := p.advance()
	var label *ast.Ident
	if next := p.lx.Peek(); next.Kind == token.Ident && !next.NewlineBefore() {
		label = p.parseIdent()
	}
	p.semicolon()
	if kw.Kind == token.KwBreak {
		return &ast.BreakStmt{Base: p.finish(m), Label: label}
	}
	return &ast.ContinueStmt{Base: p.finish(m), Label: label}
}

// parseReturnStmt: return [expr]; выражение должно начинаться на той же строке.
func (p *Parser) parseReturnStmt() ast.Stmt {
	m := p.mark()
	p.advance()
	s := &ast.ReturnStmt{}
	if next := p.lx.Peek(); canStartExpr(next.Kind) && !next.NewlineBefore() {
		s.Result = p.parseExpr()
	}
	p.semicolon()
	s.Base = p.finish(m)
	return s
}

func (p *Parser) parseThrowStmt() ast.Stmt {
	m := p.mark()
	p.advance()
	s := &ast.ThrowStmt{X: p.parseExpr()}
	p.semicolon()
	s.Base = p.finish(m)
	return s
}
