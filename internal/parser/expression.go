package parser

import (
	"caselint/internal/ast"
	"caselint/internal/diag"
	"caselint/internal/token"
)

// parseExpr — полное выражение, включая оператор запятая.
// Запятая имеет наименьший приоритет и левоассоциативна: a, b, c -> ((a, b), c).
func (p *Parser) parseExpr() ast.Expr {
	left := p.parseAssignExpr()
	for p.at(token.Comma) {
		m := markOf(left)
		opTok := p.advance()
		right := p.parseAssignExpr()
		left = &ast.BinaryExpr{
			Base:  p.finish(m),
			Op:    ast.BinaryComma,
			OpPos: opTok.Span,
			Left:  left,
			Right: right,
		}
	}
	return left
}

// parseAssignExpr — уровень присваивания (правоассоциативно); здесь запятая
// уже разделитель, поэтому аргументы вызова и элементы литералов разбираются с него.
func (p *Parser) parseAssignExpr() ast.Expr {
	target := p.parseConditionalExpr()
	if !p.lx.Peek().Kind.IsAssignment() {
		return target
	}
	m := markOf(target)
	opTok := p.advance()
	value := p.parseAssignExpr()
	return &ast.AssignExpr{
		Base:   p.finish(m),
		Op:     opTok.Kind,
		Target: target,
		Value:  value,
	}
}

func (p *Parser) parseConditionalExpr() ast.Expr {
	cond := p.parseBinaryExpr(precLogicalOr)
	if !p.at(token.Question) {
		return cond
	}
	m := markOf(cond)
	p.advance()
	then := p.parseAssignExpr()
	p.expect(token.Colon, diag.SynExpectColon, "expected ':' in conditional expression")
	els := p.parseAssignExpr()
	return &ast.ConditionalExpr{
		Base: p.finish(m),
		Cond: cond,
		Then: then,
		Else: els,
	}
}

// parseBinaryExpr реализует Pratt parsing для бинарных операторов
// minPrec - минимальный приоритет для текущего уровня
func (p *Parser) parseBinaryExpr(minPrec int) ast.Expr {
	left := p.parseUnaryExpr()
	for {
		info := getBinaryOperator(p.lx.Peek().Kind)
		if info.prec < minPrec {
			return left
		}
		m := markOf(left)
		opTok := p.advance()
		right := p.parseBinaryExpr(info.prec + 1)
		left = &ast.BinaryExpr{
			Base:  p.finish(m),
			Op:    info.op,
			OpPos: opTok.Span,
			Left:  left,
			Right: right,
		}
	}
}

// parseUnaryExpr обрабатывает префиксные операторы
func (p *Parser) parseUnaryExpr() ast.Expr {
	if !isUnaryOperator(p.lx.Peek().Kind) {
		return p.parsePostfixExpr()
	}
	m := p.mark()
	opTok := p.advance()
	x := p.parseUnaryExpr()
	return &ast.UnaryExpr{Base: p.finish(m), Op: opTok.Kind, X: x}
}

// parsePostfixExpr: x++ / x--; перевод строки перед оператором запрещает постфикс.
func (p *Parser) parsePostfixExpr() ast.Expr {
	x := p.parseCallExpr()
	tok := p.lx.Peek()
	if (tok.Kind == token.PlusPlus || tok.Kind == token.MinusMinus) && !tok.NewlineBefore() {
		m := markOf(x)
		p.advance()
		return &ast.PostfixExpr{Base: p.finish(m), Op: tok.Kind, X: x}
	}
	return x
}

// parseCallExpr — primary с цепочкой .name, [index] и (args).
func (p *Parser) parseCallExpr() ast.Expr {
	x := p.parsePrimaryExpr()
	for {
		switch p.lx.Peek().Kind {
		case token.Dot, token.LBracket:
			x = p.parseMemberSuffix(x)
		case token.LParen:
			m := markOf(x)
			args := p.parseArgs()
			x = &ast.CallExpr{Base: p.finish(m), Fun: x, Args: args}
		default:
			return x
		}
	}
}

func (p *Parser) parseMemberSuffix(x ast.Expr) ast.Expr {
	m := markOf(x)
	if p.at(token.Dot) {
		p.advance()
		name := p.parsePropertyName()
		return &ast.MemberExpr{Base: p.finish(m), X: x, Name: name}
	}
	open := p.advance()
	index := p.parseExpr()
	p.expectClose(token.RBracket, open, diag.SynUnclosedBracket)
	return &ast.IndexExpr{Base: p.finish(m), X: x, Index: index}
}

// parsePropertyName: после '.' допустимы и ключевые слова (a.default, a.new).
func (p *Parser) parsePropertyName() *ast.Ident {
	tok := p.lx.Peek()
	if tok.Kind == token.Ident || tok.IsKeyword() {
		m := p.mark()
		p.advance()
		return &ast.Ident{Base: p.finish(m), Name: tok.Text}
	}
	p.err(diag.SynExpectIdentifier, "expected property name, got "+describe(tok))
	return &ast.Ident{Base: p.finish(p.missing())}
}

// parseArgs разбирает (a, b, c); элементы на уровне присваивания.
func (p *Parser) parseArgs() []ast.Expr {
	open := p.advance()
	var args []ast.Expr
	for !p.atOr(token.RParen, token.EOF) {
		args = append(args, p.parseAssignExpr())
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	p.expectClose(token.RParen, open, diag.SynUnclosedParen)
	return args
}

// parseNewExpr: new Callee(args) | new Callee. Callee — primary с .name/[index].
func (p *Parser) parseNewExpr() ast.Expr {
	m := p.mark()
	p.advance()
	var callee ast.Expr
	if p.at(token.KwNew) {
		callee = p.parseNewExpr()
	} else {
		callee = p.parsePrimaryExpr()
	}
	for p.atOr(token.Dot, token.LBracket) {
		callee = p.parseMemberSuffix(callee)
	}
	n := &ast.NewExpr{Callee: callee}
	if p.at(token.LParen) {
		n.Args = p.parseArgs()
		n.HasArgs = true
	}
	n.Base = p.finish(m)
	return n
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		m := p.mark()
		p.advance()
		return &ast.Ident{Base: p.finish(m), Name: tok.Text}
	case token.NumberLit, token.StringLit, token.TemplateLit,
		token.KwTrue, token.KwFalse, token.KwNull, token.KwThis:
		m := p.mark()
		p.advance()
		return &ast.Literal{Base: p.finish(m), Tok: tok.Kind, Value: tok.Text}
	case token.LParen:
		m := p.mark()
		open := p.advance()
		x := p.parseExpr()
		p.expectClose(token.RParen, open, diag.SynUnclosedParen)
		return &ast.ParenExpr{Base: p.finish(m), X: x}
	case token.LBracket:
		return p.parseArrayLit()
	case token.LBrace:
		return p.parseObjectLit()
	case token.KwFunction:
		return p.parseFuncExpr()
	case token.KwNew:
		return p.parseNewExpr()
	case token.Invalid:
		// лексер уже отрепортил ошибку
		m := p.mark()
		p.advance()
		return &ast.BadExpr{Base: p.finish(m)}
	}
	p.err(diag.SynExpectExpression, "expected expression, got "+describe(tok))
	return &ast.BadExpr{Base: p.finish(p.missing())}
}
