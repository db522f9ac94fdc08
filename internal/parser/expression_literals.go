package parser

import (
	"caselint/internal/ast"
	"caselint/internal/diag"
	"caselint/internal/token"
)

// parseArrayLit: [a, b, , c]. Пропуски (holes) не порождают узлов.
func (p *Parser) parseArrayLit() ast.Expr {
	m := p.mark()
	open := p.advance()
	var elems []ast.Expr
	for !p.atOr(token.RBracket, token.EOF) {
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		elems = append(elems, p.parseAssignExpr())
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	p.expectClose(token.RBracket, open, diag.SynUnclosedBracket)
	return &ast.ArrayLit{Base: p.finish(m), Elems: elems}
}

// parseObjectLit: { key: value, "str": v, 1: v, short }.
func (p *Parser) parseObjectLit() ast.Expr {
	m := p.mark()
	open := p.advance()
	var props []*ast.Property
	for !p.atOr(token.RBrace, token.EOF) {
		prop, ok := p.parseProperty()
		if !ok {
			break
		}
		props = append(props, prop)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	p.expectClose(token.RBrace, open, diag.SynUnclosedBrace)
	return &ast.ObjectLit{Base: p.finish(m), Props: props}
}

func (p *Parser) parseProperty() (*ast.Property, bool) {
	m := p.mark()
	tok := p.lx.Peek()
	var key ast.Expr
	switch {
	case tok.Kind == token.Ident || tok.IsKeyword():
		km := p.mark()
		p.advance()
		key = &ast.Ident{Base: p.finish(km), Name: tok.Text}
	case tok.Kind == token.StringLit || tok.Kind == token.NumberLit:
		km := p.mark()
		p.advance()
		key = &ast.Literal{Base: p.finish(km), Tok: tok.Kind, Value: tok.Text}
	default:
		p.err(diag.SynExpectIdentifier, "expected property name, got "+describe(tok))
		return nil, false
	}

	prop := &ast.Property{Key: key}
	if p.at(token.Colon) {
		p.advance()
		prop.Value = p.parseAssignExpr()
	} else if _, isIdent := key.(*ast.Ident); !isIdent || tok.IsKeyword() {
		p.err(diag.SynExpectColon, "expected ':' after property name")
	}
	prop.Base = p.finish(m)
	return prop, true
}

func (p *Parser) parseFuncExpr() ast.Expr {
	m := p.mark()
	p.advance()
	fn := &ast.FuncExpr{}
	if p.at(token.Ident) {
		fn.Name = p.parseIdent()
	}
	fn.Params, fn.Body = p.parseFuncSignatureAndBody()
	fn.Base = p.finish(m)
	return fn
}

// parseFuncSignatureAndBody: (a, b) { ... }
func (p *Parser) parseFuncSignatureAndBody() ([]*ast.Ident, *ast.BlockStmt) {
	var params []*ast.Ident
	if open, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' to start parameter list"); ok {
		for p.at(token.Ident) {
			params = append(params, p.parseIdent())
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
		p.expectClose(token.RParen, open, diag.SynUnclosedParen)
	}
	if !p.at(token.LBrace) {
		p.err(diag.SynUnexpectedToken, "expected '{' to start function body")
		return params, &ast.BlockStmt{Base: p.finish(p.missing())}
	}
	return params, p.parseBlock()
}

// parseIdent — ожидает Ident; на ошибке репортит SynExpectIdentifier и
// возвращает пустой идентификатор нулевой длины.
func (p *Parser) parseIdent() *ast.Ident {
	m := p.mark()
	tok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected identifier, got "+describe(p.lx.Peek()))
	if !ok {
		return &ast.Ident{Base: p.finish(p.missing())}
	}
	return &ast.Ident{Base: p.finish(m), Name: tok.Text}
}
