package parser

import (
	"slices"

	"caselint/internal/ast"
	"caselint/internal/diag"
	"caselint/internal/lexer"
	"caselint/internal/source"
	"caselint/internal/token"
)

type Options struct {
	MaxErrors     uint // 0 — без ограничений; ошибки сверх лимита считаются, но не репортятся
	CurrentErrors uint
	Reporter      diag.Reporter
}

type Result struct {
	Root   *ast.SourceFile
	Errors uint
}

// Parser — состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer
	file     source.FileID
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
	prevEnd  uint32      // конец последнего съеденного токена
}

// ParseFile разбирает один файл. Ошибки лексера и парсера уходят в
// opts.Reporter; дерево строится всегда, с BadExpr/BadStmt на месте
// нераспознанных фрагментов.
func ParseFile(file *source.File, opts Options) Result {
	if opts.Reporter != nil {
		opts.Reporter = diag.NewDedupReporter(opts.Reporter)
	}
	lx := lexer.New(file, lexer.Options{Reporter: opts.Reporter})
	p := Parser{
		lx:   lx,
		file: file.ID,
		opts: opts,
	}
	p.lastSpan = lx.EmptySpan()
	root := p.parseSourceFile()
	return Result{Root: root, Errors: p.opts.CurrentErrors}
}

func (p *Parser) parseSourceFile() *ast.SourceFile {
	first := p.lx.Peek()
	stmts := p.parseStmtList(token.EOF)
	eof := p.advance()
	root := &ast.SourceFile{
		Base:  ast.At(source.Span{File: p.file, Start: first.Span.Start, End: eof.Span.End}, first.FullStart()),
		Stmts: stmts,
		EOF:   eof,
	}
	return root
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}
