package parser

import (
	"ferro/internal/ast"
	"ferro/internal/diag"
	"ferro/internal/lexer"
	"ferro/internal/source"
	"ferro/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is exhausted.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File ast.FileID
	Bag  *diag.Bag
}

// Parser holds the state for parsing one file.
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	file     ast.FileID
	opts     Options
	lastSpan source.Span

	// pendingGt counts '>' tokens still owed after splitting a '>>'
	// while closing nested generic argument lists.
	pendingGt uint
}

// ParseFile is the entry point for parsing one file of items.
// It requires an already-created lexer over the source file.
func ParseFile(lx *lexer.Lexer, arenas *ast.Builder, opts Options) Result {
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		file:     arenas.Files.New(lx.EmptySpan()),
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	p.parseItems()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		File: p.file,
		Bag:  bag,
	}
}

// ParsePath parses a standalone path expression, as used by tests and the
// CLI's inline mode. The whole input must be one path.
func ParsePath(lx *lexer.Lexer, arenas *ast.Builder, opts Options) (ast.PathID, bool) {
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	id, trailingSep, ok := p.parsePath(true)
	if !ok {
		return ast.NoPathID, false
	}
	if trailingSep {
		p.err(diag.SynExpectPathSegment, "expected path segment after '::'")
		return ast.NoPathID, false
	}
	if p.pendingGt > 0 || !p.at(token.EOF) {
		p.err(diag.SynUnexpectedToken, "unexpected token after path")
		return ast.NoPathID, false
	}
	return id, true
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) IsError() bool {
	return p.opts.CurrentErrors != 0
}

// advance consumes the next token and updates lastSpan.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// getDiagnosticSpan picks the best span for a diagnostic: at EOF the
// position right after the last consumed token beats an empty span.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if (peek.Kind == token.EOF || peek.Kind == token.Invalid) && peek.Span.Empty() {
		if p.lastSpan.End > 0 {
			return source.Span{
				File:  p.lastSpan.File,
				Start: p.lastSpan.End,
				End:   p.lastSpan.End,
			}
		}
	}
	return peek.Span
}

// expect consumes a token of kind k or reports and returns (invalid, false).
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.report(code, diag.SevError, diagSpan, msg)
	return token.Token{Kind: token.Invalid, Span: diagSpan, Text: p.lx.Peek().Text}, false
}

func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if p.opts.Reporter == nil {
		return false
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Enough() {
		return false
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
	return true
}

// parseItems is the top-level loop: items until EOF, resyncing on errors.
func (p *Parser) parseItems() {
	startSpan := p.lx.Peek().Span
	for !p.at(token.EOF) {
		itemID, ok := p.parseItem()
		if !ok {
			p.resyncTop()
		} else {
			p.arenas.PushItem(p.file, itemID)
		}
		if p.opts.Enough() {
			break
		}
	}
	if f := p.arenas.Files.Get(p.file); f != nil {
		f.Span = startSpan.Cover(p.lastSpan)
	}
}

func (p *Parser) parseItem() (ast.ItemID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwUse:
		return p.parseUseItem()
	case token.KwType:
		return p.parseTypeAliasItem()
	default:
		p.err(diag.SynUnexpectedToken, "expected 'use' or 'type' item")
		return ast.NoItemID, false
	}
}

// resyncTop skips to just past the next ';' (or EOF) after a bad item.
func (p *Parser) resyncTop() {
	for {
		switch p.lx.Peek().Kind {
		case token.EOF:
			return
		case token.Semicolon:
			p.advance()
			return
		default:
			p.advance()
		}
	}
}

func (p *Parser) parseTypeAliasItem() (ast.ItemID, bool) {
	kwTok := p.advance() // 'type'

	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected type alias name")
	if !ok {
		return ast.NoItemID, false
	}
	if _, ok := p.expect(token.Assign, diag.SynExpectEquals, "expected '=' in type alias"); !ok {
		return ast.NoItemID, false
	}
	typ, ok := p.parseType()
	if !ok {
		return ast.NoItemID, false
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after type alias"); !ok {
		return ast.NoItemID, false
	}

	name := p.arenas.StringsInterner.Intern(nameTok.Text)
	return p.arenas.Items.NewTypeAlias(kwTok.Span.Cover(p.lastSpan), name, typ), true
}
