package parser

import (
	"ferro/internal/ast"
	"ferro/internal/diag"
	"ferro/internal/source"
	"ferro/internal/token"
)

func (p *Parser) parseUseItem() (ast.ItemID, bool) {
	kwTok := p.advance() // 'use'

	tree, ok := p.parseUseTree()
	if !ok {
		return ast.NoItemID, false
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after use declaration"); !ok {
		return ast.NoItemID, false
	}
	return p.arenas.Items.NewUse(kwTok.Span.Cover(p.lastSpan), tree), true
}

// parseUseTree parses one node of a use tree:
//
//	a::b          a::b as c       a::*
//	a::{b, c}     {a, b}          *
func (p *Parser) parseUseTree() (ast.UseTreeID, bool) {
	startSpan := p.lx.Peek().Span

	// bare group or bare glob, no path prefix
	if p.at(token.LBrace) {
		return p.parseUseGroup(startSpan, ast.NoPathID)
	}
	if p.at(token.Star) {
		p.advance()
		return p.arenas.Trees.New(ast.UseTree{Span: startSpan, Glob: true}), true
	}

	path, trailingSep, ok := p.parsePath(false)
	if !ok {
		return ast.NoUseTreeID, false
	}

	if trailingSep {
		if p.at(token.LBrace) {
			return p.parseUseGroup(startSpan, path)
		}
		if p.at(token.Star) {
			p.advance()
			tree := p.arenas.Trees.New(ast.UseTree{
				Span: startSpan.Cover(p.lastSpan),
				Path: path,
				Glob: true,
			})
			p.arenas.Paths.SetOwnerChain(path, tree)
			return tree, true
		}
		p.err(diag.SynExpectUseTree, "expected '{' or '*' after '::'")
		return ast.NoUseTreeID, false
	}

	alias := source.NoStringID
	if p.at(token.KwAs) {
		p.advance()
		aliasTok, ok := p.expect(token.Ident, diag.SynExpectIdentAfterAs, "expected identifier after 'as'")
		if !ok {
			return ast.NoUseTreeID, false
		}
		alias = p.arenas.StringsInterner.Intern(aliasTok.Text)
	}

	tree := p.arenas.Trees.New(ast.UseTree{
		Span:  startSpan.Cover(p.lastSpan),
		Path:  path,
		Alias: alias,
	})
	p.arenas.Paths.SetOwnerChain(path, tree)
	return tree, true
}

// parseUseGroup parses `{ tree, tree, ... }` and links children to their
// parent tree so the qualifier fallback can climb out of the group.
func (p *Parser) parseUseGroup(startSpan source.Span, path ast.PathID) (ast.UseTreeID, bool) {
	p.advance() // '{'

	var list []ast.UseTreeID
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedBrace, "unclosed use group")
			return ast.NoUseTreeID, false
		}
		child, ok := p.parseUseTree()
		if !ok {
			return ast.NoUseTreeID, false
		}
		list = append(list, child)

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' closing use group"); !ok {
		return ast.NoUseTreeID, false
	}
	if len(list) == 0 {
		p.err(diag.SynEmptyUseGroup, "empty use group")
	}

	tree := p.arenas.Trees.New(ast.UseTree{
		Span:    startSpan.Cover(p.lastSpan),
		Path:    path,
		List:    list,
		HasList: true,
	})
	if path.IsValid() {
		p.arenas.Paths.SetOwnerChain(path, tree)
	}
	for _, child := range list {
		p.arenas.Trees.SetParent(child, tree)
	}
	return tree, true
}
