package parser

import (
	"ferro/internal/ast"
	"ferro/internal/diag"
	"ferro/internal/token"
)

// parseType recognizes the type grammar:
//
//	path types        a::B<T>, <T as Trait>::Item
//	references        &T, &mut T
//	tuples            (), (A, B)
//	slices            [T]
//	never             !
//	placeholder       _
func (p *Parser) parseType() (ast.TypeID, bool) {
	startSpan := p.lx.Peek().Span

	switch p.lx.Peek().Kind {
	case token.Amp:
		p.advance()
		mut := false
		if p.at(token.KwMut) {
			p.advance()
			mut = true
		}
		elem, ok := p.parseType()
		if !ok {
			return ast.NoTypeID, false
		}
		return p.arenas.Types.NewReference(startSpan.Cover(p.lastSpan), elem, mut), true

	case token.LParen:
		p.advance()
		var elems []ast.TypeID
		if !p.at(token.RParen) {
			for {
				elem, ok := p.parseType()
				if !ok {
					return ast.NoTypeID, false
				}
				elems = append(elems, elem)
				if p.at(token.Comma) {
					p.advance()
					if p.at(token.RParen) {
						break
					}
					continue
				}
				break
			}
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' in tuple type"); !ok {
			return ast.NoTypeID, false
		}
		return p.arenas.Types.NewTuple(startSpan.Cover(p.lastSpan), elems), true

	case token.LBracket:
		p.advance()
		elem, ok := p.parseType()
		if !ok {
			return ast.NoTypeID, false
		}
		if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' in slice type"); !ok {
			return ast.NoTypeID, false
		}
		return p.arenas.Types.NewSlice(startSpan.Cover(p.lastSpan), elem), true

	case token.Bang:
		p.advance()
		return p.arenas.Types.NewNever(startSpan), true

	case token.Underscore:
		p.advance()
		return p.arenas.Types.NewPlaceholder(startSpan), true

	case token.Ident, token.ColonColon, token.KwCrate, token.KwSelf, token.KwSuper, token.Lt:
		pid, trailingSep, ok := p.parsePath(true)
		if !ok {
			return ast.NoTypeID, false
		}
		if trailingSep {
			p.err(diag.SynExpectPathSegment, "expected path segment after '::'")
			return ast.NoTypeID, false
		}
		return p.arenas.Types.NewPath(startSpan.Cover(p.lastSpan), pid), true

	default:
		p.err(diag.SynExpectType, "expected type")
		return ast.NoTypeID, false
	}
}

// parsePathTypeFrom builds a path type whose first segment name was already
// consumed (the generic-argument parser needs one token of lookahead to
// tell a binding from a type argument).
func (p *Parser) parsePathTypeFrom(identTok token.Token) (ast.TypeID, bool) {
	seg := ast.PathSegment{
		Kind: ast.SegName,
		Name: p.arenas.StringsInterner.Intern(identTok.Text),
	}
	if ok := p.parseSegmentSuffix(&seg); !ok {
		return ast.NoTypeID, false
	}
	pid := p.arenas.Paths.New(identTok.Span.Cover(p.lastSpan), ast.NoPathID, seg)

	for p.at(token.ColonColon) {
		p.advance()
		segStart := p.lx.Peek().Span
		next, ok := p.parseSegment(false)
		if !ok {
			return ast.NoTypeID, false
		}
		pid = p.arenas.Paths.New(segStart.Cover(p.lastSpan), pid, next)
	}

	return p.arenas.Types.NewPath(identTok.Span.Cover(p.lastSpan), pid), true
}
