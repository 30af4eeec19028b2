package parser

import (
	"ferro/internal/ast"
	"ferro/internal/diag"
	"ferro/internal/token"
)

// parsePath parses `'::'? segment ('::' segment)*`, building the qualifier
// chain left-nested: the returned node is the rightmost segment.
//
// trailingSep is true when a consumed `::` turned out to introduce a use
// group (`{`) or glob (`*`); the caller owns those.
func (p *Parser) parsePath(allowQualified bool) (id ast.PathID, trailingSep bool, ok bool) {
	leading := false
	if p.at(token.ColonColon) {
		p.advance()
		leading = true
	}

	var pid ast.PathID
	first := true
	for {
		segStart := p.lx.Peek().Span
		seg, segOK := p.parseSegment(first && allowQualified)
		if !segOK {
			return ast.NoPathID, false, false
		}
		if first && leading {
			seg.LeadingColons = true
		}
		pid = p.arenas.Paths.New(segStart.Cover(p.lastSpan), pid, seg)
		first = false

		// A '>' owed from a split '>>' closes the enclosing qualified
		// segment before any '::' can continue this path.
		if p.pendingGt > 0 || !p.at(token.ColonColon) {
			return pid, false, true
		}
		p.advance()
		if p.at(token.LBrace) || p.at(token.Star) {
			return pid, true, true
		}
	}
}

func (p *Parser) parseSegment(allowQualified bool) (ast.PathSegment, bool) {
	switch p.lx.Peek().Kind {
	case token.Ident:
		tok := p.advance()
		seg := ast.PathSegment{
			Kind: ast.SegName,
			Name: p.arenas.StringsInterner.Intern(tok.Text),
		}
		if ok := p.parseSegmentSuffix(&seg); !ok {
			return ast.PathSegment{}, false
		}
		return seg, true

	case token.KwCrate:
		p.advance()
		return ast.PathSegment{Kind: ast.SegCrate}, true

	case token.KwSelf:
		p.advance()
		return ast.PathSegment{Kind: ast.SegSelf}, true

	case token.KwSuper:
		p.advance()
		return ast.PathSegment{Kind: ast.SegSuper}, true

	case token.Lt:
		if !allowQualified {
			p.err(diag.SynQualifiedNotFirst, "type-qualified segment must start a path")
			return ast.PathSegment{}, false
		}
		return p.parseQualifiedSegment()

	default:
		p.err(diag.SynExpectPathSegment, "expected path segment")
		return ast.PathSegment{}, false
	}
}

// parseSegmentSuffix attaches an explicit generic argument list or fn-sugar
// to a name segment. At most one of the two can be present.
func (p *Parser) parseSegmentSuffix(seg *ast.PathSegment) bool {
	switch {
	case p.at(token.Lt):
		generics, ok := p.parseGenericArgList()
		if !ok {
			return false
		}
		seg.Generics = generics
	case p.at(token.LParen):
		params, ret, ok := p.parseFnSugar()
		if !ok {
			return false
		}
		seg.Params = params
		seg.Ret = ret
	}
	return true
}

// parseQualifiedSegment parses `<T>` or `<T as Trait<A>>`.
func (p *Parser) parseQualifiedSegment() (ast.PathSegment, bool) {
	p.advance() // '<'

	selfType, ok := p.parseType()
	if !ok {
		return ast.PathSegment{}, false
	}

	trait := ast.NoPathID
	if p.at(token.KwAs) {
		p.advance()
		traitPath, trailingSep, ok := p.parsePath(false)
		if !ok || trailingSep {
			return ast.PathSegment{}, false
		}
		trait = traitPath
	}

	if !p.expectGt() {
		return ast.PathSegment{}, false
	}
	return ast.PathSegment{Kind: ast.SegType, SelfType: selfType, Trait: trait}, true
}

// parseGenericArgList parses `<...>` with positional type arguments and
// `Name = Type` bindings in any order.
func (p *Parser) parseGenericArgList() (ast.GenericArgListID, bool) {
	ltTok := p.advance() // '<'

	var typeArgs []ast.TypeID
	var bindings []ast.AssocBinding
	for {
		if p.atGt() {
			p.bumpGt()
			break
		}
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedAngle, "unclosed generic argument list")
			return ast.NoGenericArgListID, false
		}

		if p.at(token.Ident) {
			identTok := p.advance()
			if p.at(token.Assign) {
				// associated type binding
				p.advance()
				typ, ok := p.parseType()
				if !ok {
					return ast.NoGenericArgListID, false
				}
				bindings = append(bindings, ast.AssocBinding{
					Name: p.arenas.StringsInterner.Intern(identTok.Text),
					Type: typ,
				})
			} else {
				// the identifier begins a path type
				typ, ok := p.parsePathTypeFrom(identTok)
				if !ok {
					return ast.NoGenericArgListID, false
				}
				typeArgs = append(typeArgs, typ)
			}
		} else {
			typ, ok := p.parseType()
			if !ok {
				return ast.NoGenericArgListID, false
			}
			typeArgs = append(typeArgs, typ)
		}

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		if p.atGt() {
			p.bumpGt()
			break
		}
		p.err(diag.SynUnclosedAngle, "expected ',' or '>' in generic argument list")
		return ast.NoGenericArgListID, false
	}

	span := ltTok.Span.Cover(p.lastSpan)
	return p.arenas.Generics.New(span, typeArgs, bindings), true
}

// parseFnSugar parses `(X, Y)` and an optional `-> Z` after a name segment.
func (p *Parser) parseFnSugar() (ast.ParamListID, ast.TypeID, bool) {
	lpTok := p.advance() // '('

	var params []ast.TypeID
	if !p.at(token.RParen) {
		for {
			typ, ok := p.parseType()
			if !ok {
				return ast.NoParamListID, ast.NoTypeID, false
			}
			params = append(params, typ)
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
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' in parameter list"); !ok {
		return ast.NoParamListID, ast.NoTypeID, false
	}
	paramsID := p.arenas.Params.New(lpTok.Span.Cover(p.lastSpan), params)

	ret := ast.NoTypeID
	if p.at(token.Arrow) {
		p.advance()
		typ, ok := p.parseType()
		if !ok {
			return ast.NoParamListID, ast.NoTypeID, false
		}
		ret = typ
	}
	return paramsID, ret, true
}

// atGt reports whether a '>' is next, counting the half of a split '>>'.
func (p *Parser) atGt() bool {
	return p.pendingGt > 0 || p.at(token.Gt) || p.at(token.Shr)
}

// bumpGt consumes one '>'. A '>>' token is split: one half is consumed now,
// the other is owed to the enclosing generic list.
func (p *Parser) bumpGt() {
	switch {
	case p.pendingGt > 0:
		p.pendingGt--
	case p.at(token.Gt):
		p.advance()
	case p.at(token.Shr):
		p.advance()
		p.pendingGt++
	}
}

func (p *Parser) expectGt() bool {
	if p.atGt() {
		p.bumpGt()
		return true
	}
	p.err(diag.SynUnclosedAngle, "expected '>'")
	return false
}
