package lexer

import (
	"ferro/internal/token"
)

// ASCII identifier classifiers. The path grammar has no Unicode idents.
func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

// try2 consumes two bytes if they match exactly.
func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}

// scanIdentOrKeyword scans an identifier and classifies keywords through
// LookupKeyword. A '$'-prefixed identifier (macro ident like $crate) is one
// Ident token whose Text keeps the '$'.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '$' {
		lx.cursor.Bump()
		if !isIdentStartByte(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.report("BadMacroIdent", sp, "expected identifier after '$'")
			return token.Token{Kind: token.Invalid, Span: sp, Text: "$"}
		}
	}

	// Lone '_' is the placeholder type, not an identifier.
	if b0, b1, ok := lx.cursor.Peek2(); lx.cursor.Peek() == '_' &&
		(!ok || (b0 == '_' && !isIdentContinueByte(b1))) {
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Underscore, Span: sp, Text: "_"}
	}

	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanOperatorOrPunct scans punctuation greedily: two-byte forms first.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	switch {
	case lx.try2(':', ':'):
		return emit(token.ColonColon)
	case lx.try2('-', '>'):
		return emit(token.Arrow)
	case lx.try2('>', '>'):
		return emit(token.Shr)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '=':
		return emit(token.Assign)
	case ',':
		return emit(token.Comma)
	case ';':
		return emit(token.Semicolon)
	case '*':
		return emit(token.Star)
	case '&':
		return emit(token.Amp)
	case '!':
		return emit(token.Bang)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	}

	tok := emit(token.Invalid)
	lx.report("UnknownChar", tok.Span, "unknown character "+tok.Text)
	return tok
}
