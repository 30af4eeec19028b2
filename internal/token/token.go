package token

import (
	"ferro/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwUse, KwType, KwAs, KwCrate, KwSelf, KwSuper, KwMut:
		return true
	default:
		return false
	}
}

// IsPathKeyword reports whether the token can root a path segment.
func (t Token) IsPathKeyword() bool {
	switch t.Kind {
	case KwCrate, KwSelf, KwSuper:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
