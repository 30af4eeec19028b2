package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token, including macro idents like $crate.
	Ident

	// KwUse represents the 'use' keyword.
	KwUse // use
	// KwType represents the 'type' keyword.
	KwType // type
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwCrate represents the 'crate' path keyword.
	KwCrate // crate
	// KwSelf represents the 'self' path keyword.
	KwSelf // self
	// KwSuper represents the 'super' path keyword.
	KwSuper // super
	// KwMut represents the 'mut' keyword in reference types.
	KwMut // mut

	// ColonColon represents the '::' path separator.
	ColonColon // ::
	// Lt and Gt delimit generic argument lists and qualified types.
	Lt // <
	Gt // >
	// Shr represents '>>'; the parser splits it when closing nested generics.
	Shr // >>
	// Arrow represents '->' in fn-sugar return types.
	Arrow // ->
	// Assign represents '=' in associated type bindings.
	Assign // =
	// Comma separates arguments and tree elements.
	Comma // ,
	// Semicolon terminates items.
	Semicolon // ;
	// Star represents the use-tree glob '*'.
	Star // *
	// Amp represents '&' in reference types.
	Amp // &
	// Bang represents the never type '!'.
	Bang // !
	// Underscore represents the placeholder type '_'.
	Underscore // _
	LParen     // (
	RParen     // )
	LBracket   // [
	RBracket   // ]
	LBrace     // {
	RBrace     // }
)

var kindNames = [...]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Ident:      "Ident",
	KwUse:      "use",
	KwType:     "type",
	KwAs:       "as",
	KwCrate:    "crate",
	KwSelf:     "self",
	KwSuper:    "super",
	KwMut:      "mut",
	ColonColon: "::",
	Lt:         "<",
	Gt:         ">",
	Shr:        ">>",
	Arrow:      "->",
	Assign:     "=",
	Comma:      ",",
	Semicolon:  ";",
	Star:       "*",
	Amp:        "&",
	Bang:       "!",
	Underscore: "_",
	LParen:     "(",
	RParen:     ")",
	LBracket:   "[",
	RBracket:   "]",
	LBrace:     "{",
	RBrace:     "}",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
