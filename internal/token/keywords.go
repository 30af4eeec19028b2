package token

// keywords maps keyword spellings to kinds. Case-sensitive, lowercase only.
var keywords = map[string]Kind{
	"use":   KwUse,
	"type":  KwType,
	"as":    KwAs,
	"crate": KwCrate,
	"self":  KwSelf,
	"super": KwSuper,
	"mut":   KwMut,
}

// LookupKeyword returns the keyword kind for text, if it is one.
func LookupKeyword(text string) (Kind, bool) {
	k, ok := keywords[text]
	return k, ok
}
