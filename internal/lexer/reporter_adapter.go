package lexer

import (
	"ferro/internal/diag"
	"ferro/internal/source"
)

// BagAdapter turns lexer reports into diag.Bag entries.
type BagAdapter struct {
	Bag *diag.Bag
}

func (a *BagAdapter) Report(kind string, span source.Span, msg string) {
	if a.Bag == nil {
		return
	}
	code := diag.LexUnknownChar
	if kind == "BadMacroIdent" {
		code = diag.LexBadMacroIdent
	}
	a.Bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  msg,
		Primary:  span,
	})
}
