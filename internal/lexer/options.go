package lexer

import (
	"ferro/internal/source"
)

// Reporter is a thin interface so the lexer does not depend on diag.
// The lexer only calls it; formatting belongs to an outer layer.
type Reporter interface {
	Report(kind string, span source.Span, msg string)
}

// Options configures a Lexer. A nil Reporter drops errors but keeps lexing.
type Options struct {
	Reporter Reporter
}

func (lx *Lexer) report(kind string, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(kind, sp, msg)
	}
}
