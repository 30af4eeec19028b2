package lexer

import (
	"testing"

	"ferro/internal/diag"
	"ferro/internal/source"
	"ferro/internal/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.fe", []byte(src))

	lx := New(fs.Get(fileID), Options{})
	var toks []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func kindsOf(toks []token.Token) []token.Kind {
	kinds := make([]token.Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	return kinds
}

func TestLexPath(t *testing.T) {
	toks := lexAll(t, "::foo::Bar<T, U>")

	want := []token.Kind{
		token.ColonColon, token.Ident, token.ColonColon, token.Ident,
		token.Lt, token.Ident, token.Comma, token.Ident, token.Gt,
	}
	got := kindsOf(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
	if toks[1].Text != "foo" || toks[3].Text != "Bar" {
		t.Errorf("unexpected ident texts: %q, %q", toks[1].Text, toks[3].Text)
	}
}

func TestLexKeywordsVsIdents(t *testing.T) {
	toks := lexAll(t, "use crate self super as mut Fn crates")

	want := []token.Kind{
		token.KwUse, token.KwCrate, token.KwSelf, token.KwSuper,
		token.KwAs, token.KwMut, token.Ident, token.Ident,
	}
	got := kindsOf(toks)
	if len(got) != len(want) {
		t.Fatalf("got tokens %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexMacroIdent(t *testing.T) {
	toks := lexAll(t, "$crate::foo")

	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3: %v", len(toks), kindsOf(toks))
	}
	if toks[0].Kind != token.Ident || toks[0].Text != "$crate" {
		t.Errorf("first token = %v %q, want Ident %q", toks[0].Kind, toks[0].Text, "$crate")
	}
}

func TestLexFnSugar(t *testing.T) {
	toks := lexAll(t, "Fn(X, Y) -> Z")

	want := []token.Kind{
		token.Ident, token.LParen, token.Ident, token.Comma, token.Ident,
		token.RParen, token.Arrow, token.Ident,
	}
	got := kindsOf(toks)
	if len(got) != len(want) {
		t.Fatalf("got tokens %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexShrAndUnderscore(t *testing.T) {
	toks := lexAll(t, "Vec<Vec<_>> >")

	want := []token.Kind{
		token.Ident, token.Lt, token.Ident, token.Lt, token.Underscore,
		token.Shr, token.Gt,
	}
	got := kindsOf(toks)
	if len(got) != len(want) {
		t.Fatalf("got tokens %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexSkipsComments(t *testing.T) {
	toks := lexAll(t, "// a use statement\nuse a;")

	want := []token.Kind{token.KwUse, token.Ident, token.Semicolon}
	got := kindsOf(toks)
	if len(got) != len(want) {
		t.Fatalf("got tokens %v, want %v", got, want)
	}
}

type collectReporter struct {
	msgs []string
}

func (r *collectReporter) Report(kind string, span source.Span, msg string) {
	r.msgs = append(r.msgs, msg)
}

func TestLexUnknownChar(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("bad.fe", []byte("a # b"))

	rep := &collectReporter{}
	lx := New(fs.Get(fileID), Options{Reporter: rep})
	var kinds []token.Kind
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		kinds = append(kinds, tok.Kind)
	}

	if len(rep.msgs) != 1 {
		t.Fatalf("got %d lex reports, want 1: %v", len(rep.msgs), rep.msgs)
	}
	want := []token.Kind{token.Ident, token.Invalid, token.Ident}
	if len(kinds) != len(want) {
		t.Fatalf("got tokens %v, want %v", kinds, want)
	}
}

// Each lexer report kind carries its own diagnostic code through BagAdapter.
func TestBagAdapterCodes(t *testing.T) {
	tests := []struct {
		src  string
		code diag.Code
	}{
		{"$", diag.LexBadMacroIdent},
		{"#", diag.LexUnknownChar},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			fs := source.NewFileSet()
			fileID := fs.AddVirtual("bad.fe", []byte(tt.src))

			bag := diag.NewBag(10)
			lx := New(fs.Get(fileID), Options{Reporter: &BagAdapter{Bag: bag}})
			for lx.Next().Kind != token.EOF {
			}

			if bag.Len() != 1 {
				t.Fatalf("got %d diagnostics, want 1", bag.Len())
			}
			if got := bag.Items()[0].Code; got != tt.code {
				t.Errorf("code = %s, want %s", got, tt.code)
			}
		})
	}
}
