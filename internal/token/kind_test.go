package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		text string
		kind Kind
		ok   bool
	}{
		{"use", KwUse, true},
		{"crate", KwCrate, true},
		{"self", KwSelf, true},
		{"super", KwSuper, true},
		{"as", KwAs, true},
		{"mut", KwMut, true},
		{"Crate", Invalid, false}, // case-sensitive
		{"fn", Invalid, false},    // Fn is an ordinary ident in path position
		{"selfish", Invalid, false},
	}

	for _, tt := range tests {
		k, ok := LookupKeyword(tt.text)
		if ok != tt.ok {
			t.Errorf("LookupKeyword(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			continue
		}
		if ok && k != tt.kind {
			t.Errorf("LookupKeyword(%q) = %v, want %v", tt.text, k, tt.kind)
		}
	}
}

func TestKindString(t *testing.T) {
	if ColonColon.String() != "::" {
		t.Errorf("ColonColon.String() = %q", ColonColon.String())
	}
	if got := (Token{Kind: KwCrate}).IsPathKeyword(); !got {
		t.Error("crate should be a path keyword")
	}
	if got := (Token{Kind: KwUse}).IsPathKeyword(); got {
		t.Error("use is not a path keyword")
	}
}
