package source

import (
	"testing"
)

func TestInternerDedup(t *testing.T) {
	in := NewInterner()

	a := in.Intern("crate")
	b := in.Intern("crate")
	c := in.Intern("Output")

	if a != b {
		t.Errorf("same string interned to different IDs: %d vs %d", a, b)
	}
	if a == c {
		t.Errorf("different strings interned to the same ID: %d", a)
	}
	if got := in.MustLookup(c); got != "Output" {
		t.Errorf("lookup returned %q, want %q", got, "Output")
	}
}

func TestInternerEmptyString(t *testing.T) {
	in := NewInterner()

	if id := in.Intern(""); id != NoStringID {
		t.Errorf("empty string interned to %d, want NoStringID", id)
	}
	if in.Len() != 1 {
		t.Errorf("fresh interner has Len %d, want 1", in.Len())
	}
}

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected Span
	}{
		{
			name:     "b extends both sides",
			a:        Span{File: 1, Start: 10, End: 20},
			b:        Span{File: 1, Start: 5, End: 25},
			expected: Span{File: 1, Start: 5, End: 25},
		},
		{
			name:     "b inside a",
			a:        Span{File: 1, Start: 10, End: 20},
			b:        Span{File: 1, Start: 12, End: 15},
			expected: Span{File: 1, Start: 10, End: 20},
		},
		{
			name:     "different files ignored",
			a:        Span{File: 1, Start: 10, End: 20},
			b:        Span{File: 2, Start: 0, End: 100},
			expected: Span{File: 1, Start: 10, End: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.expected {
				t.Errorf("Cover() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFileSetResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.fe", []byte("use a;\nuse b::c;\n"))

	start, end := fs.Resolve(Span{File: id, Start: 7, End: 10})
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("start = %d:%d, want 2:1", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 4 {
		t.Errorf("end = %d:%d, want 2:4", end.Line, end.Col)
	}

	if line := fs.Get(id).GetLine(2); line != "use b::c;" {
		t.Errorf("GetLine(2) = %q, want %q", line, "use b::c;")
	}
}

func TestFileSetNormalizesCRLF(t *testing.T) {
	fs := NewFileSet()
	id := fs.Add("crlf.fe", []byte("use a;\nok"), 0)

	f := fs.Get(id)
	if len(f.LineIdx) != 1 || f.LineIdx[0] != 6 {
		t.Errorf("unexpected line index: %v", f.LineIdx)
	}

	latest, ok := fs.GetLatest("crlf.fe")
	if !ok || latest != id {
		t.Errorf("GetLatest = (%d, %v), want (%d, true)", latest, ok, id)
	}
}
