package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"ferro/internal/hygiene"
	"ferro/internal/source"
)

func TestLowerString(t *testing.T) {
	src := `use a::{b, c as d};
type Callback = Fn(X, Y) -> Z;
type Item = <T as Trait<A>>::Item;
`
	res := LowerString("test.fe", src, Options{MaxDiagnostics: 10})

	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", res.Bag.Items())
	}

	wantImports := []Import{
		{Path: "a::b"},
		{Path: "a::c", Alias: "d"},
	}
	if len(res.Imports) != len(wantImports) {
		t.Fatalf("imports = %+v, want %d entries", res.Imports, len(wantImports))
	}
	for i, want := range wantImports {
		if res.Imports[i].Path != want.Path || res.Imports[i].Alias != want.Alias {
			t.Errorf("import %d = %+v, want %+v", i, res.Imports[i], want)
		}
	}

	wantPaths := []string{
		"Fn<(X, Y), Output = Z>",
		"Trait<Self = T, A>::Item",
	}
	if len(res.Paths) != len(wantPaths) {
		t.Fatalf("paths = %+v, want %d entries", res.Paths, len(wantPaths))
	}
	for i, want := range wantPaths {
		if res.Paths[i].Display != want {
			t.Errorf("path %d = %q, want %q", i, res.Paths[i].Display, want)
		}
	}
}

func TestLowerStringReportsParseErrors(t *testing.T) {
	res := LowerString("bad.fe", "use ::;\n", Options{MaxDiagnostics: 10})

	if !res.Bag.HasErrors() {
		t.Error("expected diagnostics for malformed input")
	}
}

func TestLowerPathString(t *testing.T) {
	display, bag, ok := LowerPathString("a::b<T>", Options{MaxDiagnostics: 10})
	if !ok || bag.HasErrors() {
		t.Fatalf("ok = %v, diagnostics = %+v", ok, bag.Items())
	}
	if display != "a::b<T>" {
		t.Errorf("display = %q, want a::b<T>", display)
	}

	if _, _, ok := LowerPathString("a::", Options{MaxDiagnostics: 10}); ok {
		t.Error("trailing separator lowered, want failure")
	}
}

func TestLowerPathStringWithMacroHygiene(t *testing.T) {
	in := source.NewInterner()
	hyg := hygiene.NewForMacro(map[source.StringID]hygiene.CrateID{
		in.Intern("$crate"): 4,
	})

	display, _, ok := LowerPathString("$crate::x", Options{
		MaxDiagnostics: 10,
		Hygiene:        hyg,
		Interner:       in,
	})
	if !ok {
		t.Fatal("failed to lower")
	}
	if display != "$crate::x" {
		t.Errorf("display = %q, want crate-root spelling", display)
	}
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLowerFile(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "m.fe", "use x::y;\n")

	fileSet := source.NewFileSet()
	res, err := LowerFile(fileSet, path, Options{MaxDiagnostics: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Imports) != 1 || res.Imports[0].Path != "x::y" {
		t.Errorf("imports = %+v, want x::y", res.Imports)
	}
}

func TestLowerDir(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "b.fe", "use b::item;\n")
	writeSource(t, dir, "a.fe", "use a::item;\n")
	writeSource(t, dir, "skip.txt", "not a source file")

	_, results, err := LowerDir(context.Background(), dir, Options{MaxDiagnostics: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	// Sorted path order, independent of completion order.
	if filepath.Base(results[0].Path) != "a.fe" || filepath.Base(results[1].Path) != "b.fe" {
		t.Errorf("order = [%s, %s], want [a.fe, b.fe]", results[0].Path, results[1].Path)
	}
	if results[0].Imports[0].Path != "a::item" {
		t.Errorf("first import = %+v", results[0].Imports)
	}
}

func TestLowerDirEmpty(t *testing.T) {
	_, results, err := LowerDir(context.Background(), t.TempDir(), Options{MaxDiagnostics: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("results = %d, want 0", len(results))
	}
}

func TestLowerDirCancelled(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.fe", "use a;\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := LowerDir(ctx, dir, Options{MaxDiagnostics: 10}); err == nil {
		t.Error("expected a cancellation error")
	}
}

func TestLowerDirUsesCache(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.fe", "use a::b;\n")

	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{MaxDiagnostics: 10, Cache: cache}

	_, first, err := LowerDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].Cached {
		t.Error("first run hit the cache")
	}

	_, second, err := LowerDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second[0].Cached {
		t.Error("second run missed the cache")
	}
	if len(second[0].Imports) != 1 || second[0].Imports[0].Path != "a::b" {
		t.Errorf("cached imports = %+v, want a::b", second[0].Imports)
	}
}

func TestCacheSkipsFilesWithDiagnostics(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "bad.fe", "use ::;\n")

	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{MaxDiagnostics: 10, Cache: cache}

	if _, _, err := LowerDir(context.Background(), dir, opts); err != nil {
		t.Fatal(err)
	}
	_, second, err := LowerDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if second[0].Cached {
		t.Error("a file with diagnostics was served from the cache")
	}
	if !second[0].Bag.HasErrors() {
		t.Error("diagnostics lost on the second run")
	}
}

func TestTokenizeFile(t *testing.T) {
	fileSet := source.NewFileSet()
	fileID := fileSet.AddVirtual("t.fe", []byte("a::b"))

	tokens, bag := TokenizeFile(fileSet, fileID, 10)
	if bag.HasErrors() {
		t.Fatalf("diagnostics: %+v", bag.Items())
	}
	// a, ::, b, EOF
	if len(tokens) != 4 {
		t.Errorf("tokens = %d, want 4", len(tokens))
	}
}
