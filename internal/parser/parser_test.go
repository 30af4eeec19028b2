package parser_test

import (
	"testing"

	"ferro/internal/ast"
	"ferro/internal/diag"
	"ferro/internal/lexer"
	"ferro/internal/parser"
	"ferro/internal/source"
)

func setup(src string) (*lexer.Lexer, *ast.Builder, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.fe", []byte(src))

	bag := diag.NewBag(100)
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: &lexer.BagAdapter{Bag: bag}})
	builder := ast.NewBuilder(ast.Hints{}, source.NewInterner())
	return lx, builder, bag
}

func parsePathOK(t *testing.T, src string) (*ast.Builder, ast.PathID) {
	t.Helper()

	lx, builder, bag := setup(src)
	id, ok := parser.ParsePath(lx, builder, parser.Options{
		Reporter:  &diag.BagReporter{Bag: bag},
		MaxErrors: 100,
	})
	if !ok || bag.HasErrors() {
		for _, d := range bag.Items() {
			t.Logf("diag: %s %s", d.Code, d.Message)
		}
		t.Fatalf("failed to parse path %q", src)
	}
	return builder, id
}

func parsePathErr(t *testing.T, src string) *diag.Bag {
	t.Helper()

	lx, builder, bag := setup(src)
	id, ok := parser.ParsePath(lx, builder, parser.Options{
		Reporter:  &diag.BagReporter{Bag: bag},
		MaxErrors: 100,
	})
	if ok && id.IsValid() && !bag.HasErrors() {
		t.Fatalf("parse of %q succeeded, want failure", src)
	}
	return bag
}

// qualifierDepth counts the links of the qualifier chain, the head included.
func qualifierDepth(b *ast.Builder, id ast.PathID) int {
	depth := 0
	for id.IsValid() {
		depth++
		id = b.Paths.Get(id).Qualifier
	}
	return depth
}

func TestParsePlainPath(t *testing.T) {
	b, id := parsePathOK(t, "a::b::c")

	if got := qualifierDepth(b, id); got != 3 {
		t.Errorf("qualifier depth = %d, want 3", got)
	}
	node := b.Paths.Get(id)
	if node.Seg.Kind != ast.SegName {
		t.Errorf("head kind = %v, want SegName", node.Seg.Kind)
	}
	if got := b.StringsInterner.MustLookup(node.Seg.Name); got != "c" {
		t.Errorf("head name = %q, want %q", got, "c")
	}
}

func TestParseLeadingColons(t *testing.T) {
	b, id := parsePathOK(t, "::a::b")

	// Walk to the first segment.
	first := id
	for b.Paths.Get(first).Qualifier.IsValid() {
		first = b.Paths.Get(first).Qualifier
	}
	if !b.Paths.Get(first).Seg.LeadingColons {
		t.Error("first segment lost its leading '::'")
	}
}

func TestParseKeywordSegments(t *testing.T) {
	tests := []struct {
		src  string
		kind ast.SegKind
	}{
		{"crate::x", ast.SegCrate},
		{"self::x", ast.SegSelf},
		{"super::x", ast.SegSuper},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			b, id := parsePathOK(t, tt.src)
			first := b.Paths.Get(id).Qualifier
			if !first.IsValid() {
				t.Fatal("head has no qualifier")
			}
			if got := b.Paths.Get(first).Seg.Kind; got != tt.kind {
				t.Errorf("first segment kind = %v, want %v", got, tt.kind)
			}
		})
	}
}

func TestParseGenericArgs(t *testing.T) {
	b, id := parsePathOK(t, "m::Map<K, V>")

	node := b.Paths.Get(id)
	if !node.Seg.Generics.IsValid() {
		t.Fatal("head segment has no generic arg list")
	}
	list := b.Generics.Get(node.Seg.Generics)
	if len(list.TypeArgs) != 2 || len(list.Bindings) != 0 {
		t.Errorf("args = %d, bindings = %d; want 2 and 0", len(list.TypeArgs), len(list.Bindings))
	}
}

func TestParseAssocBinding(t *testing.T) {
	b, id := parsePathOK(t, "Iterator<Item = u32, T>")

	list := b.Generics.Get(b.Paths.Get(id).Seg.Generics)
	if len(list.TypeArgs) != 1 || len(list.Bindings) != 1 {
		t.Fatalf("args = %d, bindings = %d; want 1 and 1", len(list.TypeArgs), len(list.Bindings))
	}
	if got := b.StringsInterner.MustLookup(list.Bindings[0].Name); got != "Item" {
		t.Errorf("binding name = %q, want Item", got)
	}
}

// '>>' closing two nested generic lists splits into two '>'.
func TestParseNestedGenericsShr(t *testing.T) {
	b, id := parsePathOK(t, "Vec<Vec<T>>")

	outer := b.Generics.Get(b.Paths.Get(id).Seg.Generics)
	if len(outer.TypeArgs) != 1 {
		t.Fatalf("outer args = %d, want 1", len(outer.TypeArgs))
	}
	innerType := b.Types.Get(outer.TypeArgs[0])
	if innerType.Kind != ast.TypeExprPath {
		t.Fatalf("inner arg kind = %v, want TypePath", innerType.Kind)
	}
	inner := b.Generics.Get(b.Paths.Get(innerType.Path).Seg.Generics)
	if len(inner.TypeArgs) != 1 {
		t.Errorf("inner args = %d, want 1", len(inner.TypeArgs))
	}
}

func TestParseFnSugar(t *testing.T) {
	b, id := parsePathOK(t, "Fn(X, Y) -> Z")

	seg := b.Paths.Get(id).Seg
	if !seg.Params.IsValid() {
		t.Fatal("no parameter list")
	}
	params := b.Params.Get(seg.Params)
	if len(params.Params) != 2 {
		t.Errorf("params = %d, want 2", len(params.Params))
	}
	if !seg.Ret.IsValid() {
		t.Error("return type missing")
	}
}

func TestParseFnSugarNoReturn(t *testing.T) {
	b, id := parsePathOK(t, "FnMut(X)")

	seg := b.Paths.Get(id).Seg
	if !seg.Params.IsValid() {
		t.Fatal("no parameter list")
	}
	if seg.Ret.IsValid() {
		t.Error("unexpected return type")
	}
}

func TestParseTypeQualified(t *testing.T) {
	b, id := parsePathOK(t, "<T as Trait<A>>::Item")

	first := b.Paths.Get(id).Qualifier
	if !first.IsValid() {
		t.Fatal("head has no qualifier")
	}
	seg := b.Paths.Get(first).Seg
	if seg.Kind != ast.SegType {
		t.Fatalf("first segment kind = %v, want SegType", seg.Kind)
	}
	if !seg.SelfType.IsValid() {
		t.Error("self type missing")
	}
	if !seg.Trait.IsValid() {
		t.Error("trait path missing")
	}
}

// The '>>' closing both the trait's generic list and the qualified segment
// must not let the trait path absorb the `::Item` that follows it.
func TestParseTypeQualifiedGenericTraitSplitShr(t *testing.T) {
	b, id := parsePathOK(t, "<T as a::Trait<A>>::Item")

	if got := qualifierDepth(b, id); got != 2 {
		t.Fatalf("qualifier depth = %d, want 2 (qualified segment + Item)", got)
	}
	head := b.Paths.Get(id).Seg
	if head.Kind != ast.SegName {
		t.Fatalf("head kind = %v, want SegName", head.Kind)
	}
	if got := b.StringsInterner.MustLookup(head.Name); got != "Item" {
		t.Errorf("head name = %q, want %q", got, "Item")
	}

	qual := b.Paths.Get(b.Paths.Get(id).Qualifier).Seg
	if qual.Kind != ast.SegType || !qual.Trait.IsValid() {
		t.Fatalf("qualifier segment = %+v, want SegType with trait", qual)
	}
	if got := qualifierDepth(b, qual.Trait); got != 2 {
		t.Errorf("trait path depth = %d, want 2 (a::Trait)", got)
	}
	traitHead := b.Paths.Get(qual.Trait).Seg
	if got := b.StringsInterner.MustLookup(traitHead.Name); got != "Trait" {
		t.Errorf("trait head = %q, want %q", got, "Trait")
	}
	if !traitHead.Generics.IsValid() {
		t.Error("trait segment lost its generic list")
	}
}

func TestParseTypeQualifiedNoTrait(t *testing.T) {
	b, id := parsePathOK(t, "<T>::item")

	first := b.Paths.Get(id).Qualifier
	seg := b.Paths.Get(first).Seg
	if seg.Kind != ast.SegType || seg.Trait.IsValid() {
		t.Errorf("segment = %+v, want SegType without trait", seg)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
	}{
		{"trailing separator", "a::", diag.SynExpectPathSegment},
		{"empty input", "", diag.SynExpectPathSegment},
		{"qualified not first", "a::<T>::b", diag.SynQualifiedNotFirst},
		{"unclosed angle", "a<T", diag.SynUnclosedAngle},
		{"unclosed paren", "Fn(X", diag.SynUnclosedParen},
		{"leftover tokens", "a b", diag.SynUnexpectedToken},
		{"stray closing angle", "a<T>>", diag.SynUnexpectedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bag := parsePathErr(t, tt.src)
			found := false
			for _, d := range bag.Items() {
				if d.Code == tt.code {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("no %s diagnostic for %q; got %+v", tt.code, tt.src, bag.Items())
			}
		})
	}
}

func parseFileOK(t *testing.T, src string) (*ast.Builder, parser.Result) {
	t.Helper()

	lx, builder, bag := setup(src)
	res := parser.ParseFile(lx, builder, parser.Options{
		Reporter:  &diag.BagReporter{Bag: bag},
		MaxErrors: 100,
	})
	if bag.HasErrors() {
		for _, d := range bag.Items() {
			t.Logf("diag: %s %s", d.Code, d.Message)
		}
		t.Fatalf("failed to parse %q", src)
	}
	return builder, res
}

func TestParseUseItem(t *testing.T) {
	b, res := parseFileOK(t, "use a::b;")

	items := b.Files.Get(res.File).Items
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	use, ok := b.Items.Use(items[0])
	if !ok {
		t.Fatal("item is not a use item")
	}
	tree := b.Trees.Get(use.Tree)
	if !tree.Path.IsValid() || tree.HasList || tree.Glob {
		t.Errorf("tree = %+v, want a plain path leaf", tree)
	}
}

func TestParseUseGroupSetsLinks(t *testing.T) {
	b, res := parseFileOK(t, "use a::{b, c::d};")

	use, _ := b.Items.Use(b.Files.Get(res.File).Items[0])
	group := b.Trees.Get(use.Tree)
	if !group.HasList || len(group.List) != 2 {
		t.Fatalf("group = %+v, want 2 children", group)
	}

	for i, childID := range group.List {
		child := b.Trees.Get(childID)
		if child.Parent != use.Tree {
			t.Errorf("child %d parent = %v, want the group tree", i, child.Parent)
		}
		if !child.Path.IsValid() {
			t.Fatalf("child %d has no path", i)
		}
		// The whole qualifier chain must point back at its owning tree.
		for pid := child.Path; pid.IsValid(); pid = b.Paths.Get(pid).Qualifier {
			if b.Paths.Get(pid).Owner != childID {
				t.Errorf("child %d path owner = %v, want %v", i, b.Paths.Get(pid).Owner, childID)
			}
		}
	}
}

func TestParseUseGlobAndAlias(t *testing.T) {
	b, res := parseFileOK(t, "use a::*;\nuse b as c;")

	items := b.Files.Get(res.File).Items
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}

	glob, _ := b.Items.Use(items[0])
	if tree := b.Trees.Get(glob.Tree); !tree.Glob {
		t.Error("first use is not a glob")
	}
	aliased, _ := b.Items.Use(items[1])
	if tree := b.Trees.Get(aliased.Tree); tree.Alias == source.NoStringID {
		t.Error("second use lost its alias")
	} else if got := b.StringsInterner.MustLookup(tree.Alias); got != "c" {
		t.Errorf("alias = %q, want c", got)
	}
}

func TestParseTypeAlias(t *testing.T) {
	b, res := parseFileOK(t, "type Pair = (A, B);")

	alias, ok := b.Items.TypeAlias(b.Files.Get(res.File).Items[0])
	if !ok {
		t.Fatal("item is not a type alias")
	}
	if got := b.StringsInterner.MustLookup(alias.Name); got != "Pair" {
		t.Errorf("name = %q, want Pair", got)
	}
	if typ := b.Types.Get(alias.Type); typ.Kind != ast.TypeExprTuple {
		t.Errorf("type kind = %v, want TypeTuple", typ.Kind)
	}
}

func TestParseTypeShapes(t *testing.T) {
	tests := []struct {
		src  string
		kind ast.TypeExprKind
	}{
		{"type A = &T;", ast.TypeExprReference},
		{"type A = &mut T;", ast.TypeExprReference},
		{"type A = [T];", ast.TypeExprSlice},
		{"type A = !;", ast.TypeExprNever},
		{"type A = _;", ast.TypeExprPlaceholder},
		{"type A = a::b;", ast.TypeExprPath},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			b, res := parseFileOK(t, tt.src)
			alias, _ := b.Items.TypeAlias(b.Files.Get(res.File).Items[0])
			if got := b.Types.Get(alias.Type).Kind; got != tt.kind {
				t.Errorf("kind = %v, want %v", got, tt.kind)
			}
		})
	}
}

func TestParseRecoversAfterBadItem(t *testing.T) {
	lx, builder, bag := setup("use ::;\nuse ok::path;")
	res := parser.ParseFile(lx, builder, parser.Options{
		Reporter:  &diag.BagReporter{Bag: bag},
		MaxErrors: 100,
	})

	if !bag.HasErrors() {
		t.Error("expected diagnostics for the malformed first item")
	}
	items := builder.Files.Get(res.File).Items
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1 recovered item", len(items))
	}
	if _, ok := builder.Items.Use(items[0]); !ok {
		t.Error("recovered item is not a use item")
	}
}

func TestParseEmptyUseGroupDiagnostic(t *testing.T) {
	lx, builder, bag := setup("use a::{};")
	parser.ParseFile(lx, builder, parser.Options{
		Reporter:  &diag.BagReporter{Bag: bag},
		MaxErrors: 100,
	})

	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SynEmptyUseGroup {
			found = true
		}
	}
	if !found {
		t.Errorf("no empty-group diagnostic; got %+v", bag.Items())
	}
}

func TestErrorBudgetStopsParsing(t *testing.T) {
	lx, builder, bag := setup("use ::;\nuse ::;\nuse ::;\nuse ::;")
	parser.ParseFile(lx, builder, parser.Options{
		Reporter:  &diag.BagReporter{Bag: bag},
		MaxErrors: 2,
	})

	if got := bag.Len(); got > 2 {
		t.Errorf("bag holds %d diagnostics, budget was 2", got)
	}
}
