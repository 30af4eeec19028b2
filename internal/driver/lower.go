package driver

import (
	"fmt"

	"fortio.org/safecast"

	"ferro/internal/ast"
	"ferro/internal/diag"
	"ferro/internal/hir"
	"ferro/internal/hygiene"
	"ferro/internal/lexer"
	"ferro/internal/parser"
	"ferro/internal/source"
)

// Options configures a lowering run.
type Options struct {
	// MaxDiagnostics caps the per-file diagnostic bag. Parse errors beyond
	// the cap are dropped.
	MaxDiagnostics int
	// Jobs limits directory-level parallelism; <= 0 means GOMAXPROCS.
	Jobs int
	// Hygiene is consulted for every identifier occurrence. Nil means
	// plain source hygiene. Its table must be interned through Interner.
	Hygiene *hygiene.Hygiene
	// Interner backs every builder of the run. Nil means a private table
	// per file, which is fine without hygiene.
	Interner *source.Interner
	// Cache, when set, lets LowerDir skip files whose content hash has a
	// clean cached result.
	Cache *DiskCache
}

func (o Options) hygiene() *hygiene.Hygiene {
	if o.Hygiene == nil {
		return hygiene.New()
	}
	return o.Hygiene
}

func (o Options) interner() *source.Interner {
	if o.Interner == nil {
		return source.NewInterner()
	}
	return o.Interner
}

func (o Options) maxErrors() uint {
	n, err := safecast.Conv[uint](o.MaxDiagnostics)
	if err != nil {
		panic(fmt.Errorf("maxDiagnostics overflow: %w", err))
	}
	return n
}

// Import is one flattened import of a use item.
type Import struct {
	Span  source.Span
	Path  string
	Glob  bool
	Alias string // "" when absent
}

// LoweredPath is one canonical path recovered from type syntax.
type LoweredPath struct {
	Span    source.Span
	Display string
}

// FileResult holds everything lowering produced for one file.
type FileResult struct {
	Path    string
	FileID  source.FileID
	Bag     *diag.Bag
	Paths   []LoweredPath
	Imports []Import

	// Cached marks a result restored from the disk cache; its Bag is
	// empty since only clean runs are cached.
	Cached bool
}

// LowerFile loads one file from disk and lowers it.
func LowerFile(fileSet *source.FileSet, path string, opts Options) (FileResult, error) {
	fileID, err := fileSet.Load(path)
	if err != nil {
		return FileResult{Path: path}, err
	}
	res := lowerSource(fileSet, fileID, opts.interner(), opts)
	res.Path = path
	return res, nil
}

// LowerString lowers an in-memory file, as used by tests and `lower -e`.
func LowerString(name, src string, opts Options) FileResult {
	fileSet := source.NewFileSet()
	fileID := fileSet.AddVirtual(name, []byte(src))
	res := lowerSource(fileSet, fileID, opts.interner(), opts)
	res.Path = name
	return res
}

// LowerPathString parses src as a single standalone path and lowers it.
// A nil result with diagnostics means the input was not a lowerable path.
func LowerPathString(src string, opts Options) (string, *diag.Bag, bool) {
	fileSet := source.NewFileSet()
	fileID := fileSet.AddVirtual("<expr>", []byte(src))

	bag := diag.NewBag(opts.MaxDiagnostics)
	lx := lexer.New(fileSet.Get(fileID), lexer.Options{Reporter: &lexer.BagAdapter{Bag: bag}})
	builder := ast.NewBuilder(ast.Hints{}, opts.interner())

	id, ok := parser.ParsePath(lx, builder, parser.Options{
		Reporter:  &diag.BagReporter{Bag: bag},
		MaxErrors: opts.maxErrors(),
	})
	if !ok || bag.HasErrors() {
		return "", bag, false
	}

	path := hir.LowerPath(builder, id, opts.hygiene())
	if path == nil {
		return "", bag, false
	}
	return path.Display(builder.StringsInterner), bag, true
}

// lowerSource runs lex, parse, and lowering over one file of items.
func lowerSource(fileSet *source.FileSet, fileID source.FileID, interner *source.Interner, opts Options) FileResult {
	bag := diag.NewBag(opts.MaxDiagnostics)
	lx := lexer.New(fileSet.Get(fileID), lexer.Options{Reporter: &lexer.BagAdapter{Bag: bag}})
	builder := ast.NewBuilder(ast.Hints{}, interner)

	parsed := parser.ParseFile(lx, builder, parser.Options{
		Reporter:  &diag.BagReporter{Bag: bag},
		MaxErrors: opts.maxErrors(),
	})

	res := FileResult{FileID: fileID, Bag: bag}
	hyg := opts.hygiene()

	for _, itemID := range builder.Files.Get(parsed.File).Items {
		if use, ok := builder.Items.Use(itemID); ok {
			span := builder.Items.Get(itemID).Span
			hir.LowerUseTree(builder, use.Tree, hyg, func(mp hir.ModPath, glob bool, alias source.StringID) {
				imp := Import{Span: span, Path: modPathDisplay(builder, mp), Glob: glob}
				if alias != source.NoStringID {
					imp.Alias = interner.MustLookup(alias)
				}
				res.Imports = append(res.Imports, imp)
			})
			continue
		}
		if typeAlias, ok := builder.Items.TypeAlias(itemID); ok {
			collectPaths(builder, typeAlias.Type, hyg, &res.Paths)
		}
	}
	return res
}

// collectPaths lowers every path embedded in a type expression, outermost
// first.
func collectPaths(b *ast.Builder, id ast.TypeID, hyg *hygiene.Hygiene, out *[]LoweredPath) {
	if !id.IsValid() {
		return
	}
	typ := b.Types.Get(id)
	switch typ.Kind {
	case ast.TypeExprPath:
		if path := hir.LowerPath(b, typ.Path, hyg); path != nil {
			*out = append(*out, LoweredPath{
				Span:    typ.Span,
				Display: path.Display(b.StringsInterner),
			})
		}
	case ast.TypeExprTuple:
		for _, elem := range typ.Elems {
			collectPaths(b, elem, hyg, out)
		}
	case ast.TypeExprReference, ast.TypeExprSlice:
		collectPaths(b, typ.Elem, hyg, out)
	}
}

func modPathDisplay(b *ast.Builder, mp hir.ModPath) string {
	path := hir.Path{Mod: mp, GenericArgs: make([]*hir.GenericArgs, len(mp.Segments))}
	return path.Display(b.StringsInterner)
}
