package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"ferro/internal/diag"
	"ferro/internal/lexer"
	"ferro/internal/source"
	"ferro/internal/token"
)

// SourceExt is the file extension of ferro sources.
const SourceExt = ".fe"

// listSourceFiles returns the sorted list of all *.fe files under dir.
func listSourceFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Deterministic order regardless of walk scheduling.
	sort.Strings(files)
	return files, nil
}

// LowerDir lowers every *.fe file under dir in parallel. Results come back
// in sorted path order. Files that fail to load produce a result with an
// I/O diagnostic instead of aborting the run.
func LowerDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []FileResult, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Load up front: FileSet is not safe for concurrent mutation.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// One slot per file; indexes are disjoint across goroutines.
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, hadError := loadErrors[path]; hadError {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
					Primary:  source.Span{},
				})
				results[i] = FileResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]

			if cached, ok := opts.Cache.restore(fileSet.Get(fileID)); ok {
				cached.Path = path
				results[i] = cached
				return nil
			}

			res := lowerSource(fileSet, fileID, opts.interner(), opts)
			res.Path = path
			results[i] = res

			opts.Cache.store(fileSet.Get(fileID), res)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// TokenizeFile lexes one loaded file into its full token stream, EOF
// included.
func TokenizeFile(fileSet *source.FileSet, fileID source.FileID, maxDiagnostics int) ([]token.Token, *diag.Bag) {
	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(fileSet.Get(fileID), lexer.Options{Reporter: &lexer.BagAdapter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens, bag
}
