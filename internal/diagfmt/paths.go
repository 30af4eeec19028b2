package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"ferro/internal/driver"
	"ferro/internal/source"
)

var (
	fileColor = color.New(color.FgWhite, color.Bold)
	pathColor = color.New(color.FgCyan)
	globColor = color.New(color.FgMagenta)
)

// FormatLoweringPretty writes the lowered paths and imports of each file.
func FormatLoweringPretty(w io.Writer, results []driver.FileResult, fs *source.FileSet, opts PrettyOpts) {
	for i := range results {
		res := &results[i]
		name := displayPath(res.Path, opts.PathMode)
		if opts.Color {
			name = fileColor.Sprint(name)
		}
		fmt.Fprintf(w, "%s:\n", name)

		for _, imp := range res.Imports {
			line := "use " + imp.Path
			if imp.Glob {
				line += "::*"
			}
			if imp.Alias != "" {
				line += " as " + imp.Alias
			}
			if opts.Color {
				line = globColor.Sprint(line)
			}
			fmt.Fprintf(w, "  %s\n", line)
		}
		for _, p := range res.Paths {
			display := p.Display
			if opts.Color {
				display = pathColor.Sprint(display)
			}
			start, _ := fs.Resolve(p.Span)
			fmt.Fprintf(w, "  %d:%d %s\n", start.Line, start.Col, display)
		}

		if res.Bag != nil && res.Bag.Len() > 0 {
			Pretty(w, res.Bag, fs, opts)
		}
	}
}

// FileLoweringJSON is the lowering output of one file in JSON form.
type FileLoweringJSON struct {
	File    string           `json:"file"`
	Paths   []PathJSON       `json:"paths,omitempty"`
	Imports []ImportJSON     `json:"imports,omitempty"`
	Diags   []DiagnosticJSON `json:"diagnostics,omitempty"`
	Cached  bool             `json:"cached,omitempty"`
}

// PathJSON is one lowered path in JSON form.
type PathJSON struct {
	Display string      `json:"display"`
	Span    source.Span `json:"span"`
}

// ImportJSON is one flattened import in JSON form.
type ImportJSON struct {
	Path  string `json:"path"`
	Glob  bool   `json:"glob,omitempty"`
	Alias string `json:"alias,omitempty"`
}

// FormatLoweringJSON writes the lowering results as an indented JSON array.
func FormatLoweringJSON(w io.Writer, results []driver.FileResult, fs *source.FileSet, opts JSONOpts) error {
	out := make([]FileLoweringJSON, 0, len(results))
	for i := range results {
		res := &results[i]
		fj := FileLoweringJSON{
			File:   displayPath(res.Path, opts.PathMode),
			Cached: res.Cached,
		}
		for _, p := range res.Paths {
			fj.Paths = append(fj.Paths, PathJSON{Display: p.Display, Span: p.Span})
		}
		for _, imp := range res.Imports {
			fj.Imports = append(fj.Imports, ImportJSON{Path: imp.Path, Glob: imp.Glob, Alias: imp.Alias})
		}
		if res.Bag != nil {
			for j := range res.Bag.Items() {
				d := &res.Bag.Items()[j]
				fj.Diags = append(fj.Diags, DiagnosticJSON{
					Severity: d.Severity.String(),
					Code:     d.Code.String(),
					Message:  d.Message,
					Location: makeLocation(d.Primary, fs, opts),
				})
			}
		}
		out = append(out, fj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
