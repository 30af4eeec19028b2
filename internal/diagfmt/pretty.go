package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"ferro/internal/diag"
	"ferro/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	caretColor   = color.New(color.FgGreen, color.Bold)
)

// Pretty writes diagnostics in a human-readable form, one block per
// diagnostic:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	    <source line>
//	    ^~~~
//
// Call bag.Sort() beforehand for deterministic order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for i := range bag.Items() {
		prettyOne(w, &bag.Items()[i], fs, opts)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	writeHeader(w, d.Primary, severityLabel(d.Severity, opts.Color), d.Code.String(), d.Message, fs, opts)
	if opts.ShowSource {
		writeSourceLine(w, d.Primary, fs, opts)
	}
	if opts.ShowNotes {
		for _, note := range d.Notes {
			writeHeader(w, note.Span, "note", "", note.Msg, fs, opts)
			if opts.ShowSource {
				writeSourceLine(w, note.Span, fs, opts)
			}
		}
	}
}

func writeHeader(w io.Writer, span source.Span, sev, code, msg string, fs *source.FileSet, opts PrettyOpts) {
	// I/O diagnostics carry an empty span that points at no file.
	if int(span.File) >= fs.Len() {
		if code != "" {
			fmt.Fprintf(w, "%s %s: %s\n", sev, code, msg)
		} else {
			fmt.Fprintf(w, "%s: %s\n", sev, msg)
		}
		return
	}
	start, _ := fs.Resolve(span)
	path := displayPath(fs.Get(span.File).Path, opts.PathMode)
	if code != "" {
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, sev, code, msg)
	} else {
		fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", path, start.Line, start.Col, sev, msg)
	}
}

// writeSourceLine prints the first line the span covers with a caret
// underline below it.
func writeSourceLine(w io.Writer, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	if int(span.File) >= fs.Len() {
		return
	}
	start, end := fs.Resolve(span)
	line := fs.Get(span.File).GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "    %s\n", line)

	width := uint32(1)
	if end.Line == start.Line && end.Col > start.Col {
		width = end.Col - start.Col
	}
	underline := "^" + strings.Repeat("~", int(width)-1)
	if opts.Color {
		underline = caretColor.Sprint(underline)
	}
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", int(start.Col)-1), underline)
}

func severityLabel(sev diag.Severity, colored bool) string {
	label := sev.String()
	if !colored {
		return label
	}
	switch sev {
	case diag.SevError:
		return errorColor.Sprint(label)
	case diag.SevWarning:
		return warningColor.Sprint(label)
	default:
		return infoColor.Sprint(label)
	}
}

func displayPath(path string, mode PathMode) string {
	if mode == PathModeBasename {
		return filepath.Base(path)
	}
	return path
}
