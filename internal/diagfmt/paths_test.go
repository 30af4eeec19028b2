package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"ferro/internal/driver"
	"ferro/internal/source"
)

func TestFormatLoweringPretty(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("m.fe", []byte("type C = Fn(X) -> Y;\n"))

	results := []driver.FileResult{{
		Path:   "m.fe",
		FileID: fileID,
		Paths: []driver.LoweredPath{{
			Span:    source.Span{File: fileID, Start: 9, End: 19},
			Display: "Fn<(X), Output = Y>",
		}},
		Imports: []driver.Import{{Path: "a::b", Alias: "c"}},
	}}

	var sb strings.Builder
	FormatLoweringPretty(&sb, results, fs, PrettyOpts{})

	out := sb.String()
	if !strings.Contains(out, "m.fe:") {
		t.Errorf("missing file header in:\n%s", out)
	}
	if !strings.Contains(out, "use a::b as c") {
		t.Errorf("missing import line in:\n%s", out)
	}
	if !strings.Contains(out, "1:10 Fn<(X), Output = Y>") {
		t.Errorf("missing lowered path in:\n%s", out)
	}
}

func TestFormatLoweringJSON(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("m.fe", []byte("use a::*;\n"))

	results := []driver.FileResult{{
		Path:    "m.fe",
		FileID:  fileID,
		Imports: []driver.Import{{Path: "a", Glob: true}},
		Cached:  true,
	}}

	var sb strings.Builder
	if err := FormatLoweringJSON(&sb, results, fs, JSONOpts{}); err != nil {
		t.Fatal(err)
	}

	var out []FileLoweringJSON
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].File != "m.fe" || !out[0].Cached {
		t.Fatalf("output = %+v", out)
	}
	if len(out[0].Imports) != 1 || !out[0].Imports[0].Glob {
		t.Errorf("imports = %+v", out[0].Imports)
	}
}
