package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"ferro/internal/diagfmt"
	"ferro/internal/driver"
	"ferro/internal/project"
	"ferro/internal/source"
)

var lowerCmd = &cobra.Command{
	Use:   "lower [flags] <file.fe|directory>",
	Short: "Lower path syntax into canonical semantic paths",
	Long: `Lower parses ferro sources and prints every canonical path: flattened
imports from use items and lowered paths from type syntax. Trait-qualified
paths and fn-trait sugar come out in their desugared form.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLower,
}

var lowerExpr string

func init() {
	lowerCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	lowerCmd.Flags().StringVarP(&lowerExpr, "expr", "e", "", "lower a single inline path expression")
	lowerCmd.Flags().Bool("cache", false, "reuse lowering snapshots for unchanged files")
}

func runLower(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	opts := driver.Options{
		MaxDiagnostics: maxDiagnostics(cmd),
		Interner:       source.NewInterner(),
	}
	jobs, _ := cmd.Root().PersistentFlags().GetInt("jobs")
	opts.Jobs = jobs

	if lowerExpr != "" {
		if len(args) != 0 {
			return fmt.Errorf("-e takes no file argument")
		}
		return runLowerExpr(cmd, format, opts)
	}
	if len(args) == 0 {
		return fmt.Errorf("expected a file, a directory, or -e <expr>")
	}

	target := args[0]
	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	// The nearest manifest supplies the macro hygiene table.
	startDir := target
	if !info.IsDir() {
		startDir = filepath.Dir(target)
	}
	if manifestPath, ok, err := project.FindFerroToml(startDir); err != nil {
		return err
	} else if ok {
		manifest, err := project.LoadManifest(manifestPath)
		if err != nil {
			return err
		}
		opts.Hygiene = manifest.Hygiene(opts.Interner)
	}

	if useCache, _ := cmd.Flags().GetBool("cache"); useCache {
		cache, err := driver.OpenDiskCache("ferro")
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		opts.Cache = cache
	}

	var fileSet *source.FileSet
	var results []driver.FileResult
	if info.IsDir() {
		fileSet, results, err = driver.LowerDir(cmd.Context(), target, opts)
		if err != nil {
			return err
		}
	} else {
		fileSet = source.NewFileSet()
		res, err := driver.LowerFile(fileSet, target, opts)
		if err != nil {
			return err
		}
		results = []driver.FileResult{res}
	}

	return renderLowering(cmd, format, fileSet, results)
}

func runLowerExpr(cmd *cobra.Command, format string, opts driver.Options) error {
	display, bag, ok := driver.LowerPathString(lowerExpr, opts)
	if bag.Len() > 0 {
		fileSet := source.NewFileSet()
		fileSet.AddVirtual("<expr>", []byte(lowerExpr))
		bag.Sort()
		diagfmt.Pretty(os.Stderr, bag, fileSet, diagfmt.PrettyOpts{
			Color:      useColor(cmd, os.Stderr),
			ShowSource: true,
		})
	}
	if !ok {
		return fmt.Errorf("failed to lower %q", lowerExpr)
	}

	if format == "json" {
		fmt.Fprintf(cmd.OutOrStdout(), "{\n  \"display\": %q\n}\n", display)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), display)
	return nil
}

func renderLowering(cmd *cobra.Command, format string, fileSet *source.FileSet, results []driver.FileResult) error {
	hadErrors := false
	for i := range results {
		if results[i].Bag != nil {
			results[i].Bag.Sort()
			if results[i].Bag.HasErrors() {
				hadErrors = true
			}
		}
	}

	if format == "json" {
		err := diagfmt.FormatLoweringJSON(os.Stdout, results, fileSet, diagfmt.JSONOpts{
			IncludePositions: true,
		})
		if err != nil {
			return err
		}
	} else {
		diagfmt.FormatLoweringPretty(os.Stdout, results, fileSet, diagfmt.PrettyOpts{
			Color:      useColor(cmd, os.Stdout),
			ShowSource: true,
		})
	}

	if hadErrors {
		return fmt.Errorf("lowering finished with errors")
	}
	return nil
}
