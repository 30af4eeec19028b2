package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ferro/internal/diagfmt"
	"ferro/internal/driver"
	"ferro/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.fe",
	Short: "Tokenize a ferro source file",
	Long:  `Tokenize breaks down a ferro source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}

	tokens, bag := driver.TokenizeFile(fileSet, fileID, maxDiagnostics(cmd))

	if bag.HasErrors() || bag.HasWarnings() {
		bag.Sort()
		diagfmt.Pretty(os.Stderr, bag, fileSet, diagfmt.PrettyOpts{
			Color:      useColor(cmd, os.Stderr),
			ShowSource: true,
			ShowNotes:  true,
		})
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, tokens, fileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
