package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"caselint/internal/diag"
	"caselint/internal/lexer"
	"caselint/internal/lint"
	"caselint/internal/report"
	"caselint/internal/source"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] <file>",
		Short: "Dump the tokens of a source file",
		Long:  `Tokenize breaks a source file into tokens; lexical errors go to stderr`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	fs := source.NewFileSet()
	id, err := fs.Load(args[0])
	if err != nil {
		return fmt.Errorf("tokenize: %w", err)
	}
	file := fs.Get(id)
	bag := diag.NewBag(maxDiagnostics)
	tokens := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}}).All()

	if err := writeDiagnostics(cmd, fs, file, bag); err != nil {
		return err
	}
	switch format {
	case "json":
		return report.TokensJSON(cmd.OutOrStdout(), tokens)
	default:
		return report.TokensPretty(cmd.OutOrStdout(), fs, tokens)
	}
}

// writeDiagnostics печатает лексические и синтаксические ошибки в stderr.
func writeDiagnostics(cmd *cobra.Command, fs *source.FileSet, file *source.File, bag *diag.Bag) error {
	if bag.Len() == 0 {
		return nil
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	useColor, err := readColor(colorFlag, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	bag.Sort()
	items := report.Items([]lint.Result{{Path: file.Path, FileID: file.ID, Bag: bag}})
	return report.Pretty(cmd.ErrOrStderr(), fs, items, report.Options{Color: useColor})
}
