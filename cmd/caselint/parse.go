package main

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"caselint/internal/ast"
	"caselint/internal/diag"
	"caselint/internal/parser"
	"caselint/internal/source"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Dump the syntax tree of a source file",
		Long:  `Parse builds the syntax tree of a source file and prints it; syntax errors go to stderr`,
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return fmt.Errorf("--max-diagnostics: %w", err)
	}

	fs := source.NewFileSet()
	id, err := fs.Load(args[0])
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	file := fs.Get(id)
	bag := diag.NewBag(maxDiagnostics)
	res := parser.ParseFile(file, parser.Options{
		MaxErrors: maxErrors,
		Reporter:  diag.BagReporter{Bag: bag},
	})

	if err := writeDiagnostics(cmd, fs, file, bag); err != nil {
		return err
	}
	return ast.Dump(cmd.OutOrStdout(), res.Root, file.Content)
}
