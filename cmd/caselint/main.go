package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"caselint/internal/version"
)

// newRootCmd собирает свежее дерево команд со всеми флагами.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "caselint",
		Short:         "Lint switch statements for comma operators in case labels",
		Long:          `caselint finds case clauses whose expression is a comma operator and splits them into one case per value`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of syntax diagnostics per file (0 = from config)")
	rootCmd.PersistentFlags().String("trace", "", "write trace events to file (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write heap profile to file")

	rootCmd.AddCommand(newLintCmd())
	rootCmd.AddCommand(newFixCmd())
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// main runs the root command; any error exits with status 1.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		// о найденных проблемах уже сказал сам отчёт
		if !errors.Is(err, errProblemsFound) {
			fmt.Fprintln(os.Stderr, "caselint:", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
