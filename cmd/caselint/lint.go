package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"caselint/internal/fix"
	"caselint/internal/lint"
	"caselint/internal/report"
)

// errProblemsFound makes main exit 1 without printing anything extra.
var errProblemsFound = errors.New("problems found")

func newLintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [flags] <path>...",
		Short: "Report case clauses that use the comma operator",
		Long:  `Lint parses every matching file under the given paths and reports rule failures, syntax errors and available fixes`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runLint,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	cmd.Flags().Bool("fix", false, "apply all available fixes before reporting")
	cmd.Flags().Int("jobs", 0, "max parallel workers (0 = from config or GOMAXPROCS)")
	cmd.Flags().Bool("cache", false, "reuse results of unchanged files from the disk cache")
	cmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	cmd.Flags().String("config", "", "path to caselint.toml (default: search upward)")
	cmd.Flags().Bool("with-fixes", false, "show a preview of each fix")
	cmd.Flags().String("path-mode", "auto", "how to print file paths (auto|absolute|relative|basename)")
	return cmd
}

func readSessionFlags(cmd *cobra.Command) (sessionFlags, error) {
	var flags sessionFlags
	var err error
	if flags.configPath, err = cmd.Flags().GetString("config"); err != nil {
		return flags, fmt.Errorf("failed to get config flag: %w", err)
	}
	if flags.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return flags, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if flags.jobs < 0 {
		return flags, fmt.Errorf("--jobs must be >= 0")
	}
	if flags.useCache, err = cmd.Flags().GetBool("cache"); err != nil {
		return flags, fmt.Errorf("failed to get cache flag: %w", err)
	}
	uiFlag := "off"
	if cmd.Flags().Lookup("ui") != nil {
		if uiFlag, err = cmd.Flags().GetString("ui"); err != nil {
			return flags, fmt.Errorf("failed to get ui flag: %w", err)
		}
	}
	if flags.ui, err = readUIMode(uiFlag); err != nil {
		return flags, err
	}
	return flags, nil
}

func runLint(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "short":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	applyFixes, err := cmd.Flags().GetBool("fix")
	if err != nil {
		return fmt.Errorf("failed to get fix flag: %w", err)
	}
	withFixes, err := cmd.Flags().GetBool("with-fixes")
	if err != nil {
		return fmt.Errorf("failed to get with-fixes flag: %w", err)
	}
	pathModeStr, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	pathMode, err := report.ParsePathMode(pathModeStr)
	if err != nil {
		return err
	}
	flags, err := readSessionFlags(cmd)
	if err != nil {
		return err
	}
	// JSON уходит в stdout целиком, прогресс бы его перемешал
	if format != "pretty" {
		flags.ui = uiModeOff
	}

	cleanup, err := instrument(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	s, err := newLintSession(cmd, args, flags)
	if err != nil {
		return err
	}
	if err := s.run(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if applyFixes {
		var applied int
		err := s.timer.Measure("fix", func(note *string) error {
			res, err := fix.Apply(s.fs, lint.AllFailures(s.results), fix.ApplyOptions{Mode: fix.ApplyModeAll})
			if err != nil && !errors.Is(err, fix.ErrNoFixes) {
				return err
			}
			if res != nil {
				applied = len(res.Applied)
				if !s.quiet && format == "pretty" {
					if err := writeApplyResult(out, res, false); err != nil {
						return err
					}
				}
			}
			*note = fmt.Sprintf("%d applied", applied)
			return nil
		})
		if err != nil {
			return err
		}
		// отчёт строится по уже исправленным файлам
		if applied > 0 {
			if err := s.run(); err != nil {
				return err
			}
		}
	}

	opts := report.Options{
		Color:            s.color,
		PathMode:         pathMode,
		ShowFixes:        withFixes,
		IncludePositions: true,
	}
	sum := lint.Summarize(s.results)
	items := report.Items(s.results)
	if err := s.timer.Measure("report", func(*string) error {
		return writeReport(out, format, s, items, sum, opts)
	}); err != nil {
		return err
	}
	if err := s.writeTimings(cmd.ErrOrStderr()); err != nil {
		return err
	}
	if sum.Failed() {
		return errProblemsFound
	}
	return nil
}

func writeReport(out io.Writer, format string, s *lintSession, items []report.Item, sum lint.Summary, opts report.Options) error {
	switch format {
	case "json":
		return report.JSON(out, s.fs, items, sum, opts)
	case "short":
		return report.Short(out, s.fs, items, opts)
	default:
		if err := report.Pretty(out, s.fs, items, opts); err != nil {
			return err
		}
		if s.quiet && len(items) == 0 {
			return nil
		}
		return report.Summary(out, sum, opts)
	}
}
