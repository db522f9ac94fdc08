package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"caselint/internal/fix"
	"caselint/internal/lint"
)

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [flags] <path>...",
		Short: "Apply available fixes to source files",
		Long:  "Lint the given paths, then apply their fixes according to the chosen strategy.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runFix,
	}
	cmd.Flags().Bool("all", false, "apply every non-conflicting fix (default)")
	cmd.Flags().Bool("once", false, "apply only the first available fix")
	cmd.Flags().String("id", "", "apply the fix with a specific identifier")
	cmd.Flags().Bool("preview", false, "show the changes without modifying files")
	cmd.Flags().Bool("list", false, "list available fixes with their identifiers")
	cmd.Flags().Int("jobs", 0, "max parallel workers (0 = from config or GOMAXPROCS)")
	cmd.Flags().Bool("cache", false, "reuse results of unchanged files from the disk cache")
	cmd.Flags().String("config", "", "path to caselint.toml (default: search upward)")
	return cmd
}

func readApplyOptions(cmd *cobra.Command) (fix.ApplyOptions, error) {
	applyAll, err := cmd.Flags().GetBool("all")
	if err != nil {
		return fix.ApplyOptions{}, err
	}
	applyOnce, err := cmd.Flags().GetBool("once")
	if err != nil {
		return fix.ApplyOptions{}, err
	}
	targetID, err := cmd.Flags().GetString("id")
	if err != nil {
		return fix.ApplyOptions{}, err
	}
	preview, err := cmd.Flags().GetBool("preview")
	if err != nil {
		return fix.ApplyOptions{}, err
	}

	if targetID != "" && (applyAll || applyOnce) {
		return fix.ApplyOptions{}, fmt.Errorf("--id cannot be combined with --all or --once")
	}
	if applyAll && applyOnce {
		return fix.ApplyOptions{}, fmt.Errorf("--all and --once are mutually exclusive")
	}

	opts := fix.ApplyOptions{Mode: fix.ApplyModeAll, DryRun: preview}
	switch {
	case targetID != "":
		opts.Mode = fix.ApplyModeID
		opts.TargetID = targetID
	case applyOnce:
		opts.Mode = fix.ApplyModeOnce
	}
	return opts, nil
}

func runFix(cmd *cobra.Command, args []string) error {
	opts, err := readApplyOptions(cmd)
	if err != nil {
		return err
	}
	list, err := cmd.Flags().GetBool("list")
	if err != nil {
		return err
	}
	flags, err := readSessionFlags(cmd)
	if err != nil {
		return err
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
	failures := lint.AllFailures(s.results)
	if list {
		return writeCandidates(out, s, failures)
	}

	var res *fix.ApplyResult
	var applyErr error
	if err := s.timer.Measure("fix", func(note *string) error {
		res, applyErr = fix.Apply(s.fs, failures, opts)
		if res != nil {
			*note = fmt.Sprintf("%d applied", len(res.Applied))
		}
		return nil
	}); err != nil {
		return err
	}
	if opts.DryRun && res != nil {
		if err := writePreview(out, s, failures, res); err != nil {
			return err
		}
	}
	if err := handleApplyResult(out, res, applyErr, opts.DryRun); err != nil {
		return err
	}
	return s.writeTimings(cmd.ErrOrStderr())
}

func writeCandidates(out io.Writer, s *lintSession, failures []*lint.Failure) error {
	cands := fix.Candidates(s.fs, failures)
	if len(cands) == 0 {
		_, err := fmt.Fprintln(out, "No applicable fixes found.")
		return err
	}
	for _, c := range cands {
		f := c.Item.Fix()
		start, _ := s.fs.Resolve(c.Item.Span())
		file := s.fs.Get(c.Item.Span().File)
		if _, err := fmt.Fprintf(out, "%s  %s:%d:%d  %s (%s)\n",
			c.ID, file.Path, start.Line, start.Col, f.Title(), f.Applicability()); err != nil {
			return err
		}
	}
	return nil
}

// writePreview печатает до/после для каждого исправления, которое было бы применено.
func writePreview(out io.Writer, s *lintSession, failures []*lint.Failure, res *fix.ApplyResult) error {
	byID := make(map[string]*lint.Failure)
	for _, c := range fix.Candidates(s.fs, failures) {
		if f, ok := c.Item.(*lint.Failure); ok {
			byID[c.ID] = f
		}
	}
	for _, applied := range res.Applied {
		f, ok := byID[applied.ID]
		if !ok {
			continue
		}
		file := s.fs.Get(f.Span().File)
		before, after, err := fix.Preview(file.Content, f.Fix())
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "%s [%s]\n", applied.Title, applied.ID); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "--- %s\n%s\n+++ %s\n%s\n\n", file.Path, before, file.Path, after); err != nil {
			return err
		}
	}
	return nil
}

func handleApplyResult(out io.Writer, res *fix.ApplyResult, applyErr error, dryRun bool) error {
	if res == nil {
		return applyErr
	}
	if applyErr != nil {
		if errors.Is(applyErr, fix.ErrNoFixes) && len(res.Applied) == 0 {
			_, err := fmt.Fprintln(out, "No applicable fixes found.")
			return err
		}
		if err := writeApplyResult(out, res, dryRun); err != nil {
			return err
		}
		return applyErr
	}
	if len(res.Applied) == 0 {
		_, err := fmt.Fprintln(out, "No fixes applied.")
		return err
	}
	return writeApplyResult(out, res, dryRun)
}

func writeApplyResult(out io.Writer, res *fix.ApplyResult, dryRun bool) error {
	verb := "Applied"
	if dryRun {
		verb = "Would apply"
	}
	if len(res.Applied) > 0 {
		if _, err := fmt.Fprintf(out, "%s %d fix(es):\n", verb, len(res.Applied)); err != nil {
			return err
		}
		for _, item := range res.Applied {
			location := item.PrimaryPath
			if location == "" {
				location = "(unknown location)"
			}
			if _, err := fmt.Fprintf(out, "  %s [%s] %s (%d edits, %s)\n",
				item.Title, item.ID, location, item.EditCount, item.Applicability); err != nil {
				return err
			}
		}
	}
	if len(res.FileChanges) > 0 && !dryRun {
		if _, err := fmt.Fprintln(out, "Updated files:"); err != nil {
			return err
		}
		for _, change := range res.FileChanges {
			if _, err := fmt.Fprintf(out, "  %s (%d edits)\n", change.Path, change.EditCount); err != nil {
				return err
			}
		}
	}
	if len(res.Skipped) > 0 {
		if _, err := fmt.Fprintln(out, "Skipped fixes:"); err != nil {
			return err
		}
		for _, skip := range res.Skipped {
			id := skip.ID
			if id == "" {
				id = "(unnamed)"
			}
			if _, err := fmt.Fprintf(out, "  %s [%s]: %s\n", skip.Title, id, skip.Reason); err != nil {
				return err
			}
		}
	}
	return nil
}
