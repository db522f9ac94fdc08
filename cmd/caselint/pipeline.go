package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"caselint/internal/cache"
	"caselint/internal/config"
	"caselint/internal/lint"
	"caselint/internal/observ"
	"caselint/internal/rules"
	"caselint/internal/source"
)

// lintSession — всё, что нужно для одного прогона и вывода его результатов.
type lintSession struct {
	cfg     *config.Config
	rules   []lint.EnabledRule
	files   []string
	opts    lint.Options
	timer   *observ.Timer
	color   bool
	quiet   bool
	useUI   bool
	uiOut   io.Writer
	ctx     context.Context
	fs      *source.FileSet
	results []lint.Result
}

type sessionFlags struct {
	configPath string
	jobs       int
	useCache   bool
	ui         uiMode
}

// newLintSession reads config, selects rules and collects the files named by args.
func newLintSession(cmd *cobra.Command, args []string, flags sessionFlags) (*lintSession, error) {
	root := cmd.Root().PersistentFlags()
	colorFlag, err := root.GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	quiet, err := root.GetBool("quiet")
	if err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	showTimings, err := root.GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	maxDiagnostics, err := root.GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if maxDiagnostics < 0 {
		return nil, fmt.Errorf("--max-diagnostics must be >= 0")
	}
	useColor, err := readColor(colorFlag, cmd.OutOrStdout())
	if err != nil {
		return nil, err
	}

	s := &lintSession{
		color: useColor,
		quiet: quiet,
		uiOut: cmd.ErrOrStderr(),
		ctx:   cmd.Context(),
	}
	if showTimings {
		s.timer = observ.NewTimer()
	}

	if err := s.timer.Measure("config", func(note *string) error {
		cfg, err := loadConfig(flags.configPath, args)
		if err != nil {
			return err
		}
		s.cfg = cfg
		if cfg.Path != "" {
			*note = cfg.Path
		}
		return nil
	}); err != nil {
		return nil, err
	}

	s.rules, err = rules.Registry().Select(s.cfg.Rules)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := s.timer.Measure("collect", func(note *string) error {
		files, err := lint.Collect(args, s.cfg.Lint.Extensions, s.cfg.Lint.Exclude)
		if err != nil {
			return err
		}
		s.files = files
		*note = fmt.Sprintf("%d files", len(files))
		return nil
	}); err != nil {
		return nil, err
	}

	if maxDiagnostics == 0 {
		maxDiagnostics = s.cfg.Lint.MaxDiagnostics
	}
	jobs := flags.jobs
	if jobs == 0 {
		jobs = s.cfg.Lint.Jobs
	}
	s.opts = lint.Options{Jobs: jobs, MaxDiagnostics: maxDiagnostics}
	if flags.useCache {
		c, err := cache.Open("caselint")
		if err != nil {
			return nil, fmt.Errorf("cache: %w", err)
		}
		s.opts.Cache = c
	}
	s.useUI = !quiet && shouldUseTUI(flags.ui, s.uiOut)
	return s, nil
}

func loadConfig(path string, args []string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	start := "."
	if len(args) > 0 {
		start = args[0]
	}
	return config.Discover(start)
}

// run lints s.files into a fresh FileSet.
func (s *lintSession) run() error {
	base := s.cfg.Root
	if base == "" {
		if wd, err := os.Getwd(); err == nil {
			base = wd
		}
	}
	s.fs = source.NewFileSetWithBase(base)
	return s.timer.Measure("lint", func(note *string) error {
		var err error
		if s.useUI && len(s.files) > 0 {
			s.results, err = runLintWithUI(s.ctx, s.uiOut, "caselint", s.files, s.rules, s.opts, s.fs)
		} else {
			s.results, err = lint.NewRunner(s.rules, s.opts).Run(s.ctx, s.fs, s.files)
		}
		if err != nil {
			return err
		}
		sum := lint.Summarize(s.results)
		*note = fmt.Sprintf("%d files, %d cached", sum.Files, sum.Cached)
		return nil
	})
}

func (s *lintSession) writeTimings(w io.Writer) error {
	if s.timer == nil {
		return nil
	}
	return s.timer.WriteSummary(w)
}
