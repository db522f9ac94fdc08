package main

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"caselint/internal/lint"
	"caselint/internal/source"
	"caselint/internal/ui"
)

type lintOutcome struct {
	results []lint.Result
	err     error
}

// runLintWithUI прогоняет линтер в фоне, а в основной горутине рисует прогресс.
func runLintWithUI(ctx context.Context, out io.Writer, title string, files []string, rules []lint.EnabledRule, opts lint.Options, fs *source.FileSet) ([]lint.Result, error) {
	events := make(chan lint.Event, 256)
	outcomeCh := make(chan lintOutcome, 1)

	go func() {
		runOpts := opts
		runOpts.Progress = lint.ChannelSink{Ch: events}
		res, err := lint.NewRunner(rules, runOpts).Run(ctx, fs, files)
		outcomeCh <- lintOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// окно могли закрыть раньше времени: дочитываем события, чтобы раннер не встал
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil && ctx.Err() == nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
