package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"caselint/internal/prof"
)

// setupProfiling starts the profilers requested by --cpu-profile and
// --mem-profile.
func setupProfiling(cmd *cobra.Command) (func(), error) {
	root := cmd.Root()

	cpuProfile, err := root.PersistentFlags().GetString("cpu-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	memProfile, err := root.PersistentFlags().GetString("mem-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}

	session, err := prof.Start(cpuProfile, memProfile)
	if err != nil {
		return nil, err
	}
	return func() {
		if err := session.Stop(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "profile: %v\n", err)
		}
	}, nil
}

// instrument включает трассировку и профилирование для одной команды.
func instrument(cmd *cobra.Command) (func(), error) {
	stopProfile, err := setupProfiling(cmd)
	if err != nil {
		return nil, err
	}
	stopTrace, err := setupTracing(cmd)
	if err != nil {
		stopProfile()
		return nil, err
	}
	return func() {
		stopTrace()
		stopProfile()
	}, nil
}
