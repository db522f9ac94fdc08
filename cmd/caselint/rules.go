package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"caselint/internal/lint"
	"caselint/internal/report"
	"caselint/internal/rules"
)

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available rules and their metadata",
		Args:  cobra.NoArgs,
		RunE:  runRules,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().BoolP("verbose", "v", false, "include details, rationale and option examples")
	return cmd
}

func runRules(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	useColor, err := readColor(colorFlag, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	all := rules.Registry().Rules()
	metas := make([]lint.Metadata, 0, len(all))
	for _, r := range all {
		metas = append(metas, r.Metadata())
	}

	switch format {
	case "pretty":
		return report.RulesPretty(cmd.OutOrStdout(), metas, verbose, report.Options{Color: useColor})
	case "json":
		return report.RulesJSON(cmd.OutOrStdout(), metas)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
