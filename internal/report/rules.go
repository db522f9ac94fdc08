package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"caselint/internal/lint"
)

// RulesPretty lists rules as an aligned table followed by details when
// verbose is set.
func RulesPretty(w io.Writer, rules []lint.Metadata, verbose bool, opts Options) error {
	p := newPalette(opts.Color)
	nameWidth := 0
	for _, md := range rules {
		nameWidth = max(nameWidth, runewidth.StringWidth(md.RuleName))
	}

	var b strings.Builder
	for _, md := range rules {
		name := runewidth.FillRight(md.RuleName, nameWidth)
		fixable := ""
		if md.HasFix {
			fixable = p.add.Sprint(" [fix]")
		}
		fmt.Fprintf(&b, "%s  %-15s %s%s\n", p.code.Sprint(name), md.Type, md.Description, fixable)
		if !verbose {
			continue
		}
		if md.DescriptionDetails != "" {
			for _, l := range strings.Split(strings.TrimSpace(md.DescriptionDetails), "\n") {
				fmt.Fprintf(&b, "    %s\n", l)
			}
		}
		if md.Rationale != "" {
			fmt.Fprintf(&b, "    %s %s\n", p.dim.Sprint("rationale:"), md.Rationale)
		}
		fmt.Fprintf(&b, "    %s %s\n\n", p.dim.Sprint("options:"), md.OptionsDescription)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// RulesJSON writes rule metadata as an indented JSON array.
func RulesJSON(w io.Writer, rules []lint.Metadata) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rules)
}
