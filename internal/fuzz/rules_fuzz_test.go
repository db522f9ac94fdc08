package fuzztests

import (
	"testing"

	"caselint/internal/diag"
	"caselint/internal/lint"
	"caselint/internal/parser"
	"caselint/internal/rules"
	"caselint/internal/source"
	"caselint/internal/testkit"
)

func FuzzRulesProduceApplicableFixes(f *testing.F) {
	addCorpusSeeds(f)
	all := rules.All()
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.js", input))
		res := parser.ParseFile(file, parser.Options{
			Reporter:  diag.BagReporter{Bag: diag.NewBag(128)},
			MaxErrors: 128,
		})
		lf := &lint.File{Source: file, Root: res.Root}
		for _, r := range all {
			failures := r.Apply(lf)
			if err := testkit.CheckFailures(failures, file); err != nil {
				t.Fatalf("%s: %v\ninput: %q", r.Metadata().RuleName, err, truncateForLog(input, 200))
			}
		}
	})
}
