package fuzztests

import (
	"testing"
	"time"

	"caselint/internal/diag"
	"caselint/internal/parser"
	"caselint/internal/source"
	"caselint/internal/testkit"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// Longer means the parser is likely stuck in error recovery.
const parseTimeout = 5 * time.Second

func FuzzParserSpans(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.js", input))
		bag := diag.NewBag(128)
		res := parser.ParseFile(file, parser.Options{
			Reporter:  diag.BagReporter{Bag: bag},
			MaxErrors: 128,
		})
		if err := testkit.CheckSpanInvariants(res.Root, file); err != nil {
			t.Fatalf("span invariants: %v\ninput: %q", err, truncateForLog(input, 200))
		}
	})
}

// FuzzParserNoHang checks the parser terminates on any input.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)
	f.Add([]byte("switch (x) { case"))
	f.Add([]byte("switch (x) { case 1: case 2: ) ) ) }"))
	f.Add([]byte("(((((((((((((((((((("))
	f.Add([]byte("switch switch switch"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		done := make(chan struct{})
		go func() {
			defer close(done)
			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("fuzz.js", input))
			_ = parser.ParseFile(file, parser.Options{
				Reporter:  diag.BagReporter{Bag: diag.NewBag(128)},
				MaxErrors: 128,
			})
		}()

		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(append([]byte(nil), input[:maxLen]...), "..."...)
}
