package report

import (
	"encoding/json"
	"io"

	"caselint/internal/fix"
	"caselint/internal/lint"
	"caselint/internal/source"
)

// LocationJSON is a byte range with optional line/col.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// EditJSON mirrors fix.TextEdit.
type EditJSON struct {
	Kind   string `json:"kind"`
	Offset uint32 `json:"offset"`
	Length uint32 `json:"length,omitempty"`
	Text   string `json:"text,omitempty"`
}

type FixJSON struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Applicability string     `json:"applicability"`
	Edits         []EditJSON `json:"edits"`
}

type ItemJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
	Fix      *FixJSON     `json:"fix,omitempty"`
}

// Output is the root of the JSON report.
type Output struct {
	Items   []ItemJSON   `json:"items"`
	Count   int          `json:"count"`
	Summary lint.Summary `json:"summary"`
}

func makeLocation(fs *source.FileSet, it Item, sp source.Span, opts Options) LocationJSON {
	if it.NoSource {
		return LocationJSON{File: it.Path}
	}
	file := fs.Get(sp.File)
	if file == nil {
		return LocationJSON{File: it.Path, StartByte: sp.Start, EndByte: sp.End}
	}
	loc := LocationJSON{
		File:      formatPath(fs, file, opts.PathMode),
		StartByte: sp.Start,
		EndByte:   sp.End,
	}
	if opts.IncludePositions {
		start, end := fs.Resolve(sp)
		loc.StartLine, loc.StartCol = start.Line, start.Col
		loc.EndLine, loc.EndCol = end.Line, end.Col
	}
	return loc
}

// BuildOutput assembles the JSON report without encoding it.
func BuildOutput(fs *source.FileSet, items []Item, sum lint.Summary, opts Options) Output {
	out := Output{Items: make([]ItemJSON, 0, len(items)), Summary: sum}
	for _, it := range items {
		ij := ItemJSON{
			Severity: it.Severity.String(),
			Code:     it.Code,
			Message:  it.Message,
			Location: makeLocation(fs, it, it.Span, opts),
		}
		for _, n := range it.Notes {
			ij.Notes = append(ij.Notes, NoteJSON{Message: n.Msg, Location: makeLocation(fs, it, n.Span, opts)})
		}
		if opts.ShowFixes && it.Fix != nil {
			ij.Fix = makeFix(fs, it)
		}
		out.Items = append(out.Items, ij)
	}
	out.Count = len(out.Items)
	return out
}

func makeFix(fs *source.FileSet, it Item) *FixJSON {
	fj := &FixJSON{
		ID:            fix.FixID(fs, it.Code, it.Span),
		Title:         it.Fix.Title(),
		Applicability: it.Fix.Applicability().String(),
		Edits:         make([]EditJSON, 0, it.Fix.Len()),
	}
	for _, e := range it.Fix.Edits() {
		fj.Edits = append(fj.Edits, EditJSON{Kind: e.Kind.String(), Offset: e.Offset, Length: e.Length, Text: e.Text})
	}
	return fj
}

// JSON writes the report as indented JSON.
func JSON(w io.Writer, fs *source.FileSet, items []Item, sum lint.Summary, opts Options) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildOutput(fs, items, sum, opts))
}
