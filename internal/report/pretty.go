package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"caselint/internal/diag"
	"caselint/internal/fix"
	"caselint/internal/lint"
	"caselint/internal/source"
)

type palette struct {
	err, warn, info *color.Color
	code, path, dim *color.Color
	add, del        *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		err:  mk(color.FgRed, color.Bold),
		warn: mk(color.FgYellow, color.Bold),
		info: mk(color.FgCyan, color.Bold),
		code: mk(color.Bold),
		path: mk(color.FgWhite, color.Bold),
		dim:  mk(color.FgBlue),
		add:  mk(color.FgGreen),
		del:  mk(color.FgRed),
	}
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty печатает каждый item в виде
//
//	path:line:col: SEV code: message
//	  12 | case 0, 1:
//	     |      ^~~~
//
// затем заметки и, при ShowFixes, превью исправления.
func Pretty(w io.Writer, fs *source.FileSet, items []Item, opts Options) error {
	p := newPalette(opts.Color)
	var b strings.Builder
	for _, it := range items {
		if it.NoSource {
			fmt.Fprintf(&b, "%s: %s %s: %s\n",
				p.path.Sprint(it.Path), p.severity(it.Severity).Sprint(it.Severity), p.code.Sprint(it.Code), it.Message)
			continue
		}
		file := fs.Get(it.Span.File)
		if file == nil {
			continue
		}
		start, end := fs.Resolve(it.Span)
		fmt.Fprintf(&b, "%s:%d:%d: %s %s: %s\n",
			p.path.Sprint(formatPath(fs, file, opts.PathMode)), start.Line, start.Col,
			p.severity(it.Severity).Sprint(it.Severity), p.code.Sprint(it.Code), it.Message)
		writeSnippet(&b, p, file, start, end)

		for _, note := range it.Notes {
			ns, _ := fs.Resolve(note.Span)
			fmt.Fprintf(&b, "  %s %d:%d: %s\n", p.dim.Sprint("note:"), ns.Line, ns.Col, note.Msg)
		}
		if opts.ShowFixes && it.Fix != nil {
			writeFixPreview(&b, p, file, it.Fix)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeSnippet(b *strings.Builder, p palette, file *source.File, start, end source.LineCol) {
	line := file.GetLine(start.Line)
	num := strconv.FormatUint(uint64(start.Line), 10)
	gutter := strings.Repeat(" ", len(num))

	fmt.Fprintf(b, " %s %s %s\n", p.dim.Sprint(num), p.dim.Sprint("|"), line)

	endCol := start.Col + 1
	if end.Line == start.Line {
		endCol = end.Col
	} else if n, err := safecast.Conv[uint32](len(line)); err == nil {
		endCol = n + 1
	}
	fmt.Fprintf(b, " %s %s %s\n", gutter, p.dim.Sprint("|"), p.err.Sprint(underline(line, start.Col, endCol)))
}

// underline строит "^~~~" под байтовыми колонками [startCol, endCol) строки
// line. Табы сохраняются, ширина остальных символов берётся из runewidth.
func underline(line string, startCol, endCol uint32) string {
	from := min(int(max(startCol, 1))-1, len(line))
	to := min(max(int(endCol)-1, from), len(line))

	var pad strings.Builder
	for _, r := range line[:from] {
		if r == '\t' {
			pad.WriteByte('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	width := max(runewidth.StringWidth(line[from:to]), 1)
	return pad.String() + "^" + strings.Repeat("~", width-1)
}

func writeFixPreview(b *strings.Builder, p palette, file *source.File, f *fix.Fix) {
	before, after, err := fix.Preview(file.Content, f)
	if err != nil {
		fmt.Fprintf(b, "  %s %s (%v)\n", p.dim.Sprint("fix:"), f.Title(), err)
		return
	}
	fmt.Fprintf(b, "  %s %s\n", p.dim.Sprint("fix:"), f.Title())
	for _, l := range strings.Split(before, "\n") {
		fmt.Fprintf(b, "    %s\n", p.del.Sprint("- "+strings.TrimSuffix(l, "\r")))
	}
	for _, l := range strings.Split(after, "\n") {
		fmt.Fprintf(b, "    %s\n", p.add.Sprint("+ "+strings.TrimSuffix(l, "\r")))
	}
}

// Summary prints the closing line of a pretty report.
func Summary(w io.Writer, sum lint.Summary, opts Options) error {
	p := newPalette(opts.Color)
	problems := sum.Failures + sum.SyntaxErrors + sum.RuleErrors
	if problems == 0 {
		_, err := fmt.Fprintf(w, "%s %s\n", p.add.Sprint("✔"), plural(sum.Files, "file")+" checked, no problems found")
		return err
	}
	line := fmt.Sprintf("%s (%s, %s, %s) in %s",
		plural(problems, "problem"),
		plural(sum.Errors+sum.SyntaxErrors+sum.RuleErrors, "error"),
		plural(sum.Warnings, "warning"),
		plural(sum.Infos, "info"),
		plural(sum.Files, "file"))
	if sum.Fixable > 0 {
		line += fmt.Sprintf("; %d fixable with --fix", sum.Fixable)
	}
	mark := p.warn.Sprint("!")
	if sum.Failed() {
		mark = p.err.Sprint("✖")
	}
	_, err := fmt.Fprintf(w, "%s %s\n", mark, line)
	return err
}

func plural(n int, word string) string {
	if n == 1 || word == "info" {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
