package report

import (
	"fmt"
	"io"
	"strings"

	"caselint/internal/source"
)

// Short prints one line per item: path:line:col: severity code: message.
func Short(w io.Writer, fs *source.FileSet, items []Item, opts Options) error {
	var b strings.Builder
	for _, it := range items {
		sev := strings.ToLower(it.Severity.String())
		if it.NoSource {
			fmt.Fprintf(&b, "%s: %s %s: %s\n", it.Path, sev, it.Code, it.Message)
			continue
		}
		file := fs.Get(it.Span.File)
		if file == nil {
			continue
		}
		start, _ := fs.Resolve(it.Span)
		fmt.Fprintf(&b, "%s:%d:%d: %s %s: %s\n", formatPath(fs, file, opts.PathMode), start.Line, start.Col, sev, it.Code, it.Message)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
