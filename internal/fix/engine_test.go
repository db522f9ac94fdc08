package fix

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"caselint/internal/source"
)

type finding struct {
	rule string
	msg  string
	span source.Span
	fix  *Fix
}

func (f finding) RuleName() string  { return f.rule }
func (f finding) Message() string   { return f.msg }
func (f finding) Span() source.Span { return f.span }
func (f finding) Fix() *Fix         { return f.fix }

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// replace заменяет [start, start+len(old)) на text.
func replace(rule string, file source.FileID, start uint32, old, text string, opts ...Option) finding {
	return finding{
		rule: rule,
		msg:  "replace " + old,
		span: source.Span{File: file, Start: start, End: start + uint32(len(old))},
		fix:  New(rule, []TextEdit{Delete(start, uint32(len(old))), Insert(start, text)}, opts...),
	}
}

func TestApplyAllWritesFile(t *testing.T) {
	path := writeTemp(t, "a.js", "aaa bbb ccc")
	fs := source.NewFileSetWithBase(filepath.Dir(path))
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	items := []finding{
		replace("r", id, 8, "ccc", "CCC"),
		replace("r", id, 0, "aaa", "A"),
		{rule: "r", msg: "no fix", span: source.Span{File: id, Start: 4, End: 7}},
	}
	res, err := Apply(fs, items, ApplyOptions{Mode: ApplyModeAll})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(res.Applied) != 2 || len(res.FileChanges) != 1 || res.FileChanges[0].EditCount != 4 {
		t.Fatalf("result = %+v", res)
	}
	if res.Applied[0].ID != "r-a.js-0" {
		t.Errorf("first applied id = %q", res.Applied[0].ID)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "A bbb CCC" {
		t.Fatalf("file = %q", got)
	}
}

func TestApplySkipsConflicts(t *testing.T) {
	path := writeTemp(t, "c.js", "0123456789")
	fs := source.NewFileSetWithBase(filepath.Dir(path))
	id, _ := fs.Load(path)
	items := []finding{
		replace("r1", id, 2, "2345", "x"),
		replace("r2", id, 4, "45", "y"),
		replace("r3", id, 6, "67", "w"),
		replace("r4", id, 6, "6", "v"),
	}
	res, err := Apply(fs, items, ApplyOptions{Mode: ApplyModeAll, DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Applied) != 2 || len(res.Skipped) != 2 {
		t.Fatalf("applied=%d skipped=%d", len(res.Applied), len(res.Skipped))
	}
	if string(res.FileChanges[0].Content) != "01xv789" {
		t.Fatalf("dry-run content = %q", res.FileChanges[0].Content)
	}
	if got, _ := os.ReadFile(path); string(got) != "0123456789" {
		t.Fatal("dry run must not write")
	}
}

func TestApplyModes(t *testing.T) {
	fs := source.NewFileSet()
	path := writeTemp(t, "m.js", "abcdef")
	id, _ := fs.Load(path)
	items := []finding{
		replace("r", id, 0, "a", "A", WithApplicability(ManualReview)),
		replace("r", id, 2, "c", "C"),
		replace("r", id, 4, "e", "E"),
	}

	once, err := Apply(fs, items, ApplyOptions{Mode: ApplyModeOnce, DryRun: true})
	if err != nil || len(once.Applied) != 1 || string(once.FileChanges[0].Content) != "abCdef" {
		t.Fatalf("once: %+v %v", once, err)
	}

	all, err := Apply(fs, items, ApplyOptions{Mode: ApplyModeAll, DryRun: true})
	if err != nil || len(all.Applied) != 2 || len(all.Skipped) != 1 {
		t.Fatalf("all: %+v %v", all, err)
	}

	ids := Candidates(fs, items)
	byID, err := Apply(fs, items, ApplyOptions{Mode: ApplyModeID, TargetID: ids[0].ID, DryRun: true})
	if err != nil || string(byID.FileChanges[0].Content) != "Abcdef" {
		t.Fatalf("id: %+v %v", byID, err)
	}

	missing, err := Apply(fs, items, ApplyOptions{Mode: ApplyModeID, TargetID: "nope"})
	if !errors.Is(err, ErrNoFixes) || len(missing.Skipped) != 1 {
		t.Fatalf("missing id: %+v %v", missing, err)
	}
}

func TestApplyRefusesVirtualFiles(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("mem.js", []byte("abc"))
	res, err := Apply(fs, []finding{replace("r", id, 0, "a", "b")}, ApplyOptions{Mode: ApplyModeAll})
	if !errors.Is(err, ErrNoFixes) {
		t.Fatalf("err = %v", err)
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Reason != "target file is virtual" {
		t.Fatalf("skipped = %+v", res.Skipped)
	}
}

func TestApplyNoFixes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("mem.js", []byte("abc"))
	_, err := Apply(fs, []finding{{rule: "r", span: source.Span{File: id}}}, ApplyOptions{Mode: ApplyModeAll})
	if !errors.Is(err, ErrNoFixes) {
		t.Fatalf("err = %v", err)
	}
	if _, err := Apply[finding](nil, nil, ApplyOptions{}); err == nil {
		t.Fatal("nil FileSet must fail")
	}
}

func TestGatherCandidatesSkipsDuplicateAndEmpty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("d.js", []byte("abc"))
	items := []finding{
		replace("r", id, 0, "a", "x"),
		replace("r", id, 0, "a", "y"),
		{rule: "r", span: source.Span{File: id, Start: 1, End: 2}, fix: New("r", nil)},
	}
	cands, skips := gatherCandidates(fs, items)
	if len(cands) != 1 || len(skips) != 2 {
		t.Fatalf("cands=%d skips=%d", len(cands), len(skips))
	}
	if skips[0].Reason != "duplicate fix id" || skips[1].Reason != "fix has no edits" {
		t.Fatalf("skips = %+v", skips)
	}
}

func TestApplyKeepsLineEndingsAndBOM(t *testing.T) {
	insertX := func(id source.FileID) finding {
		return finding{
			rule: "r",
			msg:  "insert x",
			span: source.Span{File: id, Start: 0, End: 0},
			fix:  New("r", []TextEdit{Insert(0, "x")}),
		}
	}
	tests := []struct {
		name string
		raw  string
		item func(source.FileID) finding
		want string
	}{
		{
			name: "bom crlf",
			raw:  "\xEF\xBB\xBFa,\r\nb\r\n",
			item: func(id source.FileID) finding { return replace("r", id, 3, "a", "A") },
			want: "\xEF\xBB\xBFA,\r\nb\r\n",
		},
		{
			name: "mixed eol",
			raw:  "a;\r\nb;\nc;\n",
			item: insertX,
			want: "xa;\r\nb;\nc;\n",
		},
		{
			name: "lone cr",
			raw:  "a;\rb;\n",
			item: insertX,
			want: "xa;\rb;\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, "w.js", tt.raw)
			fs := source.NewFileSet()
			id, err := fs.Load(path)
			if err != nil {
				t.Fatal(err)
			}
			res, err := Apply(fs, []finding{tt.item(id)}, ApplyOptions{Mode: ApplyModeAll})
			if err != nil {
				t.Fatal(err)
			}
			if len(res.Applied) != 1 {
				t.Fatalf("applied = %+v, skipped = %+v", res.Applied, res.Skipped)
			}
			got, _ := os.ReadFile(path)
			if string(got) != tt.want {
				t.Fatalf("file = %q, want %q", got, tt.want)
			}
		})
	}
}
