package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.js", []byte("hello world"), 0)
	id2 := fs.Add("test.js", []byte("hello universe"), 0)
	if id1 != 0 || id2 != 1 {
		t.Fatalf("unexpected ids: %d, %d", id1, id2)
	}

	latest, ok := fs.GetLatest("test.js")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest = %d,%v; want %d,true", latest, ok, id2)
	}
	if got := string(fs.Get(id1).Content); got != "hello world" {
		t.Errorf("old version content = %q", got)
	}
	if fs.Get(FileID(42)) != nil {
		t.Errorf("expected nil for unknown id")
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.js", []byte("a\nb\n"))
	file := fs.Get(id)

	want := []uint32{1, 3}
	if len(file.LineIdx) != len(want) {
		t.Fatalf("LineIdx = %v, want %v", file.LineIdx, want)
	}
	for i := range want {
		if file.LineIdx[i] != want[i] {
			t.Fatalf("LineIdx = %v, want %v", file.LineIdx, want)
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag")
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.js", []byte("ab\ncde\n\nf"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{2, LineCol{1, 3}}, // сам '\n' принадлежит первой строке
		{3, LineCol{2, 1}},
		{5, LineCol{2, 3}},
		{7, LineCol{3, 1}},
		{8, LineCol{4, 1}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("Resolve(%d) = %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestGetLine(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"lf", "first\nsecond\nthird", []string{"", "first", "second", "third", ""}},
		{"crlf", "first\r\nsecond\r\nthird", []string{"", "first", "second", "third", ""}},
		{"mixed", "a;\r\nb;\nc;\n", []string{"", "a;", "b;", "c;", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := NewFileSet()
			file := fs.Get(fs.AddVirtual("a.js", []byte(tt.content)))
			for i, want := range tt.want {
				if got := file.GetLine(uint32(i)); got != want {
					t.Errorf("GetLine(%d) = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestLoadKeepsDiskBytes(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		flags FileFlags
	}{
		{"plain", "a;\nb;\n", 0},
		{"bom crlf", "\xEF\xBB\xBFa;\r\nb;\r\n", FileHasBOM | FileHasCRLF},
		{"mixed eol", "a;\r\nb;\nc;\n", FileHasCRLF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "x.js")
			if err := os.WriteFile(path, []byte(tt.raw), 0o644); err != nil {
				t.Fatal(err)
			}

			fs := NewFileSet()
			id, err := fs.Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			file := fs.Get(id)
			if string(file.Content) != tt.raw {
				t.Errorf("content = %q, want %q", file.Content, tt.raw)
			}
			if file.Flags != tt.flags {
				t.Errorf("flags = %b, want %b", file.Flags, tt.flags)
			}
		})
	}
}

func TestFileText(t *testing.T) {
	fs := NewFileSet()
	file := fs.Get(fs.AddVirtual("a.js", []byte("switch (x) {}")))

	if got := file.Text(Span{Start: 0, End: 6}); got != "switch" {
		t.Errorf("Text = %q", got)
	}
	if got := file.Text(Span{Start: 10, End: 100}); got != " {}" {
		t.Errorf("clamped Text = %q", got)
	}
}
