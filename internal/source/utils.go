package source

import (
	"fmt"
	"path/filepath"
	"slices"

	"fortio.org/safecast"
)

// hasBOM reports whether content starts with a UTF-8 byte order mark.
func hasBOM(content []byte) bool {
	return len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, 64)
	for i, b := range content {
		if b != '\n' {
			continue
		}
		off, err := safecast.Conv[uint32](i)
		if err != nil {
			panic(fmt.Errorf("line index overflow: %w", err))
		}
		out = append(out, off)
	}
	return out
}

// toLineCol resolves a byte offset with a binary search over the newline index.
func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// ищем количество переводов строки строго до off
	n, _ := slices.BinarySearch(lineIdx, off)
	line := uint32(n) + 1
	var lineStart uint32
	if n > 0 {
		lineStart = lineIdx[n-1] + 1
	}
	return LineCol{Line: line, Col: off - lineStart + 1}
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

// RelativePath returns path relative to base when possible.
func RelativePath(path, base string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path, err
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return path, err
	}
	rel, err := filepath.Rel(absBase, absPath)
	if err != nil {
		return path, err
	}
	return filepath.ToSlash(rel), nil
}
