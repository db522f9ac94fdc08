package fix

import (
	"bytes"
)

// Preview returns the lines touched by f before and after applying it.
// Both strings are whole lines without the trailing newline.
func Preview(src []byte, f *Fix) (before, after string, err error) {
	out, err := f.Apply(src)
	if err != nil {
		return "", "", err
	}
	lo, hi := f.Range()
	lineStart := lineStartOf(src, int(lo))
	lineEnd := lineEndOf(src, int(hi))

	// хвост после изменённых строк совпадает в обоих текстах
	tail := len(src) - lineEnd
	before = string(src[lineStart:lineEnd])
	after = string(out[lineStart : len(out)-tail])
	return before, after, nil
}

func lineStartOf(src []byte, off int) int {
	if off > len(src) {
		off = len(src)
	}
	return bytes.LastIndexByte(src[:off], '\n') + 1
}

func lineEndOf(src []byte, off int) int {
	if off > len(src) {
		return len(src)
	}
	if i := bytes.IndexByte(src[off:], '\n'); i >= 0 {
		return off + i
	}
	return len(src)
}
