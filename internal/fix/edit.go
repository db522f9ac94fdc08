package fix

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrOverlappingEdits is returned when two edits of one application touch the same bytes.
	ErrOverlappingEdits = errors.New("overlapping edits")
	// ErrEditOutOfRange is returned when an edit reaches past the end of the text.
	ErrEditOutOfRange = errors.New("edit out of range")
)

// EditKind distinguishes the two edit variants.
type EditKind uint8

const (
	EditDelete EditKind = iota
	EditInsert
)

func (k EditKind) String() string {
	if k == EditInsert {
		return "insert"
	}
	return "delete"
}

// TextEdit is one primitive text change. Offsets are byte offsets into the
// original, unedited text; edits of one fix are independent of each other.
type TextEdit struct {
	Kind   EditKind
	Offset uint32
	Length uint32 // только для EditDelete
	Text   string // только для EditInsert
}

// Delete removes length bytes starting at offset.
func Delete(offset, length uint32) TextEdit {
	return TextEdit{Kind: EditDelete, Offset: offset, Length: length}
}

// Insert places text at offset.
func Insert(offset uint32, text string) TextEdit {
	return TextEdit{Kind: EditInsert, Offset: offset, Text: text}
}

// End returns the first offset after the bytes the edit consumes.
func (e TextEdit) End() uint32 {
	if e.Kind == EditDelete {
		return e.Offset + e.Length
	}
	return e.Offset
}

func (e TextEdit) String() string {
	if e.Kind == EditInsert {
		return fmt.Sprintf("insert@%d %q", e.Offset, e.Text)
	}
	return fmt.Sprintf("delete@%d+%d", e.Offset, e.Length)
}

// ApplyEdits applies edits to src in one pass. Edits are ordered by offset;
// at the same offset inserts come before a delete and keep their relative
// order. Deletes must not overlap each other and an insert must not fall
// strictly inside a deleted range.
func ApplyEdits(src []byte, edits []TextEdit) ([]byte, error) {
	ordered := sortEdits(edits)
	size := len(src)
	for _, e := range ordered {
		end := int(e.Offset)
		if e.Kind == EditDelete {
			end += int(e.Length)
		}
		if end > size {
			return nil, fmt.Errorf("%w: %s exceeds text length %d", ErrEditOutOfRange, e, size)
		}
	}
	if err := checkOverlaps(ordered); err != nil {
		return nil, err
	}

	var b strings.Builder
	b.Grow(size + growth(ordered))
	cursor := uint32(0)
	for _, e := range ordered {
		if e.Offset > cursor {
			b.Write(src[cursor:e.Offset])
			cursor = e.Offset
		}
		switch e.Kind {
		case EditInsert:
			b.WriteString(e.Text)
		case EditDelete:
			cursor = e.End()
		}
	}
	b.Write(src[cursor:])
	return []byte(b.String()), nil
}

func sortEdits(edits []TextEdit) []TextEdit {
	ordered := append([]TextEdit(nil), edits...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Offset != ordered[j].Offset {
			return ordered[i].Offset < ordered[j].Offset
		}
		return ordered[i].Kind == EditInsert && ordered[j].Kind == EditDelete
	})
	return ordered
}

// checkOverlaps ожидает отсортированные правки.
func checkOverlaps(ordered []TextEdit) error {
	var (
		last    TextEdit
		hasLast bool
	)
	for _, e := range ordered {
		if hasLast && e.Offset < last.End() {
			return fmt.Errorf("%w: %s and %s", ErrOverlappingEdits, last, e)
		}
		if e.Kind == EditDelete {
			if hasLast && last.Kind == EditDelete && e.Offset == last.Offset {
				return fmt.Errorf("%w: %s and %s", ErrOverlappingEdits, last, e)
			}
			last, hasLast = e, true
		}
	}
	return nil
}

func growth(edits []TextEdit) int {
	n := 0
	for _, e := range edits {
		n += len(e.Text)
	}
	return n
}
