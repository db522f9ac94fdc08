package source

import "testing"

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 10, End: 20}
	b := Span{File: 1, Start: 5, End: 12}
	if got := a.Cover(b); got != (Span{File: 1, Start: 5, End: 20}) {
		t.Errorf("Cover = %v", got)
	}
	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover across files must keep receiver, got %v", got)
	}
}

func TestSpanContainsAndOverlaps(t *testing.T) {
	outer := Span{File: 0, Start: 0, End: 10}
	tests := []struct {
		name     string
		other    Span
		contains bool
		overlaps bool
	}{
		{"inside", Span{Start: 2, End: 5}, true, true},
		{"same", outer, true, true},
		{"touching end", Span{Start: 10, End: 12}, false, false},
		{"straddling", Span{Start: 8, End: 12}, false, true},
		{"empty inside", Span{Start: 3, End: 3}, true, false},
		{"other file", Span{File: 1, Start: 2, End: 3}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.Contains(tt.other); got != tt.contains {
				t.Errorf("Contains = %v, want %v", got, tt.contains)
			}
			if got := outer.Overlaps(tt.other); got != tt.overlaps {
				t.Errorf("Overlaps = %v, want %v", got, tt.overlaps)
			}
		})
	}
}

func TestSpanOf(t *testing.T) {
	sp := SpanOf(3, 7, 4)
	if sp.Start != 7 || sp.End != 11 || sp.Len() != 4 || sp.File != 3 {
		t.Errorf("SpanOf = %v", sp)
	}
	if sp.String() != "3:7-11" {
		t.Errorf("String = %q", sp.String())
	}
}
