package fix

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"caselint/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// Fixable is a finding that may carry a fix: lint.Failure implements it.
type Fixable interface {
	RuleName() string
	Message() string
	Span() source.Span
	Fix() *Fix
}

// ApplyMode determines selection strategy for fixes.
type ApplyMode uint8

const (
	ApplyModeOnce ApplyMode = iota
	ApplyModeAll
	ApplyModeID
)

// ParseApplyMode accepts "once", "all" and "id".
func ParseApplyMode(s string) (ApplyMode, error) {
	switch s {
	case "once":
		return ApplyModeOnce, nil
	case "all":
		return ApplyModeAll, nil
	case "id":
		return ApplyModeID, nil
	}
	return ApplyModeAll, fmt.Errorf("unknown fix mode %q", s)
}

// ApplyOptions configures how fixes are selected.
type ApplyOptions struct {
	Mode     ApplyMode
	TargetID string
	// DryRun computes the new contents without writing files.
	DryRun bool
}

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	ID            string
	Title         string
	RuleName      string
	Message       string
	Applicability Applicability
	PrimaryPath   string
	EditCount     int
}

// SkippedFix captures a skipped or failed fix with a reason.
type SkippedFix struct {
	ID     string
	Title  string
	Reason string
}

// FileChange summarises modifications performed on a file.
type FileChange struct {
	Path      string
	EditCount int
	// Content is the new file content; set only for DryRun.
	Content []byte
}

// ApplyResult aggregates applied fixes, skipped ones, and file changes.
type ApplyResult struct {
	Applied     []AppliedFix
	Skipped     []SkippedFix
	FileChanges []FileChange
}

type candidate struct {
	id    string
	item  Fixable
	fix   *Fix
	span  source.Span
	order int
}

// Candidate describes one fix available for application, in selection order.
type Candidate struct {
	ID   string
	Item Fixable
}

// Candidates lists every fix carried by items with the IDs Apply would use.
func Candidates[F Fixable](fs *source.FileSet, items []F) []Candidate {
	cands, _ := gatherCandidates(fs, items)
	sortCandidates(cands)
	out := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		out = append(out, Candidate{ID: c.id, Item: c.item})
	}
	return out
}

// Apply collects fixes from items, selects a subset according to opts, and
// applies them. All edits of one file are computed against the file's
// loaded content; fixes that overlap an already selected fix are skipped.
func Apply[F Fixable](fs *source.FileSet, items []F, opts ApplyOptions) (*ApplyResult, error) {
	result := &ApplyResult{
		Applied:     make([]AppliedFix, 0),
		Skipped:     make([]SkippedFix, 0),
		FileChanges: make([]FileChange, 0),
	}
	if fs == nil {
		return result, fmt.Errorf("fix: FileSet is nil")
	}

	candidates, buildSkips := gatherCandidates(fs, items)
	result.Skipped = append(result.Skipped, buildSkips...)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}

	sortCandidates(candidates)

	selected, selectionSkips := selectCandidates(candidates, opts)
	result.Skipped = append(result.Skipped, selectionSkips...)
	if len(selected) == 0 {
		return result, ErrNoFixes
	}

	applied, skipped, changes, err := applyCandidates(fs, selected, opts.DryRun)
	result.Applied = append(result.Applied, applied...)
	result.Skipped = append(result.Skipped, skipped...)
	result.FileChanges = append(result.FileChanges, changes...)
	if err != nil {
		return result, err
	}
	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}
	return result, nil
}

// FixID builds the stable identifier <rule>-<file>-<offset>.
func FixID(fs *source.FileSet, ruleName string, sp source.Span) string {
	path := strconv.FormatUint(uint64(sp.File), 10)
	if f := fs.Get(sp.File); f != nil {
		path = f.FormatPath("relative", fs.BaseDir())
	}
	return ruleName + "-" + path + "-" + strconv.FormatUint(uint64(sp.Start), 10)
}

func gatherCandidates[F Fixable](fs *source.FileSet, items []F) ([]candidate, []SkippedFix) {
	cands := make([]candidate, 0)
	skips := make([]SkippedFix, 0)
	seen := make(map[string]struct{})

	for order, item := range items {
		f := item.Fix()
		if f == nil {
			continue
		}
		sp := item.Span()
		id := FixID(fs, item.RuleName(), sp)
		if f.Len() == 0 {
			skips = append(skips, SkippedFix{ID: id, Title: f.Title(), Reason: "fix has no edits"})
			continue
		}
		if _, dup := seen[id]; dup {
			skips = append(skips, SkippedFix{ID: id, Title: f.Title(), Reason: "duplicate fix id"})
			continue
		}
		seen[id] = struct{}{}
		cands = append(cands, candidate{id: id, item: item, fix: f, span: sp, order: order})
	}
	return cands, skips
}

// sortCandidates: file, span start, span end, insertion order.
func sortCandidates(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		si, sj := candidates[i].span, candidates[j].span
		if si.File != sj.File {
			return si.File < sj.File
		}
		if si.Start != sj.Start {
			return si.Start < sj.Start
		}
		if si.End != sj.End {
			return si.End < sj.End
		}
		return candidates[i].order < candidates[j].order
	})
}

func selectCandidates(candidates []candidate, opts ApplyOptions) ([]candidate, []SkippedFix) {
	switch opts.Mode {
	case ApplyModeID:
		for _, cand := range candidates {
			if cand.id == opts.TargetID {
				return []candidate{cand}, nil
			}
		}
		return nil, []SkippedFix{{ID: opts.TargetID, Reason: "fix id not found"}}
	case ApplyModeAll:
		selected := make([]candidate, 0, len(candidates))
		skipped := make([]SkippedFix, 0)
		for _, cand := range candidates {
			if cand.fix.Applicability() == AlwaysSafe {
				selected = append(selected, cand)
				continue
			}
			skipped = append(skipped, SkippedFix{
				ID:     cand.id,
				Title:  cand.fix.Title(),
				Reason: "applicability is " + cand.fix.Applicability().String(),
			})
		}
		return selected, skipped
	case ApplyModeOnce:
		for _, cand := range candidates {
			if cand.fix.Applicability() == AlwaysSafe {
				return []candidate{cand}, nil
			}
		}
		return []candidate{candidates[0]}, nil
	default:
		return nil, nil
	}
}

type fileWork struct {
	file   *source.File
	edits  []TextEdit
	ranges [][2]uint32
	fixes  int
}

func applyCandidates(fs *source.FileSet, selected []candidate, dryRun bool) ([]AppliedFix, []SkippedFix, []FileChange, error) {
	work := make(map[source.FileID]*fileWork)
	applied := make([]AppliedFix, 0, len(selected))
	skipped := make([]SkippedFix, 0)
	baseDir := fs.BaseDir()

	for _, cand := range selected {
		file := fs.Get(cand.span.File)
		reason := ""
		switch {
		case file == nil:
			reason = "target file is unknown"
		case file.Flags&source.FileVirtual != 0:
			reason = "target file is virtual"
		}
		if reason != "" {
			skipped = append(skipped, SkippedFix{ID: cand.id, Title: cand.fix.Title(), Reason: reason})
			continue
		}

		w := work[file.ID]
		if w == nil {
			w = &fileWork{file: file}
			work[file.ID] = w
		}
		lo, hi := cand.fix.Range()
		if conflictsWithExisting(w.ranges, lo, hi) {
			skipped = append(skipped, SkippedFix{
				ID:     cand.id,
				Title:  cand.fix.Title(),
				Reason: "conflicts with previously applied edits in " + file.FormatPath("auto", baseDir),
			})
			continue
		}
		edits := cand.fix.Edits()
		// проверяем правку отдельно, чтобы испорченный fix не блокировал остальные
		if _, err := ApplyEdits(file.Content, edits); err != nil {
			skipped = append(skipped, SkippedFix{ID: cand.id, Title: cand.fix.Title(), Reason: err.Error()})
			continue
		}
		w.edits = append(w.edits, edits...)
		w.ranges = append(w.ranges, [2]uint32{lo, hi})
		w.fixes++

		applied = append(applied, AppliedFix{
			ID:            cand.id,
			Title:         cand.fix.Title(),
			RuleName:      cand.fix.RuleName(),
			Message:       cand.item.Message(),
			Applicability: cand.fix.Applicability(),
			PrimaryPath:   file.FormatPath("auto", baseDir),
			EditCount:     len(edits),
		})
	}

	fileChanges := make([]FileChange, 0, len(work))
	for _, w := range work {
		if len(w.edits) == 0 {
			continue
		}
		buf, err := ApplyEdits(w.file.Content, w.edits)
		if err != nil {
			return applied, skipped, fileChanges, fmt.Errorf("apply fixes to %s: %w", w.file.Path, err)
		}
		change := FileChange{
			Path:      w.file.FormatPath("relative", baseDir),
			EditCount: len(w.edits),
		}
		if dryRun {
			change.Content = buf
		} else if err := writeFile(w.file.Path, buf); err != nil {
			return applied, skipped, fileChanges, err
		}
		fileChanges = append(fileChanges, change)
	}

	sort.SliceStable(fileChanges, func(i, j int) bool {
		return fileChanges[i].Path < fileChanges[j].Path
	})
	return applied, skipped, fileChanges, nil
}

func writeFile(path string, buf []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, buf, mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// conflictsWithExisting: полуоткрытые интервалы [lo, hi); две правки в одной
// точке тоже конфликтуют, так как их порядок не определён.
func conflictsWithExisting(existing [][2]uint32, lo, hi uint32) bool {
	for _, r := range existing {
		if r[0] == lo {
			return true
		}
		if r[0] < hi && lo < r[1] {
			return true
		}
	}
	return false
}
