// Package report renders lint results for humans and tools.
package report

import (
	"fmt"

	"caselint/internal/source"
)

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto prints short paths as is and long absolute ones as basenames.
	PathModeAuto PathMode = iota
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// ParsePathMode accepts "auto", "absolute", "relative" and "basename".
func ParsePathMode(s string) (PathMode, error) {
	switch s {
	case "auto", "":
		return PathModeAuto, nil
	case "absolute":
		return PathModeAbsolute, nil
	case "relative":
		return PathModeRelative, nil
	case "basename":
		return PathModeBasename, nil
	}
	return PathModeAuto, fmt.Errorf("unknown path mode %q", s)
}

func (m PathMode) String() string {
	switch m {
	case PathModeAbsolute:
		return "absolute"
	case PathModeRelative:
		return "relative"
	case PathModeBasename:
		return "basename"
	default:
		return "auto"
	}
}

// Options configures every renderer.
type Options struct {
	Color    bool
	PathMode PathMode
	// ShowFixes adds a before/after preview of each fix (pretty) or the
	// fix edits (json).
	ShowFixes bool
	// IncludePositions adds line/col to JSON locations.
	IncludePositions bool
}

func formatPath(fs *source.FileSet, f *source.File, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}
