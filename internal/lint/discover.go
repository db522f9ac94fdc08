package lint

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// DefaultExtensions are linted when configuration names none.
var DefaultExtensions = []string{".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx"}

// Collect expands paths into a sorted, deduplicated list of files.
// Directories are walked recursively keeping files with one of exts and
// skipping any directory whose base name is in exclude. Files named
// explicitly are kept regardless of extension.
func Collect(paths, exts, exclude []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	seen := make(map[string]struct{})
	var files []string
	add := func(p string) {
		p = filepath.Clean(p)
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("lint: %w", err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && slices.Contains(exclude, d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if hasExt(path, exts) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("lint: walk %s: %w", root, err)
		}
	}

	// детерминированный порядок результатов
	sort.Strings(files)
	return files, nil
}

func hasExt(path string, exts []string) bool {
	ext := filepath.Ext(path)
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
