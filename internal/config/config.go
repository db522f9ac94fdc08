// Package config loads caselint.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file searched for.
const FileName = "caselint.toml"

// ErrNotFound is returned by Find when no configuration file exists in the
// start directory or any of its parents.
var ErrNotFound = errors.New("no " + FileName + " found")

// Config is the decoded configuration.
type Config struct {
	// Path is the file the config was read from, "" for defaults.
	Path string `toml:"-"`
	// Root is the directory holding Path.
	Root string `toml:"-"`

	Lint  LintConfig        `toml:"lint"`
	Rules map[string]string `toml:"rules"`
}

// LintConfig is the [lint] table.
type LintConfig struct {
	Extensions     []string `toml:"extensions"`
	Exclude        []string `toml:"exclude"`
	MaxDiagnostics int      `toml:"max_diagnostics"`
	Jobs           int      `toml:"jobs"`
}

var validLevels = map[string]struct{}{
	"error": {}, "warning": {}, "warn": {}, "info": {}, "off": {},
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Lint: LintConfig{
			Exclude:        []string{"node_modules", ".git"},
			MaxDiagnostics: 100,
		},
		Rules: map[string]string{},
	}
}

// Find walks from startDir up to the filesystem root looking for FileName.
func Find(startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory: %w", err)
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// Load decodes path over Default. Unknown keys and invalid values are errors.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	if meta.IsDefined("lint", "max_diagnostics") && cfg.Lint.MaxDiagnostics < 0 {
		return nil, fmt.Errorf("%s: [lint].max_diagnostics must not be negative", path)
	}
	if meta.IsDefined("lint", "jobs") && cfg.Lint.Jobs < 0 {
		return nil, fmt.Errorf("%s: [lint].jobs must not be negative", path)
	}
	for i, ext := range cfg.Lint.Extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return nil, fmt.Errorf("%s: [lint].extensions contains an empty entry", path)
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		cfg.Lint.Extensions[i] = ext
	}
	for name, level := range cfg.Rules {
		if _, ok := validLevels[strings.ToLower(strings.TrimSpace(level))]; !ok {
			return nil, fmt.Errorf("%s: [rules].%q: invalid level %q (expected: error|warning|info|off)", path, name, level)
		}
	}

	cfg.Path = path
	cfg.Root = filepath.Dir(path)
	return cfg, nil
}

// Discover finds and loads the configuration for startDir, falling back to
// Default when no file exists.
func Discover(startDir string) (*Config, error) {
	path, err := Find(startDir)
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return Load(path)
}
