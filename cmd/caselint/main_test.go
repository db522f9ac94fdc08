package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const switchSource = "switch (x) {\ncase 0, 1:\n  f();\n}\n"

// execute runs the CLI with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--color", "off"}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// project создаёт каталог с конфигом и одним файлом.
func project(t *testing.T, level string) (dir, file string) {
	t.Helper()
	dir = t.TempDir()
	cfg := "[lint]\nextensions = [\".js\"]\n\n[rules]\n\"no-switch-case-comma-operator\" = \"" + level + "\"\n"
	if err := os.WriteFile(filepath.Join(dir, "caselint.toml"), []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}
	file = filepath.Join(dir, "switch.js")
	if err := os.WriteFile(file, []byte(switchSource), 0o600); err != nil {
		t.Fatal(err)
	}
	return dir, file
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestLintReportsFailure(t *testing.T) {
	dir, _ := project(t, "error")
	out, _, err := execute(t, "lint", "--ui", "off", "--format", "short", dir)
	if !errors.Is(err, errProblemsFound) {
		t.Fatalf("err = %v, want errProblemsFound", err)
	}
	if !strings.Contains(out, "switch.js:2:6: error no-switch-case-comma-operator:") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestLintWarningDoesNotFail(t *testing.T) {
	dir, _ := project(t, "warning")
	out, _, err := execute(t, "lint", "--ui", "off", dir)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(out, "WARNING") || !strings.Contains(out, "case 0, 1:") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestLintRuleOff(t *testing.T) {
	dir, _ := project(t, "off")
	out, _, err := execute(t, "lint", "--ui", "off", "--format", "short", dir)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if out != "" {
		t.Errorf("expected no output, got:\n%s", out)
	}
}

func TestLintJSON(t *testing.T) {
	dir, _ := project(t, "error")
	out, _, err := execute(t, "lint", "--format", "json", dir)
	if !errors.Is(err, errProblemsFound) {
		t.Fatalf("err = %v", err)
	}
	var payload struct {
		Count   int `json:"count"`
		Summary struct {
			Files   int `json:"files"`
			Fixable int `json:"fixable"`
		} `json:"summary"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if payload.Count != 1 || payload.Summary.Files != 1 || payload.Summary.Fixable != 1 {
		t.Errorf("payload = %+v", payload)
	}
}

func TestLintFixRewritesFile(t *testing.T) {
	dir, file := project(t, "error")
	_, _, err := execute(t, "lint", "--fix", "--format", "short", dir)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	want := "switch (x) {\ncase 0:\ncase 1:\n  f();\n}\n"
	if got := readFile(t, file); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestLintExplicitConfig(t *testing.T) {
	_, file := project(t, "error")
	other := filepath.Join(t.TempDir(), "relaxed.toml")
	if err := os.WriteFile(other, []byte("[rules]\n\"no-switch-case-comma-operator\" = \"info\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out, _, err := execute(t, "lint", "--ui", "off", "--format", "short", "--config", other, file)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(out, "info no-switch-case-comma-operator") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestLintBadFlags(t *testing.T) {
	dir, _ := project(t, "error")
	tests := [][]string{
		{"lint", "--format", "xml", dir},
		{"lint", "--ui", "maybe", dir},
		{"lint", "--jobs", "-1", dir},
		{"lint", "--path-mode", "weird", dir},
		{"lint"},
	}
	for _, args := range tests {
		if _, _, err := execute(t, args...); err == nil || errors.Is(err, errProblemsFound) {
			t.Errorf("%v: expected a usage error, got %v", args, err)
		}
	}
}

func TestFixPreviewKeepsFile(t *testing.T) {
	dir, file := project(t, "error")
	out, _, err := execute(t, "fix", "--preview", dir)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if got := readFile(t, file); got != switchSource {
		t.Errorf("preview modified the file: %q", got)
	}
	for _, want := range []string{"Would apply 1 fix(es):", "+++ ", "case 1:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFixApplies(t *testing.T) {
	dir, file := project(t, "error")
	out, _, err := execute(t, "fix", "--once", dir)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(out, "Applied 1 fix(es):") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if got := readFile(t, file); !strings.Contains(got, "case 0:\ncase 1:") {
		t.Errorf("file not fixed: %q", got)
	}

	out, _, err = execute(t, "fix", dir)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !strings.Contains(out, "No applicable fixes found.") {
		t.Errorf("second run output:\n%s", out)
	}
}

func TestFixListAndID(t *testing.T) {
	dir, file := project(t, "error")
	out, _, err := execute(t, "fix", "--list", dir)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	fields := strings.Fields(out)
	if len(fields) == 0 {
		t.Fatalf("empty listing")
	}
	id := fields[0]

	if _, _, err := execute(t, "fix", "--id", id, dir); err != nil {
		t.Fatalf("fix --id %s: %v", id, err)
	}
	if got := readFile(t, file); !strings.Contains(got, "case 0:\ncase 1:") {
		t.Errorf("file not fixed: %q", got)
	}
}

func TestFixConflictingFlags(t *testing.T) {
	dir, _ := project(t, "error")
	for _, args := range [][]string{
		{"fix", "--all", "--once", dir},
		{"fix", "--id", "x", "--all", dir},
	} {
		if _, _, err := execute(t, args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestRulesCommand(t *testing.T) {
	out, _, err := execute(t, "rules", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"ruleName": "no-switch-case-comma-operator"`) {
		t.Errorf("unexpected json:\n%s", out)
	}
	out, _, err = execute(t, "rules")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "no-switch-case-comma-operator") {
		t.Errorf("unexpected listing:\n%s", out)
	}
}

func TestTokenizeAndParse(t *testing.T) {
	_, file := project(t, "error")
	out, _, err := execute(t, "tokenize", file)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Ident") || !strings.Contains(out, `"x"`) {
		t.Errorf("tokenize output:\n%s", out)
	}

	out, _, err = execute(t, "parse", file)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"SwitchStmt", "CaseClause", `op=","`} {
		if !strings.Contains(out, want) {
			t.Errorf("parse output missing %q:\n%s", want, out)
		}
	}
}

func TestParseReportsSyntaxErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.js")
	if err := os.WriteFile(path, []byte("switch (x) {\ncase 1\n}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, errOut, err := execute(t, "parse", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(errOut, "ERROR") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestVersionJSON(t *testing.T) {
	out, _, err := execute(t, "version", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Tool != "caselint" || payload.Version == "" {
		t.Errorf("payload = %+v", payload)
	}
}

func TestReadModes(t *testing.T) {
	var buf bytes.Buffer
	tests := []struct {
		in      string
		ui      uiMode
		color   bool
		wantErr bool
	}{
		{"auto", uiModeAuto, false, false},
		{"", uiModeAuto, false, false},
		{"ON", uiModeOn, true, false},
		{"off", uiModeOff, false, false},
		{"sometimes", "", false, true},
	}
	for _, tt := range tests {
		ui, err := readUIMode(tt.in)
		if (err != nil) != tt.wantErr || ui != tt.ui {
			t.Errorf("readUIMode(%q) = %q, %v", tt.in, ui, err)
		}
		color, err := readColor(tt.in, &buf)
		if (err != nil) != tt.wantErr || color != tt.color {
			t.Errorf("readColor(%q) = %v, %v", tt.in, color, err)
		}
	}
	if shouldUseTUI(uiModeAuto, &buf) {
		t.Error("auto mode must stay off for non-terminal output")
	}
}
