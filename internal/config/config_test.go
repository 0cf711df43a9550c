package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const validYAML = `
core:
  markers: [main.py, README.md]
  min_depth: 3
  scripts_dir: assignments
  exclude: [".*", "__pycache__"]
terminal:
  macos: kitty
  linux: gnome-terminal
  windows: wt
ui:
  density: compact
  exit_message: "see you"
  preview:
    syntax_highlight: true
    colorscheme: nord
    max_size: 2MB
    images: false
  paginator_type: arabic
log:
  enabled: true
  level: info
  retention: 3 days
`

func TestParse(t *testing.T) {
	path := writeConfig(t, validYAML)
	cfg, err := Parse(path)
	if err != nil {
		t.Fatal(err)
	}

	if got := cfg.Core.MinDepth; got != 3 {
		t.Errorf("MinDepth = %d, want 3", got)
	}
	if got := len(cfg.Core.Markers); got != 2 {
		t.Errorf("len(Markers) = %d, want 2", got)
	}
	if got := cfg.UI.Density; got != "compact" {
		t.Errorf("Density = %q, want %q", got, "compact")
	}
	if got := cfg.UI.Preview.MaxSize; got != "2MB" {
		t.Errorf("MaxSize = %q, want %q", got, "2MB")
	}
	if got := cfg.Log.Level; got != "info" {
		t.Errorf("Level = %q, want %q", got, "info")
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name     string
		mutation string
	}{
		{"one marker only", "core:\n  markers: [main.py]\n  min_depth: 3\n  scripts_dir: a\nui:\n  density: compact\n  paginator_type: dots\nlog:\n  level: info\n"},
		{"bad density", "core:\n  markers: [a, b]\n  min_depth: 3\n  scripts_dir: a\nui:\n  density: cozy\n  paginator_type: dots\nlog:\n  level: info\n"},
		{"bad paginator", "core:\n  markers: [a, b]\n  min_depth: 3\n  scripts_dir: a\nui:\n  density: compact\n  paginator_type: roman\nlog:\n  level: info\n"},
		{"bad level", "core:\n  markers: [a, b]\n  min_depth: 3\n  scripts_dir: a\nui:\n  density: compact\n  paginator_type: dots\nlog:\n  level: loud\n"},
		{"bad max size", "core:\n  markers: [a, b]\n  min_depth: 3\n  scripts_dir: a\nui:\n  density: compact\n  paginator_type: dots\n  preview:\n    max_size: huge\nlog:\n  level: info\n"},
		{"bad retention", "core:\n  markers: [a, b]\n  min_depth: 3\n  scripts_dir: a\nui:\n  density: compact\n  paginator_type: dots\nlog:\n  level: info\n  retention: forever\n"},
		{"shallow min depth", "core:\n  markers: [a, b]\n  min_depth: 1\n  scripts_dir: a\nui:\n  density: compact\n  paginator_type: dots\nlog:\n  level: info\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.mutation)
			if _, err := Parse(path); err == nil {
				t.Error("Parse accepted an invalid config")
			}
		})
	}
}

func TestParseMissingFile(t *testing.T) {
	if _, err := Parse(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing explicit config path")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if len(cfg.Core.Markers) < 2 {
		t.Errorf("default markers = %v, want at least two", cfg.Core.Markers)
	}
	if cfg.Core.MinDepth < 2 {
		t.Errorf("default MinDepth = %d, want >= 2", cfg.Core.MinDepth)
	}
	if cfg.Core.ScriptsDir == "" {
		t.Error("default ScriptsDir is empty")
	}

	// The defaults must themselves pass validation.
	initParser()
	if err := validate.Struct(cfg); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestTerminalPreferred(t *testing.T) {
	term := Terminal{MacOS: "mac-term", Linux: "linux-term", Windows: "win-term"}
	var want string
	switch runtime.GOOS {
	case "darwin":
		want = "mac-term"
	case "windows":
		want = "win-term"
	default:
		want = "linux-term"
	}
	if got := term.Preferred(); got != want {
		t.Errorf("Preferred() = %q, want %q", got, want)
	}
}
