package launcher

import (
	"runtime"
	"strings"
	"testing"

	"github.com/violentpy/showcase/internal/config"
)

func names(specs []terminalSpec) []string {
	out := make([]string, len(specs))
	for i, s := range specs {
		out[i] = s.name
	}
	return out
}

func TestCandidatesPreferenceFirst(t *testing.T) {
	tests := []struct {
		name      string
		goos      string
		preferred string
		wantFirst string
		wantLen   int
	}{
		{"linux default order", "linux", "", "kitty", 7},
		{"linux preference moved up", "linux", "gnome-terminal", "gnome-terminal", 7},
		{"darwin default", "darwin", "", "kitty", 4},
		{"darwin preference", "darwin", "terminal", "terminal", 4},
		{"windows", "windows", "", "wt", 2},
		{"unknown preference keeps order", "linux", "hyper", "kitty", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specs := candidates(tt.goos, tt.preferred)
			if len(specs) != tt.wantLen {
				t.Fatalf("got %d candidates (%v), want %d", len(specs), names(specs), tt.wantLen)
			}
			if specs[0].name != tt.wantFirst {
				t.Errorf("first candidate = %q, want %q", specs[0].name, tt.wantFirst)
			}
		})
	}
}

func TestCandidatesKeepAllEntries(t *testing.T) {
	// Moving the preference to the front must not drop anything.
	base := names(candidates("linux", ""))
	reordered := names(candidates("linux", "xterm"))

	seen := map[string]bool{}
	for _, n := range reordered {
		seen[n] = true
	}
	for _, n := range base {
		if !seen[n] {
			t.Errorf("candidate %q lost after reordering", n)
		}
	}
}

func TestLaunchCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix shell command")
	}
	c := New("/srv/apps/demo project", config.Terminal{})
	cmd := c.launchCommand("/srv/apps/demo project/assignments/01_intro/01_string_search.py")

	for _, want := range []string{
		WindowMarker,
		ContentMarker,
		"cd '/srv/apps/demo project'",
		"python3 assignments/01_intro/01_string_search.py",
		".venv/bin/activate",
		"read -p",
	} {
		if !strings.Contains(cmd, want) {
			t.Errorf("launch command missing %q:\n%s", want, cmd)
		}
	}
}

func TestLaunchCommandOutsideRoot(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix shell command")
	}
	c := New("/srv/apps/demo", config.Terminal{})
	cmd := c.launchCommand("/elsewhere/script.py")
	if !strings.Contains(cmd, "../../../elsewhere/script.py") {
		t.Errorf("expected a relative path to the script:\n%s", cmd)
	}
}
