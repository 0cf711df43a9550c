package cli

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/violentpy/showcase/internal/safety"
	"github.com/violentpy/showcase/internal/uninstall"
)

func newTestPrompter(input string) *stdinPrompter {
	return &stdinPrompter{
		in:  bufio.NewReader(strings.NewReader(input)),
		out: io.Discard,
	}
}

func TestStdinPrompter(t *testing.T) {
	root := &safety.ProjectRoot{Path: "/srv/apps/demo_project", Name: "demo_project"}

	tests := []struct {
		name  string
		input string
		state uninstall.State
		want  uninstall.EventKind
	}{
		{"yes at warning", "y\n", uninstall.Idle, uninstall.Proceed},
		{"yes spelled out", "YES\n", uninstall.Idle, uninstall.Proceed},
		{"no at warning", "n\n", uninstall.Idle, uninstall.Cancel},
		{"empty at warning", "\n", uninstall.Idle, uninstall.Cancel},
		{"eof at warning", "", uninstall.Idle, uninstall.Cancel},
		{"typed name", "demo_project\n", uninstall.AwaitingTypedConfirmation, uninstall.TypedText},
		{"eof at typed prompt", "", uninstall.AwaitingTypedConfirmation, uninstall.Cancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := newTestPrompter(tt.input).Next(tt.state, root)
			if ev.Kind != tt.want {
				t.Errorf("event kind = %v, want %v", ev.Kind, tt.want)
			}
		})
	}
}

func TestStdinPrompterCarriesTypedText(t *testing.T) {
	root := &safety.ProjectRoot{Path: "/srv/apps/demo_project", Name: "demo_project"}
	ev := newTestPrompter("demo_project\n").Next(uninstall.AwaitingTypedConfirmation, root)
	if strings.TrimSpace(ev.Text) != "demo_project" {
		t.Errorf("typed text = %q, want %q", ev.Text, "demo_project")
	}
}

func TestStdinPrompterFullFlow(t *testing.T) {
	root := &safety.ProjectRoot{Path: "/srv/apps/demo_project", Name: "demo_project"}
	p := newTestPrompter("y\ndemo_project\n")

	flow := uninstall.NewFlow(root)
	for !flow.State().Terminal() {
		flow.Apply(p.Next(flow.State(), root))
	}
	if flow.State() != uninstall.Confirmed {
		t.Errorf("final state = %s, want %s", flow.State(), uninstall.Confirmed)
	}
}
