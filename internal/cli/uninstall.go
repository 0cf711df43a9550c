package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/violentpy/showcase/internal/safety"
	"github.com/violentpy/showcase/internal/uninstall"
)

// stdinPrompter drives the confirmation flow over plain stdin for the
// headless --uninstall path. EOF counts as cancellation.
type stdinPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *stdinPrompter) Next(state uninstall.State, root *safety.ProjectRoot) uninstall.Event {
	switch state {
	case uninstall.Idle:
		fmt.Fprintf(p.out, "This moves the whole folder to the trash:\n  %s\n", root.Path)
		fmt.Fprint(p.out, "Continue? [y/N]: ")
		line, err := p.in.ReadString('\n')
		if err != nil && line == "" {
			return uninstall.CancelEvent()
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return uninstall.ProceedEvent()
		}
		return uninstall.CancelEvent()

	case uninstall.AwaitingTypedConfirmation:
		fmt.Fprintf(p.out, "Type the folder name (%s) to confirm: ",
			color.New(color.Bold).Sprint(root.Name))
		line, err := p.in.ReadString('\n')
		if err != nil && line == "" {
			return uninstall.CancelEvent()
		}
		return uninstall.TypedTextEvent(line)
	}
	return uninstall.CancelEvent()
}

// Uninstall runs the safe-uninstall sequence against the project root
// without the UI. A Failed outcome maps to a non-zero exit.
func (c CLI) Uninstall() error {
	prompt := &stdinPrompter{in: bufio.NewReader(os.Stdin), out: os.Stdout}
	outcome := c.coordinator.Attempt(c.root, prompt)

	switch outcome.Kind {
	case uninstall.MovedToTrash:
		color.Green("moved to trash via %s; restore it from there if this was a mistake", outcome.Mechanism)
		return nil

	case uninstall.RenamedFallback:
		color.Yellow("no trash mechanism available; folder renamed instead:")
		fmt.Fprintf(os.Stdout, "  %s\n", outcome.NewPath)
		fmt.Fprintln(os.Stdout, "delete it manually once you are sure")
		return nil

	case uninstall.Aborted:
		fmt.Fprintf(os.Stdout, "nothing was changed: %v\n", outcome.Reason)
		return nil

	default:
		return fmt.Errorf("uninstall failed, folder left in place: %w", outcome.Reason)
	}
}
