// Package launcher runs a chosen script as an independent child
// process inside the user's preferred terminal emulator. It owns no
// script-specific behavior and never waits for a script to finish.
package launcher

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/google/uuid"
	"github.com/violentpy/showcase/internal/config"
	"github.com/violentpy/showcase/internal/registry"
)

// Markers identify windows opened by this application.
const (
	WindowMarker  = "Violent Python Showcase"
	ContentMarker = "[PYTHON SCRIPT RUNNING]"
)

// ErrNoTerminal is returned when no terminal emulator could be located.
var ErrNoTerminal = errors.New("no terminal emulator found")

// Handle identifies one spawned script process. The child's lifetime is
// independent of ours; the handle is informational only.
type Handle struct {
	ID       string
	PID      int
	Terminal string
	Script   registry.Descriptor
}

// Exit is delivered asynchronously when a spawned terminal exits.
type Exit struct {
	Handle Handle
	Err    error
}

// Controller spawns scripts. Construct once per process.
type Controller struct {
	root  string
	prefs config.Terminal
	exits chan Exit
}

func New(root string, prefs config.Terminal) *Controller {
	return &Controller{
		root:  root,
		prefs: prefs,
		exits: make(chan Exit, 8),
	}
}

// Exits delivers terminal-exit notifications. Receiving is optional;
// notifications are dropped when nobody listens.
func (c *Controller) Exits() <-chan Exit { return c.exits }

// Run spawns the script in the resolved terminal and returns without
// waiting for completion. A failure to locate any terminal program is
// reported, never silently swallowed.
func (c *Controller) Run(d registry.Descriptor) (*Handle, error) {
	term, err := resolveTerminal(c.prefs.Preferred())
	if err != nil {
		return nil, err
	}

	argv := term.argv(c.launchCommand(d.Path))
	cmd := exec.Command(term.bin, argv...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", term.name, err)
	}

	handle := Handle{
		ID:       uuid.NewString(),
		PID:      cmd.Process.Pid,
		Terminal: term.name,
		Script:   d,
	}
	slog.Info("script launched",
		"id", handle.ID,
		"script", d.Name,
		"terminal", term.name,
		"pid", handle.PID,
	)

	// Reap the terminal process so it never zombies; the exit is a
	// notification, not a tracked state.
	go func() {
		err := cmd.Wait()
		select {
		case c.exits <- Exit{Handle: handle, Err: err}:
		default:
		}
	}()

	return &handle, nil
}
