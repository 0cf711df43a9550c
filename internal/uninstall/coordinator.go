package uninstall

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/violentpy/showcase/internal/safety"
)

var (
	// ErrAttemptInFlight rejects a second attempt while one is running.
	// An in-progress trash or rename leaves the filesystem in a state
	// that must not be re-validated, so the attempt is rejected, not
	// queued.
	ErrAttemptInFlight = errors.New("an uninstall attempt is already in progress")

	// ErrUserCancelled: the confirmation flow ended in Cancelled.
	ErrUserCancelled = errors.New("uninstall cancelled")
)

// Prompter supplies user input events to the confirmation flow. It is
// called once per non-terminal state until the flow terminates.
type Prompter interface {
	Next(state State, root *safety.ProjectRoot) Event
}

// PrompterFunc adapts a function to the Prompter interface.
type PrompterFunc func(state State, root *safety.ProjectRoot) Event

func (f PrompterFunc) Next(state State, root *safety.ProjectRoot) Event {
	return f(state, root)
}

// ScriptedPrompter replays a fixed sequence of events, then cancels.
// The TUI collects the user's answers up front and replays them here;
// tests drive scenarios the same way.
type ScriptedPrompter struct {
	events []Event
	pos    int
}

func NewScriptedPrompter(events ...Event) *ScriptedPrompter {
	return &ScriptedPrompter{events: events}
}

func (p *ScriptedPrompter) Next(State, *safety.ProjectRoot) Event {
	if p.pos >= len(p.events) {
		return CancelEvent()
	}
	ev := p.events[p.pos]
	p.pos++
	return ev
}

// Coordinator orchestrates one uninstall attempt: validate, confirm,
// trash, fall back to rename. The folder is guaranteed to end every
// attempt in exactly one of: present and unmodified (Aborted/Failed),
// moved to trash, or renamed in place.
type Coordinator struct {
	opts       safety.Options
	dispatcher Dispatcher
	renamer    Renamer
	inFlight   atomic.Bool
}

func NewCoordinator(opts safety.Options, dispatcher Dispatcher, renamer Renamer) *Coordinator {
	return &Coordinator{
		opts:       opts,
		dispatcher: dispatcher,
		renamer:    renamer,
	}
}

// Attempt runs the full sequence against the candidate path. The path
// is re-validated here regardless of where it came from; validation
// results are never cached across attempts. Exactly one Outcome is
// produced and nothing is retried automatically.
func (c *Coordinator) Attempt(candidatePath string, prompt Prompter) Outcome {
	if !c.inFlight.CompareAndSwap(false, true) {
		return Outcome{Kind: Aborted, Reason: ErrAttemptInFlight}
	}
	defer c.inFlight.Store(false)

	slog.Debug("uninstall attempt started", "path", candidatePath)

	root, err := safety.Validate(candidatePath, c.opts)
	if err != nil {
		slog.Warn("uninstall rejected by validation", "path", candidatePath, "error", err)
		return Outcome{Kind: Aborted, Reason: err}
	}

	flow := NewFlow(root)
	var note string
	// The event budget guards against a Prompter that only ever emits
	// ignored events.
	for i := 0; !flow.State().Terminal(); i++ {
		if i >= 16 {
			flow.Apply(CancelEvent())
			break
		}
		_, n := flow.Apply(prompt.Next(flow.State(), root))
		if n != "" {
			note = n
		}
	}
	if flow.State() == Cancelled {
		reason := ErrUserCancelled
		if note != "" {
			reason = fmt.Errorf("%w: %s", ErrUserCancelled, note)
		}
		slog.Info("uninstall cancelled by user", "path", root.Path)
		return Outcome{Kind: Aborted, Reason: reason}
	}

	switch err := c.dispatcher.MoveToTrash(root); {
	case err == nil:
		return Outcome{Kind: MovedToTrash, Mechanism: c.dispatcher.Mechanism()}

	case errors.Is(err, ErrUnavailable):
		slog.Info("trash unavailable, falling back to safe rename", "path", root.Path)
		newPath, rerr := c.renamer.SafeRename(root)
		if rerr != nil {
			// Nothing was deleted; the folder is left as-is.
			return Outcome{Kind: Failed, Reason: rerr}
		}
		return Outcome{Kind: RenamedFallback, NewPath: newPath}

	default:
		// An unexpected trash error is not assumed safe to paper over
		// with a rename; surface it verbatim.
		slog.Error("trash mechanism failed", "path", root.Path, "error", err)
		return Outcome{Kind: Failed, Reason: err}
	}
}
