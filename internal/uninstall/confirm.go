package uninstall

import (
	"strings"

	"github.com/violentpy/showcase/internal/safety"
)

// State is the confirmation gate's state. The two-step, exact-text-match
// gate exists because a single mis-click must not be enough to destroy
// the wrong folder; a plain yes/no dialog is not sufficient here.
type State uint8

const (
	Idle State = iota
	AwaitingTypedConfirmation
	Confirmed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingTypedConfirmation:
		return "awaiting typed confirmation"
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// Terminal reports whether the state machine is done.
func (s State) Terminal() bool {
	return s == Confirmed || s == Cancelled
}

// EventKind enumerates user input events.
type EventKind uint8

const (
	// Proceed acknowledges the initial warning dialog.
	Proceed EventKind = iota

	// TypedText carries the folder name typed by the user.
	TypedText

	// Cancel is an explicit cancellation.
	Cancel
)

// Event is one user input fed into the flow.
type Event struct {
	Kind EventKind
	Text string
}

func ProceedEvent() Event        { return Event{Kind: Proceed} }
func TypedTextEvent(s string) Event { return Event{Kind: TypedText, Text: s} }
func CancelEvent() Event         { return Event{Kind: Cancel} }

// Flow gates a destructive action behind explicit, unambiguous intent.
// It is created per uninstall attempt and never persisted.
type Flow struct {
	root  *safety.ProjectRoot
	state State
}

// NewFlow returns a Flow in Idle for the given validated root.
func NewFlow(root *safety.ProjectRoot) *Flow {
	return &Flow{root: root, state: Idle}
}

// State returns the current state.
func (f *Flow) State() State { return f.state }

// Apply feeds one event into the state machine and returns the next
// state plus an optional explanatory note. Terminal states absorb all
// further events. The typed text must equal the root's final path
// segment exactly: case-sensitive, no normalization beyond trimming
// surrounding whitespace. No locale-specific case folding is applied.
func (f *Flow) Apply(ev Event) (State, string) {
	if f.state.Terminal() {
		return f.state, ""
	}

	switch ev.Kind {
	case Cancel:
		f.state = Cancelled
		return f.state, "uninstall cancelled"

	case Proceed:
		if f.state == Idle {
			f.state = AwaitingTypedConfirmation
			return f.state, "type the project folder name to confirm: " + f.root.Name
		}
		return f.state, ""

	case TypedText:
		if f.state != AwaitingTypedConfirmation {
			// Typed text outside the confirmation prompt is ignored.
			return f.state, ""
		}
		if strings.TrimSpace(ev.Text) == f.root.Name {
			f.state = Confirmed
			return f.state, ""
		}
		f.state = Cancelled
		return f.state, "confirmation did not match"
	}

	return f.state, ""
}
