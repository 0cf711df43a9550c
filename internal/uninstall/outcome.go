package uninstall

import "fmt"

// Mechanism identifies which trash facility moved the folder.
type Mechanism string

const (
	// MechanismFinder is macOS Finder automation via osascript.
	MechanismFinder Mechanism = "finder"

	// MechanismRecycleBin is the native Windows recycle-bin API.
	MechanismRecycleBin Mechanism = "recycle-bin"

	// MechanismTrashCLI is an external trash utility (gio, trash-put, ...).
	MechanismTrashCLI Mechanism = "trash-cli"
)

// OutcomeKind enumerates the four possible results of one attempt.
type OutcomeKind uint8

const (
	// MovedToTrash: the folder is recoverable from the OS trash.
	MovedToTrash OutcomeKind = iota

	// RenamedFallback: trash was unavailable; the folder was renamed in
	// place and nothing was permanently removed.
	RenamedFallback

	// Aborted: validation or confirmation stopped the attempt before any
	// filesystem mutation.
	Aborted

	// Failed: a mutation was attempted and did not succeed. The folder is
	// still present, unmodified.
	Failed
)

func (k OutcomeKind) String() string {
	switch k {
	case MovedToTrash:
		return "moved to trash"
	case RenamedFallback:
		return "renamed fallback"
	case Aborted:
		return "aborted"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Outcome is the result of exactly one uninstall attempt. None of the
// variants are ever retried automatically.
type Outcome struct {
	Kind OutcomeKind

	// Mechanism is set when Kind is MovedToTrash.
	Mechanism Mechanism

	// NewPath is set when Kind is RenamedFallback.
	NewPath string

	// Reason is set when Kind is Aborted or Failed.
	Reason error
}

func (o Outcome) String() string {
	switch o.Kind {
	case MovedToTrash:
		return fmt.Sprintf("moved to trash via %s", o.Mechanism)
	case RenamedFallback:
		return fmt.Sprintf("renamed to %s (nothing was permanently removed)", o.NewPath)
	case Aborted:
		return fmt.Sprintf("aborted: %v", o.Reason)
	case Failed:
		return fmt.Sprintf("failed: %v", o.Reason)
	}
	return "unknown outcome"
}
