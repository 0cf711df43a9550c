package uninstall

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/violentpy/showcase/internal/safety"
)

// finderDispatcher asks Finder to move the folder to the Trash via
// osascript. Finder keeps the "Put Back" metadata, which a raw rename
// into ~/.Trash would lose.
type finderDispatcher struct {
	osascript string
	trashDir  string
}

func newPlatformDispatcher() Dispatcher {
	d := &finderDispatcher{}

	bin, err := exec.LookPath("osascript")
	if err != nil {
		slog.Debug("osascript not found, finder trash unavailable")
		return d
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return d
	}
	trash := filepath.Join(home, ".Trash")
	if fi, err := os.Stat(trash); err != nil || !fi.IsDir() {
		slog.Debug("user trash directory missing", "dir", trash)
		return d
	}

	d.osascript = bin
	d.trashDir = trash
	return d
}

func (d *finderDispatcher) Mechanism() Mechanism { return MechanismFinder }

func (d *finderDispatcher) MoveToTrash(root *safety.ProjectRoot) error {
	if d.osascript == "" {
		return ErrUnavailable
	}

	// May prompt for Automation permission to control Finder; a denied
	// prompt comes back as an osascript error, not as unavailability.
	script := fmt.Sprintf(`tell application "Finder" to delete POSIX file %q`, root.Path)
	cmd := exec.Command(d.osascript, "-e", script)
	if out, err := cmd.CombinedOutput(); err != nil {
		return newOpError("finder trash", root.Path, fmt.Errorf("%w (%s)", err, string(out)))
	}

	if _, err := os.Stat(root.Path); err == nil {
		return newOpError("finder trash", root.Path, fmt.Errorf("folder still present after Finder delete"))
	}
	slog.Info("moved to trash", "mechanism", MechanismFinder, "path", root.Path)
	return nil
}
