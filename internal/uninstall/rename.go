package uninstall

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/violentpy/showcase/internal/safety"
)

const (
	renameMarker     = ".DELETE_ME_"
	renameTimeLayout = "20060102_150405"
	maxRenameProbes  = 50
)

// Renamer is the non-destructive fallback used when no trash mechanism
// is available.
type Renamer interface {
	// SafeRename renames the folder to a sibling marked for manual
	// deletion and returns the new path. It never deletes data.
	SafeRename(root *safety.ProjectRoot) (string, error)
}

// SiblingRenamer renames the folder next to itself as
// <name>.DELETE_ME_<timestamp>, probing numeric suffixes on collision.
type SiblingRenamer struct {
	now func() time.Time
}

func NewRenamer() *SiblingRenamer {
	return &SiblingRenamer{now: time.Now}
}

// NewRenamerWithClock pins the timestamp source. Collision handling is
// only observable with a frozen clock.
func NewRenamerWithClock(now func() time.Time) *SiblingRenamer {
	return &SiblingRenamer{now: now}
}

func (r *SiblingRenamer) SafeRename(root *safety.ProjectRoot) (string, error) {
	parent := filepath.Dir(root.Path)
	stem := root.Name + renameMarker + r.now().Format(renameTimeLayout)

	target := filepath.Join(parent, stem)
	for i := 1; pathExists(target); i++ {
		if i > maxRenameProbes {
			return "", newOpError("safe rename", root.Path, fmt.Errorf("no free rename target after %d probes", maxRenameProbes))
		}
		target = filepath.Join(parent, stem+"_"+strconv.Itoa(i))
	}

	if err := os.Rename(root.Path, target); err != nil {
		return "", newOpError("safe rename", root.Path, err)
	}
	slog.Info("folder renamed in place", "from", root.Path, "to", target)
	return target, nil
}

func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
