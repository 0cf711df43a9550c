// Package safety decides whether a directory may be the target of a
// destructive operation. Validate is the single gate every uninstall
// attempt must pass through; it is re-run per attempt and never cached.
package safety

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Reject reasons returned (wrapped) by Validate.
var (
	ErrNotExist      = errors.New("path does not exist")
	ErrNotDirectory  = errors.New("path is not a directory")
	ErrRootPath      = errors.New("path is a filesystem root")
	ErrHomePath      = errors.New("path is a home directory")
	ErrTooShallow    = errors.New("path has too few segments")
	ErrMountPoint    = errors.New("path is a mount point root")
	ErrMarkerMissing = errors.New("required marker file is missing")
)

// Options configures the validation gate.
type Options struct {
	// Markers are filenames that must exist as direct children.
	Markers []string

	// MinDepth is the minimum number of path segments. Guards against
	// operating on e.g. a drive root even when markers are present.
	MinDepth int
}

// ProjectRoot is a directory that passed validation. Construct one only
// through Validate.
type ProjectRoot struct {
	// Path is the absolute, symlink-resolved directory path.
	Path string

	// Name is the final path segment. The typed confirmation must match
	// it exactly.
	Name string
}

// RejectError reports why a candidate path was refused.
type RejectError struct {
	Path   string
	Reason error
}

func (e *RejectError) Error() string {
	return fmt.Sprintf("refusing to operate on %s: %v", e.Path, e.Reason)
}

func (e *RejectError) Unwrap() error { return e.Reason }

func reject(path string, reason error) error {
	return &RejectError{Path: path, Reason: reason}
}

// Validate checks the candidate path against every safety rule and
// returns a ProjectRoot on success. It has no side effects.
func Validate(path string, opts Options) (*ProjectRoot, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, reject(path, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	fi, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, reject(abs, ErrNotExist)
		}
		return nil, reject(abs, err)
	}
	if !fi.IsDir() {
		return nil, reject(abs, ErrNotDirectory)
	}

	// Root, home and mount-point checks come before markers on purpose:
	// markers can be planted, depth cannot.
	if abs == filepath.Dir(abs) {
		return nil, reject(abs, ErrRootPath)
	}
	if home, err := os.UserHomeDir(); err == nil {
		if same, _ := samePath(abs, home); same {
			return nil, reject(abs, ErrHomePath)
		}
	}
	if depth(abs) < opts.MinDepth {
		return nil, reject(abs, ErrTooShallow)
	}
	if mounted, err := isMountRoot(abs); err == nil && mounted {
		return nil, reject(abs, ErrMountPoint)
	}

	for _, marker := range opts.Markers {
		if strings.ContainsRune(marker, os.PathSeparator) {
			return nil, reject(abs, fmt.Errorf("invalid marker %q", marker))
		}
		if _, err := os.Stat(filepath.Join(abs, marker)); err != nil {
			slog.Debug("marker check failed", "path", abs, "marker", marker)
			return nil, reject(abs, fmt.Errorf("%w: %s", ErrMarkerMissing, marker))
		}
	}

	return &ProjectRoot{Path: abs, Name: filepath.Base(abs)}, nil
}

// depth counts the path segments below the volume root.
func depth(path string) int {
	path = filepath.Clean(path)
	vol := filepath.VolumeName(path)
	trimmed := strings.Trim(path[len(vol):], string(os.PathSeparator))
	if trimmed == "" {
		return 0
	}
	return len(strings.Split(trimmed, string(os.PathSeparator)))
}

func samePath(a, b string) (bool, error) {
	ra, err := filepath.EvalSymlinks(a)
	if err != nil {
		ra = filepath.Clean(a)
	}
	rb, err := filepath.EvalSymlinks(b)
	if err != nil {
		rb = filepath.Clean(b)
	}
	return ra == rb, nil
}
