//go:build !darwin && !windows

package uninstall

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/violentpy/showcase/internal/safety"
)

// utilityDispatcher delegates to an external trash utility. gio speaks
// the freedesktop trash spec; trash-put and trash come from trash-cli.
type utilityDispatcher struct {
	bin  string
	args func(path string) []string
}

func newPlatformDispatcher() Dispatcher {
	candidates := []struct {
		name string
		args func(path string) []string
	}{
		{"gio", func(path string) []string { return []string{"trash", path} }},
		{"trash-put", func(path string) []string { return []string{path} }},
		{"trash", func(path string) []string { return []string{path} }},
	}

	for _, c := range candidates {
		bin, err := exec.LookPath(c.name)
		if err != nil {
			continue
		}
		slog.Debug("trash utility selected", "bin", bin)
		return &utilityDispatcher{bin: bin, args: c.args}
	}

	slog.Debug("no trash utility found in PATH")
	return &utilityDispatcher{}
}

func (d *utilityDispatcher) Mechanism() Mechanism { return MechanismTrashCLI }

func (d *utilityDispatcher) MoveToTrash(root *safety.ProjectRoot) error {
	if d.bin == "" {
		return ErrUnavailable
	}

	cmd := exec.Command(d.bin, d.args(root.Path)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return newOpError("trash utility", root.Path, fmt.Errorf("%s: %w (%s)", d.bin, err, string(out)))
	}

	if _, err := os.Stat(root.Path); err == nil {
		return newOpError("trash utility", root.Path, fmt.Errorf("%s reported success but folder still present", d.bin))
	}
	slog.Info("moved to trash", "mechanism", MechanismTrashCLI, "bin", d.bin, "path", root.Path)
	return nil
}
