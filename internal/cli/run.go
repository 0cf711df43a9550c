package cli

import (
	"fmt"
	"os"

	"github.com/samber/lo"

	"github.com/violentpy/showcase/internal/registry"
)

// RunScript launches the catalog entry with the given number in a new
// terminal window and returns immediately.
func (c CLI) RunScript(id int) error {
	catalog, err := c.registry.Discover()
	if err != nil {
		return err
	}

	d, ok := lo.Find(catalog, func(d registry.Descriptor) bool { return d.ID == id })
	if !ok {
		return fmt.Errorf("no script with number %d (try --list)", id)
	}

	handle, err := c.launcher.Run(d)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "launched %q in %s (pid %d)\n", d.Title, handle.Terminal, handle.PID)
	return nil
}
