package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

// List prints the discovered catalog as a table.
func (c CLI) List(w io.Writer) error {
	catalog, err := c.registry.Discover()
	if err != nil {
		return err
	}
	if len(catalog) == 0 {
		fmt.Fprintf(w, "no scripts found under %s\n", filepath.Join(c.root, c.config.Core.ScriptsDir))
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Title", "Script", "Size"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetColumnSeparator(" ")

	for _, d := range catalog {
		size := "-"
		if fi, err := os.Stat(d.Path); err == nil {
			size = humanize.Bytes(uint64(fi.Size()))
		}
		table.Append([]string{
			fmt.Sprintf("%02d", d.ID),
			d.Title,
			d.Name,
			size,
		})
	}
	table.Render()
	return nil
}
