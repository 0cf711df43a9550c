package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	"github.com/dustin/go-humanize"

	"github.com/violentpy/showcase/internal/registry"
)

var _ list.DefaultItem = (*Script)(nil)

// Script adapts a catalog descriptor to the list component.
type Script struct {
	desc registry.Descriptor
	size string
}

func newScript(d registry.Descriptor) Script {
	size := ""
	if fi, err := os.Stat(d.Path); err == nil {
		size = humanize.Bytes(uint64(fi.Size()))
	}
	return Script{desc: d, size: size}
}

func (s Script) Title() string {
	return fmt.Sprintf("%02d. %s", s.desc.ID, s.desc.Title)
}

func (s Script) Description() string {
	if s.size == "" {
		return s.desc.Name
	}
	return fmt.Sprintf("%s (%s)", s.desc.Name, s.size)
}

func (s Script) FilterValue() string {
	return s.desc.Title + " " + s.desc.Name
}
