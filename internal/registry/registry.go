// Package registry discovers the runnable teaching scripts and exposes
// them as a stable, ordered catalog.
package registry

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/gobwas/glob"
	"github.com/samber/lo"
)

const scriptExt = ".py"

var numericPrefix = regexp.MustCompile(`^(\d+)`)

// Descriptor describes one runnable script. Descriptors are recomputed
// on each discovery pass and never mutated.
type Descriptor struct {
	// ID is the numeric prefix of the containing directory (or, as a
	// fallback, of the file stem).
	ID int

	// Name is the file stem, e.g. "01_string_search".
	Name string

	// Title is the human-friendly display name, e.g. "String Search".
	Title string

	// Path is the absolute path to the runnable file.
	Path string
}

// Catalog is an ordered sequence of descriptors, ascending by ID.
type Catalog []Descriptor

// Registry scans one level of subdirectories under the scripts root.
type Registry struct {
	root    string
	exclude []glob.Glob
}

// New builds a registry over rootDir. excludeGlobs are matched against
// directory and file base names.
func New(rootDir string, excludeGlobs []string) (*Registry, error) {
	compiled := make([]glob.Glob, 0, len(excludeGlobs))
	for _, pattern := range excludeGlobs {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude glob %q: %w", pattern, err)
		}
		compiled = append(compiled, g)
	}
	return &Registry{root: rootDir, exclude: compiled}, nil
}

// Discover walks the scripts root and returns the current catalog. It
// is safe to call repeatedly and always reflects the on-disk state;
// nothing is cached across calls. Subdirectories without a matching
// file are reserved future slots and are silently skipped. When two
// entries share an identifier, the later-discovered one wins silently.
func (r *Registry) Discover() (Catalog, error) {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("scripts root missing, empty catalog", "root", r.root)
			return Catalog{}, nil
		}
		return nil, fmt.Errorf("read scripts root %s: %w", r.root, err)
	}

	byID := map[int]Descriptor{}
	for _, entry := range entries {
		if !entry.IsDir() || r.excluded(entry.Name()) {
			continue
		}
		dirID, dirHasID := leadingNumber(entry.Name())

		dir := filepath.Join(r.root, entry.Name())
		files, err := os.ReadDir(dir)
		if err != nil {
			slog.Warn("skipping unreadable directory", "dir", dir, "error", err)
			continue
		}

		for _, f := range files {
			if f.IsDir() || r.excluded(f.Name()) {
				continue
			}
			if !strings.EqualFold(filepath.Ext(f.Name()), scriptExt) {
				continue
			}
			stem := strings.TrimSuffix(f.Name(), filepath.Ext(f.Name()))

			id, ok := dirID, dirHasID
			if !ok {
				id, ok = leadingNumber(stem)
			}
			if !ok {
				continue
			}

			abs, err := filepath.Abs(filepath.Join(dir, f.Name()))
			if err != nil {
				continue
			}
			byID[id] = Descriptor{
				ID:    id,
				Name:  stem,
				Title: Title(stem),
				Path:  abs,
			}
		}
	}

	ids := lo.Keys(byID)
	sort.Ints(ids)

	catalog := make(Catalog, 0, len(ids))
	for _, id := range ids {
		catalog = append(catalog, byID[id])
	}
	slog.Debug("discovery pass complete", "root", r.root, "scripts", len(catalog))
	return catalog, nil
}

func (r *Registry) excluded(name string) bool {
	for _, g := range r.exclude {
		if g.Match(name) {
			return true
		}
	}
	return false
}

func leadingNumber(s string) (int, bool) {
	m := numericPrefix.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}
