package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	cp "github.com/otiai10/copy"
	"golang.org/x/sync/errgroup"

	"github.com/violentpy/showcase/internal/registry"
	"github.com/violentpy/showcase/internal/safety"
	"github.com/violentpy/showcase/internal/uninstall"
)

const selftestProject = "demo_project"

var renamedPattern = regexp.MustCompile(`\.DELETE_ME_\d{8}_\d{6}(_\d+)?$`)

// unavailableDispatcher forces the rename fallback.
type unavailableDispatcher struct{}

func (unavailableDispatcher) Mechanism() uninstall.Mechanism { return "unavailable" }
func (unavailableDispatcher) MoveToTrash(*safety.ProjectRoot) error {
	return uninstall.ErrUnavailable
}

// Selftest exercises the uninstall safety gates, the confirmation flow,
// the rename fallback, and script discovery against throwaway copies
// under the temp dir. Nothing outside the temp dir is touched unless
// live is set, which additionally moves one throwaway copy through the
// real trash mechanism.
func (c CLI) Selftest(live bool) error {
	base, err := os.MkdirTemp("", "showcase-selftest-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(base)

	template := filepath.Join(base, "template", "apps", selftestProject)
	if err := writeTemplateProject(template); err != nil {
		return err
	}

	opts := safety.Options{
		Markers:  c.config.Core.Markers,
		MinDepth: c.config.Core.MinDepth,
	}

	scenarios := []struct {
		name string
		fn   func() error
	}{
		{"reject filesystem root", func() error { return checkRejected(fsRoot(base), opts, safety.ErrRootPath) }},
		{"reject home directory", func() error {
			home, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			return checkRejected(home, opts, safety.ErrHomePath)
		}},
		{"reject shallow path", func() error {
			shallow, ok := shallowAncestor(base, opts.MinDepth)
			if !ok {
				return nil
			}
			return checkRejected(shallow, opts, safety.ErrTooShallow)
		}},
		{"reject missing markers", func() error {
			clone, err := cloneProject(base, template, "markers")
			if err != nil {
				return err
			}
			if err := os.Remove(filepath.Join(clone, "main.py")); err != nil {
				return err
			}
			return checkRejected(clone, opts, safety.ErrMarkerMissing)
		}},
		{"typed confirmation matrix", checkConfirmMatrix},
		{"rename fallback", func() error { return checkRenameFallback(base, template, opts) }},
		{"rename collision suffix", func() error { return checkRenameCollision(base, template) }},
		{"script discovery round-trip", func() error { return checkDiscovery(base, template, c.config.Core.Exclude) }},
	}
	if live {
		scenarios = append(scenarios, struct {
			name string
			fn   func() error
		}{"live trash", func() error { return checkLiveTrash(base, template, opts) }})
	}

	var mu sync.Mutex
	failures := map[string]error{}

	var g errgroup.Group
	for _, sc := range scenarios {
		sc := sc
		g.Go(func() error {
			if err := sc.fn(); err != nil {
				mu.Lock()
				failures[sc.name] = err
				mu.Unlock()
				return fmt.Errorf("%s: %w", sc.name, err)
			}
			return nil
		})
	}
	groupErr := g.Wait()

	for _, sc := range scenarios {
		if err, ok := failures[sc.name]; ok {
			color.Red("FAIL  %s: %v", sc.name, err)
		} else {
			color.Green("ok    %s", sc.name)
		}
	}
	if groupErr != nil {
		return errors.New("selftest failed")
	}
	fmt.Println("all checks passed")
	return nil
}

func writeTemplateProject(root string) error {
	files := map[string]string{
		"main.py":   "print('showcase')\n",
		"README.md": "# Demo Project\n",
		filepath.Join("assignments", "01_intro", "01_string_search.py"):     "print('search')\n",
		filepath.Join("assignments", "02_net", "02_tcp_port_scanner.py"):    "print('scan')\n",
		filepath.Join("assignments", "03_reserved", ".gitkeep"):             "",
		filepath.Join("assignments", "__pycache__", "01_string_search.pyc"): "",
	}
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

// cloneProject copies the template into its own scenario directory so
// scenarios never share state.
func cloneProject(base, template, scenario string) (string, error) {
	dst := filepath.Join(base, scenario, "apps", selftestProject)
	if err := cp.Copy(template, dst); err != nil {
		return "", err
	}
	return dst, nil
}

func fsRoot(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return string(os.PathSeparator)
	}
	for {
		parent := filepath.Dir(abs)
		if parent == abs {
			return abs
		}
		abs = parent
	}
}

// shallowAncestor returns an existing ancestor directory with fewer
// than minDepth path segments, when one exists.
func shallowAncestor(path string, minDepth int) (string, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	root := fsRoot(abs)
	for dir := filepath.Dir(abs); dir != root; dir = filepath.Dir(dir) {
		rel, err := filepath.Rel(root, dir)
		if err != nil {
			return "", false
		}
		if len(strings.Split(rel, string(os.PathSeparator))) < minDepth {
			return dir, true
		}
	}
	return "", false
}

func checkRejected(path string, opts safety.Options, want error) error {
	_, err := safety.Validate(path, opts)
	if err == nil {
		return fmt.Errorf("validation accepted %s", path)
	}
	if !errors.Is(err, want) {
		return fmt.Errorf("rejected for the wrong reason: %v", err)
	}
	return nil
}

func checkConfirmMatrix() error {
	root := &safety.ProjectRoot{Path: "/x/y/" + selftestProject, Name: selftestProject}
	cases := []struct {
		typed string
		want  uninstall.State
	}{
		{selftestProject, uninstall.Confirmed},
		{"  " + selftestProject + "  ", uninstall.Confirmed},
		{strings.ToUpper(selftestProject), uninstall.Cancelled},
		{selftestProject + "x", uninstall.Cancelled},
		{"", uninstall.Cancelled},
	}
	for _, tc := range cases {
		flow := uninstall.NewFlow(root)
		flow.Apply(uninstall.ProceedEvent())
		got, _ := flow.Apply(uninstall.TypedTextEvent(tc.typed))
		if got != tc.want {
			return fmt.Errorf("typed %q: got %s, want %s", tc.typed, got, tc.want)
		}
	}

	flow := uninstall.NewFlow(root)
	if got, _ := flow.Apply(uninstall.CancelEvent()); got != uninstall.Cancelled {
		return fmt.Errorf("cancel: got %s", got)
	}
	return nil
}

func checkRenameFallback(base, template string, opts safety.Options) error {
	clone, err := cloneProject(base, template, "fallback")
	if err != nil {
		return err
	}
	coordinator := uninstall.NewCoordinator(opts, unavailableDispatcher{}, uninstall.NewRenamer())
	outcome := coordinator.Attempt(clone, uninstall.NewScriptedPrompter(
		uninstall.ProceedEvent(),
		uninstall.TypedTextEvent(selftestProject),
	))

	if outcome.Kind != uninstall.RenamedFallback {
		return fmt.Errorf("got outcome %s (%v)", outcome.Kind, outcome.Reason)
	}
	if !renamedPattern.MatchString(filepath.Base(outcome.NewPath)) {
		return fmt.Errorf("unexpected rename target %s", outcome.NewPath)
	}
	if _, err := os.Stat(clone); !os.IsNotExist(err) {
		return fmt.Errorf("original folder still present at %s", clone)
	}
	if _, err := os.Stat(filepath.Join(outcome.NewPath, "main.py")); err != nil {
		return fmt.Errorf("renamed folder lost its contents: %w", err)
	}
	return nil
}

func checkRenameCollision(base, template string) error {
	clone, err := cloneProject(base, template, "collision")
	if err != nil {
		return err
	}
	frozen := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	renamer := uninstall.NewRenamerWithClock(func() time.Time { return frozen })

	occupied := clone + ".DELETE_ME_" + frozen.Format("20060102_150405")
	if err := os.MkdirAll(occupied, 0755); err != nil {
		return err
	}

	newPath, err := renamer.SafeRename(&safety.ProjectRoot{Path: clone, Name: selftestProject})
	if err != nil {
		return err
	}
	if newPath != occupied+"_1" {
		return fmt.Errorf("got %s, want %s", newPath, occupied+"_1")
	}
	return nil
}

func checkDiscovery(base, template string, exclude []string) error {
	clone, err := cloneProject(base, template, "discovery")
	if err != nil {
		return err
	}
	reg, err := registry.New(filepath.Join(clone, "assignments"), exclude)
	if err != nil {
		return err
	}
	catalog, err := reg.Discover()
	if err != nil {
		return err
	}

	var ids []int
	titles := map[int]string{}
	for _, d := range catalog {
		ids = append(ids, d.ID)
		titles[d.ID] = d.Title
	}
	sort.Ints(ids)

	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		return fmt.Errorf("got ids %v, want [1 2]", ids)
	}
	if titles[2] != "TCP Port Scanner" {
		return fmt.Errorf("got title %q, want %q", titles[2], "TCP Port Scanner")
	}
	return nil
}

// checkLiveTrash moves a throwaway copy through the real platform
// mechanism. Rename fallback also counts as success; the point is that
// nothing is ever hard-deleted.
func checkLiveTrash(base, template string, opts safety.Options) error {
	clone, err := cloneProject(base, template, "live")
	if err != nil {
		return err
	}
	coordinator := uninstall.NewCoordinator(opts, uninstall.NewDispatcher(), uninstall.NewRenamer())
	outcome := coordinator.Attempt(clone, uninstall.NewScriptedPrompter(
		uninstall.ProceedEvent(),
		uninstall.TypedTextEvent(selftestProject),
	))

	switch outcome.Kind {
	case uninstall.MovedToTrash, uninstall.RenamedFallback:
		return nil
	default:
		return fmt.Errorf("got outcome %s (%v)", outcome.Kind, outcome.Reason)
	}
}
