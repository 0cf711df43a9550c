package uninstall

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/violentpy/showcase/internal/safety"
)

func frozenClock() func() time.Time {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	return func() time.Time { return ts }
}

func renameTarget(t *testing.T) *safety.ProjectRoot {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "apps", "demo_project")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "main.py"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	return &safety.ProjectRoot{Path: dir, Name: "demo_project"}
}

func TestSafeRename(t *testing.T) {
	root := renameTarget(t)
	renamer := NewRenamerWithClock(frozenClock())

	newPath, err := renamer.SafeRename(root)
	if err != nil {
		t.Fatal(err)
	}

	want := root.Path + ".DELETE_ME_20260314_092653"
	if newPath != want {
		t.Errorf("newPath = %q, want %q", newPath, want)
	}
	if _, err := os.Stat(root.Path); !os.IsNotExist(err) {
		t.Error("original path still present")
	}
	if _, err := os.Stat(filepath.Join(newPath, "main.py")); err != nil {
		t.Errorf("contents lost in rename: %v", err)
	}
}

func TestSafeRenameCollisions(t *testing.T) {
	root := renameTarget(t)
	renamer := NewRenamerWithClock(frozenClock())

	base := root.Path + ".DELETE_ME_20260314_092653"
	if err := os.MkdirAll(base, 0755); err != nil {
		t.Fatal(err)
	}

	newPath, err := renamer.SafeRename(root)
	if err != nil {
		t.Fatal(err)
	}
	if newPath != base+"_1" {
		t.Errorf("newPath = %q, want %q", newPath, base+"_1")
	}
}

func TestSafeRenameGivesUpAfterMaxProbes(t *testing.T) {
	root := renameTarget(t)
	renamer := NewRenamerWithClock(frozenClock())

	base := root.Path + ".DELETE_ME_20260314_092653"
	if err := os.MkdirAll(base, 0755); err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= maxRenameProbes; i++ {
		if err := os.MkdirAll(base+"_"+strconv.Itoa(i), 0755); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := renamer.SafeRename(root); err == nil {
		t.Fatal("expected an error once every probe target is taken")
	}
	if _, err := os.Stat(root.Path); err != nil {
		t.Errorf("folder must be untouched after giving up: %v", err)
	}
}
