package safety

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

var testOptions = Options{
	Markers:  []string{"main.py", "README.md"},
	MinDepth: 3,
}

// newProject creates tmp/apps/demo_project with all marker files.
func newProject(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "apps", "demo_project")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	for _, marker := range testOptions.Markers {
		if err := os.WriteFile(filepath.Join(dir, marker), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestValidateAccepts(t *testing.T) {
	dir := newProject(t)

	root, err := Validate(dir, testOptions)
	if err != nil {
		t.Fatalf("Validate(%s) = %v, want nil", dir, err)
	}
	if root.Name != "demo_project" {
		t.Errorf("Name = %q, want %q", root.Name, "demo_project")
	}
	if !filepath.IsAbs(root.Path) {
		t.Errorf("Path = %q, want absolute", root.Path)
	}
}

func TestValidateResolvesSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	dir := newProject(t)
	link := filepath.Join(t.TempDir(), "link")
	if err := os.Symlink(dir, link); err != nil {
		t.Fatal(err)
	}

	root, err := Validate(link, testOptions)
	if err != nil {
		t.Fatalf("Validate(%s) = %v, want nil", link, err)
	}
	if root.Name != "demo_project" {
		t.Errorf("Name = %q, want the resolved target's base", root.Name)
	}
}

func TestValidateRejects(t *testing.T) {
	dir := newProject(t)

	fsRoot := dir
	for filepath.Dir(fsRoot) != fsRoot {
		fsRoot = filepath.Dir(fsRoot)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatal(err)
	}

	noMarkers := filepath.Join(t.TempDir(), "apps", "bare")
	if err := os.MkdirAll(noMarkers, 0755); err != nil {
		t.Fatal(err)
	}
	partial := filepath.Join(t.TempDir(), "apps", "partial")
	if err := os.MkdirAll(partial, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(partial, "main.py"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		opts Options
		want error
	}{
		{
			name: "missing path",
			path: filepath.Join(dir, "definitely-not-there"),
			opts: testOptions,
			want: ErrNotExist,
		},
		{
			name: "regular file",
			path: filepath.Join(dir, "main.py"),
			opts: testOptions,
			want: ErrNotDirectory,
		},
		{
			name: "filesystem root",
			path: fsRoot,
			opts: testOptions,
			want: ErrRootPath,
		},
		{
			name: "home directory",
			path: home,
			opts: testOptions,
			want: ErrHomePath,
		},
		{
			name: "too shallow",
			path: dir,
			opts: Options{Markers: testOptions.Markers, MinDepth: 100},
			want: ErrTooShallow,
		},
		{
			name: "no markers at all",
			path: noMarkers,
			opts: testOptions,
			want: ErrMarkerMissing,
		},
		{
			name: "one marker missing",
			path: partial,
			opts: testOptions,
			want: ErrMarkerMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.path, tt.opts)
			if err == nil {
				t.Fatalf("Validate(%s) = nil, want %v", tt.path, tt.want)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate(%s) = %v, want %v", tt.path, err, tt.want)
			}
			var rejectErr *RejectError
			if !errors.As(err, &rejectErr) {
				t.Errorf("error is %T, want *RejectError", err)
			}
		})
	}
}

func TestValidateRejectsMarkerWithSeparator(t *testing.T) {
	dir := newProject(t)
	opts := Options{
		Markers:  []string{filepath.Join("sub", "main.py")},
		MinDepth: 3,
	}
	if _, err := Validate(dir, opts); err == nil {
		t.Fatal("Validate accepted a marker containing a path separator")
	}
}

func TestDepth(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("separator-specific paths")
	}
	tests := []struct {
		path string
		want int
	}{
		{"/", 0},
		{"/tmp", 1},
		{"/tmp/", 1},
		{"/home/user/apps", 3},
		{"/home/user/apps/proj/", 4},
	}
	for _, tt := range tests {
		if got := depth(tt.path); got != tt.want {
			t.Errorf("depth(%q) = %d, want %d", tt.path, got, tt.want)
		}
	}
}
