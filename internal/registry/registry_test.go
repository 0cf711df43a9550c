package registry

import (
	"os"
	"path/filepath"
	"testing"
)

var testExcludes = []string{".*", "__pycache__"}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"01_intro/01_string_search.py":      "print('a')",
		"02_net/02_tcp_port_scanner.py":     "print('b')",
		"02_net/helper.txt":                 "not a script",
		"__pycache__/01_string_search.pyc":  "",
		".hidden/03_secret.py":              "print('c')",
		"noprefix/04_exif_reader.py":        "print('d')",
		"05_reserved/.gitkeep":              "",
		"10_caps/10_UPPER.PY":               "print('e')",
		"stray.py":                          "top-level files are not scanned",
	})

	reg, err := New(root, testExcludes)
	if err != nil {
		t.Fatal(err)
	}
	catalog, err := reg.Discover()
	if err != nil {
		t.Fatal(err)
	}

	wantIDs := []int{1, 2, 4, 10}
	if len(catalog) != len(wantIDs) {
		t.Fatalf("got %d scripts, want %d: %+v", len(catalog), len(wantIDs), catalog)
	}
	for i, want := range wantIDs {
		if catalog[i].ID != want {
			t.Errorf("catalog[%d].ID = %d, want %d", i, catalog[i].ID, want)
		}
	}

	if catalog[0].Name != "01_string_search" {
		t.Errorf("Name = %q, want %q", catalog[0].Name, "01_string_search")
	}
	if catalog[0].Title != "String Search" {
		t.Errorf("Title = %q, want %q", catalog[0].Title, "String Search")
	}
	if !filepath.IsAbs(catalog[0].Path) {
		t.Errorf("Path = %q, want absolute", catalog[0].Path)
	}
}

func TestDiscoverDuplicateIDLaterWins(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"07_first/07_one.py": "print('one')",
		"07_second/07_two.py": "print('two')",
	})

	reg, err := New(root, testExcludes)
	if err != nil {
		t.Fatal(err)
	}
	catalog, err := reg.Discover()
	if err != nil {
		t.Fatal(err)
	}

	if len(catalog) != 1 {
		t.Fatalf("got %d scripts, want 1", len(catalog))
	}
	if catalog[0].Name != "07_two" {
		t.Errorf("Name = %q, want the later entry %q", catalog[0].Name, "07_two")
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	reg, err := New(filepath.Join(t.TempDir(), "nope"), testExcludes)
	if err != nil {
		t.Fatal(err)
	}
	catalog, err := reg.Discover()
	if err != nil {
		t.Fatalf("missing root should not error: %v", err)
	}
	if len(catalog) != 0 {
		t.Errorf("got %d scripts, want 0", len(catalog))
	}
}

func TestDiscoverIsRepeatable(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"01_intro/01_a.py": "x"})

	reg, err := New(root, testExcludes)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := reg.Discover(); err != nil {
		t.Fatal(err)
	}

	// A second pass reflects on-disk changes.
	writeTree(t, root, map[string]string{"02_more/02_b.py": "y"})
	catalog, err := reg.Discover()
	if err != nil {
		t.Fatal(err)
	}
	if len(catalog) != 2 {
		t.Errorf("got %d scripts after adding one, want 2", len(catalog))
	}
}

func TestNewRejectsBadGlob(t *testing.T) {
	if _, err := New(t.TempDir(), []string{"[unclosed"}); err == nil {
		t.Fatal("expected an error for an invalid exclude glob")
	}
}

func TestLeadingNumber(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"01_intro", 1, true},
		{"10_caps", 10, true},
		{"7", 7, true},
		{"noprefix", 0, false},
		{"", 0, false},
		{"_01", 0, false},
	}
	for _, tt := range tests {
		got, ok := leadingNumber(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("leadingNumber(%q) = (%d, %t), want (%d, %t)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
