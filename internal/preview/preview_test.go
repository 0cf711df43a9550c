package preview

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRendererRejectsBadMaxSize(t *testing.T) {
	if _, err := NewRenderer(Options{MaxSize: "plenty"}); err == nil {
		t.Fatal("expected an error for an unparseable max size")
	}
}

func TestRenderPlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "01_string_search.py")
	content := "import sys\nprint('needle')\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := NewRenderer(Options{SyntaxHighlight: false})
	if err != nil {
		t.Fatal(err)
	}
	got, err := r.Render(path, 80, 24)
	if err != nil {
		t.Fatal(err)
	}
	if got != content {
		t.Errorf("Render = %q, want the file contents back", got)
	}
}

func TestRenderHighlighted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "01_string_search.py")
	if err := os.WriteFile(path, []byte("print('x')\n"), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := NewRenderer(Options{SyntaxHighlight: true, Colorscheme: "nord"})
	if err != nil {
		t.Fatal(err)
	}
	got, err := r.Render(path, 80, 24)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "print") {
		t.Errorf("highlighted output lost the source text: %q", got)
	}
}

func TestRenderTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.py")
	if err := os.WriteFile(path, []byte(strings.Repeat("x", 2048)), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := NewRenderer(Options{MaxSize: "1KB"})
	if err != nil {
		t.Fatal(err)
	}
	got, err := r.Render(path, 80, 24)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "too large") {
		t.Errorf("Render = %q, want a too-large placeholder", got)
	}
}

func TestRenderDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.py", "b.py"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}

	r, err := NewRenderer(Options{})
	if err != nil {
		t.Fatal(err)
	}
	got, err := r.Render(dir, 80, 24)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"a.py", "b.py", "sub/"} {
		if !strings.Contains(got, want) {
			t.Errorf("directory listing missing %q:\n%s", want, got)
		}
	}
}

func TestRenderMissingFile(t *testing.T) {
	r, err := NewRenderer(Options{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Render(filepath.Join(t.TempDir(), "nope.py"), 80, 24); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
