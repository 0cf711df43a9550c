// Package preview renders a read-only look at a script or asset for
// the detail pane. It never modifies the file.
package preview

import (
	"bufio"
	"bytes"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/quick"
	"github.com/alecthomas/chroma/styles"
	"github.com/docker/go-units"
	"github.com/eliukblau/pixterm/pkg/ansimage"
	"github.com/gabriel-vasile/mimetype"
)

// Renderer turns files into terminal-displayable previews.
type Renderer struct {
	syntaxHighlight bool
	colorscheme     string
	images          bool
	maxSize         int64
}

// Options mirrors the ui.preview config section.
type Options struct {
	SyntaxHighlight bool
	Colorscheme     string
	Images          bool
	MaxSize         string
}

func NewRenderer(opts Options) (*Renderer, error) {
	var maxSize int64
	if s := strings.TrimSpace(opts.MaxSize); s != "" {
		n, err := units.FromHumanSize(s)
		if err != nil {
			return nil, fmt.Errorf("invalid preview max size %q: %w", s, err)
		}
		maxSize = n
	}
	return &Renderer{
		syntaxHighlight: opts.SyntaxHighlight,
		colorscheme:     opts.Colorscheme,
		images:          opts.Images,
		maxSize:         maxSize,
	}, nil
}

// Render returns the preview text for path, sized for a width x height
// cell area. Non-previewable files yield a placeholder, not an error;
// errors mean the file could not be read at all.
func (r *Renderer) Render(path string, width, height int) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if fi.IsDir() {
		return r.renderDir(path)
	}
	if r.maxSize > 0 && fi.Size() > r.maxSize {
		return fmt.Sprintf("(%s is too large to preview: %s)",
			filepath.Base(path), units.HumanSize(float64(fi.Size()))), nil
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", err
	}

	switch {
	case strings.HasPrefix(mtype.String(), "image/"):
		if !r.images {
			return fmt.Sprintf("(image preview disabled: %s)", mtype.String()), nil
		}
		return renderImage(path, width, height)

	case mtype.Is("text/plain"), mtype.Parent() != nil && mtype.Parent().Is("text/plain"):
		return r.renderText(path)

	default:
		slog.Debug("cannot preview", "mimetype", mtype.String(), "path", path)
		return fmt.Sprintf("(no preview for %s)", mtype.String()), nil
	}
}

func (r *Renderer) renderDir(path string) (string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return "", err
	}
	var lines []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			name += "/"
		}
		lines = append(lines, name)
	}
	return strings.Join(lines, "\n"), nil
}

func (r *Renderer) renderText(path string) (string, error) {
	fp, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer fp.Close()

	var sb strings.Builder
	scanner := bufio.NewScanner(fp)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		sb.WriteString(scanner.Text() + "\n")
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	content := sb.String()
	if r.syntaxHighlight {
		if colored, err := r.colorize(filepath.Base(path), content); err == nil {
			content = colored
		}
	}
	return content, nil
}

func (r *Renderer) colorize(name, content string) (string, error) {
	var l chroma.Lexer
	l = lexers.Get(name)
	if l == nil {
		l = lexers.Analyse(content)
	}
	if l == nil {
		slog.Debug("highlight: fallback to default lexer")
		l = lexers.Fallback
	}
	style := styles.Get(r.colorscheme)
	if style == nil {
		style = styles.Get("monokai")
	}
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, content, l.Config().Name, "terminal16m", style.Name); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderImage(path string, width, height int) (string, error) {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	// ansimage rows are half-block pixels, hence height*2.
	img, err := ansimage.NewScaledFromFile(path, height*2, width, color.Black, ansimage.ScaleModeFit, ansimage.NoDithering)
	if err != nil {
		return "", fmt.Errorf("render image %s: %w", path, err)
	}
	return img.Render(), nil
}
