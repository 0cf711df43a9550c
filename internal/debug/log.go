// Package debug exposes the application's own log stream and runtime
// configuration for troubleshooting.
package debug

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/k0kubun/pp/v3"
	"github.com/mattn/go-isatty"
	"github.com/nxadm/tail"

	"github.com/violentpy/showcase/internal/env"
)

var levelColors = map[string]*color.Color{
	"DEBU": color.New(color.FgHiBlack),
	"INFO": color.New(color.FgGreen),
	"WARN": color.New(color.FgYellow),
	"ERRO": color.New(color.FgRed),
}

// Logs streams the application log to w. When follow is set and stdout
// is a terminal, it keeps tailing like tail -f; otherwise it dumps the
// file and returns.
func Logs(w io.Writer, follow bool) error {
	follow = follow && isatty.IsTerminal(os.Stdout.Fd())
	t, err := tail.TailFile(env.SHOWCASE_LOG_PATH, tail.Config{Follow: follow, ReOpen: follow})
	if err != nil {
		return err
	}
	for line := range t.Lines {
		fmt.Fprintln(w, colorizeLevel(line.Text))
	}
	return nil
}

func colorizeLevel(line string) string {
	for level, c := range levelColors {
		token := " " + level + " "
		if idx := strings.Index(line, token); idx >= 0 {
			return line[:idx] + " " + c.Sprint(level) + " " + line[idx+len(token):]
		}
	}
	return line
}

// DumpConfig pretty-prints the effective configuration.
func DumpConfig(w io.Writer, cfg any) error {
	printer := pp.New()
	printer.SetOutput(w)
	printer.SetColoringEnabled(isatty.IsTerminal(os.Stdout.Fd()))
	_, err := printer.Println(cfg)
	return err
}
