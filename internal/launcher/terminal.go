package launcher

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"al.essio.dev/pkg/shellescape"
	"github.com/samber/lo"
)

// terminalSpec describes how to start one terminal emulator with a
// shell command already quoted for it.
type terminalSpec struct {
	name string
	bin  string
	argv func(cmd string) []string
}

// launchCommand builds the shell command executed inside the terminal:
// set the window title, print the content marker, enter the project
// root, activate the venv when present, run the script, hold the
// window open.
func (c *Controller) launchCommand(scriptPath string) string {
	rel, err := filepath.Rel(c.root, scriptPath)
	if err != nil {
		rel = scriptPath
	}

	if runtime.GOOS == "windows" {
		return strings.Join([]string{
			fmt.Sprintf("$Host.UI.RawUI.WindowTitle = '%s'", WindowMarker),
			fmt.Sprintf("Write-Host '%s'", ContentMarker),
			fmt.Sprintf("Set-Location '%s'", c.root),
			"if (Test-Path .venv\\Scripts\\Activate.ps1) { . .venv\\Scripts\\Activate.ps1 }",
			fmt.Sprintf("python '%s'", rel),
			"Read-Host 'Press Enter to close'",
		}, "; ")
	}

	return strings.Join([]string{
		fmt.Sprintf(`printf "\033]0;%s\007"`, WindowMarker),
		"echo " + shellescape.Quote(ContentMarker),
		"cd " + shellescape.Quote(c.root),
		"if [ -f .venv/bin/activate ]; then . .venv/bin/activate; fi",
		"python3 " + shellescape.Quote(rel),
		"echo",
		"read -p 'Press Enter to close'",
	}, "; ")
}

func bashArgs(prefix []string) func(cmd string) []string {
	return func(cmd string) []string {
		return append(append([]string{}, prefix...), "bash", "-lc", cmd)
	}
}

func powershellArgs(prefix []string) func(cmd string) []string {
	return func(cmd string) []string {
		return append(append([]string{}, prefix...), "powershell", "-NoExit", "-Command", cmd)
	}
}

// candidates returns the terminal candidates for the platform, with
// the user's preference moved to the front.
func candidates(goos, preferred string) []terminalSpec {
	var specs []terminalSpec
	switch goos {
	case "darwin":
		specs = []terminalSpec{
			{name: "kitty", bin: "kitty", argv: bashArgs([]string{"--title", WindowMarker, "--hold"})},
			{name: "wezterm", bin: "wezterm", argv: bashArgs([]string{"start", "--"})},
			{name: "alacritty", bin: "alacritty", argv: bashArgs([]string{"-e"})},
			{name: "terminal", bin: "osascript", argv: func(cmd string) []string {
				escaped := strings.ReplaceAll(strings.ReplaceAll(cmd, `\`, `\\`), `"`, `\"`)
				return []string{"-e", fmt.Sprintf(`tell application "Terminal" to do script "%s"`, escaped)}
			}},
		}
	case "windows":
		specs = []terminalSpec{
			{name: "wt", bin: "wt", argv: powershellArgs(nil)},
			{name: "powershell", bin: "powershell", argv: func(cmd string) []string {
				return []string{"-NoExit", "-Command", cmd}
			}},
		}
	default:
		specs = []terminalSpec{
			{name: "kitty", bin: "kitty", argv: bashArgs([]string{"--title", WindowMarker, "--hold"})},
			{name: "alacritty", bin: "alacritty", argv: bashArgs([]string{"-e"})},
			{name: "wezterm", bin: "wezterm", argv: bashArgs([]string{"start", "--"})},
			{name: "gnome-terminal", bin: "gnome-terminal", argv: bashArgs([]string{"--window", "--"})},
			{name: "konsole", bin: "konsole", argv: bashArgs([]string{"--new-window", "-e"})},
			{name: "xterm", bin: "xterm", argv: bashArgs([]string{"-e"})},
			{name: "x-terminal-emulator", bin: "x-terminal-emulator", argv: bashArgs([]string{"-e"})},
		}
	}

	if preferred == "" {
		return specs
	}
	pref, rest := lo.FilterReject(specs, func(s terminalSpec, _ int) bool {
		return s.name == preferred
	})
	return append(pref, rest...)
}

// resolveTerminal returns the first candidate present on this system.
func resolveTerminal(preferred string) (*terminalSpec, error) {
	for _, spec := range candidates(runtime.GOOS, preferred) {
		bin, err := exec.LookPath(spec.bin)
		if err != nil {
			continue
		}
		spec.bin = bin
		return &spec, nil
	}
	return nil, ErrNoTerminal
}
