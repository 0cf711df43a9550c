// Package cli wires flag parsing, logging, configuration, and command
// dispatch. The interactive UI lives in internal/ui; everything
// reachable without a TTY lives here.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jessevdk/go-flags"
	"github.com/k1LoW/duration"
	"github.com/rs/xid"

	"github.com/violentpy/showcase/internal/config"
	"github.com/violentpy/showcase/internal/debug"
	"github.com/violentpy/showcase/internal/env"
	"github.com/violentpy/showcase/internal/launcher"
	"github.com/violentpy/showcase/internal/registry"
	"github.com/violentpy/showcase/internal/safety"
	"github.com/violentpy/showcase/internal/ui"
	"github.com/violentpy/showcase/internal/uninstall"
)

type Option struct {
	List      bool   `short:"l" long:"list" description:"List discovered scripts and exit"`
	Run       int    `short:"r" long:"run" description:"Launch the script with this number and exit" default:"-1"`
	Uninstall bool   `long:"uninstall" description:"Safe-uninstall this installation without the UI"`
	Root      string `long:"root" description:"Project root directory (default: the executable's directory)"`
	Config    string `long:"config" description:"Path to config file" default:""`

	Meta MetaOption `group:"Meta Options"`
}

type MetaOption struct {
	Version      bool   `short:"V" long:"version" description:"Show version"`
	Debug        string `long:"debug" description:"View debug logs (default: \"full\")" optional-value:"full" optional:"yes" choice:"full" choice:"live" choice:"config"`
	Selftest     bool   `long:"selftest" description:"Run the built-in smoke checks against a temp copy and exit"`
	SelftestLive bool   `long:"selftest-live" description:"With --selftest, also exercise the real trash mechanism"`
}

type CLI struct {
	version     Version
	option      Option
	config      config.Config
	runID       string
	root        string
	registry    *registry.Registry
	coordinator *uninstall.Coordinator
	launcher    *launcher.Controller
}

var runID = sync.OnceValue(func() string {
	id := xid.New().String()
	return id
})

func Run(v Version) error {
	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	parser.Name = v.AppName
	parser.Usage = "[--list | --run N | --uninstall]"
	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			return nil
		}
		return err
	}

	logDir := filepath.Dir(env.SHOWCASE_LOG_PATH)
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		err := os.MkdirAll(logDir, 0755)
		if err != nil {
			return err
		}
	}

	// Captured before the first append below refreshes it.
	logModTime := fileModTime(env.SHOWCASE_LOG_PATH)

	var w io.Writer
	if file, err := os.OpenFile(env.SHOWCASE_LOG_PATH, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		w = file
	} else {
		w = os.Stderr
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           log.DebugLevel,
		Formatter: func() log.Formatter {
			if strings.ToLower(opt.Meta.Debug) == "json" {
				return log.JSONFormatter
			}
			return log.TextFormatter
		}(),
	})
	logger.SetOutput(w)
	logger.With("run_id", runID())
	slog.SetDefault(slog.New(logger))

	defer slog.Debug("main function finished\n\n\n")
	slog.Debug("main function started", "version", v.Version, "revision", v.Revision, "buildDate", v.BuildDate)

	cfg, err := config.Parse(opt.Config)
	if err != nil {
		return err
	}

	if !cfg.Log.Enabled {
		logger.SetOutput(io.Discard)
	} else if lv, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(lv)
	}
	pruneLog(cfg.Log.Retention, logModTime)

	root, err := resolveRoot(opt.Root)
	if err != nil {
		return err
	}
	slog.Debug("project root resolved", "root", root)

	reg, err := registry.New(filepath.Join(root, cfg.Core.ScriptsDir), cfg.Core.Exclude)
	if err != nil {
		return err
	}

	coordinator := uninstall.NewCoordinator(
		safety.Options{Markers: cfg.Core.Markers, MinDepth: cfg.Core.MinDepth},
		uninstall.NewDispatcher(),
		uninstall.NewRenamer(),
	)

	cli := CLI{
		version:     v,
		option:      opt,
		config:      cfg,
		runID:       runID(),
		root:        root,
		registry:    reg,
		coordinator: coordinator,
		launcher:    launcher.New(root, cfg.Terminal),
	}

	if err := cli.Run(); err != nil {
		slog.Error("exit", "error", fmt.Errorf("cli.run failed: %w", err))
		return err
	}
	return nil
}

func (c CLI) Run() error {
	switch {
	case c.option.Meta.Version:
		fmt.Fprint(os.Stdout, c.version.Print())
		return nil

	case c.option.Meta.Selftest:
		return c.Selftest(c.option.Meta.SelftestLive)

	case c.option.List:
		return c.List(os.Stdout)

	case c.option.Run >= 0:
		return c.RunScript(c.option.Run)

	case c.option.Uninstall:
		return c.Uninstall()

	default:
		switch c.option.Meta.Debug {
		case "live":
			return debug.Logs(os.Stdout, true)
		case "full":
			return debug.Logs(os.Stdout, false)
		case "config":
			return debug.DumpConfig(os.Stdout, c.config)
		}
		return c.Showcase()
	}
}

// Showcase starts the interactive browser UI.
func (c CLI) Showcase() error {
	return ui.Run(ui.Params{
		Config:      c.config,
		Root:        c.root,
		Registry:    c.registry,
		Coordinator: c.coordinator,
		Launcher:    c.launcher,
	})
}

// resolveRoot picks the project root: an explicit flag wins, otherwise
// the directory holding the executable. Symlinks are resolved so the
// safety checks see the real location.
func resolveRoot(flag string) (string, error) {
	path := flag
	if path == "" {
		exe, err := os.Executable()
		if err != nil {
			return "", fmt.Errorf("locate executable: %w", err)
		}
		path = filepath.Dir(exe)
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("resolve project root %s: %w", path, err)
	}
	return filepath.Abs(resolved)
}

func fileModTime(path string) time.Time {
	fi, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return fi.ModTime()
}

// pruneLog truncates the log file once it outlives the configured
// retention. The log is a debug aid, not an audit trail, so whole-file
// truncation is enough.
func pruneLog(retention string, lastWrite time.Time) {
	if retention == "" || lastWrite.IsZero() {
		return
	}
	d, err := duration.Parse(retention)
	if err != nil {
		slog.Warn("unparseable log retention, skipping prune", "retention", retention)
		return
	}
	if time.Since(lastWrite) > d {
		if err := os.Truncate(env.SHOWCASE_LOG_PATH, 0); err == nil {
			slog.Debug("log file pruned", "retention", retention)
		}
	}
}
