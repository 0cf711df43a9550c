package env

import (
	"os"
	"path/filepath"
)

const (
	defaultXDGConfigDirname = ".config"
	defaultXDGDataDirname   = ".local/share"
)

var (
	SHOWCASE_CONFIG_PATH string

	SHOWCASE_LOG_PATH string
)

func init() {
	// https://github.com/charmbracelet/log/issues/35
	os.Setenv("CLICOLOR_FORCE", "1")

	// Follow https://specifications.freedesktop.org/basedir-spec/latest/
	if SHOWCASE_CONFIG_PATH = os.Getenv("SHOWCASE_CONFIG_PATH"); SHOWCASE_CONFIG_PATH == "" {
		configDir := os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				panic(err)
			}
			configDir = filepath.Join(homeDir, defaultXDGConfigDirname)
		}
		SHOWCASE_CONFIG_PATH = filepath.Join(configDir, "showcase", "config.yaml")
	}

	if SHOWCASE_LOG_PATH = os.Getenv("SHOWCASE_LOG_PATH"); SHOWCASE_LOG_PATH == "" {
		dataDir := os.Getenv("XDG_DATA_HOME")
		if dataDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				panic(err)
			}
			dataDir = filepath.Join(homeDir, defaultXDGDataDirname)
		}
		SHOWCASE_LOG_PATH = filepath.Join(dataDir, "showcase", "debug.log")
	}
}
