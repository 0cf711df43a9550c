package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/go-playground/validator/v10"
	"github.com/muesli/reflow/indent"
	"github.com/violentpy/showcase/internal/env"
	"gopkg.in/yaml.v2"
)

var validate *validator.Validate

type Config struct {
	Core     Core     `yaml:"core"`
	Terminal Terminal `yaml:"terminal"`
	UI       UI       `yaml:"ui"`
	Log      Log      `yaml:"log"`
}

// Core holds the settings the uninstall safety gate and the script
// registry depend on. Markers and scripts_dir are a contract with the
// repository layout; do not change one without the other.
type Core struct {
	Markers    []string `yaml:"markers" validate:"required,min=2"`
	MinDepth   int      `yaml:"min_depth" validate:"required,min=2"`
	ScriptsDir string   `yaml:"scripts_dir" validate:"required"`
	Exclude    []string `yaml:"exclude"`
}

// Terminal is the preferred terminal program per platform. The launcher
// reads these; nothing in this program writes them back.
type Terminal struct {
	MacOS   string `yaml:"macos"`
	Linux   string `yaml:"linux"`
	Windows string `yaml:"windows"`
}

// Preferred returns the preference for the running platform.
func (t Terminal) Preferred() string {
	switch runtime.GOOS {
	case "darwin":
		return t.MacOS
	case "windows":
		return t.Windows
	default:
		return t.Linux
	}
}

type UI struct {
	Density     string        `yaml:"density" validate:"required,oneof=compact spacious"`
	ExitMessage string        `yaml:"exit_message"`
	Preview     previewConfig `yaml:"preview"`
	Paginator   string        `yaml:"paginator_type" validate:"required,oneof=dots arabic"`
}

type previewConfig struct {
	SyntaxHighlight bool   `yaml:"syntax_highlight"`
	Colorscheme     string `yaml:"colorscheme"`
	MaxSize         string `yaml:"max_size" validate:"validSize"`
	Images          bool   `yaml:"images"`
}

type Log struct {
	Enabled   bool   `yaml:"enabled"`
	Level     string `yaml:"level" validate:"required,oneof=debug info warn error"`
	Retention string `yaml:"retention" validate:"validDuration"`
}

type configError struct {
	configPath string
	configDir  string
	parser     parser
	err        error
}

type parser struct{}

func (p parser) getDefaultConfig() Config {
	return Config{
		Core: Core{
			Markers:    []string{"main.py", "README.md"},
			MinDepth:   3,
			ScriptsDir: "assignments",
			Exclude:    []string{".*", "__pycache__"},
		},
		Terminal: Terminal{
			MacOS:   "kitty",
			Linux:   "kitty",
			Windows: "wt",
		},
		UI: UI{
			Density:     "spacious", // or compact
			ExitMessage: "bye!",
			Preview: previewConfig{
				SyntaxHighlight: true,
				Colorscheme:     "nord",
				MaxSize:         "1MB",
				Images:          true,
			},
			Paginator: "dots", // or arabic
		},
		Log: Log{
			Enabled:   true,
			Level:     "debug",
			Retention: "7 days",
		},
	}
}

func (p parser) getDefaultConfigContents() string {
	defaultConfig := p.getDefaultConfig()
	content, _ := yaml.Marshal(defaultConfig)
	return string(content)
}

func (e configError) Error() string {
	return heredoc.Docf(`
		Couldn't find the "%s" config file.
		Please try again after creating it or specifying a valid config path.
		The recommended config path is %s (default).
		Example YAML file contents:
		---
		%s
		---
		Original error:
		%s
		`,
		e.configPath,
		env.SHOWCASE_CONFIG_PATH,
		e.parser.getDefaultConfigContents(),
		indent.String(e.err.Error(), 2),
	)
}

func (p parser) createConfigFile(path string) error {
	if err := p.ensureDirExists(filepath.Dir(path)); err != nil {
		return err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Warn("creating config file as it does not exist", "config-file", path)
		newConfigFile, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0666)
		if err != nil {
			return err
		}
		defer newConfigFile.Close()

		if err := p.writeConfigFileContents(newConfigFile); err != nil {
			return err
		}
	}

	return nil
}

func (p parser) ensureDirExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		slog.Warn("creating directory as it does not exist", "dir", dirPath)
		if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
			return err
		}
	}
	return nil
}

func (p parser) writeConfigFileContents(file *os.File) error {
	_, err := file.WriteString(p.getDefaultConfigContents())
	return err
}

func (p parser) ensureConfigFile() (string, error) {
	path := env.SHOWCASE_CONFIG_PATH

	if err := p.ensureDirExists(filepath.Dir(path)); err != nil {
		return "", err
	}

	if err := p.createConfigFile(path); err != nil {
		return "", configError{
			parser:    p,
			configDir: filepath.Dir(path),
			err:       err,
		}
	}

	return path, nil
}

type parsingError struct {
	err error
}

func (e parsingError) Error() string {
	return fmt.Sprintf("failed to parse config: %v", e.err)
}

func (p parser) readConfigFile(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, configError{
			configPath: path,
			configDir:  filepath.Dir(path),
			parser:     p,
			err:        err,
		}
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	if err := validate.Struct(cfg); err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			return cfg, fmt.Errorf("validation error: Field %s, %q is invalid", err.Field(), err.Value())
		}
	}
	return cfg, nil
}

func initParser() parser {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.Split(fld.Tag.Get("yaml"), ",")[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("validSize", validSize)
	_ = validate.RegisterValidation("validDuration", validDuration)

	return parser{}
}

func Parse(path string) (Config, error) {
	parser := initParser()

	var cfg Config
	var err error
	var configPath string

	if path == "" {
		configPath, err = parser.ensureConfigFile()
		if err != nil {
			return cfg, parsingError{err: err}
		}
	} else {
		configPath = path
	}
	slog.Debug("config file found", "config-file", configPath)

	cfg, err = parser.readConfigFile(configPath)
	if err != nil {
		return cfg, parsingError{err: err}
	}

	return cfg, nil
}

// Default returns the built-in configuration without touching disk.
func Default() Config {
	return parser{}.getDefaultConfig()
}
