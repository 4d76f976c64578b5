// Package config loads and saves the trygo configuration file.
// Resolution order for every setting: environment variable, config
// file, built-in default. The core never reads configuration mid
// session; the cmd layer loads once and passes plain values down.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"trygo/internal/errors"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Environment variables honored at load time.
const (
	EnvPath      = "TRYGO_PATH"       // overrides the tries directory
	EnvConfigDir = "TRYGO_CONFIG_DIR" // overrides the config directory
	EnvConfig    = "TRYGO_CONFIG"     // overrides the config file name
)

// Config represents the application configuration structure.
type Config struct {
	// Path is the base directory holding the try folders.
	Path string `yaml:"path"`
	// Theme is a named color theme, see Themes().
	Theme string `yaml:"theme"`
	// Editor overrides $VISUAL/$EDITOR for the --editor handoff.
	Editor string `yaml:"editor"`
	// ApplyDatePrefix controls whether new folders get a YYYY-MM-DD
	// prefix. Unset means true.
	ApplyDatePrefix *bool `yaml:"apply_date_prefix"`
	// Ignore lists glob patterns for folder names the picker hides.
	Ignore []string `yaml:"ignore"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		Path:  defaultTriesPath(),
		Theme: "default",
	}
}

// Load reads the config from the first existing candidate path.
// A missing file yields defaults, not an error.
func Load() (*Config, error) {
	return LoadFile(FilePath())
}

// LoadFile loads configuration from a specific file path. If the file
// doesn't exist, returns default configuration.
func LoadFile(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.NewConfigError("error reading config file", path, errors.InvalidConfig, err)
	}

	// Unmarshal into a temporary config so unset fields keep defaults
	var tmp Config
	if err := yaml.Unmarshal(data, &tmp); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	if tmp.Path != "" {
		cfg.Path = tmp.Path
	}
	if tmp.Theme != "" {
		cfg.Theme = tmp.Theme
	}
	if tmp.Editor != "" {
		cfg.Editor = tmp.Editor
	}
	if tmp.ApplyDatePrefix != nil {
		cfg.ApplyDatePrefix = tmp.ApplyDatePrefix
	}
	if len(tmp.Ignore) > 0 {
		cfg.Ignore = tmp.Ignore
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the given path, creating parent
// directories as needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewConfigError("failed to create config directory", path, errors.ConfigWriteFailed, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.NewConfigError("failed to marshal config", path, errors.ConfigWriteFailed, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.NewConfigError("failed to write config file", path, errors.ConfigWriteFailed, err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}
	if c.Theme != "" && !validTheme(c.Theme) {
		return errors.NewConfigError("unknown theme", c.Theme, errors.InvalidConfig, nil)
	}
	for _, pattern := range c.Ignore {
		if _, err := glob.Compile(pattern); err != nil {
			return errors.NewConfigError("invalid ignore pattern", pattern, errors.InvalidConfig, err)
		}
	}
	return nil
}

// TriesDir resolves the base directory for try folders: TRYGO_PATH
// wins, then the config file's path, then the default. Tilde prefixes
// are expanded.
func (c *Config) TriesDir() string {
	if env := os.Getenv(EnvPath); env != "" {
		return ExpandPath(env)
	}
	if c.Path != "" {
		return ExpandPath(c.Path)
	}
	return defaultTriesPath()
}

// DatePrefix reports whether new folders get a date prefix. Defaults
// to true when the config is silent.
func (c *Config) DatePrefix() bool {
	if c.ApplyDatePrefix == nil {
		return true
	}
	return *c.ApplyDatePrefix
}

// EditorCommand resolves the editor chain: config, $VISUAL, $EDITOR.
// Empty means no editor is available.
func (c *Config) EditorCommand() string {
	if c.Editor != "" {
		return c.Editor
	}
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	return os.Getenv("EDITOR")
}

// IgnoreGlobs compiles the ignore patterns. Invalid patterns are
// rejected by Validate, so compilation errors here are skipped.
func (c *Config) IgnoreGlobs() []glob.Glob {
	globs := make([]glob.Glob, 0, len(c.Ignore))
	for _, pattern := range c.Ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		globs = append(globs, g)
	}
	return globs
}

// Dir returns the configuration directory
// (TRYGO_CONFIG_DIR, or <user config dir>/trygo).
func Dir() string {
	if env := os.Getenv(EnvConfigDir); env != "" {
		return env
	}
	base, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return filepath.Join(".", ".config", "trygo")
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "trygo")
}

// FileName returns the config file name (TRYGO_CONFIG or config.yaml).
func FileName() string {
	if env := os.Getenv(EnvConfig); env != "" {
		return env
	}
	return "config.yaml"
}

// FilePath returns the full path of the config file.
func FilePath() string {
	return filepath.Join(Dir(), FileName())
}

// ExpandPath expands a leading ~/ to the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

func defaultTriesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "tries")
	}
	return filepath.Join(home, "work", "tries")
}

// DefaultFileContent is what `trygo config init` writes.
func DefaultFileContent() string {
	return fmt.Sprintf(`# trygo configuration
# path: base directory for try folders (default: ~/work/tries)
path: %s
# theme: one of %s
theme: default
# editor: command used with --editor (falls back to $VISUAL, $EDITOR)
#editor: vim
# apply_date_prefix: prefix new folders with YYYY-MM-DD (default: true)
apply_date_prefix: true
# ignore: glob patterns for folder names hidden from the picker
#ignore:
#  - ".*"
`, defaultTriesPath(), strings.Join(ThemeNames(), ", "))
}
