// Package config loads the shared deskkit settings file and resolves the
// data file locations for rps and todo.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the configuration directory name.
	AppName = "deskkit"

	// ConfigFile is the settings filename inside the config directory.
	ConfigFile = "config.yaml"
)

// JournalConfig controls the SQLite history.
type JournalConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Config models config.yaml. Relative file names resolve against DataDir.
type Config struct {
	DataDir   string        `yaml:"data_dir"`
	ScoreFile string        `yaml:"score_file"`
	TaskFile  string        `yaml:"task_file"`
	LogFile   string        `yaml:"log_file"`
	Journal   JournalConfig `yaml:"journal"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		DataDir:   DefaultDir(),
		ScoreFile: "rps_scores.json",
		TaskFile:  "tasks.json",
		LogFile:   "deskkit.log",
		Journal: JournalConfig{
			Enabled: true,
			Path:    "journal.db",
		},
	}
}

// DefaultDir returns XDG_CONFIG_HOME/deskkit, falling back to
// $HOME/.config/deskkit and finally the current directory.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), ConfigFile)
}

// Load reads the config at path (DefaultPath when empty). A missing file
// yields defaults; invalid YAML or values are errors.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.DataDir = expandHome(cfg.DataDir)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every file name is set.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return errors.New("data_dir must not be empty")
	}
	if strings.TrimSpace(c.ScoreFile) == "" {
		return errors.New("score_file must not be empty")
	}
	if strings.TrimSpace(c.TaskFile) == "" {
		return errors.New("task_file must not be empty")
	}
	if strings.TrimSpace(c.LogFile) == "" {
		return errors.New("log_file must not be empty")
	}
	if c.Journal.Enabled && strings.TrimSpace(c.Journal.Path) == "" {
		return errors.New("journal.path must not be empty when the journal is enabled")
	}
	return nil
}

// SetDataDir overrides the data directory (the --data-dir flag).
func (c *Config) SetDataDir(dir string) {
	if dir != "" {
		c.DataDir = expandHome(dir)
	}
}

// EnsureDataDir creates the data directory.
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir, 0o755)
}

// ScorePath returns the rps score file location.
func (c *Config) ScorePath() string { return c.resolve(c.ScoreFile) }

// TaskPath returns the to-do file location.
func (c *Config) TaskPath() string { return c.resolve(c.TaskFile) }

// LogPath returns the log file location.
func (c *Config) LogPath() string { return c.resolve(c.LogFile) }

// JournalPath returns the history database location.
func (c *Config) JournalPath() string { return c.resolve(c.Journal.Path) }

func (c *Config) resolve(name string) string {
	name = expandHome(name)
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
