package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

// Config is the application configuration. Relative paths are resolved
// against DataDir.
type Config struct {
	DataDir     string            `yaml:"data_dir"`
	Backend     string            `yaml:"backend"`
	Files       map[string]string `yaml:"files"`
	SQLitePath  string            `yaml:"sqlite_path"`
	DatabaseURL string            `yaml:"database_url"`
	ExportDir   string            `yaml:"export_dir"`
	MenuPath    string            `yaml:"menu_path"`
	LogLevel    string            `yaml:"log_level"`
	LogFile     string            `yaml:"log_file"`
}

func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads the config at path, or at the default location when path is
// empty. A missing file yields the defaults. Environment variables
// override the file.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("ORGANIZER_CONFIG")
	}
	if path == "" {
		p, err := defaultPath()
		if err != nil {
			c := Default()
			c.applyEnv()
			return c, c.Validate()
		}
		path = p
	}

	var c Config
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	c.applyEnv()
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func defaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "organizer", "config.yaml"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "organizer", "config.yaml"), nil
}

func (c *Config) applyEnv() {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	set(&c.DatabaseURL, "DATABASE_URL")
	set(&c.Backend, "ORGANIZER_BACKEND")
	set(&c.DataDir, "ORGANIZER_DATA_DIR")
	set(&c.MenuPath, "MENU_PATH")
	set(&c.LogLevel, "LOG_LEVEL")
}

func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		c.DataDir = "."
	}
	if c.Backend == "" {
		c.Backend = BackendFile
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	defaults := map[string]string{
		"notes":    "notes.json",
		"tasks":    "tasks.json",
		"contacts": "contacts.json",
		"finance":  "finance.json",
	}
	if c.Files == nil {
		c.Files = map[string]string{}
	}
	for k, v := range defaults {
		if c.Files[k] == "" {
			c.Files[k] = v
		}
	}
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite, BackendPostgres:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
}

func (c *Config) resolve(p, def string) string {
	if p == "" {
		p = def
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.DataDir, p)
}

func (c *Config) SQLiteFile() string { return c.resolve(c.SQLitePath, "organizer.db") }
func (c *Config) ExportPath() string { return c.resolve(c.ExportDir, ".") }
func (c *Config) LogPath() string    { return c.resolve(c.LogFile, "organizer.log") }
