package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. RESALE_BASE_URL.
const EnvPrefix = "resale"

// Config holds CLI configuration stored at ~/.resale/config.
type Config struct {
	Token    string `yaml:"token" split_words:"true"`
	BaseURL  string `yaml:"base_url,omitempty" split_words:"true"`
	Email    string `yaml:"email,omitempty" split_words:"true"`
	UserName string `yaml:"user_name,omitempty" ignored:"true"`
	Role     string `yaml:"role,omitempty" ignored:"true"`
	PageSize int    `yaml:"page_size,omitempty" split_words:"true"`
	Theme    string `yaml:"theme,omitempty" split_words:"true"`
	LogLevel string `yaml:"log_level,omitempty" split_words:"true"`
	LogFile  string `yaml:"log_file,omitempty" split_words:"true"`
}

// Dir returns the directory holding config and logs.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".resale")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config")
}

// Load reads the config file and applies RESALE_* environment overrides.
// It fails when no token is configured or the file is readable by others.
func Load() (*Config, error) {
	cfg, fileErr := readFile(Path())
	if fileErr != nil && !errors.Is(fileErr, os.ErrNotExist) {
		return nil, fileErr
	}
	if cfg == nil {
		cfg = &Config{}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	if cfg.Token == "" {
		if fileErr != nil {
			return nil, fileErr
		}
		return nil, fmt.Errorf("config missing token")
	}
	return cfg, nil
}

// Stored returns the saved config file without environment overrides, or
// an empty config when none has been saved yet.
func Stored() (*Config, error) {
	cfg, err := readFile(Path())
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// Env returns only the RESALE_* overrides.
func Env() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	return &cfg, nil
}

func readFile(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config not found: %w", err)
	}

	perm := info.Mode().Perm()
	if perm != 0600 {
		return nil, fmt.Errorf("config permissions too open: %04o (want 0600)", perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	// WriteFile keeps the mode of an existing file.
	return os.Chmod(path, 0600)
}

// APIBaseURL returns the configured API root or def.
func (c *Config) APIBaseURL(def string) string {
	if c == nil || c.BaseURL == "" {
		return def
	}
	return c.BaseURL
}

// ListPageSize returns the configured page size or 20.
func (c *Config) ListPageSize() int {
	if c == nil || c.PageSize <= 0 {
		return 20
	}
	return c.PageSize
}

// LogPath returns the log file location.
func (c *Config) LogPath() string {
	if c != nil && c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(Dir(), "logs", "resale.log")
}
