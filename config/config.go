package config

import (
	"os"
	"strings"

	"github.com/rohanthewiz/serr"
	"gopkg.in/yaml.v3"
)

// ============================================================================
// Application Configuration
//
// Settings come from three layers, later layers winning:
// built-in defaults, an optional YAML file, then BIBLIOTECA_* environment
// variables. Command-line flags are applied on top by main.
// ============================================================================

const (
	DefaultAddress  = ":8000"
	DefaultBasePath = "/"
	DefaultTitle    = "biblioteca-virtual"
	DefaultLogLevel = "info"
)

// Config holds the settings for the web shell.
type Config struct {
	Address  string `yaml:"address"`   // Listen address (BIBLIOTECA_ADDRESS)
	BasePath string `yaml:"base_path"` // URL prefix the routes live under (BIBLIOTECA_BASE_PATH)
	Title    string `yaml:"title"`     // Document title (BIBLIOTECA_TITLE)
	LogLevel string `yaml:"log_level"` // logger level (BIBLIOTECA_LOG_LEVEL)
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Address:  DefaultAddress,
		BasePath: DefaultBasePath,
		Title:    DefaultTitle,
		LogLevel: DefaultLogLevel,
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, serr.Wrap(err, "failed to read config file "+path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, serr.Wrap(err, "failed to parse config file "+path)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("BIBLIOTECA_ADDRESS"); v != "" {
		c.Address = v
	}
	if v := os.Getenv("BIBLIOTECA_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("BIBLIOTECA_TITLE"); v != "" {
		c.Title = v
	}
	if v := os.Getenv("BIBLIOTECA_LOG_LEVEL"); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
}

// Validate checks the settings before the server is built.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Address) == "" {
		return serr.New("address must not be empty")
	}
	if !strings.HasPrefix(c.BasePath, "/") || !strings.HasSuffix(c.BasePath, "/") {
		return serr.New("base path must start and end with '/', got " + c.BasePath)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return serr.New("unknown log level " + c.LogLevel)
	}
	return nil
}
