package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Defaults for the demo table.
const (
	DefaultRows            = 1000
	DefaultCollapsedHeight = 3
	DefaultExpandedHeight  = 9
	DefaultSeed            = 1
	DefaultFPS             = 60
	DefaultMarkdownStyle   = "auto"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"

	configFileName = "config.yaml"
	logFileName    = "rowdrawer.log"
	maxFPS         = 240
)

// Environment variables read by New.
const (
	EnvHome      = "ROWDRAWER_HOME"
	EnvLogLevel  = "ROWDRAWER_LOG_LEVEL"
	EnvLogFormat = "ROWDRAWER_LOG_FORMAT"
	EnvLogFile   = "ROWDRAWER_LOG_FILE"
	EnvRows      = "ROWDRAWER_ROWS"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the rowdrawer configuration.
type Config struct {
	Table     TableConfig     `yaml:"table"`
	Animation AnimationConfig `yaml:"animation"`
	Logging   LoggingConfig   `yaml:"logging"`

	// loadErr is the error from reading the config file in New.
	loadErr error
}

// TableConfig shapes the demo table.
type TableConfig struct {
	Rows            int    `yaml:"rows"`
	CollapsedHeight int    `yaml:"collapsed_height"`
	ExpandedHeight  int    `yaml:"expanded_height"`
	Seed            int64  `yaml:"seed"`
	MarkdownStyle   string `yaml:"markdown_style"`
}

// AnimationConfig tunes the frame loop. The animation length itself is fixed.
type AnimationConfig struct {
	FPS int `yaml:"fps"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns the built-in configuration without reading files or the environment.
func Default() *Config {
	cfg := &Config{
		Table: TableConfig{
			Rows:            DefaultRows,
			CollapsedHeight: DefaultCollapsedHeight,
			ExpandedHeight:  DefaultExpandedHeight,
			Seed:            DefaultSeed,
			MarkdownStyle:   DefaultMarkdownStyle,
		},
		Animation: AnimationConfig{FPS: DefaultFPS},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
	if dir, err := GetConfigDir(); err == nil {
		cfg.Logging.File = filepath.Join(dir, "logs", logFileName)
	}
	return cfg
}

// New returns the default configuration with the user's config file merged on
// top and environment overrides applied. A missing config file leaves the
// defaults in place. A file that cannot be read or parsed is recorded and
// reported by LoadError and Validate.
func New() *Config {
	cfg := Default()

	if path, err := ConfigFilePath(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			cfg.loadErr = ShallowMergeYAML(cfg, path)
		}
	}

	cfg.ApplyEnv(os.LookupEnv)
	return cfg
}

// ApplyEnv applies environment overrides using lookupEnv.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvLogFile); ok {
		c.Logging.File = v
	}
	if v, ok := lookupEnv(EnvRows); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Table.Rows = n
		}
	}
}

// LoadError returns the error from loading the config file, if any.
func (c *Config) LoadError() error {
	return c.loadErr
}

// Validate checks that the config file loaded, then the table shape and frame rate.
func (c *Config) Validate() error {
	if c.loadErr != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, c.loadErr)
	}
	t := c.Table
	if t.Rows < 0 {
		return fmt.Errorf("%w: table.rows must be >= 0, got %d", ErrInvalidConfig, t.Rows)
	}
	if t.CollapsedHeight < 1 {
		return fmt.Errorf("%w: table.collapsed_height must be >= 1, got %d", ErrInvalidConfig, t.CollapsedHeight)
	}
	if t.ExpandedHeight < t.CollapsedHeight {
		return fmt.Errorf("%w: table.expanded_height (%d) must be >= table.collapsed_height (%d)",
			ErrInvalidConfig, t.ExpandedHeight, t.CollapsedHeight)
	}
	if c.Animation.FPS < 1 || c.Animation.FPS > maxFPS {
		return fmt.Errorf("%w: animation.fps must be between 1 and %d, got %d", ErrInvalidConfig, maxFPS, c.Animation.FPS)
	}
	return nil
}

// Save writes the configuration as YAML to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// ConfigFilePath returns the path of the user's config file.
func ConfigFilePath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
