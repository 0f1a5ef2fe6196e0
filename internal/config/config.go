package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/kk-code-lab/mdview/internal/logger"
	"github.com/kk-code-lab/mdview/internal/source"
	"github.com/kk-code-lab/mdview/internal/textutil"
)

// Config is the user configuration for mdview.
type Config struct {
	LinkSchemes        []string `yaml:"link_schemes"`
	AllowRelativeLinks bool     `yaml:"allow_relative_links"`
	Width              int      `yaml:"width"`
	TabWidth           int      `yaml:"tab_width"`
	LogLevel           string   `yaml:"log_level"`
	LogFile            string   `yaml:"log_file"`
}

const maxTabWidth = 16

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LinkSchemes:        append([]string(nil), source.DefaultSchemes...),
		AllowRelativeLinks: true,
		TabWidth:           textutil.DefaultTabWidth,
		LogLevel:           "info",
		LogFile:            filepath.Join(xdg.StateHome, "mdview", "mdview.log"),
	}
}

// Path returns the config file location. Overridable for tests.
var Path = func() string {
	return filepath.Join(xdg.ConfigHome, "mdview", "config.yaml")
}

// Load reads the config at Path. A missing file yields defaults and
// found == false.
func Load() (cfg *Config, found bool, err error) {
	return LoadFile(Path())
}

// LoadFile reads the config at path; fields absent from the file keep their
// defaults.
func LoadFile(path string) (*Config, bool, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, false, nil
		}
		return nil, false, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, true, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, true, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, true, nil
}

// Save writes c to Path, creating the directory when needed.
func (c *Config) Save() error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks ranges and names.
func (c *Config) Validate() error {
	if c.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", c.Width)
	}
	if c.TabWidth < 1 || c.TabWidth > maxTabWidth {
		return fmt.Errorf("tab_width must be between 1 and %d, got %d", maxTabWidth, c.TabWidth)
	}
	if len(c.LinkSchemes) == 0 && !c.AllowRelativeLinks {
		return errors.New("link_schemes is empty and relative links are disabled")
	}
	for _, s := range c.LinkSchemes {
		if s == "" {
			return errors.New("link_schemes contains an empty entry")
		}
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Schemes builds the link allow-list described by c.
func (c *Config) Schemes() *source.SchemeSet {
	return source.NewSchemeSet(c.LinkSchemes, c.AllowRelativeLinks)
}
