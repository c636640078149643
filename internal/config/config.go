// =============================================================================
// PlyCast Playlist Converter - Configuration Module
// =============================================================================
//
// This module loads the optional run configuration file. Every setting has a
// default, so the converter runs without any configuration file at all.
//
// EXAMPLE (plyconv.yaml):
//
//   guid_mode: keep          # random (default) | keep
//   extension: .plyt         # playlist extension, matched case-insensitively
//   output_suffix: _new      # appended to output stems and derived dirs
//   indent: "  "             # output indentation; "" for a single line
//   log_level: warn          # debug | info | warn | error
//   report_path: ""          # write an XLSX audit report when set
//
// Command-line flags override values from the file.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Tillihusky/plycast-plyt-converter/internal/guid"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the run configuration.
type Config struct {
	// GUIDMode selects how PlyItem GUIDs are produced.
	// Default: "random"
	GUIDMode guid.Mode `yaml:"guid_mode"`

	// Extension identifies playlist files and names output files.
	// Default: ".plyt"
	Extension string `yaml:"extension"`

	// OutputSuffix is inserted before the extension of output files and
	// appended to derived output directories.
	// Default: "_new"
	OutputSuffix string `yaml:"output_suffix"`

	// Indent is the per-item indentation of the output XML. A nil value
	// means "not set"; an explicit "" disables indentation.
	// Default: "  "
	Indent *string `yaml:"indent"`

	// LogLevel controls diagnostic output on stderr.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "warn"
	LogLevel string `yaml:"log_level"`

	// ReportPath, when set, receives an XLSX listing of every converted item.
	ReportPath string `yaml:"report_path"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Load reads the configuration file at path. An empty path returns Default().
//
// RETURNS:
//   - The configuration with defaults applied.
//   - An error if the file cannot be read, parsed or validated.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}

	return &cfg, nil
}

// IndentString returns the effective indentation.
func (c *Config) IndentString() string {
	if c.Indent == nil {
		return "  "
	}
	return *c.Indent
}

// applyDefaults sets default values for any unset options.
func applyDefaults(cfg *Config) {
	if cfg.GUIDMode == "" {
		cfg.GUIDMode = guid.ModeRandom
	}
	if cfg.Extension == "" {
		cfg.Extension = ".plyt"
	}
	if cfg.OutputSuffix == "" {
		cfg.OutputSuffix = "_new"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
}

// Validate checks option values.
func (c *Config) Validate() error {
	if _, err := guid.ParseMode(string(c.GUIDMode)); err != nil {
		return fmt.Errorf("guid_mode: %w", err)
	}
	if !strings.HasPrefix(c.Extension, ".") || len(c.Extension) < 2 {
		return fmt.Errorf("extension: %q must start with a dot", c.Extension)
	}
	if strings.ContainsAny(c.OutputSuffix, `/\`) {
		return fmt.Errorf("output_suffix: %q must not contain path separators", c.OutputSuffix)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level: unsupported value %q", c.LogLevel)
	}
	return nil
}
