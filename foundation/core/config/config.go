// File: config.go
// Title: Toolchain Configuration
// Description: Typed configuration for the hasty toolchain, decoded from
//              TOML or YAML, completed with defaults and environment
//              overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-04
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-03-04 v0.2.0: Typed sections replace the dynamic key lookup

package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/hasty/foundation/core/error"
	"github.com/msto63/hasty/foundation/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Emit selects the stage whose result the driver forwards
type Emit string

const (
	EmitTokens   Emit = "tokens"
	EmitAST      Emit = "ast"
	EmitResolved Emit = "resolved"
)

// Color modes for terminal output
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the complete toolchain configuration
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Frontend FrontendConfig `toml:"frontend" yaml:"frontend"`
	Watch    WatchConfig    `toml:"watch" yaml:"watch"`

	// path is the file the configuration was read from, empty for defaults
	path string
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// FrontendConfig holds compiler front-end settings
type FrontendConfig struct {
	MaxSourceLength int    `toml:"max_source_length" yaml:"max_source_length"`
	Color           string `toml:"color" yaml:"color"`
	Emit            Emit   `toml:"emit" yaml:"emit"`
}

// WatchConfig holds source watcher settings
type WatchConfig struct {
	Debounce   Duration `toml:"debounce" yaml:"debounce"`
	Extensions []string `toml:"extensions" yaml:"extensions"`
	Recursive  bool     `toml:"recursive" yaml:"recursive"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Defaults
const (
	DefaultLogLevel        = "warn"
	DefaultLogFormat       = "console"
	DefaultMaxSourceLength = 1 << 20
	DefaultDebounce        = 200 * time.Millisecond
)

// DefaultExtensions are the file extensions the watcher reacts to
var DefaultExtensions = []string{".hy"}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Path returns the file the configuration was loaded from
func (c *Config) Path() string {
	return c.path
}

// Load loads configuration from a file, detecting the format from its
// extension
func Load(path string) (*Config, error) {
	return LoadWithFormat(path, FormatAuto)
}

// LoadWithFormat loads configuration from a file in the given format
func LoadWithFormat(path string, format Format) (*Config, error) {
	if stringx.IsBlank(path) {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.Load")
	}

	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.Wrap(err, "config file not found").
				WithCode(mdwerror.CodeMissingConfig).
				WithOperation("config.Load").
				WithDetail("filePath", path)
		}
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("filePath", path)
	}

	if format == FormatAuto {
		format = detectFormat(path)
	}

	cfg, err := decode(content, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").
			WithOperation("config.Load").
			WithDetail("filePath", path)
	}
	cfg.path = path
	return cfg, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}
	return decode([]byte(content), format)
}

// decode parses content, applies defaults and environment overrides and
// validates the result
func decode(content []byte, format Format) (*Config, error) {
	cfg := &Config{}

	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(content)).Decode(cfg)
		if err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.decode")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, mdwerror.Newf("unknown config key %q", undecoded[0].String()).
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.decode")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		// An empty document decodes to nothing and is not an error.
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.decode")
		}
	default:
		return nil, mdwerror.Newf("unsupported format: %s", format).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.decode").
			WithDetail("format", format.String())
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = DefaultLogLevel
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = DefaultLogFormat
	}

	// Frontend
	if c.Frontend.MaxSourceLength == 0 {
		c.Frontend.MaxSourceLength = DefaultMaxSourceLength
	}
	if c.Frontend.Color == "" {
		c.Frontend.Color = ColorAuto
	}
	if c.Frontend.Emit == "" {
		c.Frontend.Emit = EmitResolved
	}

	// Watch
	if c.Watch.Debounce.Duration == 0 {
		c.Watch.Debounce.Duration = DefaultDebounce
	}
	if len(c.Watch.Extensions) == 0 {
		c.Watch.Extensions = append([]string(nil), DefaultExtensions...)
	}
}

// applyEnv applies HASTY_* environment overrides
func (c *Config) applyEnv() {
	if v := os.Getenv("HASTY_LOG_LEVEL"); v != "" {
		c.General.LogLevel = v
	}
	if v := os.Getenv("HASTY_LOG_FORMAT"); v != "" {
		c.General.LogFormat = v
	}
	if v := os.Getenv("HASTY_COLOR"); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes":
			v = ColorAlways
		case "0", "false", "no":
			v = ColorNever
		}
		c.Frontend.Color = v
	}
}

// UseColor resolves the color mode. Auto enables color when isTerminal
// is true and NO_COLOR is unset.
func (c *Config) UseColor(isTerminal bool) bool {
	switch c.Frontend.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal && os.Getenv("NO_COLOR") == ""
	}
}
