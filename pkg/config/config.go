package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Output formats understood by the result printer.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds all configuration for toolbelt
type Config struct {
	// Output settings
	Format   string `yaml:"format" env:"TOOLBELT_FORMAT"`
	LogLevel string `yaml:"log_level" env:"TOOLBELT_LOG_LEVEL"`
	Debug    bool   `yaml:"debug" env:"TOOLBELT_DEBUG"`

	// Defaults used when a sequence argument is not supplied at all
	Sequence SequenceConfig `yaml:"sequence"`

	// Named patterns usable as validator presets
	Patterns []Pattern `yaml:"patterns"`
}

// SequenceConfig holds the sequence generator's argument defaults
type SequenceConfig struct {
	Prefix string `yaml:"prefix" env:"TOOLBELT_SEQUENCE_PREFIX"`
	Start  int    `yaml:"start" env:"TOOLBELT_SEQUENCE_START"`
	Width  int    `yaml:"width" env:"TOOLBELT_SEQUENCE_WIDTH"`
}

// Pattern represents a configurable named pattern.
type Pattern struct {
	Name        string         `yaml:"name"`
	Regex       string         `yaml:"regex"`
	Description string         `yaml:"description"`
	Enabled     bool           `yaml:"enabled"`
	compiled    *regexp.Regexp `yaml:"-"`
}

// CompiledRegex returns the compiled regular expression
func (p *Pattern) CompiledRegex() *regexp.Regexp {
	return p.compiled
}

// SetCompiledRegex sets the compiled regular expression
func (p *Pattern) SetCompiledRegex(re *regexp.Regexp) {
	p.compiled = re
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Format:   FormatJSON,
		LogLevel: "warn",
		Sequence: SequenceConfig{
			Prefix: "NO",
			Start:  1,
			Width:  4,
		},
		Patterns: []Pattern{
			{
				Name:        "digits",
				Regex:       `^\d+$`,
				Description: "Only decimal digits",
				Enabled:     true,
			},
			{
				Name:        "email",
				Regex:       `^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`,
				Description: "A single e-mail address",
				Enabled:     true,
			},
			{
				Name:        "uuid",
				Regex:       `(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`,
				Description: "A canonical UUID",
				Enabled:     true,
			},
			{
				Name:        "semver",
				Regex:       `^v?\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?(?:\+[0-9A-Za-z.-]+)?$`,
				Description: "A semantic version",
				Enabled:     true,
			},
		},
	}
}

// Load loads configuration from file and environment. An empty path
// falls back to TOOLBELT_CONFIG and then the XDG location; only those
// discovered paths may be missing.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Try to load from config file
	explicit := path != ""
	if !explicit {
		path = getConfigPath()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil && (explicit || !os.IsNotExist(err)) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Compile regex patterns
	if err := compilePatterns(cfg); err != nil {
		return nil, fmt.Errorf("failed to compile patterns: %w", err)
	}

	// Validate configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	// Check for explicit config path
	if path := os.Getenv("TOOLBELT_CONFIG"); path != "" {
		return path
	}

	// Check XDG config directory
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "toolbelt", "config.yaml")
	}

	// Fall back to home directory
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "toolbelt", "config.yaml")
	}

	return ""
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - The config file path comes from trusted sources (flag, env var or standard locations)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(cfg *Config) error {
	if format := os.Getenv("TOOLBELT_FORMAT"); format != "" {
		cfg.Format = format
	}

	if level := os.Getenv("TOOLBELT_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	if debug := os.Getenv("TOOLBELT_DEBUG"); debug != "" {
		b, err := parseBool(debug)
		if err != nil {
			return fmt.Errorf("invalid TOOLBELT_DEBUG value: %q (use true/false)", debug)
		}
		cfg.Debug = b
	}

	// An explicitly empty prefix is meaningful, so check presence
	if prefix, ok := os.LookupEnv("TOOLBELT_SEQUENCE_PREFIX"); ok {
		cfg.Sequence.Prefix = prefix
	}

	if start := os.Getenv("TOOLBELT_SEQUENCE_START"); start != "" {
		n, err := strconv.Atoi(start)
		if err != nil {
			return fmt.Errorf("invalid TOOLBELT_SEQUENCE_START: %w", err)
		}
		cfg.Sequence.Start = n
	}

	if width := os.Getenv("TOOLBELT_SEQUENCE_WIDTH"); width != "" {
		n, err := strconv.Atoi(width)
		if err != nil {
			return fmt.Errorf("invalid TOOLBELT_SEQUENCE_WIDTH: %w", err)
		}
		cfg.Sequence.Width = n
	}

	return nil
}

func parseBool(s string) (bool, error) {
	switch s {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}

// compilePatterns compiles all regex patterns
func compilePatterns(cfg *Config) error {
	for i := range cfg.Patterns {
		pattern := &cfg.Patterns[i]
		if pattern.Enabled && pattern.Regex != "" {
			re, err := regexp.Compile(pattern.Regex)
			if err != nil {
				return fmt.Errorf("failed to compile pattern %q: %w", pattern.Name, err)
			}
			pattern.SetCompiledRegex(re)
		}
	}
	return nil
}

// validate validates the configuration
func validate(cfg *Config) error {
	switch cfg.Format {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("format must be %q or %q, got %q", FormatJSON, FormatYAML, cfg.Format)
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	if cfg.Sequence.Start < 0 {
		return fmt.Errorf("sequence.start must be non-negative")
	}

	if cfg.Sequence.Width < 1 {
		return fmt.Errorf("sequence.width must be at least 1")
	}

	seen := make(map[string]bool, len(cfg.Patterns))
	for _, p := range cfg.Patterns {
		if p.Name == "" {
			return fmt.Errorf("patterns: name is required")
		}
		if seen[p.Name] {
			return fmt.Errorf("patterns: duplicate name %q", p.Name)
		}
		seen[p.Name] = true
	}

	return nil
}
