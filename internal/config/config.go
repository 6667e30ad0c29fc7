package config

import (
	"fmt"
	"os"
	"time"

	"github.com/harrison/search/internal/logger"
	"github.com/harrison/search/internal/matcher"
	"gopkg.in/yaml.v3"
)

// Hyperlink modes
const (
	HyperlinksAuto   = "auto"
	HyperlinksAlways = "always"
	HyperlinksNever  = "never"
)

// DefaultMaxLineBytes is the longest line scanned in text mode before a file is skipped.
const DefaultMaxLineBytes = matcher.DefaultMaxLineBytes

// Config represents search configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir enables the file log when non-empty
	LogDir string `yaml:"log_dir"`

	// MaxConcurrency caps concurrently searched roots (0 = one task per root)
	MaxConcurrency int `yaml:"max_concurrency"`

	// Timeout bounds the whole search (0 = no timeout)
	Timeout time.Duration `yaml:"timeout"`

	// Excludes are gitignore-style patterns skipped during the walk
	Excludes []string `yaml:"excludes"`

	// SkipHidden skips dot-files and dot-directories
	SkipHidden bool `yaml:"skip_hidden"`

	// MaxDepth limits recursion below each root (0 = unlimited)
	MaxDepth int `yaml:"max_depth"`

	// MaxFileSize skips larger files in text mode, in bytes (0 = unlimited)
	MaxFileSize int64 `yaml:"max_file_size"`

	// MaxLineBytes is the longest line scanned in text mode
	MaxLineBytes int `yaml:"max_line_bytes"`

	// SkipBinary skips files with NUL bytes near the start in text mode
	SkipBinary bool `yaml:"skip_binary"`

	// Hyperlinks controls OSC-8 links in output (auto, always, never)
	Hyperlinks string `yaml:"hyperlinks"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:       "warn",
		LogDir:         "",
		MaxConcurrency: 0,
		Timeout:        0,
		SkipHidden:     false,
		MaxDepth:       0,
		MaxFileSize:    0,
		MaxLineBytes:   DefaultMaxLineBytes,
		Hyperlinks:     HyperlinksAuto,
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Use a temporary struct to handle duration parsing
	type yamlConfig struct {
		LogLevel       string   `yaml:"log_level"`
		LogDir         string   `yaml:"log_dir"`
		MaxConcurrency int      `yaml:"max_concurrency"`
		Timeout        string   `yaml:"timeout"`
		Excludes       []string `yaml:"excludes"`
		SkipHidden     bool     `yaml:"skip_hidden"`
		MaxDepth       int      `yaml:"max_depth"`
		MaxFileSize    int64    `yaml:"max_file_size"`
		MaxLineBytes   int      `yaml:"max_line_bytes"`
		SkipBinary     bool     `yaml:"skip_binary"`
		Hyperlinks     string   `yaml:"hyperlinks"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.LogDir != "" {
		cfg.LogDir = yamlCfg.LogDir
	}
	if yamlCfg.MaxConcurrency != 0 {
		cfg.MaxConcurrency = yamlCfg.MaxConcurrency
	}
	if yamlCfg.Timeout != "" {
		timeout, err := time.ParseDuration(yamlCfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout format %q: %w", yamlCfg.Timeout, err)
		}
		cfg.Timeout = timeout
	}
	if len(yamlCfg.Excludes) > 0 {
		cfg.Excludes = yamlCfg.Excludes
	}
	if yamlCfg.SkipHidden {
		cfg.SkipHidden = true
	}
	if yamlCfg.MaxDepth != 0 {
		cfg.MaxDepth = yamlCfg.MaxDepth
	}
	if yamlCfg.MaxFileSize != 0 {
		cfg.MaxFileSize = yamlCfg.MaxFileSize
	}
	if yamlCfg.MaxLineBytes != 0 {
		cfg.MaxLineBytes = yamlCfg.MaxLineBytes
	}
	if yamlCfg.SkipBinary {
		cfg.SkipBinary = true
	}
	if yamlCfg.Hyperlinks != "" {
		cfg.Hyperlinks = yamlCfg.Hyperlinks
	}

	return cfg, nil
}

// FlagOverrides carries CLI flag values. Nil fields were not set on the command line.
type FlagOverrides struct {
	LogLevel       *string
	LogDir         *string
	MaxConcurrency *int
	Timeout        *time.Duration
	Excludes       []string
	SkipHidden     *bool
	MaxDepth       *int
	SkipBinary     *bool
	Hyperlinks     *string
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values; excludes are appended
func (c *Config) MergeWithFlags(flags FlagOverrides) {
	if flags.LogLevel != nil {
		c.LogLevel = *flags.LogLevel
	}
	if flags.LogDir != nil {
		c.LogDir = *flags.LogDir
	}
	if flags.MaxConcurrency != nil {
		c.MaxConcurrency = *flags.MaxConcurrency
	}
	if flags.Timeout != nil {
		c.Timeout = *flags.Timeout
	}
	if len(flags.Excludes) > 0 {
		c.Excludes = append(c.Excludes, flags.Excludes...)
	}
	if flags.SkipHidden != nil {
		c.SkipHidden = *flags.SkipHidden
	}
	if flags.MaxDepth != nil {
		c.MaxDepth = *flags.MaxDepth
	}
	if flags.SkipBinary != nil {
		c.SkipBinary = *flags.SkipBinary
	}
	if flags.Hyperlinks != nil {
		c.Hyperlinks = *flags.Hyperlinks
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}
	if c.MaxConcurrency < 0 {
		return fmt.Errorf("max_concurrency must be >= 0, got %d", c.MaxConcurrency)
	}
	// Timeout can be 0 (no timeout) or positive, negative is invalid
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0, got %v", c.Timeout)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be >= 0, got %d", c.MaxDepth)
	}
	if c.MaxFileSize < 0 {
		return fmt.Errorf("max_file_size must be >= 0, got %d", c.MaxFileSize)
	}
	if c.MaxLineBytes <= 0 {
		return fmt.Errorf("max_line_bytes must be > 0, got %d", c.MaxLineBytes)
	}
	switch c.Hyperlinks {
	case HyperlinksAuto, HyperlinksAlways, HyperlinksNever:
	default:
		return fmt.Errorf("invalid hyperlinks %q, must be one of: auto, always, never", c.Hyperlinks)
	}
	return nil
}
