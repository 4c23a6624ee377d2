package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFile is the configuration file name looked up in the
	// current and home directories.
	DefaultConfigFile = ".numanalyzer"

	// XDGConfigFileName is the configuration file name inside XDGConfigDir.
	XDGConfigFileName = "config.yaml"
)

// File represents the structure of the YAML configuration file.
// Pointer fields distinguish "not set" from the zero value so that a file
// can turn a default off.
type File struct {
	// Color is auto, always or never.
	Color string `yaml:"color,omitempty"`

	// LogFormat is text or json.
	LogFormat string `yaml:"log_format,omitempty"`

	// GroupDigits toggles thousands separators.
	GroupDigits *bool `yaml:"group_digits,omitempty"`

	// MaxRangeSpan overrides DefaultMaxRangeSpan when non-zero.
	MaxRangeSpan int64 `yaml:"max_range_span,omitempty"`

	// Messages replaces the built-in motivational messages.
	Messages []string `yaml:"messages,omitempty"`

	// Quiet suppresses motivational messages.
	Quiet *bool `yaml:"quiet,omitempty"`
}

// LoadConfigFile loads a configuration file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers decide whether that is an error based on whether the path was
// given explicitly by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .numanalyzer in the current directory
// 3. Look for config.yaml in the XDG config directory
// 4. Look for .numanalyzer in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	candidates = append(candidates, XDGConfigFile())
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// ApplyTo copies every value set in the file onto c.
// Unset keys leave the existing value untouched. The colour value is
// stored as written; Config.Validate rejects unknown modes.
func (cf *File) ApplyTo(c *Config) {
	if cf.Color != "" {
		if mode, err := ParseColorMode(cf.Color); err == nil {
			c.Color = mode
		} else {
			c.Color = ColorMode(cf.Color)
		}
	}
	if cf.LogFormat != "" {
		if format, err := ParseLogFormat(cf.LogFormat); err == nil {
			c.LogFormat = format
		} else {
			c.LogFormat = LogFormat(cf.LogFormat)
		}
	}
	if cf.GroupDigits != nil {
		c.GroupDigits = *cf.GroupDigits
	}
	if cf.MaxRangeSpan != 0 {
		c.MaxRangeSpan = cf.MaxRangeSpan
	}
	if len(cf.Messages) > 0 {
		c.Messages = append([]string(nil), cf.Messages...)
	}
	if cf.Quiet != nil {
		c.Quiet = *cf.Quiet
	}
}
