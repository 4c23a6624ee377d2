package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "numanalyzer"

	// DefaultMaxRangeSpan is the widest [start, end] interval the primes
	// command and the interactive range action will scan. Primality is
	// tested by trial division, so a span of one million finishes in well
	// under a second for small bounds.
	DefaultMaxRangeSpan int64 = 1_000_000

	// DefaultGroupDigits enables thousands separators in human-readable output.
	DefaultGroupDigits = true
)

// ColorMode selects when styled output is produced.
type ColorMode string

const (
	// ColorAuto styles output only when the destination is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways styles output even when it is redirected.
	ColorAlways ColorMode = "always"
	// ColorNever disables styling.
	ColorNever ColorMode = "never"
)

// ParseColorMode converts a flag or file value into a ColorMode.
// Matching is case-insensitive; an empty string means ColorAuto.
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidColorMode, s)
	}
}

// LogFormat selects the encoding of log records written to stderr.
type LogFormat string

const (
	// LogFormatText writes key=value records.
	LogFormatText LogFormat = "text"
	// LogFormatJSON writes one JSON object per record.
	LogFormatJSON LogFormat = "json"
)

// ParseLogFormat converts a flag or file value into a LogFormat.
// Matching is case-insensitive; an empty string means LogFormatText.
func ParseLogFormat(s string) (LogFormat, error) {
	switch format := LogFormat(strings.ToLower(strings.TrimSpace(s))); format {
	case "":
		return LogFormatText, nil
	case LogFormatText, LogFormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidLogFormat, s)
	}
}

// Valid returns true if m is one of the known modes.
func (m ColorMode) Valid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config holds all configuration options for numanalyzer.
// It is populated from defaults, then the configuration file, then CLI
// flags, and passed explicitly to the commands that need it.
type Config struct {
	// Verbose enables debug log output.
	Verbose bool

	// Quiet suppresses the motivational message shown after each
	// interactive action.
	Quiet bool

	// Color selects when output is styled with colours.
	Color ColorMode

	// LogFormat selects text or JSON log records.
	LogFormat LogFormat

	// GroupDigits formats large integers with thousands separators in
	// human-readable output. JSON output is never grouped.
	GroupDigits bool

	// MaxRangeSpan is the widest interval PrimesInRange is called with.
	MaxRangeSpan int64

	// Messages replaces the built-in motivational messages when non-empty.
	Messages []string

	// ConfigFilePath is the explicit path given with --config.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string

	// JSONReport selects JSON output for the analyze command.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output for the analyze command.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When empty the report is written to stdout.
	ReportFile string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Color:        ColorAuto,
		LogFormat:    LogFormatText,
		GroupDigits:  DefaultGroupDigits,
		MaxRangeSpan: DefaultMaxRangeSpan,
	}
}

// XDGConfigDir returns the XDG config directory for numanalyzer.
// On Linux: ~/.config/numanalyzer
// On macOS: ~/Library/Application Support/numanalyzer
// On Windows: %APPDATA%\numanalyzer
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGConfigFile returns the path of the configuration file inside XDGConfigDir.
func XDGConfigFile() string {
	return filepath.Join(XDGConfigDir(), XDGConfigFileName)
}

// Validate checks if the configuration is valid and returns the first
// problem found as one of the sentinel errors in errors.go.
func (c *Config) Validate() error {
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if !c.Color.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidColorMode, string(c.Color))
	}

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, string(c.LogFormat))
	}

	if c.MaxRangeSpan <= 0 {
		return ErrInvalidRangeSpan
	}

	for i, msg := range c.Messages {
		if strings.TrimSpace(msg) == "" {
			return fmt.Errorf("%w: entry %d", ErrEmptyMessage, i+1)
		}
	}

	return nil
}

// CheckRange reports whether the inclusive interval between start and end,
// given in either order, is narrow enough to scan for primes. It returns
// ErrRangeTooLarge when end-start exceeds MaxRangeSpan.
func (c *Config) CheckRange(start, end int64) error {
	if c.MaxRangeSpan <= 0 {
		return ErrInvalidRangeSpan
	}
	lo, hi := min(start, end), max(start, end)
	// Unsigned subtraction is exact even for MinInt64..MaxInt64.
	span := uint64(hi) - uint64(lo)
	if span > uint64(c.MaxRangeSpan) {
		return fmt.Errorf("%w: span %d exceeds the limit of %d", ErrRangeTooLarge, span, c.MaxRangeSpan)
	}
	return nil
}
