package config

import "errors"

// Configuration validation errors.
// These are returned by Config.Validate, ParseColorMode and the loader,
// and are meant to be checked with errors.Is.
var (
	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidColorMode is returned for a colour mode other than
	// auto, always or never.
	ErrInvalidColorMode = errors.New("invalid color mode: must be auto, always or never")

	// ErrInvalidLogFormat is returned for a log format other than text or json.
	ErrInvalidLogFormat = errors.New("invalid log format: must be text or json")

	// ErrInvalidRangeSpan is returned when max_range_span is not positive.
	ErrInvalidRangeSpan = errors.New("invalid max range span: must be positive")

	// ErrRangeTooLarge is returned by Config.CheckRange for intervals wider
	// than MaxRangeSpan.
	ErrRangeTooLarge = errors.New("range too large")

	// ErrEmptyMessage is returned when a configured motivational message is blank.
	ErrEmptyMessage = errors.New("motivational messages must not be empty")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
