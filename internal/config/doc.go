// Package config provides the configuration of numanalyzer.
// It holds the defaults, the YAML configuration file format and its
// discovery rules, and validation of the merged result.
package config
