package cliconfig

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bft-labs/ipextractor/internal/domain"
)

// Config holds CLI configuration for ipextractor.
type Config struct {
	// Extract is the source PDF for a one-shot run.
	Extract string

	CSV  bool
	JSON bool

	// OutputDir overrides the directory output files are written to.
	// Empty means next to the source document.
	OutputDir string

	Workers     int
	MetricsFile string
	LogLevel    string

	// StateFile and Debounce configure the watch command.
	StateFile string
	Debounce  time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Workers:  1,
		LogLevel: "info",
		Debounce: 500 * time.Millisecond,
	}
}

// Validate checks the settings shared by every command.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1", domain.ErrInvalidConfig)
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("%w: debounce must be positive", domain.ErrInvalidConfig)
	}
	return nil
}

// ValidateExtract checks the configuration for a one-shot extraction.
func (c *Config) ValidateExtract() error {
	if c.Extract == "" {
		return fmt.Errorf("%w: extract path is required", domain.ErrInvalidConfig)
	}
	return c.Validate()
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
