// Package cliconfig holds the command-line configuration for xargo and the
// precedence machinery that merges defaults, the config file, environment
// variables, and flags.
package cliconfig

import (
	"fmt"
	"strconv"

	"github.com/bft-labs/xargo/internal/domain"
)

// Config holds CLI configuration for xargo.
type Config struct {
	// NullDelimited switches input to NUL-terminated records (-0).
	NullDelimited bool

	// StopString ends input processing at an exactly matching token (-E).
	StopString string

	// MaxArgs caps tokens per invocation (-n). Zero means unlimited.
	MaxArgs int

	// SizeBytes overrides the per-invocation byte budget (-s).
	// Zero means "use the discovered ARG_MAX-based default".
	SizeBytes int

	// OpenTTY gives the child /dev/tty as standard input (-o).
	OpenTTY bool

	// Prompt asks for confirmation before each invocation (-p).
	Prompt bool

	// NoRunIfEmpty skips the run entirely when input yields no tokens (-r).
	NoRunIfEmpty bool

	// Trace prints each assembled command line to stderr (-t).
	Trace bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.NullDelimited && c.StopString != "" {
		return fmt.Errorf("%w: --eof-str cannot be combined with --null", domain.ErrInvalidConfig)
	}
	if c.MaxArgs < 0 {
		return fmt.Errorf("%w: max-args must be at least 1", domain.ErrInvalidConfig)
	}
	if c.SizeBytes < 0 {
		return fmt.Errorf("%w: size must not be negative", domain.ErrInvalidConfig)
	}
	return nil
}

// Mode returns the delimiter mode implied by the configuration.
func (c *Config) Mode() domain.Mode {
	if c.NullDelimited {
		return domain.NulDelimited
	}
	return domain.Whitespace
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't been
// explicitly set.
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

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid
// and the flag not changed.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid %s value %q: %w", flag, value, err)
	}
	*dst = n
	return nil
}

// setBoolFromString parses a string to bool and sets the destination if valid
// and the flag not changed.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid %s value %q: %w", flag, value, err)
	}
	*dst = b
	return nil
}
