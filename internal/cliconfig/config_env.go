package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (XARGO_*).
// It respects flags that have been explicitly set (changed map).
// Returns an error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("eof-str", os.Getenv("XARGO_EOF_STR"), &cfg.StopString)

	if err := s.setIntFromString("max-args", os.Getenv("XARGO_MAX_ARGS"), &cfg.MaxArgs); err != nil {
		return err
	}
	if err := s.setIntFromString("size", os.Getenv("XARGO_SIZE"), &cfg.SizeBytes); err != nil {
		return err
	}
	if err := s.setBoolFromString("verbose", os.Getenv("XARGO_VERBOSE"), &cfg.Trace); err != nil {
		return err
	}
	if err := s.setBoolFromString("no-run-if-empty", os.Getenv("XARGO_NO_RUN_IF_EMPTY"), &cfg.NoRunIfEmpty); err != nil {
		return err
	}
	return nil
}
