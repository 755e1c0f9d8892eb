package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors the subset of Config that makes sense as persistent
// per-user defaults. Per-invocation switches (--null, --eof-str, --open-tty,
// --interactive) are deliberately flag-only.
type FileConfig struct {
	MaxArgs      int   `toml:"max_args"`
	SizeBytes    int   `toml:"size"`
	Verbose      *bool `toml:"verbose"`
	NoRunIfEmpty *bool `toml:"no_run_if_empty"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.xargo/config.toml if the user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".xargo", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setInt("max-args", fc.MaxArgs, &cfg.MaxArgs)
	s.setInt("size", fc.SizeBytes, &cfg.SizeBytes)
	s.setBool("verbose", fc.Verbose, &cfg.Trace)
	s.setBool("no-run-if-empty", fc.NoRunIfEmpty, &cfg.NoRunIfEmpty)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
