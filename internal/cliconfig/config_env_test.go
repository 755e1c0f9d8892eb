package cliconfig

import "testing"

func TestApplyEnvConfig(t *testing.T) {
	t.Setenv("XARGO_MAX_ARGS", "4")
	t.Setenv("XARGO_SIZE", "8192")
	t.Setenv("XARGO_VERBOSE", "true")
	t.Setenv("XARGO_EOF_STR", "STOP")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, nil); err != nil {
		t.Fatalf("ApplyEnvConfig() error = %v", err)
	}
	if cfg.MaxArgs != 4 {
		t.Errorf("MaxArgs = %d, want 4", cfg.MaxArgs)
	}
	if cfg.SizeBytes != 8192 {
		t.Errorf("SizeBytes = %d, want 8192", cfg.SizeBytes)
	}
	if !cfg.Trace {
		t.Error("Trace = false, want true")
	}
	if cfg.StopString != "STOP" {
		t.Errorf("StopString = %q, want STOP", cfg.StopString)
	}
}

func TestApplyEnvConfig_FlagsWin(t *testing.T) {
	t.Setenv("XARGO_MAX_ARGS", "4")

	cfg := DefaultConfig()
	cfg.MaxArgs = 9
	changed := map[string]bool{"max-args": true}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig() error = %v", err)
	}
	if cfg.MaxArgs != 9 {
		t.Errorf("MaxArgs = %d, want flag value 9 preserved", cfg.MaxArgs)
	}
}

func TestApplyEnvConfig_InvalidValue(t *testing.T) {
	t.Setenv("XARGO_MAX_ARGS", "many")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, nil); err == nil {
		t.Error("ApplyEnvConfig() error = nil, want parse failure")
	}
}
