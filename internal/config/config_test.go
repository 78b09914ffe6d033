package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BitSize != 256 || cfg.FixedParameters != false || cfg.Host != "[::1]" || cfg.Port != 50051 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BIT_SIZE", "512")
	t.Setenv("FIXED_PARAMETERS", "true")
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "9999")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BitSize != 512 || !cfg.FixedParameters || cfg.Host != "0.0.0.0" || cfg.Port != 9999 {
		t.Fatalf("env override not applied: %+v", cfg)
	}
	if cfg.Addr() != "0.0.0.0:9999" {
		t.Fatalf("Addr() = %q", cfg.Addr())
	}
}

func TestLoadRejectsMalformedBitSize(t *testing.T) {
	t.Setenv("BIT_SIZE", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for malformed BIT_SIZE")
	}
}
