package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"PHOTON_ADDR", "DATABASE_URL", "PHOTON_RATE", "PHOTON_BURST", "LOG_LEVEL", "TLS_CERT", "TLS_KEY"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.RateLimit != 5 || cfg.RateBurst != 10 || cfg.LogLevel != "info" {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.UseTLS() {
		t.Errorf("TLS enabled without cert")
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PHOTON_ADDR=:9090\nPHOTON_BURST=3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.RateBurst != 3 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv("PHOTON_RATE", "fast")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Errorf("bad rate accepted")
	}
	t.Setenv("PHOTON_RATE", "")
	t.Setenv("PHOTON_BURST", "0")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Errorf("zero burst accepted")
	}
}
