package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "5175" || cfg.Store != StoreMemory || cfg.RequestTimeout != 10*time.Second {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.WordsSource != "" {
		t.Fatalf("WordsSource default = %q, want empty", cfg.WordsSource)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORE", "sqlite")
	t.Setenv("REQUEST_TIMEOUT", "3s")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9000" || cfg.Store != StoreSQLite || cfg.RequestTimeout != 3*time.Second {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadDotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("DAILY_SALT=from_file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// godotenv sets real env vars; make sure the test cleans up after itself.
	t.Setenv("DAILY_SALT", "")
	os.Unsetenv("DAILY_SALT")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DailySalt != "from_file" {
		t.Fatalf("DailySalt = %q, want from_file", cfg.DailySalt)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"STORE":           "redis",
		"LOG_FORMAT":      "xml",
		"REQUEST_TIMEOUT": "soon",
	}
	for k, v := range tests {
		t.Run(k, func(t *testing.T) {
			t.Setenv(k, v)
			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			if err == nil {
				t.Fatalf("%s=%s: expected error", k, v)
			}
			if k == "REQUEST_TIMEOUT" && !strings.Contains(err.Error(), "parse env:") {
				t.Fatalf("expected parse env prefix, got %v", err)
			}
		})
	}
}
