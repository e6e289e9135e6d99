package app

import (
	"testing"

	"github.com/mpcastro/recipebook-backend/internal/repos/testutil"
)

func TestLoadConfig(t *testing.T) {
	log := testutil.Logger(t)

	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	cfg := LoadConfig(log)
	if cfg.Port != 9090 {
		t.Fatalf("Port=%d, want 9090", cfg.Port)
	}
	if cfg.Environment != "production" {
		t.Fatalf("Environment=%q, want production", cfg.Environment)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != "https://a.example" {
		t.Fatalf("CORSOrigins=%v", cfg.CORSOrigins)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	log := testutil.Logger(t)

	// An unparseable port falls back to the default.
	t.Setenv("PORT", "not-a-port")

	cfg := LoadConfig(log)
	if cfg.Port != 8080 {
		t.Fatalf("Port=%d, want default 8080", cfg.Port)
	}
}
