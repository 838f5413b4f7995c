package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Database.URL != "" {
		t.Fatalf("URL = %q, want empty (sqlite fallback)", cfg.Database.URL)
	}
	if cfg.Session.Lifetime != 12*time.Hour {
		t.Fatalf("Lifetime = %v, want 12h", cfg.Session.Lifetime)
	}
	if cfg.Session.CookieName != "pagehelm_session" {
		t.Fatalf("CookieName = %q", cfg.Session.CookieName)
	}
	if cfg.AI.Model != "gpt-4.1-mini" {
		t.Fatalf("Model = %q", cfg.AI.Model)
	}
	if cfg.AI.Timeout != 90*time.Second {
		t.Fatalf("Timeout = %v, want 90s", cfg.AI.Timeout)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PAGEHELM_ADDR", ":9999")
	t.Setenv("PAGEHELM_DATABASE_URL", "postgres://localhost/pagehelm")
	t.Setenv("PAGEHELM_SESSION_LIFETIME", "30m")
	t.Setenv("PAGEHELM_OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":9999" {
		t.Fatalf("Addr = %q, want :9999", cfg.Server.Addr)
	}
	if cfg.Database.URL != "postgres://localhost/pagehelm" {
		t.Fatalf("URL = %q", cfg.Database.URL)
	}
	if cfg.Session.Lifetime != 30*time.Minute {
		t.Fatalf("Lifetime = %v, want 30m", cfg.Session.Lifetime)
	}
	if cfg.AI.APIKey != "sk-test" {
		t.Fatalf("APIKey = %q", cfg.AI.APIKey)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("PAGEHELM_SESSION_LIFETIME", "-5m")
	if _, err := Load(); err == nil {
		t.Fatal("expected negative lifetime to fail validation")
	}
}
