package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "9001" {
		t.Errorf("expected default port 9001, got %q", cfg.Port)
	}
	if cfg.DB.Name != "inventory_app" || cfg.DB.Host != "localhost" {
		t.Errorf("unexpected DB defaults: %+v", cfg.DB)
	}
	if cfg.AuthRequired || cfg.RateLimitEnabled {
		t.Errorf("expected optional middleware off by default")
	}

	want := "host=localhost port=5432 user=me password=password dbname=inventory_app sslmode=disable"
	if got := cfg.DB.DSN(); got != want {
		t.Errorf("DSN mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8088")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("AUTH_REQUIRED", "true")

	cfg := Load()

	if cfg.Port != "8088" {
		t.Errorf("expected port 8088, got %q", cfg.Port)
	}
	if cfg.DB.Host != "db.internal" {
		t.Errorf("expected DB host override, got %q", cfg.DB.Host)
	}
	if !cfg.AuthRequired {
		t.Errorf("expected AUTH_REQUIRED to be honored")
	}
}
