package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("unexpected default port: %s", cfg.Port)
	}
	if cfg.TokenTTLMinutes != 1440 {
		t.Fatalf("unexpected default token TTL: %d", cfg.TokenTTLMinutes)
	}
	if cfg.StoreBackend != "mongo" {
		t.Fatalf("unexpected default store backend: %s", cfg.StoreBackend)
	}
	if cfg.Mongo.Database != "sweetshop" {
		t.Fatalf("unexpected default database: %s", cfg.Mongo.Database)
	}
	if cfg.IsProduction() {
		t.Fatalf("default env must not be production")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("TOKEN_TTL_MINUTES", "60")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.IsProduction() {
		t.Fatalf("expected production env")
	}
	if cfg.StoreBackend != "memory" {
		t.Fatalf("expected memory backend, got %s", cfg.StoreBackend)
	}
	if cfg.TokenTTLMinutes != 60 {
		t.Fatalf("expected TTL 60, got %d", cfg.TokenTTLMinutes)
	}
}
