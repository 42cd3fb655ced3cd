package config

import (
	"testing"

	"github.com/ilyakaznacheev/cleanenv"
)

func TestDefaults(t *testing.T) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		t.Fatalf("ReadEnv: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr ':8080', got %q", cfg.Addr)
	}
	if cfg.DBPath != "inventoria.sqlite3" {
		t.Errorf("expected default db path 'inventoria.sqlite3', got %q", cfg.DBPath)
	}
	if cfg.UploadDir != "uploads" {
		t.Errorf("expected default upload dir 'uploads', got %q", cfg.UploadDir)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("INVENTORIA_ADDR", ":9090")
	t.Setenv("INVENTORIA_JWT_SECRET", "env-secret")

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		t.Fatalf("ReadEnv: %v", err)
	}

	if cfg.Addr != ":9090" {
		t.Errorf("expected addr ':9090', got %q", cfg.Addr)
	}
	if cfg.JWTSecret != "env-secret" {
		t.Errorf("expected jwt secret 'env-secret', got %q", cfg.JWTSecret)
	}
}
