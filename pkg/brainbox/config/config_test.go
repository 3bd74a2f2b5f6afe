package config

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Setenv("DATABASE_URL", "brainbox.db")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "8080")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.URL != "brainbox.db" {
		t.Errorf("Expected database URL brainbox.db, got %q", cfg.Database.URL)
	}
	if cfg.JWT.Secret != "test-secret" {
		t.Errorf("Expected JWT secret test-secret, got %q", cfg.JWT.Secret)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Expected port 8080, got %q", cfg.Server.Port)
	}
}

func TestLoadDefaultPort(t *testing.T) {
	t.Setenv("DATABASE_URL", "brainbox.db")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != "3000" {
		t.Errorf("Expected default port 3000, got %q", cfg.Server.Port)
	}
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected an error for missing DATABASE_URL")
	}
	if !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Errorf("Expected the error to name DATABASE_URL, got %q", err.Error())
	}
}

func TestLoadMissingJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "brainbox.db")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected an error for missing JWT_SECRET")
	}
	if !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Errorf("Expected the error to name JWT_SECRET, got %q", err.Error())
	}
}
