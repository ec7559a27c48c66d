package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type envTestConfig struct {
	Order int    `env:"TURTLE_TEST_ORDER" envDefault:"4"`
	Color string `env:"TURTLE_TEST_COLOR" envDefault:"black"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Order != 4 {
		t.Fatalf("expected default order 4, got %d", cfg.Order)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("TURTLE_TEST_ORDER", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("TURTLE_TEST_ORDER=7\nTURTLE_TEST_COLOR=red\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// Registers cleanup for the variable the file sets.
	t.Setenv("TURTLE_TEST_ORDER", "")
	os.Unsetenv("TURTLE_TEST_ORDER")
	t.Setenv("TURTLE_TEST_COLOR", "blue")

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Order != 7 {
		t.Errorf("expected order 7 from .env, got %d", cfg.Order)
	}
	if cfg.Color != "blue" {
		t.Errorf("expected environment to win over .env, got %q", cfg.Color)
	}
}
