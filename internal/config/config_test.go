package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flag.CommandLine.SetOutput(os.Stderr)
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	t.Setenv("DATABASE_URI", "")
	t.Setenv("RESOURCES_DIR", "")
	t.Setenv("BASE_URL", "")
	t.Setenv("ENABLE_HTTPS", "")
	t.Setenv("OUTPUT_DIR", "")
	t.Setenv("STRICT_PADDING", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("BaseURL default expected 'localhost:8081', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "http://localhost:8081" {
		t.Fatalf("ServerURL default expected 'http://localhost:8081', got %q", cfg.ServerURL)
	}
	if cfg.ResourcesDir != filepath.Join("static", "resources") {
		t.Fatalf("ResourcesDir default expected static/resources, got %q", cfg.ResourcesDir)
	}
	if cfg.OutputDir == "" {
		t.Fatalf("OutputDir default must be non-empty")
	}
	if cfg.StrictPadding {
		t.Fatalf("StrictPadding must be off by default")
	}
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("BASE_URL", "example.com:443")
	t.Setenv("ENABLE_HTTPS", "true")
	t.Setenv("RESOURCES_DIR", "/srv/files")
	t.Setenv("OUTPUT_DIR", "/tmp/out")
	t.Setenv("STRICT_PADDING", "true")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.ServerURL != "https://example.com:443" {
		t.Fatalf("ServerURL expected 'https://example.com:443', got %q", cfg.ServerURL)
	}
	if cfg.ResourcesDir != "/srv/files" {
		t.Fatalf("ResourcesDir expected from env, got %q", cfg.ResourcesDir)
	}
	if cfg.OutputDir != "/tmp/out" {
		t.Fatalf("OutputDir expected from env, got %q", cfg.OutputDir)
	}
	if !cfg.StrictPadding {
		t.Fatalf("StrictPadding expected from env")
	}
}

func TestNewConfig_InvalidBaseURLFallback(t *testing.T) {
	// Невалидный BASE_URL (со схемой) должен откатиться на localhost:8081
	t.Setenv("BASE_URL", "http://bad:8080")
	t.Setenv("ENABLE_HTTPS", "false")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("invalid BASE_URL must fallback to 'localhost:8081', got %q", cfg.BaseURL)
	}
	if !strings.HasPrefix(cfg.ServerURL, "http://localhost:8081") {
		t.Fatalf("ServerURL must reflect fallback base, got %q", cfg.ServerURL)
	}
}
