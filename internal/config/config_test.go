package config_test

import (
	"errors"
	"testing"

	"github.com/reagent/reagent/internal/config"
)

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	_, err := config.Load()
	if !errors.Is(err, config.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model != config.DefaultModel {
		t.Errorf("Model = %q, want %q", cfg.Model, config.DefaultModel)
	}
	if cfg.MaxIterations != config.DefaultMaxIterations {
		t.Errorf("MaxIterations = %d, want %d", cfg.MaxIterations, config.DefaultMaxIterations)
	}
	if cfg.Port != config.DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, config.DefaultPort)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("REAGENT_MODEL", "claude-haiku-4-5")
	t.Setenv("REAGENT_MAX_ITERATIONS", "4")
	t.Setenv("REAGENT_PORT", "9090")
	t.Setenv("ENABLE_AUTH", "true")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model != "claude-haiku-4-5" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.MaxIterations != 4 {
		t.Errorf("MaxIterations = %d, want 4", cfg.MaxIterations)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if !cfg.EnableAuth {
		t.Error("EnableAuth should be true")
	}
}

func TestLoadRejectsBadIterationOverride(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("REAGENT_MAX_ITERATIONS", "zero")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxIterations != config.DefaultMaxIterations {
		t.Errorf("MaxIterations = %d, want default %d", cfg.MaxIterations, config.DefaultMaxIterations)
	}
}
