package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseDefaultConfig(t *testing.T) {
	cfg, err := parse(DefaultConfigYAML)
	if err != nil {
		t.Fatalf("failed to parse default config: %v", err)
	}

	if cfg.Graph.IDAttribute != "GEOID10" {
		t.Errorf("expected id_attribute 'GEOID10', got %q", cfg.Graph.IDAttribute)
	}

	if cfg.Chain.Length != 1000 {
		t.Errorf("expected chain length 1000, got %d", cfg.Chain.Length)
	}
}

func TestParseMinimalConfig(t *testing.T) {
	data := []byte(`
graph:
  path: units.json
submission:
  path: wide.csv
`)
	cfg, err := parse(data)
	if err != nil {
		t.Fatalf("failed to parse minimal config: %v", err)
	}

	if cfg.Graph.Path != "units.json" {
		t.Errorf("expected graph path 'units.json', got %q", cfg.Graph.Path)
	}

	// Defaults should still be set for unspecified fields.
	if cfg.Graph.IDAttribute != "GEOID10" {
		t.Errorf("expected default id_attribute, got %q", cfg.Graph.IDAttribute)
	}
	if cfg.Chain.Beta != 1.0 {
		t.Errorf("expected default chain beta 1.0, got %v", cfg.Chain.Beta)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, DefaultConfigYAML, 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Logging.Level != "INFO" {
		t.Errorf("expected logging level INFO, got %q", cfg.Logging.Level)
	}
}

func TestGetDistanceCachePath(t *testing.T) {
	cfg := &Config{}
	if cfg.GetDistanceCachePath() == "" {
		t.Error("expected non-empty default distance cache path")
	}

	cfg.DistanceCache.Path = "/custom/distances.csv"
	if cfg.GetDistanceCachePath() != "/custom/distances.csv" {
		t.Errorf("expected '/custom/distances.csv', got %q", cfg.GetDistanceCachePath())
	}
}
