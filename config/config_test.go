package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Analyze.Segmenter != "uax29" {
		t.Errorf("expected Segmenter=uax29, got %s", cfg.Analyze.Segmenter)
	}
	if cfg.Analyze.Precision != "truncate" {
		t.Errorf("expected Precision=truncate, got %s", cfg.Analyze.Precision)
	}
	if cfg.Cache.MaxEntries != 256 {
		t.Errorf("expected MaxEntries=256, got %d", cfg.Cache.MaxEntries)
	}
	if cfg.Cache.TTL != 10*time.Minute {
		t.Errorf("expected TTL=10m, got %s", cfg.Cache.TTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "readability.yaml")

	content := `
analyze:
  segmenter: punctuation
  precision: float
cache:
  ttl: 30s
scan:
  workers: 2
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Analyze.Segmenter != "punctuation" {
		t.Errorf("expected Segmenter=punctuation, got %s", cfg.Analyze.Segmenter)
	}
	if cfg.Analyze.Precision != "float" {
		t.Errorf("expected Precision=float, got %s", cfg.Analyze.Precision)
	}
	if cfg.Cache.TTL != 30*time.Second {
		t.Errorf("expected TTL=30s, got %s", cfg.Cache.TTL)
	}
	if cfg.Scan.Workers != 2 {
		t.Errorf("expected Workers=2, got %d", cfg.Scan.Workers)
	}
	// Untouched sections keep their defaults.
	if cfg.Report.Output != "text" {
		t.Errorf("expected Output=text, got %s", cfg.Report.Output)
	}
}

func TestLoad_InvalidEnum(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "readability.yaml")

	content := `
analyze:
  segmenter: regex
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(configPath); err == nil {
		t.Fatal("expected error for unknown segmenter")
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	if err := EnsureStateDir(tmpDir); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(tmpDir, StateDirName, "config.yaml")

	content := `
report:
  output: json
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Report.Output != "json" {
		t.Errorf("expected Output=json, got %s", cfg.Report.Output)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "readability.yaml")

	cfg := DefaultConfig()
	cfg.Analyze.Precision = "float"
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Analyze.Precision != "float" {
		t.Errorf("expected Precision=float, got %s", loaded.Analyze.Precision)
	}
	if loaded.Cache.TTL != cfg.Cache.TTL {
		t.Errorf("expected TTL=%s, got %s", cfg.Cache.TTL, loaded.Cache.TTL)
	}
}

func TestStoreDBPath(t *testing.T) {
	path := StoreDBPath("/home/user/docs")
	expected := filepath.Join("/home/user/docs", ".readability", "scores.db")
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}
}
