package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")

	content := `
storage:
  db_path: /tmp/test-scores.db
sound:
  muted: true
  volume: 0.3
leaderboard:
  limit: 25
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Storage.DBPath != "/tmp/test-scores.db" {
		t.Errorf("Expected custom db path, got %q", cfg.Storage.DBPath)
	}
	if !cfg.Sound.Muted {
		t.Error("Expected muted sound")
	}
	if cfg.Sound.Volume != 0.3 {
		t.Errorf("Expected volume 0.3, got %f", cfg.Sound.Volume)
	}
	if cfg.Leaderboard.Limit != 25 {
		t.Errorf("Expected limit 25, got %d", cfg.Leaderboard.Limit)
	}
	// Unset fields fall back to defaults via normalize.
	if cfg.Storage.ProfilePath == "" {
		t.Error("Expected default profile path for unset field")
	}
	if cfg.Stats.SampleSize != 50 {
		t.Errorf("Expected default sample size, got %d", cfg.Stats.SampleSize)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for explicit missing config path")
	}
}

func TestLoadInvalidYAMLFails(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "bad.yaml")
	os.WriteFile(cfgPath, []byte("sound: ["), 0o644)

	if _, err := Load(cfgPath); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.Storage.DBPath == "" {
		t.Error("Default db path should not be empty")
	}
	if cfg.Sound.Muted {
		t.Error("Sound should be on by default")
	}
	if cfg.Sound.Volume != 0.8 {
		t.Errorf("Expected default volume 0.8, got %f", cfg.Sound.Volume)
	}
	if cfg.Leaderboard.Limit != 10 {
		t.Errorf("Expected default limit 10, got %d", cfg.Leaderboard.Limit)
	}
}

func TestNormalizeClampsVolume(t *testing.T) {
	cfg := Default()
	cfg.Sound.Volume = 4.2
	cfg.Leaderboard.Limit = -1

	cfg = normalize(cfg)
	if cfg.Sound.Volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %f", cfg.Sound.Volume)
	}
	if cfg.Leaderboard.Limit != 10 {
		t.Errorf("Expected limit repaired to default, got %d", cfg.Leaderboard.Limit)
	}
}
