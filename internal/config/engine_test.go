package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadEngineConfig_Success(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "engine.yaml")

	configContent := `engine:
  threshold: 3
  workers: 4
  validate: true
  max_validator_segments: 100

cache:
  enabled: true
  prefix: "test:"
  ttl: 10m
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	t.Setenv("ENGINE_CONFIG_PATH", configPath)

	cfg, err := LoadEngineConfig()
	if err != nil {
		t.Fatalf("LoadEngineConfig() failed: %v", err)
	}

	if cfg.Engine.Threshold != 3 {
		t.Errorf("Expected threshold=3, got %d", cfg.Engine.Threshold)
	}
	if cfg.Engine.Workers != 4 {
		t.Errorf("Expected workers=4, got %d", cfg.Engine.Workers)
	}
	if !cfg.Engine.Validate {
		t.Error("Expected validate=true")
	}
	if cfg.Engine.MaxValidatorSegments != 100 {
		t.Errorf("Expected max_validator_segments=100, got %d", cfg.Engine.MaxValidatorSegments)
	}
	if !cfg.Cache.Enabled || cfg.Cache.Prefix != "test:" {
		t.Errorf("Unexpected cache config: %+v", cfg.Cache)
	}
	ttl, _ := cfg.CacheTTL()
	if ttl != 10*time.Minute {
		t.Errorf("Expected ttl=10m, got %s", ttl)
	}
}

func TestLoadEngineConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("ENGINE_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := LoadEngineConfig()
	if err != nil {
		t.Fatalf("LoadEngineConfig() failed: %v", err)
	}

	if cfg.Engine.Threshold != 2 {
		t.Errorf("Expected default threshold=2, got %d", cfg.Engine.Threshold)
	}
	if cfg.Engine.Workers != 1 {
		t.Errorf("Expected default workers=1, got %d", cfg.Engine.Workers)
	}
	if cfg.Engine.MaxValidatorSegments != 500 {
		t.Errorf("Expected default max_validator_segments=500, got %d", cfg.Engine.MaxValidatorSegments)
	}
	if cfg.Cache.Enabled {
		t.Error("Expected cache disabled by default")
	}
}

func TestLoadEngineConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative threshold", "engine:\n  threshold: -1\n"},
		{"negative workers", "engine:\n  workers: -2\n"},
		{"bad ttl", "cache:\n  ttl: soon\n"},
		{"malformed yaml", "engine: [\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "engine.yaml")
			if err := os.WriteFile(configPath, []byte(test.content), 0644); err != nil {
				t.Fatalf("Failed to write test config: %v", err)
			}
			t.Setenv("ENGINE_CONFIG_PATH", configPath)

			if _, err := LoadEngineConfig(); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}
