package utils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("expected default config to be valid, got %v", err)
	}
}

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `{"rows": 12, "cols": 40, "frame_rate": 50000000, "workers": 2}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Rows != 12 || cfg.Cols != 40 || cfg.Workers != 2 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.FrameRate != 50*time.Millisecond {
		t.Fatalf("expected 50ms frame rate, got %v", cfg.FrameRate)
	}
	if cfg.RandomDensity != DefaultConfig().RandomDensity {
		t.Fatalf("expected default density to survive, got %v", cfg.RandomDensity)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `{"rows": 12, "cols": 40}`)
	t.Setenv("GOL_ROWS", "20")
	t.Setenv("GOL_FRAME_RATE", "250ms")
	t.Setenv("GOL_PATTERN_FILE", "glider.cells")
	t.Setenv("GOL_STOP_ON_STAGNATION", "false")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Rows != 20 || cfg.Cols != 40 {
		t.Fatalf("expected 20x40, got %dx%d", cfg.Rows, cfg.Cols)
	}
	if cfg.FrameRate != 250*time.Millisecond {
		t.Fatalf("expected 250ms frame rate, got %v", cfg.FrameRate)
	}
	if cfg.PatternFile != "glider.cells" || cfg.StopOnStagnation {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
	if !strings.Contains(err.Error(), "[LoadConfig] failed to read file") {
		t.Fatalf("expected LoadConfig prefix, got %v", err)
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `{"rows": `))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "[LoadConfig] failed to unmarshal") {
		t.Fatalf("expected unmarshal error, got %v", err)
	}
}

func TestLoadConfigInvalidEnv(t *testing.T) {
	t.Setenv("GOL_WORKERS", "many")

	_, err := LoadConfig("")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "[ApplyEnv]") {
		t.Fatalf("expected env error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero rows", func(c *Config) { c.Rows = 0 }, "grid must be at least 1x1"},
		{"negative cols", func(c *Config) { c.Cols = -3 }, "grid must be at least 1x1"},
		{"density above one", func(c *Config) { c.RandomDensity = 1.5 }, "random_density"},
		{"negative density", func(c *Config) { c.RandomDensity = -0.1 }, "random_density"},
		{"negative workers", func(c *Config) { c.Workers = -1 }, "workers"},
		{"negative frame rate", func(c *Config) { c.FrameRate = -time.Second }, "frame_rate"},
		{"negative max generations", func(c *Config) { c.MaxGenerations = -1 }, "max_generations"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadConfigValidates(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `{"random_density": 2}`))
	if err == nil || !strings.Contains(err.Error(), "random_density") {
		t.Fatalf("expected validation error, got %v", err)
	}
}
