package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	Rows             int           `json:"rows" env:"GOL_ROWS"`
	Cols             int           `json:"cols" env:"GOL_COLS"`
	FrameRate        time.Duration `json:"frame_rate" env:"GOL_FRAME_RATE"`
	MaxGenerations   int           `json:"max_generations" env:"GOL_MAX_GENERATIONS"`
	RandomDensity    float64       `json:"random_density" env:"GOL_RANDOM_DENSITY"`
	Workers          int           `json:"workers" env:"GOL_WORKERS"`
	Seed             int64         `json:"seed" env:"GOL_SEED"`
	PatternFile      string        `json:"pattern_file" env:"GOL_PATTERN_FILE"`
	StagnationWindow int           `json:"stagnation_window" env:"GOL_STAGNATION_WINDOW"`
	StopOnStagnation bool          `json:"stop_on_stagnation" env:"GOL_STOP_ON_STAGNATION"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:             30,
		Cols:             60,
		FrameRate:        150 * time.Millisecond,
		MaxGenerations:   1000,
		RandomDensity:    0.15,
		Workers:          0, // one per CPU
		StagnationWindow: 5,
		StopOnStagnation: true,
	}
}

// LoadConfig loads configuration from a JSON file, then applies GOL_*
// environment overrides. An empty filename skips the file.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
		}

		if err = json.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
		}
	}

	if err := ApplyEnv(&config); err != nil {
		return config, err
	}
	return config, config.Validate()
}

// ApplyEnv overrides config fields from GOL_* environment variables
func ApplyEnv(config *Config) error {
	if err := env.Parse(config); err != nil {
		return errors.Wrap(err, "[ApplyEnv] failed to parse environment")
	}
	return nil
}

// Validate checks that the configuration describes a runnable game
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return errors.Errorf("[Config.Validate] grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("[Config.Validate] random_density must be within [0, 1], got %v", c.RandomDensity)
	case c.Workers < 0:
		return errors.Errorf("[Config.Validate] workers must not be negative, got %d", c.Workers)
	case c.FrameRate < 0:
		return errors.Errorf("[Config.Validate] frame_rate must not be negative, got %v", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Errorf("[Config.Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	}
	return nil
}
