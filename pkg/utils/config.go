package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is loaded when present and no --config is given.
const DefaultConfigFile = "lottogen.yaml"

// Config represents the main configuration structure
type Config struct {
	Draw   DrawConfig   `yaml:"draw"`
	Output OutputConfig `yaml:"output"`
}

type DrawConfig struct {
	Count          int    `yaml:"count"`
	Digits         int    `yaml:"digits"`
	DenseThreshold int    `yaml:"dense_threshold"`
	MaxDraws       uint64 `yaml:"max_draws"`
	Seed           uint64 `yaml:"seed"`
}

type OutputConfig struct {
	Columns      int    `yaml:"columns"`
	SingleColumn bool   `yaml:"single_column"`
	Report       string `yaml:"report"`
	Format       string `yaml:"format"`
	Stats        bool   `yaml:"stats"`
	Verbose      bool   `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Draw: DrawConfig{
			Count:          10,
			Digits:         6,
			DenseThreshold: 6,
		},
		Output: OutputConfig{
			Format: "json",
		},
	}
}

// LoadConfig loads configuration from a YAML file on top of the defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	return config, nil
}

// ApplyEnv overlays LOTTOGEN_* environment variables onto cfg.
// Unparseable values are reported and leave the field unchanged.
func ApplyEnv(cfg *Config) error {
	var bad []string

	setInt := func(key string, dst *int) {
		if v := os.Getenv(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				bad = append(bad, key)
				return
			}
			*dst = n
		}
	}
	setUint := func(key string, dst *uint64) {
		if v := os.Getenv(key); v != "" {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				bad = append(bad, key)
				return
			}
			*dst = n
		}
	}

	setInt("LOTTOGEN_COUNT", &cfg.Draw.Count)
	setInt("LOTTOGEN_DIGITS", &cfg.Draw.Digits)
	setInt("LOTTOGEN_DENSE_THRESHOLD", &cfg.Draw.DenseThreshold)
	setUint("LOTTOGEN_MAX_DRAWS", &cfg.Draw.MaxDraws)
	setUint("LOTTOGEN_SEED", &cfg.Draw.Seed)
	setInt("LOTTOGEN_COLUMNS", &cfg.Output.Columns)

	if v := os.Getenv("LOTTOGEN_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("LOTTOGEN_OUTPUT"); v != "" {
		cfg.Output.Report = v
	}

	if len(bad) > 0 {
		return fmt.Errorf("invalid environment values: %s", strings.Join(bad, ", "))
	}
	return nil
}
