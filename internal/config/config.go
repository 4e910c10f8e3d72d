package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the qrpipe CLI's tunable defaults. Any field omitted from a
// loaded YAML file keeps its value from Defaults.
type Config struct {
	ChunkSize int     `yaml:"chunk_size"`
	FPS       float64 `yaml:"fps"`
	ECLevel   string  `yaml:"ec_level"`
	LogLevel  string  `yaml:"log_level"`
}

// Defaults returns a Config populated with every default value.
func Defaults() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		ChunkSize: 1800,
		FPS:       4,
		ECLevel:   "M",
		LogLevel:  "info",
	}
}

// Load reads path as YAML over a Defaults-initialized Config, so fields the
// file omits keep their default. A missing or empty file is not an error.
func Load(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path in YAML format, creating parent directories as
// needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
