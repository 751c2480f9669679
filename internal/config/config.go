package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name at the data root.
const FileName = "finviz.yaml"

// EnvStore overrides the configured storage backend when set.
const EnvStore = "FINVIZ_STORE"

// Config represents the top-level finviz.yaml configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Import  ImportConfig  `yaml:"import"`
	Display DisplayConfig `yaml:"display"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Backend string `yaml:"backend"` // "file" or "memory"
	File    string `yaml:"file"`    // store file, relative to the data root
}

// ImportConfig controls statement staging.
type ImportConfig struct {
	Dir string `yaml:"dir"` // staging directory, relative to the data root
}

// DisplayConfig holds presentation preferences.
type DisplayConfig struct {
	Currency string `yaml:"currency"`
}

// Load reads a finviz.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new data root.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: "file",
			File:    "expenses.json",
		},
		Import: ImportConfig{
			Dir: "import",
		},
		Display: DisplayConfig{
			Currency: "BRL",
		},
	}
}

// Backend returns the effective storage backend, letting the FINVIZ_STORE
// environment variable win over the configured value.
func (c *Config) Backend() string {
	if v := os.Getenv(EnvStore); v != "" {
		return v
	}
	return c.Storage.Backend
}
