package stockledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the session settings. Everything has a default so the tool
// works without any configuration file.
type Config struct {
	// Dir is the data directory holding the snapshot, revenue and journal.
	Dir string `yaml:"dir"`
	// Currency is the ISO code item prices and revenue are kept in.
	Currency string `yaml:"currency"`
	// LowStockThreshold is the quantity below which items are flagged.
	LowStockThreshold int64 `yaml:"low_stock_threshold"`
}

// DefaultConfig returns the settings used when no file overrides them.
func DefaultConfig() Config {
	return Config{
		Dir:               ".",
		Currency:          "USD",
		LowStockThreshold: DefaultLowStockThreshold,
	}
}

// LoadConfig reads the YAML config at path, layered over the defaults.
// A missing file is not an error: the defaults apply.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("validate config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Dir == "" {
		return fmt.Errorf("dir cannot be empty")
	}
	if c.Currency == "" {
		return fmt.Errorf("currency cannot be empty")
	}
	if c.LowStockThreshold < 0 {
		return fmt.Errorf("low_stock_threshold cannot be negative, got %d", c.LowStockThreshold)
	}
	return nil
}

// Store creates the persistence adapter for this configuration.
func (c Config) Store() *Store {
	return NewStore(c.Dir, c.Currency)
}
