// Package config holds pool deployment configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MaxDecimals bounds the fixed-point scale so rate math stays well inside
// the 256-bit arithmetic domain for any realistic deposit magnitude.
const MaxDecimals = 30

// Config describes one pool deployment.
type Config struct {
	// Owner is the account authorized to update the vesting schedule.
	Owner string `yaml:"owner"`

	// Decimals fixes the fixed-point precision to 10^decimals.
	Decimals int `yaml:"decimals"`

	// Persist enables snapshot persistence of the accrual state.
	Persist bool `yaml:"persist"`

	// DataDir is where the snapshot database lives when Persist is set.
	DataDir string `yaml:"data_dir"`

	// Journal enables the in-memory operation journal.
	Journal bool `yaml:"journal"`
}

// DefaultConfig returns a configuration with sensible defaults; the owner
// must still be set before use.
func DefaultConfig() Config {
	return Config{
		Decimals: 6,
		Journal:  true,
	}
}

// Load reads a Config from a YAML file, applying defaults for absent keys.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
