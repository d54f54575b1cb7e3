package config

// Validate checks that all configuration values are within acceptable
// ranges and returns the first error encountered, or nil if valid.
func Validate(cfg Config) error {
	if cfg.Owner == "" {
		return ErrEmptyOwner
	}
	if cfg.Decimals < 0 || cfg.Decimals > MaxDecimals {
		return ErrInvalidDecimals
	}
	if cfg.Persist && cfg.DataDir == "" {
		return ErrEmptyDataDir
	}
	return nil
}
