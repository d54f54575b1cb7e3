package config

import "errors"

var (
	// ErrEmptyOwner indicates no pool owner was configured.
	ErrEmptyOwner = errors.New("config: owner must not be empty")

	// ErrInvalidDecimals indicates a precision outside the supported range.
	ErrInvalidDecimals = errors.New("config: decimals outside the supported range")

	// ErrEmptyDataDir indicates persistence is enabled but no data
	// directory was configured.
	ErrEmptyDataDir = errors.New("config: data directory must not be empty when persistence is enabled")
)
