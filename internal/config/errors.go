package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid gateway server settings
	// (for example, missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty database DSN or missing asset directory).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAssetsConfigs indicates an inconsistent asset URL setup
	// (for example, signed strategy without a signing key).
	ErrInvalidAssetsConfigs = errors.New("invalid assets configuration")
	// ErrInvalidAdapterConfigs indicates invalid client transport settings
	// (for example, missing gateway address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidClientStorageConfigs indicates invalid client-side cache
	// settings (for example, empty cache directory).
	ErrInvalidClientStorageConfigs = errors.New("invalid client storage configuration")
)
