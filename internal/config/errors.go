package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid after merging all sources.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key or issuer).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidClientConfigs indicates invalid client settings
	// (for example, missing API server address or session path).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
