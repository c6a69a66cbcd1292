package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidCollectionConfigs indicates the collection base directory
	// is missing.
	ErrInvalidCollectionConfigs = errors.New("invalid collection configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, missing address or non-positive request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidSchedulerConfigs indicates invalid auto-sync scheduler
	// settings (for example, a zero debounce delay).
	ErrInvalidSchedulerConfigs = errors.New("invalid scheduler configuration")
	// ErrInvalidSyncConfigs indicates a partially configured sync
	// credential (for example, a user without a key).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
