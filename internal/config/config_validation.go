// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
//
// The collection base directory is the only hard requirement: without it
// there is no store to serve. Scheduler intervals must be positive once the
// defaults have been merged, and a sync credential, when partially present,
// must include the key.
func (cfg *StructuredConfig) validate() error {
	if cfg.Collection.BaseDir == "" {
		return ErrInvalidCollectionConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Scheduler.DebounceDelay <= 0 || cfg.Scheduler.PeriodicInterval <= 0 {
		return ErrInvalidSchedulerConfigs
	}

	// user or endpoint without a key cannot authenticate
	if cfg.Sync.Key == "" && cfg.Sync.User != "" {
		return ErrInvalidSyncConfigs
	}

	return nil
}
