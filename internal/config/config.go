// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-card-keeper/models"
)

// StructuredConfig is the top-level configuration container for the
// go-card-keeper server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the optional API key required
	// on inbound action requests, the protocol version, and the server
	// version string.
	App App `envPrefix:"APP_"`

	// Collection holds the location of the local collection store.
	Collection Collection `envPrefix:"COLLECTION_"`

	// Server holds network address, timeout, and CORS settings for the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Sync holds the credential for the remote sync service. All fields
	// may be empty, which disables synchronization entirely.
	Sync Sync `envPrefix:"SYNC_"`

	// Scheduler holds the timing of the background auto-sync triggers.
	Scheduler Scheduler `envPrefix:"SCHEDULER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged with the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings of the action protocol surface.
type App struct {
	// APIKey, when non-empty, must be supplied by callers in the request
	// envelope's "key" field. An empty value disables the check.
	// Env: APP_API_KEY
	APIKey string `env:"API_KEY"`

	// APIVersion is the action protocol version reported by informational
	// actions and the empty-body banner.
	// Env: APP_API_VERSION
	APIVersion int `env:"API_VERSION"`

	// Version is the semantic version string of the running server,
	// exposed via the /health endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Collection holds the location of the local collection store.
type Collection struct {
	// BaseDir is the directory containing the collection database file.
	// The store itself lives at BaseDir/collection.db.
	// Env: COLLECTION_BASE_DIR
	BaseDir string `env:"BASE_DIR"`

	// Create allows the server to create a fresh collection file when
	// none exists at the expected path. Without it, a missing file is a
	// fatal startup error.
	// Env: COLLECTION_CREATE
	Create bool `env:"CREATE"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "127.0.0.1:8765").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSOrigins is the list of origins allowed to call the action API
	// from a browser context.
	// Env: SERVER_CORS_ORIGINS (comma-separated)
	CORSOrigins []string `env:"CORS_ORIGINS"`
}

// Sync holds the read-only credential for the remote sync service.
type Sync struct {
	// User is the account name (usually an email) at the sync service.
	// Env: SYNC_USER
	User string `env:"USER"`

	// Key is the opaque authorization key obtained via cmd/keygen.
	// An empty key means sync is disabled.
	// Env: SYNC_KEY
	Key string `env:"KEY"`

	// Endpoint is the base URL of the sync service. Empty selects the
	// default public endpoint of the sync client.
	// Env: SYNC_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// RequestTimeout bounds every remote sync call.
	// Env: SYNC_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Scheduler holds the timing of the background auto-sync triggers.
type Scheduler struct {
	// DebounceDelay is the quiet period after the last mutation before an
	// automatic sync fires. Every further mutation restarts the wait.
	// Env: SCHEDULER_DEBOUNCE_DELAY
	DebounceDelay time.Duration `env:"DEBOUNCE_DELAY"`

	// PeriodicInterval is the fixed interval of the unconditional
	// background sync, re-armed after every firing regardless of outcome.
	// Env: SCHEDULER_PERIODIC_INTERVAL
	PeriodicInterval time.Duration `env:"PERIODIC_INTERVAL"`
}

// Credential converts the sync settings into the read-only credential value
// consumed by the sync executor.
func (s Sync) Credential() models.SyncCredential {
	return models.SyncCredential{
		User:     s.User,
		Key:      s.Key,
		Endpoint: s.Endpoint,
		Timeout:  s.RequestTimeout,
	}
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (earlier
// sources win; defaults only fill what nothing else set):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
