package config

import "time"

// Default values mirror the behavior of the desktop host the server
// replaces: a loopback-only listener, a short after-edit sync delay, and a
// half-hour periodic sync.
const (
	DefaultHTTPAddress      = "127.0.0.1:8765"
	DefaultAPIVersion       = 6
	DefaultRequestTimeout   = 30 * time.Second
	DefaultSyncTimeout      = 30 * time.Second
	DefaultDebounceDelay    = 2 * time.Second
	DefaultPeriodicInterval = 30 * time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			APIVersion: DefaultAPIVersion,
			Version:    "dev",
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			CORSOrigins:    []string{"http://localhost"},
		},
		Sync: Sync{
			RequestTimeout: DefaultSyncTimeout,
		},
		Scheduler: Scheduler{
			DebounceDelay:    DefaultDebounceDelay,
			PeriodicInterval: DefaultPeriodicInterval,
		},
	}
}
