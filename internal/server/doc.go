// Package server runs the inbound HTTP transport: startup, OS signal
// handling, and graceful shutdown.
package server
