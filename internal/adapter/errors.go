package adapter

import "errors"

var (
	// ErrSyncAuth marks a credential rejected by the sync service
	// (HTTP 401/403).
	ErrSyncAuth = errors.New("sync service rejected credentials")

	// ErrSyncNetwork marks a sync service that could not be reached at
	// all: DNS failure, refused connection, timeout.
	ErrSyncNetwork = errors.New("sync service unreachable")

	// ErrSyncServer marks a reachable sync service that answered with a
	// server-side failure (HTTP 5xx).
	ErrSyncServer = errors.New("sync service error")

	// ErrSyncProtocol marks a response body that could not be decoded.
	ErrSyncProtocol = errors.New("unexpected sync service response")
)
