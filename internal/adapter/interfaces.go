// Package adapter implements the outbound transport to the remote sync
// service. The engine drives it through the [SyncTransport] interface; the
// production implementation speaks JSON over HTTP via resty.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-card-keeper/models"
)

// SyncTransport is the wire-level client of the remote sync service. All
// methods classify transport failures into the package's sentinel errors
// (ErrSyncAuth, ErrSyncNetwork, ErrSyncServer) so callers can map them to
// typed sync outcomes without inspecting HTTP details.
type SyncTransport interface {
	// Meta fetches the remote collection's state summary, enough to decide
	// whether an incremental sync is possible.
	Meta(ctx context.Context, cred models.SyncCredential) (models.SyncMeta, error)

	// SyncChanges uploads local deltas and returns the remote deltas since
	// the given sequence number.
	SyncChanges(ctx context.Context, cred models.SyncCredential, req models.ChangesRequest) (models.ChangesResponse, error)

	// FullUpload replaces the remote collection with the given snapshot and
	// returns the remote meta recorded for it.
	FullUpload(ctx context.Context, cred models.SyncCredential, snap models.Snapshot) (models.SyncMeta, error)

	// FullDownload fetches the entire remote collection.
	FullDownload(ctx context.Context, cred models.SyncCredential) (models.Snapshot, error)

	// Login exchanges a username and password for an authorization key.
	// Used by cmd/keygen, never by the server itself.
	Login(ctx context.Context, endpoint, user, password string) (string, error)
}
