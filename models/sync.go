// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncStatus describes what kind of synchronization the collection currently
// requires, as reported by the engine after comparing local and remote state.
type SyncStatus string

const (
	// SyncStatusNoChanges means local and remote are already identical.
	SyncStatusNoChanges SyncStatus = "NO_CHANGES"

	// SyncStatusNormal means an incremental exchange of deltas is sufficient.
	SyncStatusNormal SyncStatus = "NORMAL_SYNC"

	// SyncStatusFullSync means sync history has diverged and one side must
	// replace the other entirely. The direction is ambiguous and must be
	// chosen by the caller.
	SyncStatusFullSync SyncStatus = "FULL_SYNC"

	// SyncStatusFullDownload means the local collection is empty and should
	// be replaced by the remote one.
	SyncStatusFullDownload SyncStatus = "FULL_DOWNLOAD"

	// SyncStatusFullUpload means the remote collection is empty and should
	// be replaced by the local one.
	SyncStatusFullUpload SyncStatus = "FULL_UPLOAD"
)

// RequiresFull reports whether the status demands a destructive full sync
// rather than an incremental one.
func (s SyncStatus) RequiresFull() bool {
	switch s {
	case SyncStatusFullSync, SyncStatusFullDownload, SyncStatusFullUpload:
		return true
	}
	return false
}

// SyncDirection selects which side wins a full sync.
type SyncDirection string

const (
	SyncDirectionUpload   SyncDirection = "upload"
	SyncDirectionDownload SyncDirection = "download"
)

// Valid reports whether the direction is one of the two accepted values.
func (d SyncDirection) Valid() bool {
	return d == SyncDirectionUpload || d == SyncDirectionDownload
}

// SyncOutcomeCode classifies the result of a single sync attempt.
type SyncOutcomeCode string

const (
	// OutcomeNoChanges: the attempt completed and nothing needed to move.
	OutcomeNoChanges SyncOutcomeCode = "no_changes"

	// OutcomeSynced: the attempt completed and deltas were exchanged.
	OutcomeSynced SyncOutcomeCode = "synced"

	// OutcomeFullSyncRequired: a destructive full sync is pending and no
	// explicit direction was supplied, so nothing was mutated.
	OutcomeFullSyncRequired SyncOutcomeCode = "full_sync_required"

	// OutcomeAuthError: the sync service rejected the credential.
	OutcomeAuthError SyncOutcomeCode = "auth_error"

	// OutcomeNetworkError: the sync service could not be reached.
	OutcomeNetworkError SyncOutcomeCode = "network_error"

	// OutcomeServerError: the sync service answered with a server failure.
	OutcomeServerError SyncOutcomeCode = "server_error"

	// OutcomeDisabled: no sync credential is configured; the attempt was
	// skipped entirely.
	OutcomeDisabled SyncOutcomeCode = "disabled"
)

// SyncOutcome is the typed result of one sync attempt. It is produced once
// per attempt and never persisted beyond logging.
type SyncOutcome struct {
	Code SyncOutcomeCode `json:"code"`

	// Status is the engine-reported sync status the attempt observed,
	// when one was obtained before the outcome was decided.
	Status SyncStatus `json:"status,omitempty"`

	// Detail carries a human-readable explanation for error outcomes.
	Detail string `json:"detail,omitempty"`
}

// Completed reports whether the attempt finished a successful exchange,
// i.e. local state is now in step with the remote side.
func (o SyncOutcome) Completed() bool {
	return o.Code == OutcomeSynced || o.Code == OutcomeNoChanges
}

// SyncCredential identifies the user against the remote sync service.
// It is read once at startup and is read-only afterwards. An empty
// credential is a valid state meaning "sync disabled".
type SyncCredential struct {
	User     string        `json:"user"`
	Key      string        `json:"-"`
	Endpoint string        `json:"endpoint"`
	Timeout  time.Duration `json:"-"`
}

// Configured reports whether the credential is usable for syncing.
func (c SyncCredential) Configured() bool {
	return c.Key != ""
}

// SyncMeta is the remote side's answer to a meta query: enough to decide
// whether an incremental sync is possible.
type SyncMeta struct {
	// Modified is the remote collection's modification counter.
	Modified int64 `json:"mod"`

	// SchemaModified is the remote schema epoch. A mismatch with the local
	// epoch forces a full sync.
	SchemaModified int64 `json:"scm"`

	// USN is the remote update sequence number.
	USN int64 `json:"usn"`

	// Empty reports whether the remote collection has no content yet.
	Empty bool `json:"empty"`
}

// ChangesRequest carries the local deltas of an incremental sync upload.
type ChangesRequest struct {
	LastUSN int64  `json:"last_usn"`
	Decks   []Deck `json:"decks,omitempty"`
	Changes []Note `json:"changes"`
}

// ChangesResponse carries the remote deltas of an incremental sync download
// together with the new sequence number to record on success.
type ChangesResponse struct {
	NewUSN  int64  `json:"new_usn"`
	Decks   []Deck `json:"decks,omitempty"`
	Changes []Note `json:"changes"`
}
