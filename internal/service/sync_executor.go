// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-card-keeper/internal/adapter"
	"github.com/MKhiriev/go-card-keeper/internal/engine"
	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"github.com/MKhiriev/go-card-keeper/internal/store"
	"github.com/MKhiriev/go-card-keeper/models"
)

// SyncMode tells the executor how much it is allowed to do. The zero value
// is not valid; use AutoSync or ManualFullSync.
type SyncMode struct {
	full      bool
	direction models.SyncDirection
}

// AutoSync permits incremental syncing only. A pending full sync is
// reported, never performed.
func AutoSync() SyncMode {
	return SyncMode{}
}

// ManualFullSync permits a destructive full sync in the given direction.
// The direction must already be validated by the caller.
func ManualFullSync(direction models.SyncDirection) SyncMode {
	return SyncMode{full: true, direction: direction}
}

// SyncRunner is the executor's behavior, extracted for the scheduler and
// bridge to depend on.
type SyncRunner interface {
	AttemptSync(ctx context.Context, mode SyncMode) (models.SyncOutcome, error)
}

// SyncExecutor performs one sync attempt at a time under the coordinator's
// gate and reduces every result to a typed outcome.
type SyncExecutor struct {
	coordinator *Coordinator
	engine      engine.Engine
	credential  models.SyncCredential
	logger      *logger.Logger
}

func NewSyncExecutor(coordinator *Coordinator, eng engine.Engine, cred models.SyncCredential, log *logger.Logger) *SyncExecutor {
	return &SyncExecutor{
		coordinator: coordinator,
		engine:      eng,
		credential:  cred,
		logger:      log,
	}
}

var _ SyncRunner = (*SyncExecutor)(nil)

// AttemptSync runs a single sync attempt and returns its outcome.
//
// Transport failures come back as error outcomes with a nil error; the
// returned error is reserved for local failures (a broken collection
// database). The mutation flag is cleared only when the attempt completes,
// so a failed attempt leaves the change pending for the next trigger.
//
// With AutoSync mode a pending full sync is never executed: full syncs
// destroy one side's data and require explicit direction from the caller.
func (x *SyncExecutor) AttemptSync(ctx context.Context, mode SyncMode) (models.SyncOutcome, error) {
	if !x.credential.Configured() {
		return models.SyncOutcome{Code: models.OutcomeDisabled}, nil
	}

	return WithAccessResult(ctx, x.coordinator, func(h *store.Handle) (models.SyncOutcome, error) {
		return x.attemptLocked(ctx, h, mode)
	})
}

func (x *SyncExecutor) attemptLocked(ctx context.Context, h *store.Handle, mode SyncMode) (models.SyncOutcome, error) {
	status, err := x.engine.SyncStatus(ctx, h, x.credential)
	if err != nil {
		return x.transportOutcome(err)
	}

	if status.RequiresFull() {
		if !mode.full {
			x.logger.Info().Str("status", string(status)).Msg("full sync pending, awaiting explicit direction")
			return models.SyncOutcome{Code: models.OutcomeFullSyncRequired, Status: status}, nil
		}
		return x.fullSyncLocked(ctx, h, status, mode.direction)
	}

	if status == models.SyncStatusNoChanges {
		x.coordinator.clearDirty()
		return models.SyncOutcome{Code: models.OutcomeNoChanges, Status: status}, nil
	}

	// a manual full sync with no full sync pending is an idempotent no-op
	if mode.full {
		return models.SyncOutcome{Code: models.OutcomeNoChanges, Status: status}, nil
	}

	changed, err := x.engine.IncrementalSync(ctx, h, x.credential)
	if err != nil {
		return x.transportOutcome(err)
	}

	x.coordinator.clearDirty()

	code := models.OutcomeNoChanges
	if changed {
		code = models.OutcomeSynced
	}
	return models.SyncOutcome{Code: code, Status: status}, nil
}

func (x *SyncExecutor) fullSyncLocked(ctx context.Context, h *store.Handle, status models.SyncStatus, direction models.SyncDirection) (models.SyncOutcome, error) {
	var err error
	switch direction {
	case models.SyncDirectionUpload:
		err = x.engine.FullUpload(ctx, h, x.credential)
	case models.SyncDirectionDownload:
		err = x.engine.FullDownload(ctx, h, x.credential)
	default:
		return models.SyncOutcome{Code: models.OutcomeFullSyncRequired, Status: status}, nil
	}
	if err != nil {
		return x.transportOutcome(err)
	}

	x.coordinator.clearDirty()

	x.logger.Info().
		Str("status", string(status)).
		Str("direction", string(direction)).
		Msg("full sync finished")

	return models.SyncOutcome{Code: models.OutcomeSynced, Status: status}, nil
}

// transportOutcome maps the adapter's sentinel errors onto error outcomes.
// Anything else is a local failure and is returned as a plain error.
func (x *SyncExecutor) transportOutcome(err error) (models.SyncOutcome, error) {
	var code models.SyncOutcomeCode
	switch {
	case errors.Is(err, adapter.ErrSyncAuth):
		code = models.OutcomeAuthError
	case errors.Is(err, adapter.ErrSyncNetwork):
		code = models.OutcomeNetworkError
	case errors.Is(err, adapter.ErrSyncServer), errors.Is(err, adapter.ErrSyncProtocol):
		code = models.OutcomeServerError
	default:
		return models.SyncOutcome{}, err
	}

	x.logger.Warn().Err(err).Str("outcome", string(code)).Msg("sync attempt failed")

	return models.SyncOutcome{Code: code, Detail: err.Error()}, nil
}
