// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-card-keeper/internal/config"
	"github.com/MKhiriev/go-card-keeper/internal/engine"
	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"github.com/MKhiriev/go-card-keeper/internal/store"
	"github.com/MKhiriev/go-card-keeper/models"
)

// MutationObserver is notified after protocol activity that affects the
// auto-sync timers. The scheduler implements it.
type MutationObserver interface {
	// NoteMutation signals that the collection changed.
	NoteMutation()

	// NoteManualSync signals that the caller drove a sync themselves.
	NoteManualSync()
}

type actionFunc func(ctx context.Context, params json.RawMessage) (any, error)

// Bridge translates action-protocol requests into engine and executor
// calls. One instance serves all requests; per-request state lives on the
// stack.
type Bridge struct {
	coordinator *Coordinator
	engine      engine.Engine
	runner      SyncRunner
	observer    MutationObserver
	logger      *logger.Logger

	apiVersion    int
	requireAPIKey bool

	actions map[string]actionFunc
}

func NewBridge(coordinator *Coordinator, eng engine.Engine, runner SyncRunner, observer MutationObserver, cfg config.App, log *logger.Logger) *Bridge {
	b := &Bridge{
		coordinator:   coordinator,
		engine:        eng,
		runner:        runner,
		observer:      observer,
		logger:        log,
		apiVersion:    cfg.APIVersion,
		requireAPIKey: cfg.APIKey != "",
	}

	b.actions = map[string]actionFunc{
		"version":           b.handleVersion,
		"deckNames":         b.handleDeckNames,
		"deckNamesAndIds":   b.handleDeckNamesAndIDs,
		"createDeck":        b.handleCreateDeck,
		"deleteDecks":       b.handleDeleteDecks,
		"addNote":           b.handleAddNote,
		"addNotes":          b.handleAddNotes,
		"findNotes":         b.handleFindNotes,
		"notesInfo":         b.handleNotesInfo,
		"updateNoteFields":  b.handleUpdateNoteFields,
		"deleteNotes":       b.handleDeleteNotes,
		"checkDatabase":     b.handleCheckDatabase,
		"requestPermission": b.handleRequestPermission,
		"sync":              b.handleSync,
		"fullSync":          b.handleFullSync,
	}

	return b
}

// Handle dispatches one request and always produces a response envelope.
// Failures of any kind end up in the envelope's error field; nothing
// propagates past the bridge.
func (b *Bridge) Handle(ctx context.Context, req models.ActionRequest) models.ActionResponse {
	action, ok := b.actions[req.Action]
	if !ok {
		b.logger.Warn().Str("action", req.Action).Msg("unsupported action requested")
		return models.ErrorResponse(fmt.Sprintf("%s: %q", ErrUnsupportedAction, req.Action))
	}

	result, err := action(ctx, req.Params)
	if err != nil {
		b.logger.Debug().Err(err).Str("action", req.Action).Msg("action failed")
		return models.ErrorResponse(err.Error())
	}

	return models.OKResponse(result)
}

// APIVersion is the protocol version reported by the empty-body banner.
func (b *Bridge) APIVersion() int {
	return b.apiVersion
}

// withStore runs op under the coordinator's gate. When mutating is set, the
// engine's modification counter is sampled around op; a changed counter
// marks the mutation flag before the gate is released and notifies the
// observer after. Sampling the counter instead of trusting the action name
// keeps no-op mutations (recreating an existing deck) from arming the
// debounce.
func (b *Bridge) withStore(ctx context.Context, mutating bool, op func(h *store.Handle) (any, error)) (any, error) {
	var mutated bool

	result, err := WithAccessResult(ctx, b.coordinator, func(h *store.Handle) (any, error) {
		if !mutating {
			return op(h)
		}

		before, err := b.engine.ModCount(ctx, h)
		if err != nil {
			return nil, err
		}

		result, opErr := op(h)
		if opErr != nil {
			return nil, opErr
		}

		after, err := b.engine.ModCount(ctx, h)
		if err != nil {
			return nil, err
		}
		if after != before {
			b.coordinator.MarkDirty()
			mutated = true
		}

		return result, nil
	})

	if mutated {
		b.observer.NoteMutation()
	}

	return result, err
}

func decodeParams[T any](params json.RawMessage) (T, error) {
	var decoded T
	if len(params) == 0 {
		return decoded, fmt.Errorf("%w: missing params", ErrBadRequest)
	}
	if err := json.Unmarshal(params, &decoded); err != nil {
		return decoded, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return decoded, nil
}

// decodeOptionalParams is decodeParams for actions whose params object may
// be omitted entirely.
func decodeOptionalParams[T any](params json.RawMessage) (T, error) {
	var decoded T
	if len(params) == 0 {
		return decoded, nil
	}
	if err := json.Unmarshal(params, &decoded); err != nil {
		return decoded, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return decoded, nil
}
