// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-card-keeper/internal/store"
	"github.com/MKhiriev/go-card-keeper/models"
)

type deckParams struct {
	Deck string `json:"deck"`
}

type decksParams struct {
	Decks []string `json:"decks"`
}

type noteParams struct {
	Note models.NoteInput `json:"note"`
}

type notesParams struct {
	Notes []models.NoteInput `json:"notes"`
}

type queryParams struct {
	Query string `json:"query"`
}

type noteIDsParams struct {
	Notes []int64 `json:"notes"`
}

type updateNoteParams struct {
	Note struct {
		ID     int64             `json:"id"`
		Fields map[string]string `json:"fields"`
	} `json:"note"`
}

type fullSyncParams struct {
	Mode string `json:"mode"`
}

func (b *Bridge) handleVersion(_ context.Context, _ json.RawMessage) (any, error) {
	return b.apiVersion, nil
}

func (b *Bridge) handleDeckNames(ctx context.Context, _ json.RawMessage) (any, error) {
	return b.withStore(ctx, false, func(h *store.Handle) (any, error) {
		return b.engine.DeckNames(ctx, h)
	})
}

func (b *Bridge) handleDeckNamesAndIDs(ctx context.Context, _ json.RawMessage) (any, error) {
	return b.withStore(ctx, false, func(h *store.Handle) (any, error) {
		return b.engine.DeckNamesAndIDs(ctx, h)
	})
}

func (b *Bridge) handleCreateDeck(ctx context.Context, params json.RawMessage) (any, error) {
	p, err := decodeParams[deckParams](params)
	if err != nil {
		return nil, err
	}

	return b.withStore(ctx, true, func(h *store.Handle) (any, error) {
		return b.engine.CreateDeck(ctx, h, p.Deck)
	})
}

func (b *Bridge) handleDeleteDecks(ctx context.Context, params json.RawMessage) (any, error) {
	p, err := decodeParams[decksParams](params)
	if err != nil {
		return nil, err
	}

	return b.withStore(ctx, true, func(h *store.Handle) (any, error) {
		return nil, b.engine.DeleteDecks(ctx, h, p.Decks)
	})
}

func (b *Bridge) handleAddNote(ctx context.Context, params json.RawMessage) (any, error) {
	p, err := decodeParams[noteParams](params)
	if err != nil {
		return nil, err
	}

	return b.withStore(ctx, true, func(h *store.Handle) (any, error) {
		return b.engine.AddNote(ctx, h, p.Note)
	})
}

func (b *Bridge) handleAddNotes(ctx context.Context, params json.RawMessage) (any, error) {
	p, err := decodeParams[notesParams](params)
	if err != nil {
		return nil, err
	}

	return b.withStore(ctx, true, func(h *store.Handle) (any, error) {
		return b.engine.AddNotes(ctx, h, p.Notes)
	})
}

func (b *Bridge) handleFindNotes(ctx context.Context, params json.RawMessage) (any, error) {
	p, err := decodeOptionalParams[queryParams](params)
	if err != nil {
		return nil, err
	}

	return b.withStore(ctx, false, func(h *store.Handle) (any, error) {
		return b.engine.FindNotes(ctx, h, p.Query)
	})
}

func (b *Bridge) handleNotesInfo(ctx context.Context, params json.RawMessage) (any, error) {
	p, err := decodeParams[noteIDsParams](params)
	if err != nil {
		return nil, err
	}

	return b.withStore(ctx, false, func(h *store.Handle) (any, error) {
		return b.engine.NotesInfo(ctx, h, p.Notes)
	})
}

func (b *Bridge) handleUpdateNoteFields(ctx context.Context, params json.RawMessage) (any, error) {
	p, err := decodeParams[updateNoteParams](params)
	if err != nil {
		return nil, err
	}

	return b.withStore(ctx, true, func(h *store.Handle) (any, error) {
		return nil, b.engine.UpdateNoteFields(ctx, h, p.Note.ID, p.Note.Fields)
	})
}

func (b *Bridge) handleDeleteNotes(ctx context.Context, params json.RawMessage) (any, error) {
	p, err := decodeParams[noteIDsParams](params)
	if err != nil {
		return nil, err
	}

	return b.withStore(ctx, true, func(h *store.Handle) (any, error) {
		return nil, b.engine.DeleteNotes(ctx, h, p.Notes)
	})
}

// checkDatabase repairs orphans, which counts as a mutation when anything
// was actually removed.
func (b *Bridge) handleCheckDatabase(ctx context.Context, _ json.RawMessage) (any, error) {
	return b.withStore(ctx, true, func(h *store.Handle) (any, error) {
		return b.engine.FixIntegrity(ctx, h)
	})
}

// handleRequestPermission always grants. The original graphical host asked
// the user; a headless server has no one to ask and is configured
// deliberately, so consent is implied. Arbitrary params are accepted and
// ignored.
func (b *Bridge) handleRequestPermission(_ context.Context, _ json.RawMessage) (any, error) {
	return models.PermissionResult{
		Permission:    "granted",
		RequireAPIKey: b.requireAPIKey,
		Version:       b.apiVersion,
	}, nil
}

func (b *Bridge) handleSync(ctx context.Context, _ json.RawMessage) (any, error) {
	outcome, err := b.runner.AttemptSync(ctx, AutoSync())
	if err != nil {
		return nil, err
	}

	b.observer.NoteManualSync()

	if outcome.Code == models.OutcomeFullSyncRequired {
		return nil, ErrFullSyncRequired
	}
	if err := outcomeError(outcome); err != nil {
		return nil, err
	}

	return outcome, nil
}

func (b *Bridge) handleFullSync(ctx context.Context, params json.RawMessage) (any, error) {
	p, err := decodeOptionalParams[fullSyncParams](params)
	if err != nil {
		return nil, err
	}

	direction := models.SyncDirection(p.Mode)
	if p.Mode != "" && !direction.Valid() {
		return nil, fmt.Errorf("%w: unknown mode %q", ErrBadRequest, p.Mode)
	}

	// An empty direction reaches the executor, which refuses to pick one:
	// a pending full sync comes back as FullSyncRequired with no mutation.
	outcome, err := b.runner.AttemptSync(ctx, ManualFullSync(direction))
	if err != nil {
		return nil, err
	}

	b.observer.NoteManualSync()

	if outcome.Code == models.OutcomeFullSyncRequired {
		return nil, ErrSyncDirectionRequired
	}
	if err := outcomeError(outcome); err != nil {
		return nil, err
	}

	return outcome, nil
}

// outcomeError turns transport-failure outcomes into in-envelope errors.
func outcomeError(outcome models.SyncOutcome) error {
	switch outcome.Code {
	case models.OutcomeAuthError, models.OutcomeNetworkError, models.OutcomeServerError:
		return fmt.Errorf("sync failed (%s): %s", outcome.Code, outcome.Detail)
	}
	return nil
}
