// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package engine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-card-keeper/internal/store"
	"github.com/MKhiriev/go-card-keeper/models"
)

func (e *SQLiteEngine) SyncStatus(ctx context.Context, h *store.Handle, cred models.SyncCredential) (models.SyncStatus, error) {
	remote, err := e.transport.Meta(ctx, cred)
	if err != nil {
		return "", err
	}

	local, err := readMeta(ctx, h)
	if err != nil {
		return "", err
	}

	localEmpty, err := e.collectionEmpty(ctx, h, local)
	if err != nil {
		return "", err
	}

	status := classifySyncStatus(local, remote, localEmpty)

	e.logger.Debug().
		Str("status", string(status)).
		Int64("local_usn", local.USN).
		Int64("remote_usn", remote.USN).
		Msg("sync status computed")

	return status, nil
}

// classifySyncStatus decides the sync kind from the two meta records.
//
// An empty remote side always means the local collection should be pushed
// wholesale. A schema epoch mismatch means sync history diverged: the local
// side can only recover by replacing one side with the other, and when the
// local collection is still empty the download direction is the obvious one.
func classifySyncStatus(local models.CollectionMeta, remote models.SyncMeta, localEmpty bool) models.SyncStatus {
	if remote.Empty {
		if localEmpty {
			return models.SyncStatusNoChanges
		}
		return models.SyncStatusFullUpload
	}

	if local.SchemaModified != remote.SchemaModified {
		if localEmpty {
			return models.SyncStatusFullDownload
		}
		return models.SyncStatusFullSync
	}

	if local.Modified == local.LastSync && local.USN == remote.USN {
		return models.SyncStatusNoChanges
	}

	return models.SyncStatusNormal
}

func (e *SQLiteEngine) collectionEmpty(ctx context.Context, q querier, meta models.CollectionMeta) (bool, error) {
	if meta.Modified != 0 {
		return false, nil
	}

	query, args, err := buildCountLiveNotesQuery()
	if err != nil {
		return false, wrapBuildErr(err)
	}

	var count int64
	if err := q.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count == 0, nil
}

func (e *SQLiteEngine) IncrementalSync(ctx context.Context, h *store.Handle, cred models.SyncCredential) (bool, error) {
	local, err := readMeta(ctx, h)
	if err != nil {
		return false, err
	}

	decks, err := e.changedDecks(ctx, h)
	if err != nil {
		return false, err
	}
	notes, err := e.selectNotes(ctx, h, buildSelectChangedNotesQuery)
	if err != nil {
		return false, err
	}

	resp, err := e.transport.SyncChanges(ctx, cred, models.ChangesRequest{
		LastUSN: local.USN,
		Decks:   decks,
		Changes: notes,
	})
	if err != nil {
		return false, err
	}

	tx, err := h.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer tx.Rollback()

	for _, deck := range resp.Decks {
		if err := e.applyRemoteDeck(ctx, tx, deck, resp.NewUSN); err != nil {
			return false, err
		}
	}
	for _, note := range resp.Changes {
		if err := e.applyRemoteNote(ctx, tx, note, resp.NewUSN); err != nil {
			return false, err
		}
	}

	for _, build := range []func(int64) (string, []any, error){buildMarkDecksSyncedQuery, buildMarkNotesSyncedQuery} {
		query, args, err := build(resp.NewUSN)
		if err != nil {
			return false, wrapBuildErr(err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	local.USN = resp.NewUSN
	local.LastSync = local.Modified
	if err := writeMeta(ctx, tx, local); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	changed := len(decks) > 0 || len(notes) > 0 || len(resp.Decks) > 0 || len(resp.Changes) > 0

	e.logger.Info().
		Int("sent", len(notes)).
		Int("received", len(resp.Changes)).
		Int64("usn", resp.NewUSN).
		Msg("incremental sync finished")

	return changed, nil
}

// applyRemoteDeck upserts a remote deck by name. Names are the stable deck
// identity across synced copies; ids may differ until a full sync aligns
// them.
func (e *SQLiteEngine) applyRemoteDeck(ctx context.Context, q querier, deck models.Deck, usn int64) error {
	query, args, err := buildSelectDeckIDQuery(deck.Name)
	if err != nil {
		return wrapBuildErr(err)
	}

	var id int64
	err = q.QueryRowContext(ctx, query, args...).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		query, args, err = sq.Insert("decks").
			Columns("name", "mod", "usn").
			Values(deck.Name, deck.Modified, usn).
			ToSql()
	case err != nil:
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	default:
		query, args, err = sq.Update("decks").
			Set("mod", deck.Modified).
			Set("usn", usn).
			Where(sq.Eq{"id": id}).
			ToSql()
	}
	if err != nil {
		return wrapBuildErr(err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// applyRemoteNote upserts a remote note by guid, creating its deck on
// demand. Remote deletions arrive as notes with the deleted flag set.
func (e *SQLiteEngine) applyRemoteNote(ctx context.Context, q querier, note models.Note, usn int64) error {
	fields, err := encodeFields(note.Fields)
	if err != nil {
		return err
	}

	query, args, err := sq.Select("id").
		From("notes").
		Where(sq.Eq{"guid": note.GUID}).
		ToSql()
	if err != nil {
		return wrapBuildErr(err)
	}

	var id int64
	err = q.QueryRowContext(ctx, query, args...).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if note.Deleted {
			return nil // deletion of a note we never had
		}
		query, args, err = sq.Insert("notes").
			Columns("guid", "deck_id", "fields", "tags", "mod", "usn", "deleted").
			Values(note.GUID, note.DeckID, fields, encodeTags(note.Tags), note.Modified, usn, 0).
			ToSql()
	case err != nil:
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	default:
		query, args, err = sq.Update("notes").
			Set("deck_id", note.DeckID).
			Set("fields", fields).
			Set("tags", encodeTags(note.Tags)).
			Set("mod", note.Modified).
			Set("usn", usn).
			Set("deleted", boolToInt(note.Deleted)).
			Where(sq.Eq{"id": id}).
			ToSql()
	}
	if err != nil {
		return wrapBuildErr(err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (e *SQLiteEngine) FullUpload(ctx context.Context, h *store.Handle, cred models.SyncCredential) error {
	snap, err := e.snapshot(ctx, h)
	if err != nil {
		return err
	}

	remote, err := e.transport.FullUpload(ctx, cred, snap)
	if err != nil {
		return err
	}

	tx, err := h.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer tx.Rollback()

	for _, build := range []func(int64) (string, []any, error){buildMarkDecksSyncedQuery, buildMarkNotesSyncedQuery} {
		query, args, err := build(remote.USN)
		if err != nil {
			return wrapBuildErr(err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	meta := snap.Meta
	meta.SchemaModified = remote.SchemaModified
	meta.USN = remote.USN
	meta.LastSync = meta.Modified
	if err := writeMeta(ctx, tx, meta); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	e.logger.Info().
		Int("decks", len(snap.Decks)).
		Int("notes", len(snap.Notes)).
		Msg("full upload finished")

	return nil
}

func (e *SQLiteEngine) FullDownload(ctx context.Context, h *store.Handle, cred models.SyncCredential) error {
	snap, err := e.transport.FullDownload(ctx, cred)
	if err != nil {
		return err
	}

	tx, err := h.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer tx.Rollback()

	for _, table := range []string{"notes", "decks"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	for _, deck := range snap.Decks {
		query, args, err := sq.Insert("decks").
			Columns("id", "name", "mod", "usn").
			Values(deck.ID, deck.Name, deck.Modified, deck.USN).
			ToSql()
		if err != nil {
			return wrapBuildErr(err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	for _, note := range snap.Notes {
		fields, err := encodeFields(note.Fields)
		if err != nil {
			return err
		}

		query, args, err := sq.Insert("notes").
			Columns("id", "guid", "deck_id", "fields", "tags", "mod", "usn", "deleted").
			Values(note.ID, note.GUID, note.DeckID, fields, encodeTags(note.Tags), note.Modified, note.USN, boolToInt(note.Deleted)).
			ToSql()
		if err != nil {
			return wrapBuildErr(err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	meta := snap.Meta
	meta.LastSync = meta.Modified
	if err := writeMeta(ctx, tx, meta); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	e.logger.Info().
		Int("decks", len(snap.Decks)).
		Int("notes", len(snap.Notes)).
		Msg("full download finished")

	return nil
}

func (e *SQLiteEngine) snapshot(ctx context.Context, h *store.Handle) (models.Snapshot, error) {
	meta, err := readMeta(ctx, h)
	if err != nil {
		return models.Snapshot{}, err
	}

	decks, err := e.allDecks(ctx, h)
	if err != nil {
		return models.Snapshot{}, err
	}

	notes, err := e.selectNotes(ctx, h, buildSelectAllNotesQuery)
	if err != nil {
		return models.Snapshot{}, err
	}

	return models.Snapshot{Meta: meta, Decks: decks, Notes: notes}, nil
}

func (e *SQLiteEngine) changedDecks(ctx context.Context, q querier) ([]models.Deck, error) {
	return scanDecks(ctx, q, buildSelectChangedDecksQuery)
}

func (e *SQLiteEngine) allDecks(ctx context.Context, q querier) ([]models.Deck, error) {
	return scanDecks(ctx, q, buildSelectAllDecksQuery)
}

func scanDecks(ctx context.Context, q querier, build func() (string, []any, error)) ([]models.Deck, error) {
	query, args, err := build()
	if err != nil {
		return nil, wrapBuildErr(err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	decks := make([]models.Deck, 0)
	for rows.Next() {
		var deck models.Deck
		if err := rows.Scan(&deck.ID, &deck.Name, &deck.Modified, &deck.USN); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		decks = append(decks, deck)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return decks, nil
}

func (e *SQLiteEngine) selectNotes(ctx context.Context, q querier, build func() (string, []any, error)) ([]models.Note, error) {
	query, args, err := build()
	if err != nil {
		return nil, wrapBuildErr(err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var (
			note      models.Note
			rawFields string
			rawTags   string
			deleted   int
		)
		err := rows.Scan(&note.ID, &note.GUID, &note.DeckID, &rawFields, &rawTags, &note.Modified, &note.USN, &deleted)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		note.Fields, err = decodeFields(rawFields)
		if err != nil {
			return nil, err
		}
		note.Tags = decodeTags(rawTags)
		note.Deleted = deleted != 0

		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
