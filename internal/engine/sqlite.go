// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package engine

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-card-keeper/internal/adapter"
	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"github.com/MKhiriev/go-card-keeper/internal/store"
	"github.com/MKhiriev/go-card-keeper/models"
)

// querier is satisfied by both *sql.DB (via the embedded field of
// store.Handle) and *sql.Tx, so query helpers work inside and outside
// transactions.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLiteEngine implements Engine on the sqlite collection schema.
type SQLiteEngine struct {
	transport adapter.SyncTransport
	logger    *logger.Logger
}

// NewSQLiteEngine returns an engine bound to the given sync transport.
func NewSQLiteEngine(transport adapter.SyncTransport, log *logger.Logger) *SQLiteEngine {
	return &SQLiteEngine{
		transport: transport,
		logger:    log,
	}
}

var _ Engine = (*SQLiteEngine)(nil)

func (e *SQLiteEngine) DeckNames(ctx context.Context, h *store.Handle) ([]string, error) {
	query, args, err := buildSelectDeckNamesQuery()
	if err != nil {
		return nil, wrapBuildErr(err)
	}

	rows, err := h.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return names, nil
}

func (e *SQLiteEngine) DeckNamesAndIDs(ctx context.Context, h *store.Handle) (map[string]int64, error) {
	query, args, err := buildSelectDecksQuery()
	if err != nil {
		return nil, wrapBuildErr(err)
	}

	rows, err := h.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	decks := make(map[string]int64)
	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		decks[name] = id
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return decks, nil
}

func (e *SQLiteEngine) CreateDeck(ctx context.Context, h *store.Handle, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, ErrEmptyDeckName
	}

	tx, err := h.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer tx.Rollback()

	id, err := e.ensureDeck(ctx, tx, name)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return id, nil
}

// ensureDeck returns the deck id for name, creating the deck and bumping
// the collection counter when it does not exist yet.
func (e *SQLiteEngine) ensureDeck(ctx context.Context, q querier, name string) (int64, error) {
	query, args, err := buildSelectDeckIDQuery(name)
	if err != nil {
		return 0, wrapBuildErr(err)
	}

	var id int64
	err = q.QueryRowContext(ctx, query, args...).Scan(&id)
	switch {
	case err == nil:
		return id, nil
	case !errors.Is(err, sql.ErrNoRows):
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	query, args, err = buildInsertDeckQuery(name, models.Now())
	if err != nil {
		return 0, wrapBuildErr(err)
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	id, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := e.bumpMod(ctx, q); err != nil {
		return 0, err
	}

	return id, nil
}

func (e *SQLiteEngine) DeleteDecks(ctx context.Context, h *store.Handle, names []string) error {
	if len(names) == 0 {
		return nil
	}

	tx, err := h.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer tx.Rollback()

	ids := make([]int64, 0, len(names))
	for _, name := range names {
		query, args, err := buildSelectDeckIDQuery(name)
		if err != nil {
			return wrapBuildErr(err)
		}

		var id int64
		err = tx.QueryRowContext(ctx, query, args...).Scan(&id)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			continue
		case err != nil:
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return tx.Commit()
	}

	query, args, err := buildDeleteDeckNotesQuery(ids)
	if err != nil {
		return wrapBuildErr(err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err = buildDeleteDecksQuery(ids)
	if err != nil {
		return wrapBuildErr(err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := e.bumpMod(ctx, tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (e *SQLiteEngine) AddNote(ctx context.Context, h *store.Handle, input models.NoteInput) (int64, error) {
	ids, err := e.AddNotes(ctx, h, []models.NoteInput{input})
	if err != nil {
		return 0, err
	}
	return ids[0], nil
}

func (e *SQLiteEngine) AddNotes(ctx context.Context, h *store.Handle, inputs []models.NoteInput) ([]int64, error) {
	for _, input := range inputs {
		if strings.TrimSpace(input.DeckName) == "" {
			return nil, ErrEmptyDeckName
		}
		if !hasFieldContent(input.Fields) {
			return nil, ErrEmptyNoteFields
		}
	}
	if len(inputs) == 0 {
		return []int64{}, nil
	}

	tx, err := h.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer tx.Rollback()

	ids := make([]int64, 0, len(inputs))
	for _, input := range inputs {
		deckID, err := e.ensureDeck(ctx, tx, strings.TrimSpace(input.DeckName))
		if err != nil {
			return nil, err
		}

		fields, err := encodeFields(input.Fields)
		if err != nil {
			return nil, err
		}

		query, args, err := buildInsertNoteQuery(uuid.NewString(), deckID, fields, encodeTags(input.Tags), models.Now())
		if err != nil {
			return nil, wrapBuildErr(err)
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		ids = append(ids, id)
	}

	if err := e.bumpMod(ctx, tx); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return ids, nil
}

func (e *SQLiteEngine) FindNotes(ctx context.Context, h *store.Handle, query string) ([]int64, error) {
	sqlQuery, args, err := buildFindNotesQuery(query)
	if err != nil {
		return nil, wrapBuildErr(err)
	}

	rows, err := h.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

func (e *SQLiteEngine) NotesInfo(ctx context.Context, h *store.Handle, ids []int64) ([]models.NoteInfo, error) {
	if len(ids) == 0 {
		return []models.NoteInfo{}, nil
	}

	query, args, err := buildSelectNotesInfoQuery(ids)
	if err != nil {
		return nil, wrapBuildErr(err)
	}

	rows, err := h.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	byID := make(map[int64]models.NoteInfo, len(ids))
	for rows.Next() {
		var (
			info      models.NoteInfo
			rawFields string
			rawTags   string
		)
		if err := rows.Scan(&info.NoteID, &info.GUID, &info.DeckName, &rawFields, &rawTags, &info.Modified); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		info.Fields, err = decodeFields(rawFields)
		if err != nil {
			return nil, err
		}
		info.Tags = decodeTags(rawTags)

		byID[info.NoteID] = info
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	// preserve request order, skipping unknown ids
	infos := make([]models.NoteInfo, 0, len(byID))
	for _, id := range ids {
		if info, ok := byID[id]; ok {
			infos = append(infos, info)
		}
	}

	return infos, nil
}

func (e *SQLiteEngine) UpdateNoteFields(ctx context.Context, h *store.Handle, id int64, fields map[string]string) error {
	if !hasFieldContent(fields) {
		return ErrEmptyNoteFields
	}

	tx, err := h.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer tx.Rollback()

	query, args, err := buildSelectNoteFieldsQuery(id)
	if err != nil {
		return wrapBuildErr(err)
	}

	var rawFields string
	err = tx.QueryRowContext(ctx, query, args...).Scan(&rawFields)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%w: note %d", ErrNoteNotFound, id)
	case err != nil:
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	current, err := decodeFields(rawFields)
	if err != nil {
		return err
	}
	for name, value := range fields {
		current[name] = value
	}

	encoded, err := encodeFields(current)
	if err != nil {
		return err
	}

	query, args, err = buildUpdateNoteFieldsQuery(id, encoded, models.Now())
	if err != nil {
		return wrapBuildErr(err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := e.bumpMod(ctx, tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (e *SQLiteEngine) DeleteNotes(ctx context.Context, h *store.Handle, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	tx, err := h.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer tx.Rollback()

	query, args, err := buildSoftDeleteNotesQuery(ids, models.Now())
	if err != nil {
		return wrapBuildErr(err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected > 0 {
		if err := e.bumpMod(ctx, tx); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (e *SQLiteEngine) ModCount(ctx context.Context, h *store.Handle) (int64, error) {
	meta, err := readMeta(ctx, h)
	if err != nil {
		return 0, err
	}
	return meta.Modified, nil
}

func (e *SQLiteEngine) FixIntegrity(ctx context.Context, h *store.Handle) (models.IntegrityReport, error) {
	report := models.IntegrityReport{OK: true, Problems: []string{}}

	var verdict string
	if err := h.QueryRowContext(ctx, "PRAGMA integrity_check").Scan(&verdict); err != nil {
		return models.IntegrityReport{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if verdict != "ok" {
		report.OK = false
		report.Problems = append(report.Problems, "database integrity check failed: "+verdict)
	}

	// Orphaned notes (deck removed out from under them) are safe to drop.
	res, err := h.ExecContext(ctx, "DELETE FROM notes WHERE deck_id NOT IN (SELECT id FROM decks)")
	if err != nil {
		return models.IntegrityReport{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	orphans, err := res.RowsAffected()
	if err != nil {
		return models.IntegrityReport{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if orphans > 0 {
		report.Problems = append(report.Problems, fmt.Sprintf("removed %d notes with missing decks", orphans))
		if err := e.bumpMod(ctx, h); err != nil {
			return models.IntegrityReport{}, err
		}
	}

	e.logger.Debug().
		Bool("ok", report.OK).
		Int("problems", len(report.Problems)).
		Msg("integrity check finished")

	return report, nil
}

// bumpMod advances the collection's modification counter. Every mutating
// operation does this exactly once, inside its own transaction.
func (e *SQLiteEngine) bumpMod(ctx context.Context, q querier) error {
	query, args, err := sq.Update("col").
		Set("mod", sq.Expr("mod + 1")).
		Where(sq.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return wrapBuildErr(err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func readMeta(ctx context.Context, q querier) (models.CollectionMeta, error) {
	query, args, err := sq.Select("mod", "scm", "usn", "last_sync").
		From("col").
		Where(sq.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return models.CollectionMeta{}, wrapBuildErr(err)
	}

	var meta models.CollectionMeta
	err = q.QueryRowContext(ctx, query, args...).
		Scan(&meta.Modified, &meta.SchemaModified, &meta.USN, &meta.LastSync)
	if err != nil {
		return models.CollectionMeta{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return meta, nil
}

func writeMeta(ctx context.Context, q querier, meta models.CollectionMeta) error {
	query, args, err := sq.Update("col").
		Set("mod", meta.Modified).
		Set("scm", meta.SchemaModified).
		Set("usn", meta.USN).
		Set("last_sync", meta.LastSync).
		Where(sq.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return wrapBuildErr(err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func hasFieldContent(fields map[string]string) bool {
	for _, value := range fields {
		if strings.TrimSpace(value) != "" {
			return true
		}
	}
	return false
}

// Fields are stored as a JSON object in a single TEXT column; tags as a
// space-separated list, mirroring the wire shape of the action protocol.

func encodeFields(fields map[string]string) (string, error) {
	encoded, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("error encoding note fields: %w", err)
	}
	return string(encoded), nil
}

func decodeFields(raw string) (map[string]string, error) {
	fields := make(map[string]string)
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("error decoding note fields: %w", err)
	}
	return fields, nil
}

func encodeTags(tags []string) string {
	return strings.Join(tags, " ")
}

func decodeTags(raw string) []string {
	return strings.Fields(raw)
}
