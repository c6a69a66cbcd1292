// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package engine

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Query builders are kept separate from execution so they can be unit-tested
// without a database. sqlite uses the default "?" placeholder format.

func buildSelectDeckNamesQuery() (string, []any, error) {
	return sq.Select("name").
		From("decks").
		OrderBy("name").
		ToSql()
}

func buildSelectDecksQuery() (string, []any, error) {
	return sq.Select("id", "name").
		From("decks").
		OrderBy("name").
		ToSql()
}

func buildSelectDeckIDQuery(name string) (string, []any, error) {
	return sq.Select("id").
		From("decks").
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildInsertDeckQuery(name string, mod int64) (string, []any, error) {
	return sq.Insert("decks").
		Columns("name", "mod", "usn").
		Values(name, mod, -1).
		ToSql()
}

func buildDeleteDecksQuery(ids []int64) (string, []any, error) {
	return sq.Delete("decks").
		Where(sq.Eq{"id": ids}).
		ToSql()
}

func buildDeleteDeckNotesQuery(deckIDs []int64) (string, []any, error) {
	return sq.Delete("notes").
		Where(sq.Eq{"deck_id": deckIDs}).
		ToSql()
}

func buildInsertNoteQuery(guid string, deckID int64, fields, tags string, mod int64) (string, []any, error) {
	return sq.Insert("notes").
		Columns("guid", "deck_id", "fields", "tags", "mod", "usn", "deleted").
		Values(guid, deckID, fields, tags, mod, -1, 0).
		ToSql()
}

func buildSelectNotesInfoQuery(ids []int64) (string, []any, error) {
	return sq.Select("n.id", "n.guid", "d.name", "n.fields", "n.tags", "n.mod").
		From("notes n").
		Join("decks d ON d.id = n.deck_id").
		Where(sq.Eq{"n.id": ids}).
		Where(sq.Eq{"n.deleted": 0}).
		OrderBy("n.id").
		ToSql()
}

func buildSelectNoteFieldsQuery(id int64) (string, []any, error) {
	return sq.Select("fields").
		From("notes").
		Where(sq.Eq{"id": id, "deleted": 0}).
		ToSql()
}

func buildUpdateNoteFieldsQuery(id int64, fields string, mod int64) (string, []any, error) {
	return sq.Update("notes").
		Set("fields", fields).
		Set("mod", mod).
		Set("usn", -1).
		Where(sq.Eq{"id": id, "deleted": 0}).
		ToSql()
}

func buildSoftDeleteNotesQuery(ids []int64, mod int64) (string, []any, error) {
	return sq.Update("notes").
		Set("deleted", 1).
		Set("mod", mod).
		Set("usn", -1).
		Where(sq.Eq{"id": ids}).
		ToSql()
}

// buildFindNotesQuery supports three query shapes: empty (all live notes),
// "deck:Name" (deck filter), and free text (substring over the serialized
// fields).
func buildFindNotesQuery(query string) (string, []any, error) {
	builder := sq.Select("n.id").
		From("notes n").
		Where(sq.Eq{"n.deleted": 0}).
		OrderBy("n.id")

	query = strings.TrimSpace(query)
	switch {
	case query == "":
		// all live notes
	case strings.HasPrefix(query, "deck:"):
		deckName := strings.Trim(strings.TrimPrefix(query, "deck:"), `"`)
		builder = builder.
			Join("decks d ON d.id = n.deck_id").
			Where(sq.Eq{"d.name": deckName})
	default:
		// sqlite needs an explicit ESCAPE clause for the escaped wildcards
		builder = builder.Where(sq.Expr(`n.fields LIKE ? ESCAPE '\'`, "%"+escapeLike(query)+"%"))
	}

	return builder.ToSql()
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `%`, `\%`)
	return strings.ReplaceAll(s, `_`, `\_`)
}

func buildSelectChangedDecksQuery() (string, []any, error) {
	return sq.Select("id", "name", "mod", "usn").
		From("decks").
		Where(sq.Eq{"usn": -1}).
		OrderBy("id").
		ToSql()
}

func buildSelectAllDecksQuery() (string, []any, error) {
	return sq.Select("id", "name", "mod", "usn").
		From("decks").
		OrderBy("id").
		ToSql()
}

func buildMarkDecksSyncedQuery(usn int64) (string, []any, error) {
	return sq.Update("decks").
		Set("usn", usn).
		Where(sq.Eq{"usn": -1}).
		ToSql()
}

func buildMarkNotesSyncedQuery(usn int64) (string, []any, error) {
	return sq.Update("notes").
		Set("usn", usn).
		Where(sq.Eq{"usn": -1}).
		ToSql()
}

func buildSelectChangedNotesQuery() (string, []any, error) {
	return sq.Select("id", "guid", "deck_id", "fields", "tags", "mod", "usn", "deleted").
		From("notes").
		Where(sq.Eq{"usn": -1}).
		OrderBy("id").
		ToSql()
}

func buildSelectAllNotesQuery() (string, []any, error) {
	return sq.Select("id", "guid", "deck_id", "fields", "tags", "mod", "usn", "deleted").
		From("notes").
		OrderBy("id").
		ToSql()
}

func buildCountLiveNotesQuery() (string, []any, error) {
	return sq.Select("COUNT(*)").
		From("notes").
		Where(sq.Eq{"deleted": 0}).
		ToSql()
}

func wrapBuildErr(err error) error {
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}
