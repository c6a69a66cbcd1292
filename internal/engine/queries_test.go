package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFindNotesQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "empty query matches all live notes",
			query:    "",
			wantSQL:  "SELECT n.id FROM notes n WHERE n.deleted = ? ORDER BY n.id",
			wantArgs: []any{0},
		},
		{
			name:     "deck filter joins decks by name",
			query:    "deck:Japanese",
			wantSQL:  "SELECT n.id FROM notes n JOIN decks d ON d.id = n.deck_id WHERE n.deleted = ? AND d.name = ? ORDER BY n.id",
			wantArgs: []any{0, "Japanese"},
		},
		{
			name:     "quoted deck name is unquoted",
			query:    `deck:"Core 2k"`,
			wantSQL:  "SELECT n.id FROM notes n JOIN decks d ON d.id = n.deck_id WHERE n.deleted = ? AND d.name = ? ORDER BY n.id",
			wantArgs: []any{0, "Core 2k"},
		},
		{
			name:     "free text searches fields",
			query:    "kanji",
			wantSQL:  `SELECT n.id FROM notes n WHERE n.deleted = ? AND n.fields LIKE ? ESCAPE '\' ORDER BY n.id`,
			wantArgs: []any{0, "%kanji%"},
		},
		{
			name:     "like metacharacters are escaped",
			query:    "100%_done",
			wantSQL:  `SELECT n.id FROM notes n WHERE n.deleted = ? AND n.fields LIKE ? ESCAPE '\' ORDER BY n.id`,
			wantArgs: []any{0, `%100\%\_done%`},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			gotSQL, gotArgs, err := buildFindNotesQuery(test.query)
			require.NoError(t, err)

			assert.Equal(t, test.wantSQL, gotSQL)
			assert.Equal(t, test.wantArgs, gotArgs)
		})
	}
}

func TestBuildInsertNoteQuery(t *testing.T) {
	gotSQL, gotArgs, err := buildInsertNoteQuery("guid-1", 42, `{"Front":"a"}`, "tag1 tag2", 1700000000000)
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO notes (guid,deck_id,fields,tags,mod,usn,deleted) VALUES (?,?,?,?,?,?,?)", gotSQL)
	assert.Equal(t, []any{"guid-1", int64(42), `{"Front":"a"}`, "tag1 tag2", int64(1700000000000), -1, 0}, gotArgs)
}

func TestBuildSoftDeleteNotesQuery(t *testing.T) {
	gotSQL, gotArgs, err := buildSoftDeleteNotesQuery([]int64{1, 2, 3}, 1700000000000)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE notes SET deleted = ?, mod = ?, usn = ? WHERE id IN (?,?,?)", gotSQL)
	assert.Equal(t, []any{1, int64(1700000000000), -1, int64(1), int64(2), int64(3)}, gotArgs)
}

func TestBuildMarkNotesSyncedQuery(t *testing.T) {
	gotSQL, gotArgs, err := buildMarkNotesSyncedQuery(7)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE notes SET usn = ? WHERE usn = ?", gotSQL)
	assert.Equal(t, []any{int64(7), -1}, gotArgs)
}
