package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-card-keeper/internal/adapter"
	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"github.com/MKhiriev/go-card-keeper/models"
)

// stubTransport implements adapter.SyncTransport with overridable calls.
type stubTransport struct {
	meta         func(ctx context.Context, cred models.SyncCredential) (models.SyncMeta, error)
	syncChanges  func(ctx context.Context, cred models.SyncCredential, req models.ChangesRequest) (models.ChangesResponse, error)
	fullUpload   func(ctx context.Context, cred models.SyncCredential, snap models.Snapshot) (models.SyncMeta, error)
	fullDownload func(ctx context.Context, cred models.SyncCredential) (models.Snapshot, error)
}

func (s *stubTransport) Meta(ctx context.Context, cred models.SyncCredential) (models.SyncMeta, error) {
	return s.meta(ctx, cred)
}

func (s *stubTransport) SyncChanges(ctx context.Context, cred models.SyncCredential, req models.ChangesRequest) (models.ChangesResponse, error) {
	return s.syncChanges(ctx, cred, req)
}

func (s *stubTransport) FullUpload(ctx context.Context, cred models.SyncCredential, snap models.Snapshot) (models.SyncMeta, error) {
	return s.fullUpload(ctx, cred, snap)
}

func (s *stubTransport) FullDownload(ctx context.Context, cred models.SyncCredential) (models.Snapshot, error) {
	return s.fullDownload(ctx, cred)
}

func (s *stubTransport) Login(ctx context.Context, endpoint, user, password string) (string, error) {
	return "", nil
}

var testCred = models.SyncCredential{User: "user", Key: "key", Endpoint: "http://sync.test"}

func TestClassifySyncStatus(t *testing.T) {
	tests := []struct {
		name       string
		local      models.CollectionMeta
		remote     models.SyncMeta
		localEmpty bool
		want       models.SyncStatus
	}{
		{
			name:       "both sides empty",
			remote:     models.SyncMeta{Empty: true},
			localEmpty: true,
			want:       models.SyncStatusNoChanges,
		},
		{
			name:   "remote empty with local content",
			local:  models.CollectionMeta{Modified: 5},
			remote: models.SyncMeta{Empty: true},
			want:   models.SyncStatusFullUpload,
		},
		{
			name:       "schema mismatch with empty local side",
			local:      models.CollectionMeta{SchemaModified: 0},
			remote:     models.SyncMeta{SchemaModified: 99},
			localEmpty: true,
			want:       models.SyncStatusFullDownload,
		},
		{
			name:   "schema mismatch with local content",
			local:  models.CollectionMeta{Modified: 5, SchemaModified: 1},
			remote: models.SyncMeta{SchemaModified: 99},
			want:   models.SyncStatusFullSync,
		},
		{
			name:   "in step",
			local:  models.CollectionMeta{Modified: 5, LastSync: 5, SchemaModified: 1, USN: 10},
			remote: models.SyncMeta{SchemaModified: 1, USN: 10},
			want:   models.SyncStatusNoChanges,
		},
		{
			name:   "local changes pending",
			local:  models.CollectionMeta{Modified: 7, LastSync: 5, SchemaModified: 1, USN: 10},
			remote: models.SyncMeta{SchemaModified: 1, USN: 10},
			want:   models.SyncStatusNormal,
		},
		{
			name:   "remote changes pending",
			local:  models.CollectionMeta{Modified: 5, LastSync: 5, SchemaModified: 1, USN: 10},
			remote: models.SyncMeta{SchemaModified: 1, USN: 12},
			want:   models.SyncStatusNormal,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := classifySyncStatus(test.local, test.remote, test.localEmpty)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestSyncStatus_TransportErrorPropagates(t *testing.T) {
	transport := &stubTransport{
		meta: func(ctx context.Context, cred models.SyncCredential) (models.SyncMeta, error) {
			return models.SyncMeta{}, adapter.ErrSyncNetwork
		},
	}
	e := NewSQLiteEngine(transport, logger.Nop())
	h := newTestHandle(t)

	_, err := e.SyncStatus(context.Background(), h, testCred)
	assert.ErrorIs(t, err, adapter.ErrSyncNetwork)
}

func TestIncrementalSync(t *testing.T) {
	ctx := context.Background()

	var sent models.ChangesRequest
	transport := &stubTransport{
		syncChanges: func(ctx context.Context, cred models.SyncCredential, req models.ChangesRequest) (models.ChangesResponse, error) {
			sent = req
			return models.ChangesResponse{
				NewUSN: 11,
				Decks:  []models.Deck{{Name: "Remote", Modified: 100}},
				Changes: []models.Note{
					{GUID: "remote-guid", DeckID: 1, Fields: map[string]string{"Front": "remote"}, Modified: 100},
				},
			}, nil
		},
	}
	e := NewSQLiteEngine(transport, logger.Nop())
	h := newTestHandle(t)

	localID, err := e.AddNote(ctx, h, models.NoteInput{
		DeckName: "Japanese",
		Fields:   map[string]string{"Front": "local"},
	})
	require.NoError(t, err)

	changed, err := e.IncrementalSync(ctx, h, testCred)
	require.NoError(t, err)
	assert.True(t, changed)

	t.Run("local deltas are pushed", func(t *testing.T) {
		require.Len(t, sent.Changes, 1)
		assert.Equal(t, localID, sent.Changes[0].ID)
		assert.Equal(t, int64(-1), sent.Changes[0].USN)
		require.Len(t, sent.Decks, 1)
		assert.Equal(t, "Japanese", sent.Decks[0].Name)
	})

	t.Run("remote deltas are applied", func(t *testing.T) {
		names, err := e.DeckNames(ctx, h)
		require.NoError(t, err)
		assert.Contains(t, names, "Remote")

		ids, err := e.FindNotes(ctx, h, "remote")
		require.NoError(t, err)
		assert.Len(t, ids, 1)
	})

	t.Run("sequence numbers are recorded", func(t *testing.T) {
		meta, err := readMeta(ctx, h)
		require.NoError(t, err)
		assert.Equal(t, int64(11), meta.USN)
		assert.Equal(t, meta.Modified, meta.LastSync)

		notes, err := e.selectNotes(ctx, h, buildSelectChangedNotesQuery)
		require.NoError(t, err)
		assert.Empty(t, notes, "no rows may stay marked as changed after a sync")
	})

	t.Run("repeat sync reports nothing to do", func(t *testing.T) {
		transport.syncChanges = func(ctx context.Context, cred models.SyncCredential, req models.ChangesRequest) (models.ChangesResponse, error) {
			assert.Empty(t, req.Changes)
			return models.ChangesResponse{NewUSN: 11}, nil
		}

		changed, err := e.IncrementalSync(ctx, h, testCred)
		require.NoError(t, err)
		assert.False(t, changed)
	})
}

func TestIncrementalSync_RemoteDeletion(t *testing.T) {
	ctx := context.Background()
	h := newTestHandle(t)

	var localGUID string
	transport := &stubTransport{
		syncChanges: func(ctx context.Context, cred models.SyncCredential, req models.ChangesRequest) (models.ChangesResponse, error) {
			return models.ChangesResponse{
				NewUSN: 2,
				Changes: []models.Note{
					{GUID: localGUID, Deleted: true, Modified: 100},
				},
			}, nil
		},
	}
	e := NewSQLiteEngine(transport, logger.Nop())

	id, err := e.AddNote(ctx, h, models.NoteInput{
		DeckName: "Japanese",
		Fields:   map[string]string{"Front": "x"},
	})
	require.NoError(t, err)

	infos, err := e.NotesInfo(ctx, h, []int64{id})
	require.NoError(t, err)
	require.Len(t, infos, 1)
	localGUID = infos[0].GUID

	_, err = e.IncrementalSync(ctx, h, testCred)
	require.NoError(t, err)

	ids, err := e.FindNotes(ctx, h, "")
	require.NoError(t, err)
	assert.Empty(t, ids, "remotely deleted note must disappear locally")
}

func TestFullUpload(t *testing.T) {
	ctx := context.Background()

	var uploaded models.Snapshot
	transport := &stubTransport{
		fullUpload: func(ctx context.Context, cred models.SyncCredential, snap models.Snapshot) (models.SyncMeta, error) {
			uploaded = snap
			return models.SyncMeta{SchemaModified: 77, USN: 5}, nil
		},
	}
	e := NewSQLiteEngine(transport, logger.Nop())
	h := newTestHandle(t)

	_, err := e.AddNote(ctx, h, models.NoteInput{
		DeckName: "Japanese",
		Fields:   map[string]string{"Front": "x"},
	})
	require.NoError(t, err)

	require.NoError(t, e.FullUpload(ctx, h, testCred))

	assert.Len(t, uploaded.Decks, 1)
	assert.Len(t, uploaded.Notes, 1)

	meta, err := readMeta(ctx, h)
	require.NoError(t, err)
	assert.Equal(t, int64(77), meta.SchemaModified)
	assert.Equal(t, int64(5), meta.USN)
	assert.Equal(t, meta.Modified, meta.LastSync)
}

func TestFullDownload_ReplacesLocalState(t *testing.T) {
	ctx := context.Background()

	transport := &stubTransport{
		fullDownload: func(ctx context.Context, cred models.SyncCredential) (models.Snapshot, error) {
			return models.Snapshot{
				Meta:  models.CollectionMeta{Modified: 3, SchemaModified: 77, USN: 5},
				Decks: []models.Deck{{ID: 1, Name: "Remote", Modified: 1, USN: 5}},
				Notes: []models.Note{
					{ID: 1, GUID: "g1", DeckID: 1, Fields: map[string]string{"Front": "remote"}, Modified: 2, USN: 5},
				},
			}, nil
		},
	}
	e := NewSQLiteEngine(transport, logger.Nop())
	h := newTestHandle(t)

	// pre-existing local state must be wiped
	_, err := e.AddNote(ctx, h, models.NoteInput{
		DeckName: "Local",
		Fields:   map[string]string{"Front": "local"},
	})
	require.NoError(t, err)

	require.NoError(t, e.FullDownload(ctx, h, testCred))

	names, err := e.DeckNames(ctx, h)
	require.NoError(t, err)
	assert.Equal(t, []string{"Remote"}, names)

	ids, err := e.FindNotes(ctx, h, "")
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids)

	meta, err := readMeta(ctx, h)
	require.NoError(t, err)
	assert.Equal(t, int64(77), meta.SchemaModified)
	assert.Equal(t, int64(5), meta.USN)
	assert.Equal(t, int64(3), meta.LastSync)
}
