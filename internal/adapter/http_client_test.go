package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-card-keeper/models"
)

func testCred(endpoint string) models.SyncCredential {
	return models.SyncCredential{
		User:     "user@example.com",
		Key:      "hkey-test",
		Endpoint: endpoint,
	}
}

func TestMeta_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sync/meta", r.URL.Path)
		assert.Equal(t, "Bearer hkey-test", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(models.SyncMeta{Modified: 42, SchemaModified: 7, USN: 3})
	}))
	defer srv.Close()

	tr := NewHTTPSyncTransport()
	meta, err := tr.Meta(context.Background(), testCred(srv.URL))
	require.NoError(t, err)

	assert.Equal(t, int64(42), meta.Modified)
	assert.Equal(t, int64(7), meta.SchemaModified)
	assert.Equal(t, int64(3), meta.USN)
}

func TestMeta_AuthError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusForbidden)
	}))
	defer srv.Close()

	tr := NewHTTPSyncTransport()
	_, err := tr.Meta(context.Background(), testCred(srv.URL))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSyncAuth)
}

func TestMeta_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	tr := NewHTTPSyncTransport()
	_, err := tr.Meta(context.Background(), testCred(srv.URL))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSyncServer)
}

func TestMeta_NetworkError(t *testing.T) {
	// closed port: connection refused
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	tr := NewHTTPSyncTransport()
	_, err := tr.Meta(context.Background(), testCred(url))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSyncNetwork)
}

func TestMeta_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	tr := NewHTTPSyncTransport()
	_, err := tr.Meta(context.Background(), testCred(srv.URL))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSyncProtocol)
}

func TestSyncChanges_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sync/changes", r.URL.Path)

		var req models.ChangesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(5), req.LastUSN)
		require.Len(t, req.Changes, 1)

		json.NewEncoder(w).Encode(models.ChangesResponse{
			NewUSN: 6,
			Changes: []models.Note{
				{GUID: "remote-1", Fields: map[string]string{"Front": "hi"}},
			},
		})
	}))
	defer srv.Close()

	tr := NewHTTPSyncTransport()
	resp, err := tr.SyncChanges(context.Background(), testCred(srv.URL), models.ChangesRequest{
		LastUSN: 5,
		Changes: []models.Note{{GUID: "local-1"}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(6), resp.NewUSN)
	require.Len(t, resp.Changes, 1)
	assert.Equal(t, "remote-1", resp.Changes[0].GUID)
}

func TestFullUpload_ReturnsMeta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sync/upload", r.URL.Path)

		var snap models.Snapshot
		require.NoError(t, json.NewDecoder(r.Body).Decode(&snap))

		json.NewEncoder(w).Encode(models.SyncMeta{Modified: snap.Meta.Modified, SchemaModified: 99, USN: 1})
	}))
	defer srv.Close()

	tr := NewHTTPSyncTransport()
	meta, err := tr.FullUpload(context.Background(), testCred(srv.URL), models.Snapshot{
		Meta: models.CollectionMeta{Modified: 1234},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(99), meta.SchemaModified)
}

func TestFullDownload_ReturnsSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sync/download", r.URL.Path)

		json.NewEncoder(w).Encode(models.Snapshot{
			Meta:  models.CollectionMeta{Modified: 10, SchemaModified: 2, USN: 4},
			Decks: []models.Deck{{ID: 1, Name: "Default"}},
			Notes: []models.Note{{GUID: "n1", DeckID: 1, Fields: map[string]string{"Front": "q"}}},
		})
	}))
	defer srv.Close()

	tr := NewHTTPSyncTransport()
	snap, err := tr.FullDownload(context.Background(), testCred(srv.URL))
	require.NoError(t, err)

	assert.Equal(t, int64(10), snap.Meta.Modified)
	require.Len(t, snap.Decks, 1)
	require.Len(t, snap.Notes, 1)
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sync/login", r.URL.Path)
		// login carries no Authorization header; there is no key yet
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "user@example.com", body["user"])

		json.NewEncoder(w).Encode(map[string]string{"key": "fresh-hkey"})
	}))
	defer srv.Close()

	tr := NewHTTPSyncTransport()
	key, err := tr.Login(context.Background(), srv.URL, "user@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "fresh-hkey", key)
}

func TestLogin_EmptyKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	tr := NewHTTPSyncTransport()
	_, err := tr.Login(context.Background(), srv.URL, "user@example.com", "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSyncProtocol)
}

func TestLogin_WrongPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	}))
	defer srv.Close()

	tr := NewHTTPSyncTransport()
	_, err := tr.Login(context.Background(), srv.URL, "user@example.com", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSyncAuth)
}
