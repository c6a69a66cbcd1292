package engine

import (
	"context"

	"github.com/MKhiriev/go-card-keeper/internal/store"
	"github.com/MKhiriev/go-card-keeper/models"
)

// Engine is the operation set of the collection. Callers must hold the
// access coordinator's gate around every call; the engine performs no
// locking of its own.
type Engine interface {
	// DeckNames returns all deck names sorted alphabetically.
	DeckNames(ctx context.Context, h *store.Handle) ([]string, error)

	// DeckNamesAndIDs returns a name→id mapping for all decks.
	DeckNamesAndIDs(ctx context.Context, h *store.Handle) (map[string]int64, error)

	// CreateDeck creates a deck and returns its id. Creating a deck that
	// already exists returns the existing id unchanged.
	CreateDeck(ctx context.Context, h *store.Handle, name string) (int64, error)

	// DeleteDecks removes the named decks and every note they contain.
	// Unknown names are skipped silently.
	DeleteDecks(ctx context.Context, h *store.Handle, names []string) error

	// AddNote creates one note and returns its id. The target deck is
	// created on demand.
	AddNote(ctx context.Context, h *store.Handle, input models.NoteInput) (int64, error)

	// AddNotes creates a batch of notes, all or nothing.
	AddNotes(ctx context.Context, h *store.Handle, inputs []models.NoteInput) ([]int64, error)

	// FindNotes returns the ids of notes matching the query. An empty
	// query matches everything; "deck:Name" restricts to a deck; any
	// other text is matched as a substring of the note fields.
	FindNotes(ctx context.Context, h *store.Handle, query string) ([]int64, error)

	// NotesInfo returns the read model for the given note ids. Unknown
	// ids are skipped.
	NotesInfo(ctx context.Context, h *store.Handle, ids []int64) ([]models.NoteInfo, error)

	// UpdateNoteFields replaces the given fields of a note, leaving
	// unnamed fields untouched.
	UpdateNoteFields(ctx context.Context, h *store.Handle, id int64, fields map[string]string) error

	// DeleteNotes soft-deletes the given notes so the deletions propagate
	// through sync.
	DeleteNotes(ctx context.Context, h *store.Handle, ids []int64) error

	// ModCount returns the collection's modification counter. Two equal
	// readings mean no mutation happened in between.
	ModCount(ctx context.Context, h *store.Handle) (int64, error)

	// FixIntegrity checks the database and repairs what it safely can.
	FixIntegrity(ctx context.Context, h *store.Handle) (models.IntegrityReport, error)

	// SyncStatus compares local and remote state and reports what kind of
	// sync the collection requires. Performs one cheap remote meta call
	// and no mutation.
	SyncStatus(ctx context.Context, h *store.Handle, cred models.SyncCredential) (models.SyncStatus, error)

	// IncrementalSync exchanges deltas with the remote service. Reports
	// whether anything moved in either direction.
	IncrementalSync(ctx context.Context, h *store.Handle, cred models.SyncCredential) (changed bool, err error)

	// FullUpload replaces the remote collection with the local one.
	FullUpload(ctx context.Context, h *store.Handle, cred models.SyncCredential) error

	// FullDownload replaces the local collection with the remote one.
	FullDownload(ctx context.Context, h *store.Handle, cred models.SyncCredential) error
}
