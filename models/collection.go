package models

import "time"

// Deck is a named group of notes in the collection.
type Deck struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`

	// Modified is the unix timestamp of the last change to the deck row.
	Modified int64 `json:"mod"`

	// USN is the update sequence number recorded at the last sync.
	// -1 marks rows changed since then.
	USN int64 `json:"usn"`
}

// Note is a unit of study material: an ordered set of field values tied to
// a deck. Cards are generated from notes; this server tracks one card per
// note field pairing and leaves scheduling to the engine.
type Note struct {
	ID int64 `json:"id"`

	// GUID globally identifies the note across synced copies of the
	// collection, surviving ID renumbering during a full sync.
	GUID string `json:"guid"`

	DeckID int64             `json:"deck_id"`
	Fields map[string]string `json:"fields"`
	Tags   []string          `json:"tags,omitempty"`

	Modified int64 `json:"mod"`
	USN      int64 `json:"usn"`
	Deleted  bool  `json:"deleted,omitempty"`
}

// NoteInput is the caller-supplied shape for creating a note.
type NoteInput struct {
	DeckName string            `json:"deckName"`
	Fields   map[string]string `json:"fields"`
	Tags     []string          `json:"tags,omitempty"`
}

// NoteInfo is the read model returned by notesInfo.
type NoteInfo struct {
	NoteID   int64             `json:"noteId"`
	GUID     string            `json:"guid"`
	DeckName string            `json:"deckName"`
	Fields   map[string]string `json:"fields"`
	Tags     []string          `json:"tags"`
	Modified int64             `json:"mod"`
}

// IntegrityReport is the result of the engine's database check.
type IntegrityReport struct {
	OK       bool     `json:"ok"`
	Problems []string `json:"problems"`
}

// CollectionMeta is the single-row local bookkeeping record of the
// collection: modification counter, schema epoch, and last-sync marker.
type CollectionMeta struct {
	Modified       int64 `json:"mod"`
	SchemaModified int64 `json:"scm"`
	USN            int64 `json:"usn"`
	LastSync       int64 `json:"last_sync"`
}

// Snapshot is the full serialized state of the collection, exchanged during
// a destructive full sync in either direction.
type Snapshot struct {
	Meta  CollectionMeta `json:"meta"`
	Decks []Deck         `json:"decks"`
	Notes []Note         `json:"notes"`
}

// Now returns a unix-milliseconds timestamp for modification counters.
func Now() int64 {
	return time.Now().UnixMilli()
}
