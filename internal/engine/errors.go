package engine

import "errors"

var (
	// ErrDeckNotFound is returned when an operation names a deck that
	// does not exist.
	ErrDeckNotFound = errors.New("deck not found")

	// ErrNoteNotFound is returned when an operation targets a note id
	// that does not exist or was deleted.
	ErrNoteNotFound = errors.New("note not found")

	// ErrEmptyNoteFields is returned when a note is created or updated
	// with no field content at all.
	ErrEmptyNoteFields = errors.New("note has no fields")

	// ErrEmptyDeckName is returned when a deck operation is given a
	// blank name.
	ErrEmptyDeckName = errors.New("deck name is empty")

	ErrBuildingSQLQuery = errors.New("error building SQL query")
	ErrExecutingQuery   = errors.New("error executing query")
	ErrScanningRow      = errors.New("error scanning row")
	ErrScanningRows     = errors.New("error scanning rows")
)
