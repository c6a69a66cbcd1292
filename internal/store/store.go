// Package store owns the handle to the local collection database file.
//
// A [Handle] is opened once at server startup, exclusively owned by the
// access coordinator afterwards, and closed on shutdown. At most one handle
// is open for a given path at any time; nothing else in the process touches
// the database connection directly.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-card-keeper/internal/config"
	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"github.com/MKhiriev/go-card-keeper/migrations"
)

// CollectionFileName is the fixed name of the collection database inside
// the configured base directory.
const CollectionFileName = "collection.db"

// Handle wraps the open connection to the collection file. It embeds
// *sql.DB so engine code can run queries directly while the handle keeps
// the path and lifecycle bookkeeping.
type Handle struct {
	*sql.DB

	path   string
	logger *logger.Logger
}

// Open opens (and, when cfg.Create is set, creates) the collection database
// under cfg.BaseDir, verifies the connection with a ping, and applies
// pending schema migrations.
//
// The connection pool is capped at a single connection: the engine is not
// proven safe for concurrent readers during a writer's transaction, and the
// access coordinator serializes all calls anyway.
func Open(ctx context.Context, cfg config.Collection, log *logger.Logger) (*Handle, error) {
	path := filepath.Join(cfg.BaseDir, CollectionFileName)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if !cfg.Create {
			return nil, fmt.Errorf("%w: %s", ErrCollectionNotFound, path)
		}
		if err := createCollectionFile(path); err != nil {
			log.Err(err).Str("func", "store.Open").Msg("error creating collection file")
			return nil, err
		}
		log.Info().Str("path", path).Msg("created new collection file")
	}

	conn, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		log.Err(err).Str("func", "store.Open").Msg("error opening collection database")
		return nil, fmt.Errorf("%w: %w", ErrOpeningCollection, err)
	}
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "store.Open").Msg("error pinging collection database")
		conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrOpeningCollection, err)
	}

	if err = migrations.Migrate(conn); err != nil {
		log.Err(err).Str("func", "store.Open").Msg("error migrating collection schema")
		conn.Close()
		return nil, err
	}

	log.Debug().Str("path", path).Msg("collection opened")

	return &Handle{
		DB:     conn,
		path:   path,
		logger: log,
	}, nil
}

func createCollectionFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating collection dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("error creating collection file: %w", err)
	}
	return f.Close()
}

// Path returns the filesystem path of the open collection file.
func (h *Handle) Path() string {
	return h.path
}

// Ping reports whether the underlying connection is still alive.
func (h *Handle) Ping(ctx context.Context) error {
	return h.DB.PingContext(ctx)
}

// Close releases the database connection. The handle must not be used
// afterwards.
func (h *Handle) Close() error {
	h.logger.Debug().Str("path", h.path).Msg("closing collection")
	return h.DB.Close()
}
