// Package sqlite implements types.BlobStore on a SQLite database file.
// Each named blob is one row; a write replaces the row inside a single
// statement so readers see the old or the new payload.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/libris/pkg/types"
)

// DBFileName is the database file created inside the data directory.
const DBFileName = "libris.db"

// ErrClosed is returned by operations on a closed Store.
var ErrClosed = errors.New("sqlite store is closed")

// Store is a BlobStore backed by DataDir/libris.db.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates dataDir if needed, opens the database, and applies the schema.
// The caller must Close the store.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	path := filepath.Join(dataDir, DBFileName)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	// A single connection keeps the file handle count fixed.
	db.SetMaxOpenConns(1)

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying schema: %w", err)
		}
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// ReadBlob returns the payload stored under name. A missing row is reported
// as types.ErrStoreNotFound.
func (s *Store) ReadBlob(name string) ([]byte, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	var payload []byte
	err := s.db.QueryRow(selectBlob, name).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("blob %q: %w", name, types.ErrStoreNotFound)
		}
		return nil, fmt.Errorf("reading blob %q: %w", name, err)
	}
	return payload, nil
}

// WriteBlob inserts or replaces the payload stored under name.
func (s *Store) WriteBlob(name string, data []byte) error {
	if s.db == nil {
		return ErrClosed
	}
	if data == nil {
		data = []byte{}
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.Exec(upsertBlob, name, data, now); err != nil {
		return fmt.Errorf("writing blob %q: %w", name, err)
	}
	return nil
}

// Close releases the database. Close is idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
