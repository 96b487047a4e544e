// Package store reads notes out of the Apple Notes SQLite database.
//
// The database belongs to Notes.app; we open it strictly read-only and a
// single connection at a time, never mutating schema or rows. Notes and
// folders live in one Core Data table (ZICCLOUDSYNCINGOBJECT) and the
// compressed body blobs in another (ZICNOTEDATA); the queries here join
// the two and hand each note's raw blob to package notedata for decoding.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/cloudnotes/notectl/errs"
)

// noteStoreRelPath is where macOS keeps the Notes database, relative to
// the user's home directory.
const noteStoreRelPath = "Library/Group Containers/group.com.apple.notes/NoteStore.sqlite"

// Store is a read-only handle on one NoteStore database.
type Store struct {
	db   *sql.DB
	path string
}

// DefaultPath returns the standard NoteStore location for the current
// user.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	return filepath.Join(home, noteStoreRelPath), nil
}

// Open opens the NoteStore database at path read-only. An empty path uses
// DefaultPath.
//
// Returns:
//   - *Store: the open handle; callers own Close
//   - error: errs.ErrStoreNotFound when no file exists at the path, or
//     the driver error for unreadable databases
func Open(path string) (*Store, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrStoreNotFound, path)
	}

	// mode=ro keeps us from ever writing to Notes.app's database, even
	// through SQLite housekeeping.
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open note store: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to read note store: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the filesystem path the store was opened from.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
