package store

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

// testSchema mirrors the NoteStore tables and columns the queries touch.
// The real database has hundreds more columns; they are irrelevant here.
const testSchema = `
CREATE TABLE ZICCLOUDSYNCINGOBJECT (
	Z_PK INTEGER PRIMARY KEY,
	ZTITLE1 TEXT,
	ZTITLE2 TEXT,
	ZFOLDER INTEGER,
	ZNOTEDATA INTEGER,
	ZISPINNED INTEGER,
	ZMARKEDFORDELETION INTEGER,
	ZCREATIONDATE1 REAL,
	ZMODIFICATIONDATE1 REAL
);
CREATE TABLE ZICNOTEDATA (
	Z_PK INTEGER PRIMARY KEY,
	ZDATA BLOB
);`

// TestNote describes one seeded note row.
type TestNote struct {
	ID       int64
	Title    string
	Folder   string
	Pinned   bool
	Deleted  bool
	Created  time.Time
	Modified time.Time
	Data     []byte
}

// Folder and body-data primary keys live in ranges far above the note
// IDs tests pick, so seeded rows never collide.
const (
	testFolderBasePK = 10000
	testDataBasePK   = 20000
)

// SetupTestStore writes a NoteStore-shaped database into a temp dir,
// seeds it with the given notes, and opens it through the normal
// read-only path. Folder rows are created on demand from the notes'
// folder names. The store is closed automatically when the test ends.
func SetupTestStore(t *testing.T, notes []TestNote) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "NoteStore.sqlite")

	seed, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if _, err := seed.Exec(testSchema); err != nil {
		t.Fatalf("failed to create test schema: %v", err)
	}

	folderPKs := make(map[string]int64)
	for _, note := range notes {
		if note.Folder == "" {
			continue
		}
		if _, ok := folderPKs[note.Folder]; ok {
			continue
		}

		pk := testFolderBasePK + int64(len(folderPKs))
		if _, err := seed.Exec(
			`INSERT INTO ZICCLOUDSYNCINGOBJECT (Z_PK, ZTITLE2) VALUES (?, ?)`,
			pk, note.Folder,
		); err != nil {
			t.Fatalf("failed to seed folder %q: %v", note.Folder, err)
		}
		folderPKs[note.Folder] = pk
	}

	for _, note := range notes {
		var dataPK any
		if note.Data != nil {
			pk := testDataBasePK + note.ID
			if _, err := seed.Exec(
				`INSERT INTO ZICNOTEDATA (Z_PK, ZDATA) VALUES (?, ?)`,
				pk, note.Data,
			); err != nil {
				t.Fatalf("failed to seed note data for %q: %v", note.Title, err)
			}
			dataPK = pk
		}

		var folderPK any
		if pk, ok := folderPKs[note.Folder]; ok {
			folderPK = pk
		}

		if _, err := seed.Exec(
			`INSERT INTO ZICCLOUDSYNCINGOBJECT
			 (Z_PK, ZTITLE1, ZFOLDER, ZNOTEDATA, ZISPINNED, ZMARKEDFORDELETION, ZCREATIONDATE1, ZMODIFICATIONDATE1)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			note.ID, note.Title, folderPK, dataPK,
			boolToInt(note.Pinned), boolToInt(note.Deleted),
			timestampOrNil(note.Created), timestampOrNil(note.Modified),
		); err != nil {
			t.Fatalf("failed to seed note %q: %v", note.Title, err)
		}
	}

	if err := seed.Close(); err != nil {
		t.Fatalf("failed to close seeding connection: %v", err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("failed to close test store: %v", err)
		}
	})

	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func timestampOrNil(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return appleSeconds(t)
}
