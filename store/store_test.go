package store

import (
	"context"
	"database/sql"
	"encoding/binary"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cloudnotes/notectl/compress"
	"github.com/cloudnotes/notectl/errs"
	"github.com/cloudnotes/notectl/schema"
)

// noteBlob builds a stored-format body blob: gzip around the nested
// record structure carrying the given text runs.
func noteBlob(t *testing.T, texts ...string) []byte {
	t.Helper()

	var note []byte
	for _, text := range texts {
		note = binary.AppendUvarint(note, schema.FieldNoteText<<3|2)
		note = binary.AppendUvarint(note, uint64(len(text)))
		note = append(note, text...)
	}

	document := binary.AppendUvarint(nil, schema.FieldNote<<3|2)
	document = binary.AppendUvarint(document, uint64(len(note)))
	document = append(document, note...)

	stream := binary.AppendUvarint(nil, schema.FieldDocument<<3|2)
	stream = binary.AppendUvarint(stream, uint64(len(document)))
	stream = append(stream, document...)

	blob, err := compress.NewGzipCodec().Compress(stream)
	require.NoError(t, err)
	return blob
}

var testBase = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open("/definitely/not/a/notestore.sqlite")
	require.ErrorIs(t, err, errs.ErrStoreNotFound)
}

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath()
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(path, "NoteStore.sqlite"))
}

func TestStore_ListNotes(t *testing.T) {
	s := SetupTestStore(t, []TestNote{
		{ID: 1, Title: "Older", Modified: testBase.Add(-2 * time.Hour)},
		{ID: 2, Title: "Newest", Folder: "Work", Pinned: true, Modified: testBase},
		{ID: 3, Title: "Deleted", Deleted: true, Modified: testBase.Add(time.Hour)},
		{ID: 4, Title: "Middle", Modified: testBase.Add(-time.Hour)},
	})

	notes, err := s.ListNotes(context.Background(), 0)
	require.NoError(t, err)

	require.Len(t, notes, 3)
	require.Equal(t, "Newest", notes[0].Title)
	require.Equal(t, "Middle", notes[1].Title)
	require.Equal(t, "Older", notes[2].Title)

	require.Equal(t, "Work", notes[0].Folder)
	require.True(t, notes[0].Pinned)
	require.False(t, notes[1].Pinned)
	require.WithinDuration(t, testBase, notes[0].Modified, time.Millisecond)
}

func TestStore_ListNotes_Limit(t *testing.T) {
	s := SetupTestStore(t, []TestNote{
		{ID: 1, Title: "A", Modified: testBase},
		{ID: 2, Title: "B", Modified: testBase.Add(-time.Hour)},
	})

	notes, err := s.ListNotes(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, notes, 1)
	require.Equal(t, "A", notes[0].Title)
}

func TestStore_GetNote(t *testing.T) {
	blob := noteBlob(t, "Buy milk")
	s := SetupTestStore(t, []TestNote{
		{
			ID:       7,
			Title:    "Groceries",
			Folder:   "Personal",
			Created:  testBase.Add(-24 * time.Hour),
			Modified: testBase,
			Data:     blob,
		},
	})

	note, err := s.GetNote(context.Background(), 7)
	require.NoError(t, err)

	require.Equal(t, int64(7), note.ID)
	require.Equal(t, "Groceries", note.Title)
	require.Equal(t, "Personal", note.Folder)
	require.Equal(t, blob, note.Data)
	require.WithinDuration(t, testBase.Add(-24*time.Hour), note.Created, time.Millisecond)
	require.WithinDuration(t, testBase, note.Modified, time.Millisecond)
}

func TestStore_GetNote_NotFound(t *testing.T) {
	s := SetupTestStore(t, []TestNote{
		{ID: 1, Title: "Only", Modified: testBase},
	})

	_, err := s.GetNote(context.Background(), 99)
	require.ErrorIs(t, err, errs.ErrNoteNotFound)
}

func TestStore_GetNote_DeletedHidden(t *testing.T) {
	s := SetupTestStore(t, []TestNote{
		{ID: 1, Title: "Gone", Deleted: true, Modified: testBase},
	})

	_, err := s.GetNote(context.Background(), 1)
	require.ErrorIs(t, err, errs.ErrNoteNotFound)
}

func TestStore_GetNote_NoBodyData(t *testing.T) {
	s := SetupTestStore(t, []TestNote{
		{ID: 1, Title: "Short note", Modified: testBase},
	})

	note, err := s.GetNote(context.Background(), 1)
	require.NoError(t, err)
	require.Nil(t, note.Data)
}

func TestStore_AllNotes_SinceCutoff(t *testing.T) {
	s := SetupTestStore(t, []TestNote{
		{ID: 1, Title: "Recent", Modified: testBase},
		{ID: 2, Title: "Ancient", Modified: testBase.Add(-30 * 24 * time.Hour)},
	})

	all, err := s.AllNotes(context.Background(), time.Time{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	recent, err := s.AllNotes(context.Background(), testBase.Add(-24*time.Hour))
	require.NoError(t, err)
	require.Len(t, recent, 1)
	require.Equal(t, "Recent", recent[0].Title)
}

func TestStore_ListFolders(t *testing.T) {
	s := SetupTestStore(t, []TestNote{
		{ID: 1, Title: "A", Folder: "Work", Modified: testBase},
		{ID: 2, Title: "B", Folder: "Work", Modified: testBase},
		{ID: 3, Title: "C", Folder: "Personal", Modified: testBase},
		{ID: 4, Title: "D", Folder: "Work", Deleted: true, Modified: testBase},
		{ID: 5, Title: "E", Modified: testBase},
	})

	folders, err := s.ListFolders(context.Background())
	require.NoError(t, err)

	require.Equal(t, []Folder{
		{ID: testFolderBasePK + 1, Title: "Personal", NoteCount: 1},
		{ID: testFolderBasePK, Title: "Work", NoteCount: 2},
	}, folders)
}

func TestStore_Path(t *testing.T) {
	s := SetupTestStore(t, nil)
	require.True(t, strings.HasSuffix(s.Path(), "NoteStore.sqlite"))
}

type failingScanner struct{ err error }

func (f failingScanner) Scan(dest ...any) error { return f.err }

func TestScanSummary_InvalidColumn(t *testing.T) {
	_, err := scanSummary(failingScanner{err: errors.New("converting NULL to string")})
	require.ErrorIs(t, err, errs.ErrInvalidColumn)
}

func TestScanNote_InvalidColumn(t *testing.T) {
	_, err := scanNote(failingScanner{err: errors.New("converting NULL to string")})
	require.ErrorIs(t, err, errs.ErrInvalidColumn)
}

func TestScanNote_NoRowsPassthrough(t *testing.T) {
	_, err := scanNote(failingScanner{err: sql.ErrNoRows})
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NotErrorIs(t, err, errs.ErrInvalidColumn)
}
