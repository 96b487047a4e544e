package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cloudnotes/notectl/errs"
)

// Notes are the syncing objects that carry a title; folders carry theirs
// in a different column of the same table. Soft-deleted rows stay in the
// table with ZMARKEDFORDELETION set, so every query filters them out.
const noteFilter = `o.ZTITLE1 IS NOT NULL AND IFNULL(o.ZMARKEDFORDELETION, 0) = 0`

const summarySelect = `
SELECT o.Z_PK, o.ZTITLE1, IFNULL(f.ZTITLE2, ''), IFNULL(o.ZISPINNED, 0), o.ZMODIFICATIONDATE1
FROM ZICCLOUDSYNCINGOBJECT o
LEFT JOIN ZICCLOUDSYNCINGOBJECT f ON o.ZFOLDER = f.Z_PK
WHERE ` + noteFilter

const noteSelect = `
SELECT o.Z_PK, o.ZTITLE1, IFNULL(f.ZTITLE2, ''), IFNULL(o.ZISPINNED, 0),
       o.ZMODIFICATIONDATE1, o.ZCREATIONDATE1, n.ZDATA
FROM ZICCLOUDSYNCINGOBJECT o
LEFT JOIN ZICCLOUDSYNCINGOBJECT f ON o.ZFOLDER = f.Z_PK
LEFT JOIN ZICNOTEDATA n ON o.ZNOTEDATA = n.Z_PK
WHERE ` + noteFilter

// ListNotes returns note summaries, most recently modified first.
//
// Parameters:
//   - limit: maximum rows to return; <= 0 means no limit
func (s *Store) ListNotes(ctx context.Context, limit int) ([]NoteSummary, error) {
	query := summarySelect + ` ORDER BY o.ZMODIFICATIONDATE1 DESC`

	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []NoteSummary
	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return notes, nil
}

// GetNote returns one note with its raw body blob.
//
// Returns errs.ErrNoteNotFound when no live note has the given ID.
func (s *Store) GetNote(ctx context.Context, id int64) (*Note, error) {
	row := s.db.QueryRowContext(ctx, noteSelect+` AND o.Z_PK = ?`, id)

	note, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: note %d", errs.ErrNoteNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read note %d: %w", id, err)
	}

	return note, nil
}

// AllNotes returns every live note with its raw body blob, most recently
// modified first.
//
// Parameters:
//   - since: when non-zero, only notes modified at or after this instant
func (s *Store) AllNotes(ctx context.Context, since time.Time) ([]*Note, error) {
	query := noteSelect
	var args []any
	if !since.IsZero() {
		query += ` AND o.ZMODIFICATIONDATE1 >= ?`
		args = append(args, appleSeconds(since))
	}
	query += ` ORDER BY o.ZMODIFICATIONDATE1 DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}
	defer rows.Close()

	var notes []*Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to load notes: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}

	return notes, nil
}

// ListFolders returns all folders with their live note counts, sorted by
// name.
func (s *Store) ListFolders(ctx context.Context) ([]Folder, error) {
	const query = `
SELECT f.Z_PK, f.ZTITLE2, COUNT(o.Z_PK)
FROM ZICCLOUDSYNCINGOBJECT f
LEFT JOIN ZICCLOUDSYNCINGOBJECT o
  ON o.ZFOLDER = f.Z_PK AND o.ZTITLE1 IS NOT NULL AND IFNULL(o.ZMARKEDFORDELETION, 0) = 0
WHERE f.ZTITLE2 IS NOT NULL AND IFNULL(f.ZMARKEDFORDELETION, 0) = 0
GROUP BY f.Z_PK, f.ZTITLE2
ORDER BY f.ZTITLE2`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	defer rows.Close()

	var folders []Folder
	for rows.Next() {
		var f Folder
		if err := rows.Scan(&f.ID, &f.Title, &f.NoteCount); err != nil {
			return nil, fmt.Errorf("failed to list folders: %w", err)
		}
		folders = append(folders, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}

	return folders, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSummary(row rowScanner) (NoteSummary, error) {
	var (
		summary  NoteSummary
		modified sql.NullFloat64
	)
	if err := row.Scan(&summary.ID, &summary.Title, &summary.Folder, &summary.Pinned, &modified); err != nil {
		return NoteSummary{}, fmt.Errorf("%w: %v", errs.ErrInvalidColumn, err)
	}
	summary.Modified = appleTime(modified)

	return summary, nil
}

func scanNote(row rowScanner) (*Note, error) {
	var (
		note     Note
		modified sql.NullFloat64
		created  sql.NullFloat64
	)
	err := row.Scan(&note.ID, &note.Title, &note.Folder, &note.Pinned, &modified, &created, &note.Data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidColumn, err)
	}
	note.Modified = appleTime(modified)
	note.Created = appleTime(created)

	return &note, nil
}
