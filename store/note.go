package store

import (
	"database/sql"
	"time"
)

// appleEpochOffset is the number of seconds between the Unix epoch and
// Core Data's reference date, 2001-01-01 00:00:00 UTC. NoteStore stores
// all timestamps as float seconds from the reference date.
const appleEpochOffset = 978307200

// appleTime converts a Core Data timestamp into a time.Time. Null or
// absent timestamps become the zero time.
func appleTime(sec sql.NullFloat64) time.Time {
	if !sec.Valid {
		return time.Time{}
	}

	unix := sec.Float64 + appleEpochOffset
	whole := int64(unix)
	frac := unix - float64(whole)

	return time.Unix(whole, int64(frac*float64(time.Second))).UTC()
}

// appleSeconds converts a time.Time into a Core Data timestamp for use in
// query bounds.
func appleSeconds(t time.Time) float64 {
	return float64(t.UnixNano())/float64(time.Second) - appleEpochOffset
}

// NoteSummary is the metadata row shown in listings, without the body.
type NoteSummary struct {
	ID       int64
	Title    string
	Folder   string
	Pinned   bool
	Modified time.Time
}

// Note is a full note row: summary metadata plus creation time and the
// raw compressed body blob. Data is nil when the note has no stored body.
type Note struct {
	NoteSummary
	Created time.Time
	Data    []byte
}

// Folder is a named note container and how many live notes it holds.
type Folder struct {
	ID        int64
	Title     string
	NoteCount int
}
