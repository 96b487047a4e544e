// Package export renders decoded notes into JSON, CSV or Markdown
// documents and writes them out, optionally compressed with one of the
// archive codecs.
package export

import (
	"time"
)

// Record is one note prepared for export: store metadata plus the
// decoded content. Callers assemble Records from store rows and
// notedata extractions; this package only formats them.
type Record struct {
	ID       int64
	Title    string
	Folder   string
	Pinned   bool
	Created  time.Time
	Modified time.Time
	// Status is the extraction status name ("complete", "partial",
	// "absent") carried into formats that surface it.
	Status string
	// Content is the final decoded text, already normalized.
	Content string
}

const timestampLayout = "2006-01-02 15:04:05"

// fmtTime renders a timestamp for export, mapping the zero time to an
// empty string rather than year one.
func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timestampLayout)
}
