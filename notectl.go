// Package notectl decodes Apple Notes' compressed binary note bodies
// into plain text.
//
// Notes.app stores each note body as a gzip-compressed, nested
// length-delimited payload inside NoteStore.sqlite. This module reads
// that storage and turns it back into text, degrading gracefully when a
// body is absent, truncated or corrupt.
//
// # Core Features
//
//   - Total decoding: every blob maps to a content string, never an error
//   - Three fallback tiers: extracted text, then title, then empty string
//   - Bounds-checked walking of the proprietary record structure
//   - Versioned schema paths, resilient to layout drift across OS releases
//   - Read-only SQLite access to the live NoteStore database
//   - JSON/CSV/Markdown export with optional gzip/zstd/lz4/s2 framing
//
// # Basic Usage
//
// Decoding one note body:
//
//	import "github.com/cloudnotes/notectl"
//
//	// blob and title as read from the store
//	content := notectl.ExtractContent(blob, title)
//
// Reading from the live database:
//
//	s, _ := store.Open("")
//	defer s.Close()
//
//	note, _ := s.GetNote(ctx, 42)
//	extraction := notectl.DecodeBody(note.Data, note.Title)
//	fmt.Println(extraction.Status, extraction.Content)
//
// # Package Structure
//
// This package provides top-level wrappers around the notedata package,
// covering the common one-call cases. The subpackages hold the rest:
// notedata (the core decoder), wire (the record scanner), schema
// (versioned field paths), store (NoteStore access), export (rendering
// and writing), and compress (the codecs behind bodies and archives).
package notectl

import (
	"github.com/cloudnotes/notectl/internal/hash"
	"github.com/cloudnotes/notectl/notedata"
)

// ExtractContent decodes one stored note body into its final content
// string, using title as the fallback for undecodable bodies.
//
// This is the one-call form of notedata.Decode for callers that only
// want the text.
func ExtractContent(raw []byte, title string) string {
	return notedata.Decode(raw, title).Content
}

// DecodeBody decodes one stored note body and reports how far decoding
// got alongside the content.
func DecodeBody(raw []byte, title string, opts ...notedata.Option) notedata.Extraction {
	return notedata.Decode(raw, title, opts...)
}

// ContentID returns a short stable fingerprint of a content string, the
// same one embedded in JSON exports. Equal content always produces an
// equal fingerprint.
func ContentID(content string) string {
	return hash.Fingerprint([]byte(content))
}
