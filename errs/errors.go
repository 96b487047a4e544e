// Package errs defines sentinel errors shared across notectl packages.
//
// The content-decoding core (compress sniffing, wire walking, fragment
// extraction) degrades instead of failing and therefore never returns these;
// sentinels exist for the layers that do fail loudly: the store reader, the
// exporter, and configuration handling.
package errs

import "errors"

var (
	// ErrStoreNotFound is returned when the NoteStore database file does not exist.
	ErrStoreNotFound = errors.New("note store not found")

	// ErrNoteNotFound is returned when a note ID has no row in the store.
	ErrNoteNotFound = errors.New("note not found")

	// ErrUnknownFormat is returned for an unrecognized export format name.
	ErrUnknownFormat = errors.New("unknown export format")

	// ErrUnknownCompression is returned for an unrecognized compression name or type.
	ErrUnknownCompression = errors.New("unknown compression type")

	// ErrInvalidColumn is returned when a store row cannot be scanned into its model.
	ErrInvalidColumn = errors.New("invalid store column")
)
