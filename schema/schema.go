// Package schema pins the field numbers used to locate note text inside a
// decoded body payload.
//
// Apple does not publish the payload schema, and it can shift between OS
// releases. Versioning the descent path keeps those shifts out of the
// decoding code: a new release that moves the text field becomes a new
// Version here, and everything else stays untouched.
package schema

import "strconv"

// Version identifies one known payload layout.
type Version uint8

const (
	// V1 is the layout used by macOS Notes since the CloudKit rewrite:
	// a document wrapper, a note message inside it, and the plain text
	// inside that.
	V1 Version = 1

	// Latest is the version assumed when none is specified.
	Latest = V1
)

// String returns the version as "v<n>".
func (v Version) String() string {
	return "v" + strconv.FormatUint(uint64(v), 10)
}

// Field numbers along the V1 descent.
const (
	FieldDocument uint64 = 2 // payload root → document wrapper
	FieldNote     uint64 = 3 // document wrapper → note message
	FieldNoteText uint64 = 2 // note message → plain text
)

// Path is a descent through nested length-delimited fields, outermost
// first. The final element is the field holding the text itself.
type Path []uint64

var textPaths = map[Version]Path{
	V1: {FieldDocument, FieldNote, FieldNoteText},
}

// TextPath returns the descent path to the note text for the given
// version.
//
// Returns:
//   - Path: the field-number descent, outermost first
//   - bool: false when the version is unknown
//
// The returned slice is shared; callers must not modify it.
func TextPath(v Version) (Path, bool) {
	p, ok := textPaths[v]
	return p, ok
}
