// Package wire scans the length-delimited binary records inside Apple
// Notes body payloads.
//
// The payloads follow protobuf wire framing: each record starts with a
// varint tag packing a field number and a wire type, followed by a scalar
// value or a length-prefixed byte block. The Scanner walks that framing
// without a schema and without trusting any length or tag it reads; a
// malformed record stops the scan cleanly instead of panicking or reading
// out of bounds, and everything decoded before the damage stays available.
package wire

import (
	"encoding/binary"
)

// Type is the wire type carried in the low three bits of a record tag.
type Type uint8

const (
	// TypeVarint is a base-128 variable length integer.
	TypeVarint Type = 0
	// TypeFixed64 is an 8-byte little-endian value.
	TypeFixed64 Type = 1
	// TypeBytes is a varint length prefix followed by that many bytes.
	TypeBytes Type = 2
	// TypeStartGroup and TypeEndGroup frame the legacy group encoding.
	// The scanner treats them as damage; note payloads never use groups.
	TypeStartGroup Type = 3
	TypeEndGroup   Type = 4
	// TypeFixed32 is a 4-byte little-endian value.
	TypeFixed32 Type = 5
)

// String returns a human-readable name for the wire type.
func (t Type) String() string {
	switch t {
	case TypeVarint:
		return "varint"
	case TypeFixed64:
		return "fixed64"
	case TypeBytes:
		return "bytes"
	case TypeStartGroup:
		return "start-group"
	case TypeEndGroup:
		return "end-group"
	case TypeFixed32:
		return "fixed32"
	default:
		return "unknown"
	}
}

// Record is one decoded field occurrence.
type Record struct {
	// Field is the field number from the tag, always >= 1.
	Field uint64
	// Type is the record's wire type.
	Type Type
	// Offset is the byte offset of the record's tag in the scanned buffer.
	Offset int
	// Value holds the scalar payload for varint, fixed64 and fixed32
	// records. Zero for bytes records.
	Value uint64
	// Payload holds the length-delimited payload for bytes records. It
	// aliases the scanned buffer rather than copying it. Nil for scalar
	// records.
	Payload []byte
	// PayloadOffset is the byte offset of Payload within the scanned
	// buffer, past the tag and length prefix. Zero for scalar records.
	PayloadOffset int
}

// Scanner iterates over the records of one buffer. The zero value is not
// usable; construct with NewScanner. A Scanner is single-use and not safe
// for concurrent use.
type Scanner struct {
	data    []byte
	pos     int
	damaged bool
}

// NewScanner creates a Scanner positioned at the start of data. The
// scanner reads from data without copying, so the buffer must not be
// mutated while scanning.
func NewScanner(data []byte) *Scanner {
	return &Scanner{data: data}
}

// Next decodes the record at the current position.
//
// Returns:
//   - Record: the decoded record, valid only when ok is true
//   - bool: false when the buffer is exhausted or a malformed record was
//     hit; Damaged distinguishes the two
//
// After Next returns false it keeps returning false.
func (s *Scanner) Next() (Record, bool) {
	if s.damaged || s.pos >= len(s.data) {
		return Record{}, false
	}

	offset := s.pos

	tag, n := binary.Uvarint(s.data[s.pos:])
	if n <= 0 {
		s.damaged = true
		return Record{}, false
	}
	s.pos += n

	rec := Record{
		Field:  tag >> 3,
		Type:   Type(tag & 0x07),
		Offset: offset,
	}
	if rec.Field == 0 {
		s.damaged = true
		return Record{}, false
	}

	switch rec.Type {
	case TypeVarint:
		v, vn := binary.Uvarint(s.data[s.pos:])
		if vn <= 0 {
			s.damaged = true
			return Record{}, false
		}
		s.pos += vn
		rec.Value = v

	case TypeFixed64:
		if len(s.data)-s.pos < 8 {
			s.damaged = true
			return Record{}, false
		}
		rec.Value = binary.LittleEndian.Uint64(s.data[s.pos:])
		s.pos += 8

	case TypeFixed32:
		if len(s.data)-s.pos < 4 {
			s.damaged = true
			return Record{}, false
		}
		rec.Value = uint64(binary.LittleEndian.Uint32(s.data[s.pos:]))
		s.pos += 4

	case TypeBytes:
		length, ln := binary.Uvarint(s.data[s.pos:])
		if ln <= 0 {
			s.damaged = true
			return Record{}, false
		}
		s.pos += ln
		// Compare in uint64 space so a huge length cannot wrap when
		// converted to int.
		if length > uint64(len(s.data)-s.pos) {
			s.damaged = true
			return Record{}, false
		}
		rec.Payload = s.data[s.pos : s.pos+int(length)]
		rec.PayloadOffset = s.pos
		s.pos += int(length)

	default:
		// Groups and reserved types.
		s.damaged = true
		return Record{}, false
	}

	return rec, true
}

// Damaged reports whether scanning stopped on a malformed record rather
// than at the end of the buffer. It is meaningful once Next has returned
// false.
func (s *Scanner) Damaged() bool {
	return s.damaged
}

// Offset returns the byte position the scanner will read the next tag
// from. After a damaged stop it points into the record that failed to
// decode.
func (s *Scanner) Offset() int {
	return s.pos
}
