package notedata

import (
	"cmp"
	"encoding/binary"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/cloudnotes/notectl/internal/hash"
	"github.com/cloudnotes/notectl/internal/options"
	"github.com/cloudnotes/notectl/schema"
	"github.com/cloudnotes/notectl/wire"
)

// ExtractFragments walks a decoded body payload and collects its text
// runs.
//
// The walk descends the configured schema path through nested
// length-delimited records and emits every valid UTF-8 payload found at
// the path's text field. Records off the path, non-UTF-8 payloads and
// scalar fields are skipped. When the whole descent produces nothing and
// the scan fallback is enabled, a heuristic pass over the raw payload
// salvages anything that still looks like note text.
//
// Returns:
//   - []Fragment: recovered fragments, sorted by Offset
//   - bool: true when the payload was walked to the end along the schema
//     path without hitting structural damage; false when the walk stopped
//     early or the fragments came from the heuristic scan
//
// Extraction is total: any byte sequence, including fuzzed garbage,
// yields a (possibly empty) fragment list without panicking. Structural
// damage mid-payload keeps everything collected before it.
func ExtractFragments(stream []byte, opts ...Option) ([]Fragment, bool) {
	cfg := defaultDecodeConfig()
	options.Apply(&cfg, opts...)

	return extract(stream, cfg)
}

func extract(stream []byte, cfg decodeConfig) ([]Fragment, bool) {
	if len(stream) == 0 {
		return nil, true
	}

	path, ok := schema.TextPath(cfg.version)
	if !ok {
		path, _ = schema.TextPath(schema.Latest)
	}

	frags, complete := descend(stream, path)
	if len(frags) == 0 && cfg.scanFallback {
		if salvaged := scanForText(stream, cfg.maxScanText); len(salvaged) > 0 {
			return salvaged, false
		}
	}

	return frags, complete
}

// walkFrame is one level of the descent: a scanner over one nested
// buffer, the path depth it sits at, and the buffer's offset within the
// whole payload so fragment offsets stay absolute.
type walkFrame struct {
	scanner *wire.Scanner
	depth   int
	base    int
}

// descend walks the payload with an explicit frame stack, following only
// records whose field number matches the path at their depth. Text is
// collected at the final path element; matching records above it are
// pushed for descent. Stack depth is bounded by len(path), so hostile
// nesting cannot recurse.
func descend(stream []byte, path schema.Path) ([]Fragment, bool) {
	if len(path) == 0 {
		return nil, true
	}

	var frags []Fragment
	complete := true

	stack := []walkFrame{{scanner: wire.NewScanner(stream)}}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		target := path[frame.depth]
		leaf := frame.depth == len(path)-1

		for {
			rec, ok := frame.scanner.Next()
			if !ok {
				if frame.scanner.Damaged() {
					complete = false
				}
				break
			}
			if rec.Field != target || rec.Type != wire.TypeBytes {
				continue
			}

			if leaf {
				if utf8.Valid(rec.Payload) {
					frags = append(frags, Fragment{
						Text:   string(rec.Payload),
						Offset: frame.base + rec.PayloadOffset,
						Field:  rec.Field,
					})
				}
				continue
			}

			stack = append(stack, walkFrame{
				scanner: wire.NewScanner(rec.Payload),
				depth:   frame.depth + 1,
				base:    frame.base + rec.PayloadOffset,
			})
		}
	}

	slices.SortStableFunc(frags, func(a, b Fragment) int {
		return cmp.Compare(a.Offset, b.Offset)
	})

	return frags, complete
}

// scanForText is the salvage pass for payloads that no longer match the
// known schema: a linear sweep that tries to read a varint length prefix
// at each position and accepts the following bytes when they look like
// note text. Duplicate runs are dropped, since nested framing makes the
// same text reachable at more than one position.
func scanForText(stream []byte, maxLen int) []Fragment {
	var frags []Fragment
	seen := make(map[uint64]bool)

	for pos := 0; pos < len(stream); {
		length, n := binary.Uvarint(stream[pos:])
		if n <= 0 || length == 0 || length >= uint64(maxLen) || length > uint64(len(stream)-pos-n) {
			pos++
			continue
		}

		candidate := stream[pos+n : pos+n+int(length)]
		if !plausibleNoteText(candidate) {
			pos++
			continue
		}

		if h := hash.Content(candidate); !seen[h] {
			seen[h] = true
			frags = append(frags, Fragment{
				Text:   string(candidate),
				Offset: pos + n,
			})
		}
		pos += n + int(length)
	}

	return frags
}

// plausibleNoteText reports whether a byte run reads as something a
// person typed: valid UTF-8, no control characters beyond whitespace, at
// least one letter, and not one of the UUID identifiers the format
// scatters between text runs.
func plausibleNoteText(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}

	hasLetter := false
	for _, r := range string(b) {
		switch r {
		case '\n', '\r', '\t', '\u2028', '\u2029':
			continue
		}
		if unicode.IsControl(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	if !hasLetter {
		return false
	}

	return !looksLikeUUID(b)
}

func looksLikeUUID(b []byte) bool {
	if len(b) != 36 {
		return false
	}
	for i, c := range b {
		switch i {
		case 8, 13, 18, 23:
			if c != '-' {
				return false
			}
		default:
			isHex := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
			if !isHex {
				return false
			}
		}
	}

	return true
}
