package notedata

import (
	"github.com/cloudnotes/notectl/internal/options"
)

// Status records how far decoding got for one note body.
type Status uint8

const (
	// StatusAbsent means no decodable payload existed: the blob was
	// empty, not gzip, or corrupt. Content carries the title fallback.
	StatusAbsent Status = iota
	// StatusPartial means text was recovered but not cleanly: the walk
	// hit structural damage, or the fragments came from the heuristic
	// scan rather than the schema path.
	StatusPartial
	// StatusComplete means the payload was walked to the end along the
	// schema path. The fragment list may still be empty for notes that
	// genuinely store no body text.
	StatusComplete
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusAbsent:
		return "absent"
	case StatusPartial:
		return "partial"
	case StatusComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Extraction is the outcome of decoding one note body.
type Extraction struct {
	// Status records which fallback tier produced Content.
	Status Status
	// Fragments holds the recovered text runs in document order. Empty
	// for StatusAbsent.
	Fragments []Fragment
	// Content is the final string for display or export. Always set,
	// possibly to the title fallback or "".
	Content string
}

// Decode runs the full pipeline on one stored note body: inflate the
// blob, extract text fragments, and build the content string with the
// title as fallback.
//
// Parameters:
//   - raw: the blob as read from the store, possibly empty or corrupt
//   - title: the note's title, used when no text is recoverable
//
// Returns an Extraction whose Content is always usable. Decode never
// fails: adversarial input degrades Status instead of producing an
// error. Calls are independent and stateless, so Decode is safe to run
// concurrently from many goroutines.
func Decode(raw []byte, title string, opts ...Option) Extraction {
	cfg := defaultDecodeConfig()
	options.Apply(&cfg, opts...)

	stream, ok := Decompress(raw)
	if !ok {
		return Extraction{
			Status:  StatusAbsent,
			Content: BuildContent(nil, title),
		}
	}

	frags, complete := extract(stream, cfg)

	status := StatusComplete
	if !complete {
		status = StatusPartial
	}

	return Extraction{
		Status:    status,
		Fragments: frags,
		Content:   BuildContent(frags, title),
	}
}
