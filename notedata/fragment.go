package notedata

// Fragment is one contiguous run of note text recovered from a decoded
// body payload.
type Fragment struct {
	// Text is the fragment's content, always valid UTF-8.
	Text string
	// Offset is the byte position of the text within the decoded payload.
	// Fragments returned by ExtractFragments are sorted by this field, so
	// joining them reproduces document order.
	Offset int
	// Field is the field number the text was read from on the schema
	// path. Zero for fragments recovered by the heuristic scan, where no
	// field attribution exists.
	Field uint64
}
