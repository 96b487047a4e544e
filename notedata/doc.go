// Package notedata decodes the compressed binary bodies Apple Notes
// stores for each note.
//
// A stored body is a gzip stream wrapping a nested, length-delimited
// binary structure. The decoding pipeline mirrors that layout:
//
//	raw blob → Decompress → ExtractFragments → BuildContent
//
// Decompress sniffs and inflates the gzip layer. ExtractFragments walks
// the inner structure along a versioned field path (package schema) and
// collects the UTF-8 text runs it finds, salvaging off-path text with a
// heuristic scan when the known path yields nothing. BuildContent joins
// the fragments into one normalized string, substituting the note's title
// when no text was recovered.
//
// Decode runs all three stages and reports the outcome as an Extraction,
// whose Status records how far decoding got. The pipeline is total:
// malformed, truncated or adversarial input degrades the status, it never
// returns an error and never panics. Every stage is pure and allocation
// scoped, so DecodeBatch can fan notes out across workers without any
// shared state.
package notedata
