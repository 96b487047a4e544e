package compress

// NoopCodec implements Codec without transforming data. It backs
// format.CompressionNone so export paths can treat "no compression" the
// same as any other algorithm.
//
// Both directions return the input slice unchanged and uncopied; callers
// that mutate the result see the mutation in the original.
type NoopCodec struct{}

// NewNoopCodec creates a passthrough codec.
func NewNoopCodec() NoopCodec {
	return NoopCodec{}
}

// Compress returns data unchanged.
func (c NoopCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged.
func (c NoopCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
