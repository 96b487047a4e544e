package compress

import (
	"fmt"

	"github.com/cloudnotes/notectl/errs"
	"github.com/cloudnotes/notectl/format"
)

// Compressor compresses a byte payload in one shot.
//
// Implementations are used for export archives, where the whole rendered
// document is in memory; there is no streaming surface.
//
// Memory management:
//   - The returned slice is newly allocated and owned by the caller.
//   - The input slice is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
//
// Implementations validate the input framing and return an error for
// corrupted or foreign data. Callers that need degrade-instead-of-fail
// semantics (the note-body decoder) wrap these errors themselves.
//
// Thread safety: all built-in decompressors are safe for concurrent use.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec returns a fresh Codec for the given compression type.
//
// Returns:
//   - Codec: codec instance for the algorithm
//   - error: errs.ErrUnknownCompression for unmapped types
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoopCodec(), nil
	case format.CompressionGzip:
		return NewGzipCodec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(), nil
	case format.CompressionS2:
		return NewS2Codec(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownCompression, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoopCodec(),
	format.CompressionGzip: NewGzipCodec(),
	format.CompressionZstd: NewZstdCodec(),
	format.CompressionLZ4:  NewLZ4Codec(),
	format.CompressionS2:   NewS2Codec(),
}

// GetCodec returns the shared built-in Codec for the given compression type.
// The built-in codecs are stateless and safe to share across goroutines.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnknownCompression, compressionType)
}
