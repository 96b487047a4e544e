package compress

import (
	"bytes"
	"errors"
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"

	"github.com/cloudnotes/notectl/internal/pool"
)

// Gzip member header magic, RFC 1952.
const (
	gzipMagic0 = 0x1f
	gzipMagic1 = 0x8b
)

// ErrDecompressedTooLarge is returned by GunzipBounded when the inflated
// payload exceeds the caller's limit.
var ErrDecompressedTooLarge = errors.New("compress: decompressed size exceeds limit")

// IsGzip reports whether data starts with the gzip magic bytes.
//
// This is a cheap header sniff, not a validation: a truncated or corrupted
// stream can still carry a valid magic. Use it to decide whether inflation
// is worth attempting at all.
func IsGzip(data []byte) bool {
	return len(data) >= 2 && data[0] == gzipMagic0 && data[1] == gzipMagic1
}

var (
	gzipReaderPool = sync.Pool{
		New: func() any { return new(gzip.Reader) },
	}
	gzipWriterPool = sync.Pool{
		New: func() any { return gzip.NewWriter(io.Discard) },
	}
)

// GunzipBounded inflates a gzip stream with a hard cap on the output size.
//
// Unlike GzipCodec.Decompress it never trusts the stream's own size claims:
// the inflated byte count is enforced while reading, so a small hostile
// input cannot balloon into an arbitrarily large allocation.
//
// Parameters:
//   - data: complete gzip stream, including header and trailer
//   - limit: maximum inflated size in bytes, must be > 0
//
// Returns:
//   - []byte: newly allocated inflated payload
//   - error: header/CRC/truncation errors from the gzip reader, or
//     ErrDecompressedTooLarge when the cap is hit
func GunzipBounded(data []byte, limit int) ([]byte, error) {
	zr := gzipReaderPool.Get().(*gzip.Reader)
	defer gzipReaderPool.Put(zr)

	if err := zr.Reset(bytes.NewReader(data)); err != nil {
		return nil, err
	}

	buf := pool.GetNoteBuffer()
	defer pool.PutNoteBuffer(buf)

	// Read one byte past the limit so overshoot is distinguishable from an
	// exact-size payload.
	if _, err := io.Copy(buf, io.LimitReader(zr, int64(limit)+1)); err != nil {
		return nil, err
	}
	if buf.Len() > limit {
		return nil, ErrDecompressedTooLarge
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// GzipCodec implements Codec using github.com/klauspost/compress/gzip.
//
// Output is a standard single-member gzip stream, readable by gzip(1).
// Readers and writers are pooled and reset between uses.
type GzipCodec struct{}

// NewGzipCodec creates a gzip codec at the default compression level.
func NewGzipCodec() GzipCodec {
	return GzipCodec{}
}

// Compress deflates data into a gzip stream.
func (c GzipCodec) Compress(data []byte) ([]byte, error) {
	buf := pool.GetExportBuffer()
	defer pool.PutExportBuffer(buf)

	zw := gzipWriterPool.Get().(*gzip.Writer)
	defer gzipWriterPool.Put(zw)
	zw.Reset(buf)

	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// Decompress inflates a gzip stream produced by Compress or any other
// conforming gzip writer.
func (c GzipCodec) Decompress(data []byte) ([]byte, error) {
	zr := gzipReaderPool.Get().(*gzip.Reader)
	defer gzipReaderPool.Put(zr)

	if err := zr.Reset(bytes.NewReader(data)); err != nil {
		return nil, err
	}

	buf := pool.GetExportBuffer()
	defer pool.PutExportBuffer(buf)

	if _, err := io.Copy(buf, zr); err != nil {
		return nil, err
	}
	if err := zr.Close(); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}
