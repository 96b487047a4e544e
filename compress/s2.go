package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/s2"

	"github.com/cloudnotes/notectl/internal/pool"
)

// S2Codec implements Codec using github.com/klauspost/compress/s2.
//
// Output is the s2 stream format (a snappy framing extension), matching
// what the s2c command-line tool produces for files.
type S2Codec struct{}

// NewS2Codec creates an s2 codec with default stream options.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

// Compress encodes data as an s2 stream.
func (c S2Codec) Compress(data []byte) ([]byte, error) {
	buf := pool.GetExportBuffer()
	defer pool.PutExportBuffer(buf)

	zw := s2.NewWriter(buf)
	if err := zw.EncodeBuffer(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// Decompress decodes an s2 stream.
func (c S2Codec) Decompress(data []byte) ([]byte, error) {
	zr := s2.NewReader(bytes.NewReader(data))

	buf := pool.GetExportBuffer()
	defer pool.PutExportBuffer(buf)

	if _, err := io.Copy(buf, zr); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}
