package compress

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"

	"github.com/cloudnotes/notectl/internal/pool"
)

// LZ4Codec implements Codec using github.com/pierrec/lz4/v4.
//
// Output is the lz4 frame format, readable by lz4(1). The frame carries its
// own block layout and checksum, so Decompress accepts frames produced by
// any conforming writer, not just this codec.
type LZ4Codec struct{}

// NewLZ4Codec creates an lz4 codec with default frame options.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

// Compress encodes data as an lz4 frame.
func (c LZ4Codec) Compress(data []byte) ([]byte, error) {
	buf := pool.GetExportBuffer()
	defer pool.PutExportBuffer(buf)

	zw := lz4.NewWriter(buf)
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

// Decompress decodes an lz4 frame.
func (c LZ4Codec) Decompress(data []byte) ([]byte, error) {
	zr := lz4.NewReader(bytes.NewReader(data))

	buf := pool.GetExportBuffer()
	defer pool.PutExportBuffer(buf)

	if _, err := io.Copy(buf, zr); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}
