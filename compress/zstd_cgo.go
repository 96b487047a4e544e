//go:build cgo

package compress

import (
	"github.com/valyala/gozstd"
)

// zstdLevel is the encoder level used for export archives. Level 3 is the
// reference default and keeps compression latency small next to SQLite I/O.
const zstdLevel = 3

// ZstdCodec implements Codec using github.com/valyala/gozstd, a cgo binding
// to libzstd. Selected when the build has cgo available; the pure-Go
// implementation in zstd_pure.go covers the rest. Both emit standard zstd
// frames and can read each other's output.
type ZstdCodec struct{}

// NewZstdCodec creates a zstd codec backed by libzstd.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

// Compress encodes data as a single zstd frame.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress decodes a zstd frame.
func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
