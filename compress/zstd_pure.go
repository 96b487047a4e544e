//go:build !cgo

package compress

import (
	"sync"

	"github.com/klauspost/compress/zstd"
)

var (
	zstdEncoder     *zstd.Encoder
	zstdEncoderOnce sync.Once

	zstdDecoder     *zstd.Decoder
	zstdDecoderOnce sync.Once
)

func getZstdEncoder() *zstd.Encoder {
	zstdEncoderOnce.Do(func() {
		// EncodeAll never fails with these options, so the constructor
		// error only guards against option mistakes.
		enc, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic("compress: zstd encoder init: " + err.Error())
		}
		zstdEncoder = enc
	})

	return zstdEncoder
}

func getZstdDecoder() *zstd.Decoder {
	zstdDecoderOnce.Do(func() {
		dec, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic("compress: zstd decoder init: " + err.Error())
		}
		zstdDecoder = dec
	})

	return zstdDecoder
}

// ZstdCodec implements Codec using github.com/klauspost/compress/zstd.
// Selected for cgo-free builds; the libzstd binding in zstd_cgo.go covers
// the rest. Both emit standard zstd frames and can read each other's
// output.
type ZstdCodec struct{}

// NewZstdCodec creates a pure-Go zstd codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

// Compress encodes data as a single zstd frame.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	return getZstdEncoder().EncodeAll(data, nil), nil
}

// Decompress decodes a zstd frame.
func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return getZstdDecoder().DecodeAll(data, nil)
}
