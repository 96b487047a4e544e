package notedata

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cloudnotes/notectl/compress"
)

func gzipBlob(t *testing.T, payload []byte) []byte {
	t.Helper()

	blob, err := compress.NewGzipCodec().Compress(payload)
	require.NoError(t, err)
	return blob
}

func TestDecompress_RoundTrip(t *testing.T) {
	payload := bodyStream("Buy milk")

	stream, ok := Decompress(gzipBlob(t, payload))

	require.True(t, ok)
	require.Equal(t, payload, stream)
}

func TestDecompress_EmptyBlob(t *testing.T) {
	_, ok := Decompress(nil)
	require.False(t, ok)

	_, ok = Decompress([]byte{})
	require.False(t, ok)
}

func TestDecompress_NotGzip(t *testing.T) {
	_, ok := Decompress([]byte("plain text, not a blob"))
	require.False(t, ok)
}

func TestDecompress_TruncatedHeader(t *testing.T) {
	blob := gzipBlob(t, bodyStream("Buy milk"))

	_, ok := Decompress(blob[:3])
	require.False(t, ok)
}

func TestDecompress_TruncatedStream(t *testing.T) {
	blob := gzipBlob(t, bodyStream("A reasonably long note body to compress"))

	_, ok := Decompress(blob[:len(blob)/2])
	require.False(t, ok)
}

func TestDecompress_CorruptBody(t *testing.T) {
	blob := gzipBlob(t, bytes.Repeat([]byte("note content "), 200))

	for i := len(blob) / 2; i < len(blob)/2+4; i++ {
		blob[i] ^= 0xFF
	}

	_, ok := Decompress(blob)
	require.False(t, ok)
}

func TestDecompress_OversizedPayloadRejected(t *testing.T) {
	blob := gzipBlob(t, make([]byte, MaxDecodedSize+1))

	_, ok := Decompress(blob)
	require.False(t, ok)
}

func TestDecompress_NeverPanicsOnJunk(t *testing.T) {
	inputs := [][]byte{
		{0x1f},
		{0x1f, 0x8b},
		{0x1f, 0x8b, 0x08},
		{0x1f, 0x8b, 0xff, 0xff, 0xff, 0xff},
		bytes.Repeat([]byte{0x1f, 0x8b}, 50),
	}

	for _, in := range inputs {
		_, _ = Decompress(in)
	}
}
