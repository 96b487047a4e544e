package notedata

import (
	"github.com/cloudnotes/notectl/compress"
)

// MaxDecodedSize caps the inflated size of one note body. Real bodies are
// kilobytes; the cap only exists so a crafted blob cannot turn a 100-byte
// row into a multi-gigabyte allocation.
const MaxDecodedSize = 64 << 20

// Decompress inflates a stored note body.
//
// Parameters:
//   - raw: the blob exactly as read from the store, possibly empty
//
// Returns:
//   - []byte: the inflated payload, owned by the caller
//   - bool: false when raw is empty, not gzip-framed, truncated, corrupt,
//     or inflates past MaxDecodedSize
//
// A false return means "no decodable content", not an error: short notes
// legitimately store nothing, and corrupt rows must not take down a whole
// listing. The function is pure and never panics, whatever the input.
func Decompress(raw []byte) ([]byte, bool) {
	if !compress.IsGzip(raw) {
		return nil, false
	}

	stream, err := compress.GunzipBounded(raw, MaxDecodedSize)
	if err != nil {
		return nil, false
	}

	return stream, true
}
