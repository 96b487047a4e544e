package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContent_DistinctInputs(t *testing.T) {
	require.NotEqual(t, Content([]byte("Buy milk")), Content([]byte("Call mom")))
}

func TestContent_Stable(t *testing.T) {
	body := []byte("Shopping List\nBuy milk")
	require.Equal(t, Content(body), Content(body))
}

func TestFingerprint_Format(t *testing.T) {
	fp := Fingerprint([]byte("Shopping List"))

	require.Len(t, fp, 16)
	for _, r := range fp {
		require.Contains(t, "0123456789abcdef", string(r))
	}
}

func TestFingerprint_Stable(t *testing.T) {
	require.Equal(t, Fingerprint([]byte("same")), Fingerprint([]byte("same")))
	require.NotEqual(t, Fingerprint([]byte("same")), Fingerprint([]byte("different")))
}

func TestFingerprint_Empty(t *testing.T) {
	require.Equal(t, Fingerprint(nil), Fingerprint([]byte{}))
	require.Len(t, Fingerprint(nil), 16)
}
