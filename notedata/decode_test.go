package notedata

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cloudnotes/notectl/schema"
)

func TestDecode_EmptyBlobUsesTitle(t *testing.T) {
	got := Decode(nil, "Shopping List")

	require.Equal(t, StatusAbsent, got.Status)
	require.Empty(t, got.Fragments)
	require.Equal(t, "Shopping List", got.Content)
}

func TestDecode_FragmentsIgnoreTitle(t *testing.T) {
	blob := gzipBlob(t, bodyStream("Buy milk", "Call mom"))

	got := Decode(blob, "Reminders")

	require.Equal(t, StatusComplete, got.Status)
	require.Equal(t, "Buy milk\nCall mom", got.Content)
}

func TestDecode_TruncatedGzipFallsBackToTitle(t *testing.T) {
	blob := gzipBlob(t, bodyStream("Lost body"))

	got := Decode(blob[:3], "Recovered Title")

	require.Equal(t, StatusAbsent, got.Status)
	require.Equal(t, "Recovered Title", got.Content)
}

func TestDecode_PartialStreamKeepsCollectedText(t *testing.T) {
	stream := bodyStream("Kept line")
	stream = binary.AppendUvarint(stream, schema.FieldDocument<<3|2)
	stream = binary.AppendUvarint(stream, 4096)
	stream = append(stream, 0x01)

	got := Decode(gzipBlob(t, stream), "unused")

	require.Equal(t, StatusPartial, got.Status)
	require.Equal(t, "Kept line", got.Content)
}

func TestDecode_InvalidUTF8FragmentSkipped(t *testing.T) {
	note := noteMessage([]byte{0xff, 0xfe}, []byte("Hello"))
	document := appendBytesRecord(nil, schema.FieldNote, note)
	stream := appendBytesRecord(nil, schema.FieldDocument, document)

	got := Decode(gzipBlob(t, stream), "unused")

	require.Equal(t, StatusComplete, got.Status)
	require.Equal(t, "Hello", got.Content)
}

func TestDecode_NoTextNoTitleIsEmptyString(t *testing.T) {
	document := appendBytesRecord(nil, schema.FieldNote, noteMessage())
	stream := appendBytesRecord(nil, schema.FieldDocument, document)

	got := Decode(gzipBlob(t, stream), "")

	require.Equal(t, StatusComplete, got.Status)
	require.Equal(t, "", got.Content)
}

func TestDecode_GarbageBlobNeverFails(t *testing.T) {
	blobs := [][]byte{
		nil,
		{0x00},
		{0x1f, 0x8b},
		[]byte("definitely not compressed"),
		{0x1f, 0x8b, 0x08, 0x00, 0xff, 0xff, 0xff, 0xff},
	}

	for _, blob := range blobs {
		got := Decode(blob, "Title")
		require.Equal(t, StatusAbsent, got.Status)
		require.Equal(t, "Title", got.Content)
	}
}

func TestDecode_Deterministic(t *testing.T) {
	blob := gzipBlob(t, bodyStream("Buy milk", "Call mom"))

	first := Decode(blob, "Reminders")
	for range 5 {
		require.Equal(t, first, Decode(blob, "Reminders"))
	}
}

func TestStatus_String(t *testing.T) {
	require.Equal(t, "absent", StatusAbsent.String())
	require.Equal(t, "partial", StatusPartial.String())
	require.Equal(t, "complete", StatusComplete.String())
	require.Equal(t, "unknown", Status(9).String())
}
