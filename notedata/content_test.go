package notedata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func frags(texts ...string) []Fragment {
	out := make([]Fragment, len(texts))
	for i, t := range texts {
		out[i] = Fragment{Text: t, Offset: i * 10}
	}
	return out
}

func TestBuildContent_JoinsFragmentsInOrder(t *testing.T) {
	got := BuildContent(frags("Buy milk", "Call mom"), "Reminders")
	require.Equal(t, "Buy milk\nCall mom", got)
}

func TestBuildContent_TitleFallback(t *testing.T) {
	got := BuildContent(nil, "Shopping List")
	require.Equal(t, "Shopping List", got)
}

func TestBuildContent_BothEmpty(t *testing.T) {
	require.Equal(t, "", BuildContent(nil, ""))
	require.Equal(t, "", BuildContent([]Fragment{}, ""))
}

func TestBuildContent_NormalizesLineBreaks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "crlf", in: "one\r\ntwo", want: "one\ntwo"},
		{name: "bare cr", in: "one\rtwo", want: "one\ntwo"},
		{name: "line separator", in: "one\u2028two", want: "one\ntwo"},
		{name: "paragraph separator", in: "one\u2029two", want: "one\ntwo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, BuildContent(frags(tt.in), ""))
		})
	}
}

func TestBuildContent_TrimsSurroundingWhitespace(t *testing.T) {
	got := BuildContent(frags("\n  hello world \n\n"), "")
	require.Equal(t, "hello world", got)
}

func TestBuildContent_WhitespaceOnlyFragmentsFallBack(t *testing.T) {
	got := BuildContent(frags("  ", "\n\t"), "Fallback Title")
	require.Equal(t, "Fallback Title", got)
}

func TestBuildContent_TitleWhitespaceTrimmed(t *testing.T) {
	got := BuildContent(nil, "  Shopping List  ")
	require.Equal(t, "Shopping List", got)
}
