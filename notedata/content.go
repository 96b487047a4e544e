package notedata

import (
	"strings"
)

// breakNormalizer maps the line and paragraph separators Apple's editor
// emits onto plain newlines.
var breakNormalizer = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"\u2028", "\n",
	"\u2029", "\n",
)

// BuildContent joins extracted fragments into the final content string,
// applying the fallback tiers.
//
// Fragments are joined in order with newlines, editor-specific line and
// paragraph separators are normalized to "\n", and surrounding whitespace
// is trimmed. When that leaves nothing, the note's title stands in for
// the content; very short notes often store their only line as the title.
// When the title is empty too, the result is the empty string.
//
// The function is pure and total: every fragments/title combination maps
// to a string, never an error.
func BuildContent(fragments []Fragment, title string) string {
	if len(fragments) > 0 {
		texts := make([]string, len(fragments))
		for i, frag := range fragments {
			texts[i] = frag.Text
		}

		content := strings.TrimSpace(breakNormalizer.Replace(strings.Join(texts, "\n")))
		if content != "" {
			return content
		}
	}

	return strings.TrimSpace(title)
}
