package store

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cloudnotes/notectl/notedata"
)

// snippetRadius is how many bytes of context a search snippet keeps on
// each side of the match.
const snippetRadius = 40

// headLength is how much content a title-only match shows as its snippet.
const headLength = 80

// SearchResult is one matching note with a snippet of the matched
// content.
type SearchResult struct {
	NoteSummary
	Snippet string
}

// SearchNotes finds notes whose decoded content or title contains term,
// case-insensitively.
//
// Bodies are decoded on the fly with notedata.DecodeBatch, so the search
// sees exactly the text the read and export paths produce. Results keep
// the store's most-recently-modified-first order.
//
// Parameters:
//   - term: the text to look for; empty matches nothing
//   - workers: decode parallelism, <= 0 for the default
func (s *Store) SearchNotes(ctx context.Context, term string, workers int) ([]SearchResult, error) {
	if term == "" {
		return nil, nil
	}

	notes, err := s.AllNotes(ctx, time.Time{})
	if err != nil {
		return nil, err
	}

	jobs := make([]notedata.Job, len(notes))
	for i, note := range notes {
		jobs[i] = notedata.Job{Raw: note.Data, Title: note.Title}
	}

	extractions, err := notedata.DecodeBatch(ctx, jobs, workers)
	if err != nil {
		return nil, fmt.Errorf("failed to decode notes for search: %w", err)
	}

	needle := strings.ToLower(term)

	var results []SearchResult
	for i, note := range notes {
		content := extractions[i].Content

		idx := strings.Index(strings.ToLower(content), needle)
		titleHit := strings.Contains(strings.ToLower(note.Title), needle)
		if idx < 0 && !titleHit {
			continue
		}

		snippet := ""
		switch {
		case idx >= 0:
			snippet = makeSnippet(content, idx, len(needle))
		case content != "":
			snippet = headSnippet(content)
		}

		results = append(results, SearchResult{
			NoteSummary: note.NoteSummary,
			Snippet:     snippet,
		})
	}

	return results, nil
}

// makeSnippet cuts a window around the match, widened to rune boundaries
// so a multi-byte character is never split.
func makeSnippet(content string, idx, matchLen int) string {
	start := max(idx-snippetRadius, 0)
	end := min(idx+matchLen+snippetRadius, len(content))

	for start > 0 && !utf8.RuneStart(content[start]) {
		start--
	}
	for end < len(content) && !utf8.RuneStart(content[end]) {
		end++
	}

	snippet := strings.ReplaceAll(content[start:end], "\n", " ")
	if start > 0 {
		snippet = "..." + snippet
	}
	if end < len(content) {
		snippet += "..."
	}

	return snippet
}

func headSnippet(content string) string {
	if len(content) <= headLength {
		return strings.ReplaceAll(content, "\n", " ")
	}

	end := headLength
	for end < len(content) && !utf8.RuneStart(content[end]) {
		end++
	}

	return strings.ReplaceAll(content[:end], "\n", " ") + "..."
}
