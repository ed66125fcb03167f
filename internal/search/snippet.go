package search

// BuildSnippets produces one snippet per span, in span order. Each snippet
// is a window of about snippetLength bytes centered on its match, clamped to
// the text boundaries. Overlapping windows are not merged and duplicates are
// not removed.
func BuildSnippets(text string, spans []Span, snippetLength int) []Snippet {
	half := snippetLength / 2

	snippets := make([]Snippet, 0, len(spans))
	for _, span := range spans {
		windowStart := span.Start - half
		if windowStart < 0 {
			windowStart = 0
		}
		windowEnd := span.End + half
		if windowEnd > len(text) {
			windowEnd = len(text)
		}

		snippets = append(snippets, Snippet{
			Text:          text[windowStart:windowEnd],
			MatchStart:    span.Start - windowStart,
			MatchEnd:      span.End - windowStart,
			OriginalStart: span.Start,
			OriginalEnd:   span.End,
		})
	}

	return snippets
}
