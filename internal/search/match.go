package search

import (
	"regexp"
	"strings"
)

// Find scans text for term and returns match spans in left-to-right order.
//
// In literal mode, matching is done by repeated forward substring search
// advancing one position past each match start, so occurrences of a term
// overlapping itself are all reported. When caseSensitive is false the scan
// runs over lowercased copies, but spans are recorded in original text
// coordinates with length equal to the original term's length. Lowercasing
// is assumed not to change byte length; this holds for ASCII input.
//
// In regex mode, matches are the pattern's non-overlapping matches. An
// invalid pattern yields an empty span sequence, not an error and not a
// fallback to literal matching.
func Find(text, term string, caseSensitive, useRegex bool) []Span {
	if term == "" {
		return nil
	}

	if useRegex {
		return findRegex(text, term, caseSensitive)
	}
	return findLiteral(text, term, caseSensitive)
}

func findLiteral(text, term string, caseSensitive bool) []Span {
	searchText, searchTerm := text, term
	if !caseSensitive {
		searchText = strings.ToLower(text)
		searchTerm = strings.ToLower(term)
	}

	var spans []Span
	start := 0
	for {
		i := strings.Index(searchText[start:], searchTerm)
		if i < 0 {
			break
		}
		at := start + i
		spans = append(spans, Span{Start: at, End: at + len(term)})
		start = at + 1
	}

	return spans
}

func findRegex(text, term string, caseSensitive bool) []Span {
	pattern := term
	if !caseSensitive {
		pattern = "(?i)" + pattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil
	}

	var spans []Span
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if loc[0] == loc[1] {
			// Zero-width matches carry no text to snippet.
			continue
		}
		spans = append(spans, Span{Start: loc[0], End: loc[1]})
	}

	return spans
}
