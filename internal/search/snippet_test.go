package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSnippetsBoundaryClamp(t *testing.T) {
	text := "hello"
	snippets := BuildSnippets(text, []Span{{Start: 0, End: 5}}, 10)

	assert.Len(t, snippets, 1)
	assert.Equal(t, text, snippets[0].Text)
	assert.Equal(t, 0, snippets[0].MatchStart)
	assert.Equal(t, 5, snippets[0].MatchEnd)
	assert.Equal(t, 0, snippets[0].OriginalStart)
	assert.Equal(t, 5, snippets[0].OriginalEnd)
}

func TestBuildSnippetsWindowArithmetic(t *testing.T) {
	text := "This is a long document with some test content..."
	snippets := BuildSnippets(text, []Span{{Start: 23, End: 27}}, 20)

	assert.Len(t, snippets, 1)
	assert.Equal(t, text[13:37], snippets[0].Text)
	assert.Equal(t, 10, snippets[0].MatchStart)
	assert.Equal(t, 14, snippets[0].MatchEnd)
	assert.Equal(t, 23, snippets[0].OriginalStart)
	assert.Equal(t, 27, snippets[0].OriginalEnd)
}

func TestBuildSnippetsStartClamp(t *testing.T) {
	text := "match at the very beginning of a longer text"
	snippets := BuildSnippets(text, []Span{{Start: 0, End: 5}}, 20)

	assert.Equal(t, text[0:15], snippets[0].Text)
	assert.Equal(t, 0, snippets[0].MatchStart)
	assert.Equal(t, 5, snippets[0].MatchEnd)
}

func TestBuildSnippetsOverlappingWindowsNotMerged(t *testing.T) {
	text := "aaa"
	snippets := BuildSnippets(text, []Span{{Start: 0, End: 2}, {Start: 1, End: 3}}, 10)

	// One snippet per span, in span order, even when windows overlap.
	assert.Len(t, snippets, 2)
	assert.Equal(t, "aaa", snippets[0].Text)
	assert.Equal(t, "aaa", snippets[1].Text)
	assert.Equal(t, 0, snippets[0].OriginalStart)
	assert.Equal(t, 1, snippets[1].OriginalStart)
}

func TestBuildSnippetsEmptySpans(t *testing.T) {
	snippets := BuildSnippets("some text", nil, 10)

	assert.NotNil(t, snippets)
	assert.Empty(t, snippets)
}
