package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindLiteralOverlapping(t *testing.T) {
	spans := Find("aaa", "aa", true, false)

	assert.Equal(t, []Span{{Start: 0, End: 2}, {Start: 1, End: 3}}, spans)
}

func TestFindLiteralCaseInsensitive(t *testing.T) {
	spans := Find("Test content", "test", false, false)

	assert.Equal(t, []Span{{Start: 0, End: 4}}, spans)
}

func TestFindLiteralCaseSensitive(t *testing.T) {
	assert.Empty(t, Find("Test content", "test", true, false))
	assert.Equal(t, []Span{{Start: 0, End: 4}}, Find("Test content", "Test", true, false))
}

func TestFindLiteralMultipleMatches(t *testing.T) {
	spans := Find("one fish two fish", "fish", true, false)

	assert.Equal(t, []Span{{Start: 4, End: 8}, {Start: 13, End: 17}}, spans)
}

func TestFindLiteralNoMatch(t *testing.T) {
	assert.Empty(t, Find("some text", "missing", false, false))
}

func TestFindEmptyTerm(t *testing.T) {
	assert.Empty(t, Find("some text", "", false, false))
	assert.Empty(t, Find("some text", "", false, true))
}

func TestFindRegexNonOverlapping(t *testing.T) {
	spans := Find("test123 test456", `test\d+`, false, true)

	assert.Equal(t, []Span{{Start: 0, End: 7}, {Start: 8, End: 15}}, spans)
}

func TestFindRegexCaseSensitivity(t *testing.T) {
	// Case-insensitive by default flag
	assert.Equal(t, []Span{{Start: 0, End: 4}}, Find("Test content", "test", false, true))

	// Case-sensitive regex does not match different case
	assert.Empty(t, Find("Test content", "test", true, true))
}

func TestFindInvalidRegexYieldsEmpty(t *testing.T) {
	spans := Find("any text with [invalid inside", "[invalid", false, true)

	// Invalid pattern produces no matches; it does not fall back to a
	// literal scan even though the text contains the term verbatim.
	assert.Empty(t, spans)
}

func TestFindRegexZeroWidthMatchesSkipped(t *testing.T) {
	spans := Find("abc", "x*", true, true)

	assert.Empty(t, spans)
}
