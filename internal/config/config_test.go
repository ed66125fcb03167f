package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCalendarIDs(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected []string
	}{
		{
			name:     "unset falls back to primary",
			envValue: "",
			expected: []string{"primary"},
		},
		{
			name:     "single calendar",
			envValue: "work@example.com",
			expected: []string{"work@example.com"},
		},
		{
			name:     "comma separated list",
			envValue: "work@example.com,personal@example.com",
			expected: []string{"work@example.com", "personal@example.com"},
		},
		{
			name:     "whitespace around entries is trimmed",
			envValue: " work@example.com , personal@example.com ",
			expected: []string{"work@example.com", "personal@example.com"},
		},
		{
			name:     "empty entries are skipped",
			envValue: "work@example.com,,personal@example.com,",
			expected: []string{"work@example.com", "personal@example.com"},
		},
		{
			name:     "only separators falls back to primary",
			envValue: ", ,",
			expected: []string{"primary"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv(EnvDefaultCalendarIDs, tt.envValue)
			}
			assert.Equal(t, tt.expected, DefaultCalendarIDs())
		})
	}
}

func TestValidateCalendarIDs(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil falls back to defaults",
			input:    nil,
			expected: []string{"primary"},
		},
		{
			name:     "valid IDs pass through",
			input:    []string{"primary", "work@example.com"},
			expected: []string{"primary", "work@example.com"},
		},
		{
			name:     "duplicates removed preserving order",
			input:    []string{"primary", "work@example.com", "primary"},
			expected: []string{"primary", "work@example.com"},
		},
		{
			name:     "whitespace trimmed",
			input:    []string{"  primary  "},
			expected: []string{"primary"},
		},
		{
			name:     "all empty falls back to defaults",
			input:    []string{"", "   "},
			expected: []string{"primary"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateCalendarIDs(tt.input))
		})
	}
}

func TestDefaultTaskListID(t *testing.T) {
	assert.Equal(t, "@default", DefaultTaskListID())

	t.Setenv(EnvDefaultTaskListID, "custom-list")
	assert.Equal(t, "custom-list", DefaultTaskListID())
}

func TestValidateTaskListID(t *testing.T) {
	assert.Equal(t, "@default", ValidateTaskListID(""))
	assert.Equal(t, "@default", ValidateTaskListID("   "))
	assert.Equal(t, "my-list", ValidateTaskListID("my-list"))
	assert.Equal(t, "my-list", ValidateTaskListID("  my-list  "))
}

func TestContentSearchMimeTypes(t *testing.T) {
	mimeTypes := ContentSearchMimeTypes()

	assert.Contains(t, mimeTypes, "application/vnd.google-apps.document")
	assert.Contains(t, mimeTypes, "application/pdf")
	assert.Contains(t, mimeTypes, "text/plain")
	assert.Contains(t, mimeTypes, "text/csv")
	assert.Contains(t, mimeTypes, "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	assert.Len(t, mimeTypes, 5)
}

func TestIntDefaults(t *testing.T) {
	assert.Equal(t, 50, MaxContentSearchResults())
	assert.Equal(t, 200, ContentSearchSnippetLength())
	assert.Equal(t, 100, MaxTaskSearchResults())
	assert.Equal(t, 100, DefaultTaskMaxResults())
}

func TestIntOverrides(t *testing.T) {
	t.Setenv(EnvMaxContentSearchResults, "10")
	t.Setenv(EnvContentSearchSnippetLen, "80")
	assert.Equal(t, 10, MaxContentSearchResults())
	assert.Equal(t, 80, ContentSearchSnippetLength())

	// Invalid or non-positive values fall back to the defaults.
	t.Setenv(EnvMaxContentSearchResults, "not-a-number")
	t.Setenv(EnvContentSearchSnippetLen, "0")
	assert.Equal(t, 50, MaxContentSearchResults())
	assert.Equal(t, 200, ContentSearchSnippetLength())
}
