package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names for the runtime defaults.
const (
	EnvDefaultCalendarIDs      = "DEFAULT_CALENDAR_IDS"
	EnvDefaultTaskListID       = "DEFAULT_TASK_LIST_ID"
	EnvMaxContentSearchResults = "MAX_CONTENT_SEARCH_RESULTS"
	EnvContentSearchSnippetLen = "CONTENT_SEARCH_SNIPPET_LENGTH"
	EnvMaxTaskSearchResults    = "MAX_TASK_SEARCH_RESULTS"
	EnvDefaultTaskMaxResults   = "DEFAULT_TASK_MAX_RESULTS"
)

// Built-in defaults used when the corresponding environment variable is unset.
const (
	defaultCalendarID           = "primary"
	defaultTaskListID           = "@default"
	defaultMaxContentResults    = 50
	defaultSnippetLength        = 200
	defaultMaxTaskSearchResults = 100
	defaultTaskMaxResults       = 100
)

// DefaultCalendarIDs returns the calendar IDs to use when a tool call does
// not name any. Comma-separated in DEFAULT_CALENDAR_IDS; falls back to the
// user's primary calendar.
func DefaultCalendarIDs() []string {
	raw := getEnvOrDefault(EnvDefaultCalendarIDs, defaultCalendarID)

	var ids []string
	for _, id := range strings.Split(raw, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return []string{defaultCalendarID}
	}
	return ids
}

// ValidateCalendarIDs normalizes a caller-provided calendar ID list:
// whitespace is trimmed, duplicates are removed (order preserved), and an
// empty result falls back to the configured defaults.
func ValidateCalendarIDs(calendarIDs []string) []string {
	if len(calendarIDs) == 0 {
		return DefaultCalendarIDs()
	}

	seen := make(map[string]bool, len(calendarIDs))
	var validated []string
	for _, id := range calendarIDs {
		id = strings.TrimSpace(id)
		if id != "" && !seen[id] {
			validated = append(validated, id)
			seen[id] = true
		}
	}

	if len(validated) == 0 {
		return DefaultCalendarIDs()
	}
	return validated
}

// DefaultTaskListID returns the task list to use when a tool call does not
// name one. Configured via DEFAULT_TASK_LIST_ID; "@default" addresses the
// user's default list in the Tasks API.
func DefaultTaskListID() string {
	return getEnvOrDefault(EnvDefaultTaskListID, defaultTaskListID)
}

// ValidateTaskListID normalizes a caller-provided task list ID, falling back
// to the configured default when empty.
func ValidateTaskListID(taskListID string) string {
	taskListID = strings.TrimSpace(taskListID)
	if taskListID == "" {
		return DefaultTaskListID()
	}
	return taskListID
}

// ContentSearchMimeTypes returns the MIME types whose contents can be
// searched. This set is fixed: each entry has a dedicated decoder in the
// search package.
func ContentSearchMimeTypes() []string {
	return []string{
		"application/vnd.google-apps.document", // Google Docs
		"application/pdf",                      // PDF files
		"text/plain",                           // Plain text files
		"text/csv",                             // CSV files
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document", // DOCX
	}
}

// MaxContentSearchResults returns the cap on candidate documents fetched for
// a content search (default 50).
func MaxContentSearchResults() int {
	return getEnvIntOrDefault(EnvMaxContentSearchResults, defaultMaxContentResults)
}

// ContentSearchSnippetLength returns the target snippet window size in
// characters (default 200).
func ContentSearchSnippetLength() int {
	return getEnvIntOrDefault(EnvContentSearchSnippetLen, defaultSnippetLength)
}

// MaxTaskSearchResults returns the cap on task search results (default 100).
func MaxTaskSearchResults() int {
	return getEnvIntOrDefault(EnvMaxTaskSearchResults, defaultMaxTaskSearchResults)
}

// DefaultTaskMaxResults returns the default page size for task listing
// operations (default 100).
func DefaultTaskMaxResults() int {
	return getEnvIntOrDefault(EnvDefaultTaskMaxResults, defaultTaskMaxResults)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}
