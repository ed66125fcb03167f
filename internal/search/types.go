package search

import "time"

// Document is the metadata of a candidate document returned by the index
// query. It is read-only throughout the pipeline.
type Document struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	MimeType     string    `json:"mimeType"`
	CreatedTime  time.Time `json:"createdTime"`
	ModifiedTime time.Time `json:"modifiedTime"`
	Size         int64     `json:"size,omitempty"`
	Parents      []string  `json:"parents,omitempty"`
	WebViewLink  string    `json:"webViewLink,omitempty"`
}

// Span is a half-open byte-offset interval [Start, End) identifying one
// match occurrence in extracted text.
type Span struct {
	Start int
	End   int
}

// Snippet is a bounded text window around one match span. Match coordinates
// are given both window-relative and in absolute text offsets.
type Snippet struct {
	Text          string `json:"text"`
	MatchStart    int    `json:"match_start"`
	MatchEnd      int    `json:"match_end"`
	OriginalStart int    `json:"original_start"`
	OriginalEnd   int    `json:"original_end"`
}

// Request describes one content search. Zero values for MimeTypes,
// MaxResults, and SnippetLength are replaced with configured defaults.
type Request struct {
	Term          string
	FolderID      string
	MimeTypes     []string
	CaseSensitive bool
	UseRegex      bool
	MaxResults    int
	SnippetLength int
}

// Result is one matching document with its snippets.
type Result struct {
	FileID       string    `json:"file_id"`
	FileName     string    `json:"file_name"`
	MimeType     string    `json:"mime_type"`
	CreatedTime  time.Time `json:"created_time"`
	ModifiedTime time.Time `json:"modified_time"`
	WebViewLink  string    `json:"web_view_link,omitempty"`
	MatchCount   int       `json:"match_count"`
	Snippets     []Snippet `json:"snippets"`
}

// Response is the outcome of a multi-document content search. TotalMatches
// counts matching documents, not individual spans. Query echoes the resolved
// index query string.
type Response struct {
	Results      []Result `json:"results"`
	TotalMatches int      `json:"total_matches"`
	SearchTerm   string   `json:"search_term"`
	Query        string   `json:"query"`
}

// FileResult is the outcome of searching within a single known file. Zero
// matches is a valid result, distinct from a lookup or transport error.
type FileResult struct {
	FileID     string    `json:"file_id"`
	FileName   string    `json:"file_name"`
	MimeType   string    `json:"mime_type"`
	SearchTerm string    `json:"search_term"`
	HasMatches bool      `json:"has_matches"`
	MatchCount int       `json:"match_count"`
	Snippets   []Snippet `json:"snippets"`
}
