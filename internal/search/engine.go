package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"workspacemcp/internal/config"
	"workspacemcp/internal/instrumentation"
	"workspacemcp/internal/logging"
)

// ErrEmptyTerm is returned when a search term is empty after trimming.
// It is a validation error raised before any remote call.
var ErrEmptyTerm = errors.New("search term cannot be empty")

// Index queries the remote metadata index for candidate documents.
type Index interface {
	// QueryCandidates runs a single-page full-text query and returns the
	// candidates in the index's own order, plus the resolved query string
	QueryCandidates(ctx context.Context, query CandidateQuery) ([]Document, string, error)

	// GetDocument fetches one document's metadata by ID
	GetDocument(ctx context.Context, fileID string) (Document, error)
}

// CandidateQuery is the filter for a candidate index query.
type CandidateQuery struct {
	Term       string
	MimeTypes  []string
	FolderID   string
	MaxResults int
}

// Engine runs the content search pipeline: index query, per-document text
// extraction, match scanning, and snippet construction. Documents are
// processed sequentially; a failure on one document never aborts the search.
type Engine struct {
	index     Index
	extractor *Extractor
	logger    *slog.Logger
	metrics   *instrumentation.Metrics
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the engine's logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetrics sets the metrics recorder for scan and extraction counters.
func WithMetrics(metrics *instrumentation.Metrics) EngineOption {
	return func(e *Engine) {
		e.metrics = metrics
	}
}

// NewEngine creates a content search engine over the given index and
// document store.
func NewEngine(index Index, store DocumentStore, opts ...EngineOption) *Engine {
	e := &Engine{
		index:     index,
		extractor: NewExtractor(store),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Search runs a multi-document content search. The candidate query is
// executed once; candidates beyond MaxResults are truncated, not paged.
// Only documents with at least one match appear in the response, in
// candidate query order. TotalMatches counts matching documents.
func (e *Engine) Search(ctx context.Context, req Request) (*Response, error) {
	term := strings.TrimSpace(req.Term)
	if term == "" {
		return nil, ErrEmptyTerm
	}

	mimeTypes := req.MimeTypes
	if len(mimeTypes) == 0 {
		mimeTypes = config.ContentSearchMimeTypes()
	}
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = config.MaxContentSearchResults()
	}
	snippetLength := req.SnippetLength
	if snippetLength <= 0 {
		snippetLength = config.ContentSearchSnippetLength()
	}

	queryTerm := term
	if !req.CaseSensitive {
		queryTerm = strings.ToLower(queryTerm)
	}

	candidates, query, err := e.index.QueryCandidates(ctx, CandidateQuery{
		Term:       queryTerm,
		MimeTypes:  mimeTypes,
		FolderID:   req.FolderID,
		MaxResults: maxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("candidate query failed: %w", err)
	}

	results := make([]Result, 0, len(candidates))
	for _, doc := range candidates {
		snippets, matchCount := e.scanDocument(ctx, doc, term, req.CaseSensitive, req.UseRegex, snippetLength)
		if matchCount == 0 {
			continue
		}

		results = append(results, Result{
			FileID:       doc.ID,
			FileName:     doc.Name,
			MimeType:     doc.MimeType,
			CreatedTime:  doc.CreatedTime,
			ModifiedTime: doc.ModifiedTime,
			WebViewLink:  doc.WebViewLink,
			MatchCount:   matchCount,
			Snippets:     snippets,
		})
	}

	return &Response{
		Results:      results,
		TotalMatches: len(results),
		SearchTerm:   term,
		Query:        query,
	}, nil
}

// SearchInFile runs the pipeline against one known document. A missing
// document is an error; a document without matches is a valid result with
// HasMatches=false.
func (e *Engine) SearchInFile(ctx context.Context, fileID, term string, caseSensitive, useRegex bool, snippetLength int) (*FileResult, error) {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return nil, ErrEmptyTerm
	}
	if fileID == "" {
		return nil, errors.New("file ID is required")
	}

	if snippetLength <= 0 {
		snippetLength = config.ContentSearchSnippetLength()
	}

	doc, err := e.index.GetDocument(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve file %s: %w", fileID, err)
	}

	snippets, matchCount := e.scanDocument(ctx, doc, trimmed, caseSensitive, useRegex, snippetLength)

	return &FileResult{
		FileID:     doc.ID,
		FileName:   doc.Name,
		MimeType:   doc.MimeType,
		SearchTerm: trimmed,
		HasMatches: matchCount > 0,
		MatchCount: matchCount,
		Snippets:   snippets,
	}, nil
}

// scanDocument extracts one document's text and scans it for the term.
// Extraction failures are logged and reported as zero matches.
func (e *Engine) scanDocument(ctx context.Context, doc Document, term string, caseSensitive, useRegex bool, snippetLength int) ([]Snippet, int) {
	e.metrics.RecordDocumentScanned(ctx, doc.MimeType)

	text, err := e.extractor.Extract(ctx, doc)
	if err != nil {
		e.logger.Warn("content extraction failed",
			logging.FileID(doc.ID),
			logging.MimeType(doc.MimeType),
			logging.Err(err))
		e.metrics.RecordExtractionFailure(ctx, doc.MimeType)
		return []Snippet{}, 0
	}

	spans := Find(text, term, caseSensitive, useRegex)
	if len(spans) == 0 {
		return []Snippet{}, 0
	}

	return BuildSnippets(text, spans, snippetLength), len(spans)
}
