package search

import (
	"context"
	"fmt"
)

// DocumentStore fetches document content from the remote store.
type DocumentStore interface {
	// Export exports a Google-native document to the target MIME type
	Export(ctx context.Context, fileID, targetMimeType string) ([]byte, error)

	// Download fetches a file's raw bytes
	Download(ctx context.Context, fileID string) ([]byte, error)
}

// Extractor turns a candidate document into a single decoded text payload,
// dispatching on the document's format kind.
type Extractor struct {
	store DocumentStore
}

// NewExtractor creates an Extractor backed by the given document store.
func NewExtractor(store DocumentStore) *Extractor {
	return &Extractor{store: store}
}

// Extract fetches and decodes the document's text. Any fetch or decode
// error, and any unsupported MIME type, is returned as an error; callers
// treat extraction failure as "no matches" for that document.
func (e *Extractor) Extract(ctx context.Context, doc Document) (string, error) {
	switch KindForMime(doc.MimeType) {
	case KindGoogleDoc:
		data, err := e.store.Export(ctx, doc.ID, "text/plain")
		if err != nil {
			return "", fmt.Errorf("failed to export document %s: %w", doc.ID, err)
		}
		return string(data), nil

	case KindPDF:
		data, err := e.store.Download(ctx, doc.ID)
		if err != nil {
			return "", fmt.Errorf("failed to download PDF %s: %w", doc.ID, err)
		}
		text, err := extractPDFText(data)
		if err != nil {
			return "", fmt.Errorf("failed to extract PDF text from %s: %w", doc.ID, err)
		}
		return text, nil

	case KindText:
		data, err := e.store.Download(ctx, doc.ID)
		if err != nil {
			return "", fmt.Errorf("failed to download file %s: %w", doc.ID, err)
		}
		return string(data), nil

	case KindDocx:
		data, err := e.store.Download(ctx, doc.ID)
		if err != nil {
			return "", fmt.Errorf("failed to download document %s: %w", doc.ID, err)
		}
		text, err := extractDocxText(data)
		if err != nil {
			return "", fmt.Errorf("failed to extract DOCX text from %s: %w", doc.ID, err)
		}
		return text, nil

	default:
		return "", fmt.Errorf("unsupported MIME type %q for file %s", doc.MimeType, doc.ID)
	}
}
