package search

import (
	"context"

	"workspacemcp/internal/drive"
)

// DriveSource adapts a Drive client to the Index and DocumentStore
// interfaces consumed by the search engine.
type DriveSource struct {
	client *drive.Client
}

// NewDriveSource creates a DriveSource over the given Drive client.
func NewDriveSource(client *drive.Client) *DriveSource {
	return &DriveSource{client: client}
}

// QueryCandidates runs a single-page full-text candidate query against Drive.
func (s *DriveSource) QueryCandidates(ctx context.Context, query CandidateQuery) ([]Document, string, error) {
	files, resolvedQuery, err := s.client.QueryContentCandidates(ctx, &drive.ContentQueryOptions{
		Term:       query.Term,
		MimeTypes:  query.MimeTypes,
		FolderID:   query.FolderID,
		MaxResults: query.MaxResults,
	})
	if err != nil {
		return nil, resolvedQuery, err
	}

	docs := make([]Document, len(files))
	for i, f := range files {
		docs[i] = toDocument(f)
	}

	return docs, resolvedQuery, nil
}

// GetDocument fetches one file's metadata from Drive.
func (s *DriveSource) GetDocument(ctx context.Context, fileID string) (Document, error) {
	file, err := s.client.GetFile(ctx, fileID)
	if err != nil {
		return Document{}, err
	}
	return toDocument(file), nil
}

// Export exports a Google-native document to the target MIME type.
func (s *DriveSource) Export(ctx context.Context, fileID, targetMimeType string) ([]byte, error) {
	return s.client.ExportFile(ctx, fileID, targetMimeType)
}

// Download fetches a file's raw bytes.
func (s *DriveSource) Download(ctx context.Context, fileID string) ([]byte, error) {
	return s.client.DownloadFile(ctx, fileID)
}

func toDocument(f *drive.FileInfo) Document {
	return Document{
		ID:           f.ID,
		Name:         f.Name,
		MimeType:     f.MimeType,
		CreatedTime:  f.CreatedTime,
		ModifiedTime: f.ModifiedTime,
		Size:         f.Size,
		Parents:      f.Parents,
		WebViewLink:  f.WebViewLink,
	}
}
