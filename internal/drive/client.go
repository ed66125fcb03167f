package drive

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"workspacemcp/internal/google"
)

const (
	// FolderMimeType is the MIME type for Google Drive folders
	FolderMimeType = "application/vnd.google-apps.folder"
)

// Client wraps the Google Drive API service
type Client struct {
	service *drive.Service
	account string // The account this client is associated with
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// HasTokenForAccount checks if a valid OAuth token exists for the specified account
func HasTokenForAccount(account string) bool {
	return google.HasTokenForAccount(account)
}

// NewClientForAccount creates a new Google Drive client with OAuth2 authentication for a specific account
// Returns an error if no valid token exists - use HasTokenForAccount() to check first
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	client, err := google.GetHTTPClientForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s. Please authorize access first: %w", account, err)
	}

	driveService, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}

	return &Client{
		service: driveService,
		account: account,
	}, nil
}

// ListFiles lists files in Google Drive with optional filtering
func (c *Client) ListFiles(ctx context.Context, options *ListOptions) ([]*FileInfo, string, error) {
	call := c.service.Files.List().
		Context(ctx).
		Fields("nextPageToken, files(id, name, mimeType, size, createdTime, modifiedTime, webViewLink, parents, owners, shared, trashed)")

	if options != nil {
		if options.Query != "" {
			call = call.Q(options.Query)
		}
		if options.MaxResults > 0 {
			call = call.PageSize(int64(options.MaxResults))
		}
		if options.OrderBy != "" {
			call = call.OrderBy(options.OrderBy)
		}
		if options.PageToken != "" {
			call = call.PageToken(options.PageToken)
		}
		if !options.IncludeTrashed && options.Query == "" {
			call = call.Q("trashed=false")
		}
	} else {
		// Default: exclude trashed files
		call = call.Q("trashed=false")
	}

	fileList, err := call.Do()
	if err != nil {
		return nil, "", fmt.Errorf("failed to list files: %w", err)
	}

	files := make([]*FileInfo, len(fileList.Files))
	for i, f := range fileList.Files {
		files[i] = convertToFileInfo(f)
	}

	return files, fileList.NextPageToken, nil
}

// QueryContentCandidates runs a single-page full-text query for documents
// that may contain the search term. Only the first page is fetched; result
// sets larger than MaxResults are truncated at the candidate level.
func (c *Client) QueryContentCandidates(ctx context.Context, options *ContentQueryOptions) ([]*FileInfo, string, error) {
	if options == nil || options.Term == "" {
		return nil, "", fmt.Errorf("search term is required")
	}

	query := BuildContentQuery(options)

	call := c.service.Files.List().
		Context(ctx).
		Q(query).
		Fields("files(id, name, mimeType, size, createdTime, modifiedTime, webViewLink, parents, owners, shared, trashed)")

	if options.MaxResults > 0 {
		call = call.PageSize(int64(options.MaxResults))
	}

	fileList, err := call.Do()
	if err != nil {
		return nil, query, fmt.Errorf("failed to query content candidates: %w", err)
	}

	files := make([]*FileInfo, len(fileList.Files))
	for i, f := range fileList.Files {
		files[i] = convertToFileInfo(f)
	}

	return files, query, nil
}

// BuildContentQuery renders the Drive query string for a candidate search:
// a fullText filter on the term, an OR-combination of the allowed MIME
// types, an optional parent folder filter, and trashed=false.
func BuildContentQuery(options *ContentQueryOptions) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("fullText contains '%s'", escapeQueryValue(options.Term)))

	if len(options.MimeTypes) > 0 {
		mimeFilters := make([]string, len(options.MimeTypes))
		for i, mimeType := range options.MimeTypes {
			mimeFilters[i] = fmt.Sprintf("mimeType='%s'", escapeQueryValue(mimeType))
		}
		parts = append(parts, "("+strings.Join(mimeFilters, " or ")+")")
	}

	if options.FolderID != "" {
		parts = append(parts, fmt.Sprintf("'%s' in parents", escapeQueryValue(options.FolderID)))
	}

	parts = append(parts, "trashed=false")

	return strings.Join(parts, " and ")
}

// escapeQueryValue escapes a value for embedding in a Drive query string.
func escapeQueryValue(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	return strings.ReplaceAll(value, `'`, `\'`)
}

// GetFile retrieves metadata for a specific file
func (c *Client) GetFile(ctx context.Context, fileID string) (*FileInfo, error) {
	if fileID == "" {
		return nil, fmt.Errorf("fileID is required")
	}

	file, err := c.service.Files.Get(fileID).
		Context(ctx).
		Fields("id, name, mimeType, size, createdTime, modifiedTime, webViewLink, parents, owners, shared, trashed").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get file %s: %w", fileID, err)
	}

	return convertToFileInfo(file), nil
}

// DownloadFile downloads the raw content of a file
func (c *Client) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	if fileID == "" {
		return nil, fmt.Errorf("fileID is required")
	}

	resp, err := c.service.Files.Get(fileID).
		Context(ctx).
		Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file content %s: %w", fileID, err)
	}

	return data, nil
}

// ExportFile exports a Google-native document (Docs, Sheets, Slides) to the
// given target MIME type and returns the exported bytes
func (c *Client) ExportFile(ctx context.Context, fileID, targetMimeType string) ([]byte, error) {
	if fileID == "" {
		return nil, fmt.Errorf("fileID is required")
	}
	if targetMimeType == "" {
		return nil, fmt.Errorf("targetMimeType is required")
	}

	resp, err := c.service.Files.Export(fileID, targetMimeType).
		Context(ctx).
		Download()
	if err != nil {
		return nil, fmt.Errorf("failed to export file %s as %s: %w", fileID, targetMimeType, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read exported content %s: %w", fileID, err)
	}

	return data, nil
}

// convertToFileInfo converts a Drive API File to our FileInfo type
func convertToFileInfo(f *drive.File) *FileInfo {
	fileInfo := &FileInfo{
		ID:          f.Id,
		Name:        f.Name,
		MimeType:    f.MimeType,
		Size:        f.Size,
		WebViewLink: f.WebViewLink,
		Parents:     f.Parents,
		Shared:      f.Shared,
		Trashed:     f.Trashed,
	}

	// Parse timestamps
	if f.CreatedTime != "" {
		if t, err := time.Parse(time.RFC3339, f.CreatedTime); err == nil {
			fileInfo.CreatedTime = t
		}
	}
	if f.ModifiedTime != "" {
		if t, err := time.Parse(time.RFC3339, f.ModifiedTime); err == nil {
			fileInfo.ModifiedTime = t
		}
	}

	// Convert owners
	for _, owner := range f.Owners {
		fileInfo.Owners = append(fileInfo.Owners, User{
			DisplayName:  owner.DisplayName,
			EmailAddress: owner.EmailAddress,
		})
	}

	return fileInfo
}
