package drive_tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"workspacemcp/internal/drive"
	"workspacemcp/internal/instrumentation"
	"workspacemcp/internal/server"
	"workspacemcp/internal/tools/batch"
	"workspacemcp/internal/tools/common"
)

// registerFileTools registers metadata search and file detail tools
func registerFileTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Search files tool
	searchFilesTool := mcp.NewTool("drive_search_files",
		mcp.WithDescription("Search Google Drive files by name or content using Drive's query language"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query. Either a Drive query expression (e.g. \"name contains 'report'\") or plain text to match in file names and content."),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of files to return (default: 100, max: 1000)"),
		),
	)

	s.AddTool(searchFilesTool, common.InstrumentedToolHandlerWithService(
		"drive_search_files", instrumentation.ServiceDrive, instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := getAccountFromArgs(args)

			query, ok := args["query"].(string)
			if !ok || query == "" {
				return common.ErrorResult("query is required"), nil
			}

			maxResults := 0
			if mr, ok := args["maxResults"].(float64); ok {
				maxResults = int(mr)
			}

			client, err := getDriveClient(ctx, account, sc)
			if err != nil {
				return common.ErrorResult(err.Error()), nil
			}

			files, nextPageToken, err := client.ListFiles(ctx, &drive.ListOptions{
				Query:      query,
				MaxResults: maxResults,
			})
			if err != nil {
				return common.TransportErrorResult(err), nil
			}

			payload := struct {
				Files         []*drive.FileInfo `json:"files"`
				Count         int               `json:"count"`
				NextPageToken string            `json:"nextPageToken,omitempty"`
			}{
				Files:         files,
				Count:         len(files),
				NextPageToken: nextPageToken,
			}
			return common.JSONResult(payload), nil
		}))

	// File details tool, accepts one ID or a batch
	getFileTool := mcp.NewTool("drive_get_file",
		mcp.WithDescription("Get metadata details for one or more Google Drive files"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("fileIds",
			mcp.Required(),
			mcp.Description("File ID or array of file IDs to fetch details for"),
		),
	)

	s.AddTool(getFileTool, common.InstrumentedToolHandlerWithService(
		"drive_get_file", instrumentation.ServiceDrive, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := getAccountFromArgs(args)

			fileIDs, err := batch.ParseStringOrArray(args["fileIds"], "fileIds")
			if err != nil {
				return common.ErrorResult(err.Error()), nil
			}

			client, err := getDriveClient(ctx, account, sc)
			if err != nil {
				return common.ErrorResult(err.Error()), nil
			}

			results := batch.ProcessBatch(fileIDs, func(fileID string) (string, error) {
				fileInfo, err := client.GetFile(ctx, fileID)
				if err != nil {
					return "", err
				}
				data, err := json.MarshalIndent(fileInfo, "", "  ")
				if err != nil {
					return "", err
				}
				return string(data), nil
			})

			return mcp.NewToolResultText(batch.FormatResults(results)), nil
		}))

	return nil
}
