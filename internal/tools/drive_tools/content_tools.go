package drive_tools

import (
	"context"
	"errors"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"workspacemcp/internal/instrumentation"
	"workspacemcp/internal/search"
	"workspacemcp/internal/server"
	"workspacemcp/internal/tools/common"
)

// registerContentSearchTools registers the tools that search inside file contents
func registerContentSearchTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Multi-document content search
	searchContentsTool := mcp.NewTool("drive_search_file_contents",
		mcp.WithDescription("Search inside the contents of Google Drive files (Google Docs, PDF, plain text, CSV, DOCX). Returns matching files with position-accurate snippets around every hit."),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("searchTerm",
			mcp.Required(),
			mcp.Description("Text or regular expression to search for inside file contents"),
		),
		mcp.WithString("folderId",
			mcp.Description("Restrict the search to files inside this folder"),
		),
		mcp.WithString("fileTypes",
			mcp.Description("MIME types to search, comma-separated or as an array (default: Google Docs, PDF, text/plain, text/csv, DOCX)"),
		),
		mcp.WithBoolean("caseSensitive",
			mcp.Description("Match case exactly (default: false)"),
		),
		mcp.WithBoolean("useRegex",
			mcp.Description("Interpret searchTerm as a regular expression (default: false). An invalid pattern yields zero matches."),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of candidate files to scan (default: 50)"),
		),
	)

	s.AddTool(searchContentsTool, common.InstrumentedToolHandlerWithService(
		"drive_search_file_contents", instrumentation.ServiceDrive, instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := getAccountFromArgs(args)

			searchTerm, _ := args["searchTerm"].(string)
			if strings.TrimSpace(searchTerm) == "" {
				return common.ErrorResult("searchTerm cannot be empty"), nil
			}

			req := search.Request{
				Term: searchTerm,
			}
			if folderID, ok := args["folderId"].(string); ok {
				req.FolderID = folderID
			}
			req.MimeTypes = parseStringList(args["fileTypes"])
			if caseSensitive, ok := args["caseSensitive"].(bool); ok {
				req.CaseSensitive = caseSensitive
			}
			if useRegex, ok := args["useRegex"].(bool); ok {
				req.UseRegex = useRegex
			}
			if maxResults, ok := args["maxResults"].(float64); ok {
				req.MaxResults = int(maxResults)
			}

			engine, err := getSearchEngine(account, sc)
			if err != nil {
				return common.ErrorResult(err.Error()), nil
			}

			response, err := engine.Search(ctx, req)
			if err != nil {
				if errors.Is(err, search.ErrEmptyTerm) {
					return common.ErrorResult("searchTerm cannot be empty"), nil
				}
				return common.TransportErrorResult(err), nil
			}

			return common.JSONResult(response), nil
		}))

	// Single-file content search
	searchWithinFileTool := mcp.NewTool("drive_search_within_file",
		mcp.WithDescription("Search inside the contents of a single Google Drive file. Zero matches is a valid result, not an error."),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("fileId",
			mcp.Required(),
			mcp.Description("The ID of the file to search in"),
		),
		mcp.WithString("searchTerm",
			mcp.Required(),
			mcp.Description("Text or regular expression to search for"),
		),
		mcp.WithBoolean("caseSensitive",
			mcp.Description("Match case exactly (default: false)"),
		),
		mcp.WithBoolean("useRegex",
			mcp.Description("Interpret searchTerm as a regular expression (default: false). An invalid pattern yields zero matches."),
		),
	)

	s.AddTool(searchWithinFileTool, common.InstrumentedToolHandlerWithService(
		"drive_search_within_file", instrumentation.ServiceDrive, instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := getAccountFromArgs(args)

			fileID, ok := args["fileId"].(string)
			if !ok || fileID == "" {
				return common.ErrorResult("fileId is required"), nil
			}

			searchTerm, _ := args["searchTerm"].(string)
			if strings.TrimSpace(searchTerm) == "" {
				return common.ErrorResult("searchTerm cannot be empty"), nil
			}

			caseSensitive, _ := args["caseSensitive"].(bool)
			useRegex, _ := args["useRegex"].(bool)

			engine, err := getSearchEngine(account, sc)
			if err != nil {
				return common.ErrorResult(err.Error()), nil
			}

			result, err := engine.SearchInFile(ctx, fileID, searchTerm, caseSensitive, useRegex, 0)
			if err != nil {
				if errors.Is(err, search.ErrEmptyTerm) {
					return common.ErrorResult("searchTerm cannot be empty"), nil
				}
				return common.TransportErrorResult(err), nil
			}

			return common.JSONResult(result), nil
		}))

	return nil
}
