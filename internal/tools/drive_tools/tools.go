package drive_tools

import (
	"context"
	"fmt"
	"strings"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"workspacemcp/internal/drive"
	"workspacemcp/internal/google"
	"workspacemcp/internal/search"
	"workspacemcp/internal/server"
)

// getAccountFromArgs extracts the account name from request arguments, defaulting to "default"
func getAccountFromArgs(args map[string]interface{}) string {
	account := "default"
	if accountVal, ok := args["account"].(string); ok && accountVal != "" {
		account = accountVal
	}
	return account
}

// getDriveClient retrieves or creates a drive client for the specified account
func getDriveClient(ctx context.Context, account string, sc *server.ServerContext) (*drive.Client, error) {
	client := sc.DriveClientForAccount(account)
	if client == nil {
		// Check if token exists before trying to create client
		if !drive.HasTokenForAccount(account) {
			errorMsg := google.GetAuthenticationErrorMessage(account)
			return nil, fmt.Errorf("%s", errorMsg)
		}

		var err error
		client, err = drive.NewClientForAccount(ctx, account)
		if err != nil {
			return nil, fmt.Errorf("failed to create Drive client for account %s: %w", account, err)
		}
		sc.SetDriveClientForAccount(account, client)
	}
	return client, nil
}

// getSearchEngine retrieves the content search engine for the specified account
func getSearchEngine(account string, sc *server.ServerContext) (*search.Engine, error) {
	engine := sc.SearchEngineForAccount(account)
	if engine == nil {
		if !drive.HasTokenForAccount(account) {
			errorMsg := google.GetAuthenticationErrorMessage(account)
			return nil, fmt.Errorf("%s", errorMsg)
		}
		return nil, fmt.Errorf("failed to create Drive client for account %s", account)
	}
	return engine, nil
}

// parseStringList parses an optional parameter that may be a comma-separated
// string or an array of strings. Returns nil when the parameter is absent.
func parseStringList(param interface{}) []string {
	switch v := param.(type) {
	case string:
		var result []string
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				result = append(result, part)
			}
		}
		return result
	case []interface{}:
		var result []string
		for _, item := range v {
			if str, ok := item.(string); ok {
				str = strings.TrimSpace(str)
				if str != "" {
					result = append(result, str)
				}
			}
		}
		return result
	default:
		return nil
	}
}

// RegisterDriveTools registers all Google Drive-related tools with the MCP server
func RegisterDriveTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	if err := registerFileTools(s, sc); err != nil {
		return fmt.Errorf("failed to register file tools: %w", err)
	}

	if err := registerContentSearchTools(s, sc); err != nil {
		return fmt.Errorf("failed to register content search tools: %w", err)
	}

	return nil
}
