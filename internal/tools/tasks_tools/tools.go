package tasks_tools

import (
	"context"
	"fmt"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"workspacemcp/internal/config"
	"workspacemcp/internal/google"
	"workspacemcp/internal/server"
	"workspacemcp/internal/tasks"
)

// getAccountFromArgs extracts the account name from request arguments, defaulting to "default"
func getAccountFromArgs(args map[string]interface{}) string {
	account := "default"
	if accountVal, ok := args["account"].(string); ok && accountVal != "" {
		account = accountVal
	}
	return account
}

// getTasksClient retrieves or creates a tasks client for the specified account
func getTasksClient(ctx context.Context, account string, sc *server.ServerContext) (*tasks.Client, error) {
	client := sc.TasksClientForAccount(account)
	if client == nil {
		// Check if token exists before trying to create client
		if !tasks.HasTokenForAccount(account) {
			errorMsg := google.GetAuthenticationErrorMessage(account)
			return nil, fmt.Errorf("%s", errorMsg)
		}

		var err error
		client, err = tasks.NewClientForAccount(ctx, account)
		if err != nil {
			return nil, fmt.Errorf("failed to create Tasks client for account %s: %w", account, err)
		}
		sc.SetTasksClientForAccount(account, client)
	}
	return client, nil
}

// getTaskListID resolves the taskListId argument, falling back to the
// configured default list.
func getTaskListID(args map[string]interface{}) string {
	taskListID := ""
	if v, ok := args["taskListId"].(string); ok {
		taskListID = v
	}
	return config.ValidateTaskListID(taskListID)
}

// parseDate parses a YYYY-MM-DD date argument.
func parseDate(value, paramName string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a date in YYYY-MM-DD format", paramName)
	}
	return t, nil
}

// validateStatus checks a task status argument against the two values the
// Tasks API accepts.
func validateStatus(status string) error {
	switch status {
	case "needsAction", "completed":
		return nil
	default:
		return fmt.Errorf("status must be 'needsAction' or 'completed', got %q", status)
	}
}

// RegisterTasksTools registers all Google Tasks-related tools with the MCP server
func RegisterTasksTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	if err := registerListTools(s, sc); err != nil {
		return fmt.Errorf("failed to register list tools: %w", err)
	}

	if !readOnly {
		if err := registerWriteTools(s, sc); err != nil {
			return fmt.Errorf("failed to register write tools: %w", err)
		}
	}

	return nil
}
