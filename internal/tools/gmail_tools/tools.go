package gmail_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"workspacemcp/internal/gmail"
	"workspacemcp/internal/google"
	"workspacemcp/internal/instrumentation"
	"workspacemcp/internal/server"
	"workspacemcp/internal/tools/common"
)

// getAccountFromArgs extracts the account name from request arguments, defaulting to "default"
func getAccountFromArgs(args map[string]interface{}) string {
	account := "default"
	if accountVal, ok := args["account"].(string); ok && accountVal != "" {
		account = accountVal
	}
	return account
}

// getGmailClient retrieves or creates a gmail client for the specified account
func getGmailClient(ctx context.Context, account string, sc *server.ServerContext) (*gmail.Client, error) {
	client := sc.GmailClientForAccount(account)
	if client == nil {
		// Check if token exists before trying to create client
		if !gmail.HasTokenForAccount(account) {
			errorMsg := google.GetAuthenticationErrorMessage(account)
			return nil, fmt.Errorf("%s", errorMsg)
		}

		var err error
		client, err = gmail.NewClientForAccount(ctx, account)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gmail client for account %s: %w", account, err)
		}
		sc.SetGmailClientForAccount(account, client)
	}
	return client, nil
}

// RegisterGmailTools registers all Gmail-related tools with the MCP server
func RegisterGmailTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Search messages tool
	searchMessagesTool := mcp.NewTool("gmail_search_messages",
		mcp.WithDescription("Search Gmail messages using Gmail's query syntax (e.g., 'from:alice subject:invoice is:unread')"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Gmail search query"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of messages to return (default: 20)"),
		),
	)

	s.AddTool(searchMessagesTool, common.InstrumentedToolHandlerWithService(
		"gmail_search_messages", instrumentation.ServiceGmail, instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := getAccountFromArgs(args)

			query, ok := args["query"].(string)
			if !ok || query == "" {
				return common.ErrorResult("query is required"), nil
			}

			var maxResults int64
			if mr, ok := args["maxResults"].(float64); ok {
				maxResults = int64(mr)
			}

			client, err := getGmailClient(ctx, account, sc)
			if err != nil {
				return common.ErrorResult(err.Error()), nil
			}

			messages, err := client.SearchMessages(ctx, query, maxResults)
			if err != nil {
				return common.TransportErrorResult(err), nil
			}

			payload := struct {
				Messages []*gmail.MessageSummary `json:"messages"`
				Count    int                     `json:"count"`
			}{
				Messages: messages,
				Count:    len(messages),
			}
			return common.JSONResult(payload), nil
		}))

	// Get message tool
	getMessageTool := mcp.NewTool("gmail_get_message",
		mcp.WithDescription("Get a Gmail message's headers and decoded plain-text body"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("messageId",
			mcp.Required(),
			mcp.Description("The ID of the message to fetch"),
		),
	)

	s.AddTool(getMessageTool, common.InstrumentedToolHandlerWithService(
		"gmail_get_message", instrumentation.ServiceGmail, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := getAccountFromArgs(args)

			messageID, ok := args["messageId"].(string)
			if !ok || messageID == "" {
				return common.ErrorResult("messageId is required"), nil
			}

			client, err := getGmailClient(ctx, account, sc)
			if err != nil {
				return common.ErrorResult(err.Error()), nil
			}

			message, err := client.GetMessage(ctx, messageID)
			if err != nil {
				return common.TransportErrorResult(err), nil
			}

			return common.JSONResult(message), nil
		}))

	return nil
}
