package google_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"workspacemcp/internal/google"
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

// RegisterGoogleTools registers all Google OAuth-related tools with the MCP server
func RegisterGoogleTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Auth status tool
	authStatusTool := mcp.NewTool("google_auth_status",
		mcp.WithDescription("Check whether a Google account is authorized (has a saved OAuth token)"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
	)

	s.AddTool(authStatusTool, common.InstrumentedToolHandler("google_auth_status", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := getAccountFromArgs(args)

			payload := struct {
				Account       string `json:"account"`
				Authenticated bool   `json:"authenticated"`
				Message       string `json:"message,omitempty"`
			}{
				Account:       account,
				Authenticated: google.HasTokenForAccount(account),
			}
			if !payload.Authenticated {
				payload.Message = google.GetAuthenticationErrorMessage(account)
			}
			return common.JSONResult(payload), nil
		}))

	// Get OAuth URL tool
	getAuthURLTool := mcp.NewTool("google_get_auth_url",
		mcp.WithDescription("Get the OAuth URL to authorize Google Workspace access (Drive, Gmail, Calendar, Tasks) for a specific account"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
	)

	s.AddTool(getAuthURLTool, common.InstrumentedToolHandler("google_get_auth_url", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := getAccountFromArgs(args)

			authURL, err := google.GetAuthURLForAccount(account)
			if err != nil {
				return common.ErrorResult(err.Error()), nil
			}

			result := fmt.Sprintf(`To authorize Google Workspace access (Drive, Gmail, Calendar, Tasks) for account "%s":

1. Visit this URL in your browser:
   %s

2. Sign in with your Google account
3. Grant access to the requested services
4. Copy the authorization code

5. Call the google_save_auth_code tool with the code and account name to complete authentication`, account, authURL)

			return mcp.NewToolResultText(result), nil
		}))

	// Save authorization code tool
	saveAuthCodeTool := mcp.NewTool("google_save_auth_code",
		mcp.WithDescription("Save the OAuth authorization code to complete Google Workspace authentication for a specific account"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("authCode",
			mcp.Required(),
			mcp.Description("The authorization code from Google OAuth"),
		),
	)

	s.AddTool(saveAuthCodeTool, common.InstrumentedToolHandler("google_save_auth_code", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := getAccountFromArgs(args)

			authCode, ok := args["authCode"].(string)
			if !ok || authCode == "" {
				return common.ErrorResult("authCode is required"), nil
			}

			if err := google.SaveTokenForAccount(ctx, account, authCode); err != nil {
				return common.ErrorResultf("failed to save authorization code for account %s: %v", account, err), nil
			}

			payload := struct {
				Account string `json:"account"`
				Saved   bool   `json:"saved"`
				Message string `json:"message"`
			}{
				Account: account,
				Saved:   true,
				Message: fmt.Sprintf("Authorization successful for account %q. Google Workspace tools are now available for this account.", account),
			}
			return common.JSONResult(payload), nil
		}))

	return nil
}
