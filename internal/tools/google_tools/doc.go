// Package google_tools provides MCP tools for Google OAuth account setup:
// checking authentication status, fetching the authorization URL, and saving
// the authorization code that completes the flow.
package google_tools
