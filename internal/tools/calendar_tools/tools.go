package calendar_tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"workspacemcp/internal/calendar"
	"workspacemcp/internal/config"
	"workspacemcp/internal/google"
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

// getCalendarClient retrieves or creates a calendar client for the specified account
func getCalendarClient(ctx context.Context, account string, sc *server.ServerContext) (*calendar.Client, error) {
	client := sc.CalendarClientForAccount(account)
	if client == nil {
		// Check if token exists before trying to create client
		if !calendar.HasTokenForAccount(account) {
			errorMsg := google.GetAuthenticationErrorMessage(account)
			return nil, fmt.Errorf("%s", errorMsg)
		}

		var err error
		client, err = calendar.NewClientForAccount(ctx, account)
		if err != nil {
			return nil, fmt.Errorf("failed to create Calendar client for account %s: %w", account, err)
		}
		sc.SetCalendarClientForAccount(account, client)
	}
	return client, nil
}

// parseCalendarIDs resolves the calendarIds argument, which may be absent,
// a comma-separated string, or an array of strings. Absent or empty input
// falls back to the configured defaults.
func parseCalendarIDs(param interface{}) []string {
	var ids []string
	switch v := param.(type) {
	case string:
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				ids = append(ids, part)
			}
		}
	case []interface{}:
		for _, item := range v {
			if str, ok := item.(string); ok && strings.TrimSpace(str) != "" {
				ids = append(ids, strings.TrimSpace(str))
			}
		}
	}
	return config.ValidateCalendarIDs(ids)
}

// parseTimeRange parses the required startTime and endTime arguments as
// RFC3339 timestamps and checks their ordering.
func parseTimeRange(args map[string]interface{}) (time.Time, time.Time, error) {
	startStr, ok := args["startTime"].(string)
	if !ok || startStr == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("startTime is required")
	}
	endStr, ok := args["endTime"].(string)
	if !ok || endStr == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("endTime is required")
	}

	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("startTime must be an RFC3339 timestamp (e.g. 2024-01-15T00:00:00Z)")
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("endTime must be an RFC3339 timestamp (e.g. 2024-01-15T23:59:59Z)")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("endTime must not be before startTime")
	}
	return start, end, nil
}

// listAcrossCalendars queries each calendar in turn and annotates every
// event with the calendar it came from. Events keep per-calendar order.
func listAcrossCalendars(ctx context.Context, client *calendar.Client, calendarIDs []string, start, end time.Time, query string) ([]calendar.EventSummary, error) {
	var events []calendar.EventSummary
	for _, calendarID := range calendarIDs {
		calEvents, err := client.ListEvents(ctx, calendarID, start, end, query)
		if err != nil {
			return nil, fmt.Errorf("failed to list events for calendar %s: %w", calendarID, err)
		}
		for _, event := range calEvents {
			event.CalendarID = calendarID
			events = append(events, event)
		}
	}
	return events, nil
}

// RegisterCalendarTools registers all Google Calendar-related tools with the MCP server
func RegisterCalendarTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	if err := registerEventTools(s, sc); err != nil {
		return fmt.Errorf("failed to register event tools: %w", err)
	}
	return nil
}
