package calendar_tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"workspacemcp/internal/calendar"
	"workspacemcp/internal/config"
	"workspacemcp/internal/instrumentation"
	"workspacemcp/internal/server"
	"workspacemcp/internal/tools/common"
)

// registerEventTools registers the event listing, search, and detail tools
func registerEventTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// List events tool
	listEventsTool := mcp.NewTool("calendar_list_events",
		mcp.WithDescription("List calendar events in a time range, across one or more calendars"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("startTime",
			mcp.Required(),
			mcp.Description("Range start as RFC3339 timestamp (e.g. 2024-01-15T00:00:00Z)"),
		),
		mcp.WithString("endTime",
			mcp.Required(),
			mcp.Description("Range end as RFC3339 timestamp"),
		),
		mcp.WithString("calendarIds",
			mcp.Description("Calendar IDs to query, comma-separated or as an array (default: DEFAULT_CALENDAR_IDS env var, or 'primary')"),
		),
	)

	s.AddTool(listEventsTool, common.InstrumentedToolHandlerWithService(
		"calendar_list_events", instrumentation.ServiceCalendar, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListEvents(ctx, request, sc, "")
		}))

	// Search events tool
	searchEventsTool := mcp.NewTool("calendar_search_events",
		mcp.WithDescription("Search calendar events by free-text query in a time range, across one or more calendars"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Free-text search over event summary, description, location, and attendees"),
		),
		mcp.WithString("startTime",
			mcp.Required(),
			mcp.Description("Range start as RFC3339 timestamp"),
		),
		mcp.WithString("endTime",
			mcp.Required(),
			mcp.Description("Range end as RFC3339 timestamp"),
		),
		mcp.WithString("calendarIds",
			mcp.Description("Calendar IDs to query, comma-separated or as an array (default: DEFAULT_CALENDAR_IDS env var, or 'primary')"),
		),
	)

	s.AddTool(searchEventsTool, common.InstrumentedToolHandlerWithService(
		"calendar_search_events", instrumentation.ServiceCalendar, instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			query, ok := args["query"].(string)
			if !ok || query == "" {
				return common.ErrorResult("query is required"), nil
			}
			return handleListEvents(ctx, request, sc, query)
		}))

	// Get event tool
	getEventTool := mcp.NewTool("calendar_get_event",
		mcp.WithDescription("Get details for a single calendar event"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("eventId",
			mcp.Required(),
			mcp.Description("The ID of the event to fetch"),
		),
		mcp.WithString("calendarId",
			mcp.Description("Calendar containing the event (default: first configured default calendar)"),
		),
	)

	s.AddTool(getEventTool, common.InstrumentedToolHandlerWithService(
		"calendar_get_event", instrumentation.ServiceCalendar, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := getAccountFromArgs(args)

			eventID, ok := args["eventId"].(string)
			if !ok || eventID == "" {
				return common.ErrorResult("eventId is required"), nil
			}

			calendarID := config.DefaultCalendarIDs()[0]
			if id, ok := args["calendarId"].(string); ok && id != "" {
				calendarID = id
			}

			client, err := getCalendarClient(ctx, account, sc)
			if err != nil {
				return common.ErrorResult(err.Error()), nil
			}

			event, err := client.GetEvent(ctx, calendarID, eventID)
			if err != nil {
				return common.TransportErrorResult(err), nil
			}
			event.CalendarID = calendarID

			return common.JSONResult(event), nil
		}))

	return nil
}

// handleListEvents implements both calendar_list_events and
// calendar_search_events; the latter passes a non-empty query.
func handleListEvents(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext, query string) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := getAccountFromArgs(args)

	start, end, err := parseTimeRange(args)
	if err != nil {
		return common.ErrorResult(err.Error()), nil
	}

	calendarIDs := parseCalendarIDs(args["calendarIds"])

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return common.ErrorResult(err.Error()), nil
	}

	events, err := listAcrossCalendars(ctx, client, calendarIDs, start, end, query)
	if err != nil {
		return common.TransportErrorResult(err), nil
	}

	payload := struct {
		Events      []calendar.EventSummary `json:"events"`
		Count       int                     `json:"count"`
		CalendarIDs []string                `json:"calendarIds"`
	}{
		Events:      events,
		Count:       len(events),
		CalendarIDs: calendarIDs,
	}
	return common.JSONResult(payload), nil
}
