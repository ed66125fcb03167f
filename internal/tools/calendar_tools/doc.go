// Package calendar_tools provides MCP tools for listing, searching, and
// fetching Google Calendar events, optionally across several calendars in
// one call.
package calendar_tools
