// Package tasks_tools provides MCP tools for Google Tasks: listing task
// lists and tasks, client-side search by text or due-date range, and task
// creation and updates.
package tasks_tools
