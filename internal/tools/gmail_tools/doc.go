// Package gmail_tools provides MCP tools for searching Gmail messages and
// reading their decoded plain-text bodies.
package gmail_tools
