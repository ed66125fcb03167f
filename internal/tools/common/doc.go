// Package common provides shared utilities for MCP tool implementations.
// It contains the instrumented handler wrapper, account resolution, and the
// JSON result helpers used across all tool packages to keep response shapes
// consistent.
package common
