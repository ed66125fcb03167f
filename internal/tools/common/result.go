package common

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// ErrorResult builds a tool error result whose content is the uniform
// {"error": "..."} JSON object. Every tool returns this shape for domain
// failures instead of a protocol-level error, so callers always receive
// valid JSON.
func ErrorResult(message string) *mcp.CallToolResult {
	payload, err := json.Marshal(map[string]string{"error": message})
	if err != nil {
		// A map[string]string cannot fail to marshal; keep the shape anyway.
		return mcp.NewToolResultError(`{"error": "internal error"}`)
	}
	return mcp.NewToolResultError(string(payload))
}

// ErrorResultf is ErrorResult with Sprintf formatting.
func ErrorResultf(format string, args ...interface{}) *mcp.CallToolResult {
	return ErrorResult(fmt.Sprintf(format, args...))
}

// TransportErrorResult wraps a remote API failure in the uniform error
// shape. The message is prefixed so callers can distinguish transport
// failures from validation rejections.
func TransportErrorResult(err error) *mcp.CallToolResult {
	return ErrorResult(fmt.Sprintf("An error occurred: %v", err))
}

// JSONResult marshals v as indented JSON into a text tool result.
func JSONResult(v interface{}) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return TransportErrorResult(err)
	}
	return mcp.NewToolResultText(string(data))
}
