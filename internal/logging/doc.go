// Package logging provides structured logging helpers built on log/slog.
//
// It defines the canonical attribute keys used across the server so that
// tool handlers, Google API clients, and the content search engine emit
// consistent, queryable log records. Helpers for anonymizing emails and
// masking tokens keep PII and credentials out of log output.
package logging
