// Package server provides the MCP server context, health checks, and the
// dedicated Prometheus metrics server.
//
// # Key Components
//
// ServerContext manages Google API clients with lazy initialization and
// caching. It supports multiple accounts; each account gets its own Drive,
// Gmail, Calendar, and Tasks client plus a content search engine built on
// top of the account's Drive client.
//
// HealthChecker exposes /healthz, /readyz, and /healthz/detailed endpoints
// for Kubernetes liveness and readiness probes.
//
// MetricsServer serves Prometheus metrics on a dedicated port, isolated
// from the main application traffic.
//
// HTTPServer hosts the MCP streamable HTTP transport on /mcp alongside the
// health check endpoints.
package server
