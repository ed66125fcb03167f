// Package google provides OAuth2 authentication and token management for Google APIs.
//
// Tokens are stored per account in the user cache directory, one file per
// account name. Token refreshes for the same account are serialized so
// concurrent tool calls cannot race each other through the refresh endpoint.
//
// The TokenProvider interface allows different token sources to be plugged in,
// keeping the API clients independent of how credentials are stored.
package google
