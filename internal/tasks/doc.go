// Package tasks provides a client for the Google Tasks API.
//
// The Tasks API has no server-side text or date-range search, so this
// package also provides client-side filters over fetched task pages.
package tasks
