// Package gmail provides a read-only client for the Gmail API.
//
// The client supports searching messages with Gmail's query language and
// retrieving individual messages, decoding base64url message bodies and
// preferring text/plain parts in multipart messages.
package gmail
