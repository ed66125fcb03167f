// Package drive_tools provides MCP tools for Google Drive: metadata search,
// file details, and content search inside Google Docs, PDF, plain text, CSV
// and DOCX files.
package drive_tools
