// Package drive provides a client for the Google Drive API.
//
// The client covers read-only metadata and content access: listing and
// searching files, fetching file metadata, downloading raw file content,
// and exporting Google-native documents to other formats. It also builds
// the full-text candidate queries used by the content search engine.
package drive
