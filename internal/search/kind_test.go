package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindForMime(t *testing.T) {
	tests := []struct {
		mimeType string
		want     Kind
	}{
		{"application/vnd.google-apps.document", KindGoogleDoc},
		{"application/vnd.google-apps.spreadsheet", KindGoogleDoc},
		{"application/pdf", KindPDF},
		{DocxMimeType, KindDocx},
		{"text/plain", KindText},
		{"text/csv", KindText},
		{"text/markdown", KindText},
		{"image/png", KindUnsupported},
		{"application/zip", KindUnsupported},
		{"", KindUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.mimeType, func(t *testing.T) {
			assert.Equal(t, tt.want, KindForMime(tt.mimeType))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "google_doc", KindGoogleDoc.String())
	assert.Equal(t, "pdf", KindPDF.String())
	assert.Equal(t, "text", KindText.String())
	assert.Equal(t, "docx", KindDocx.String())
	assert.Equal(t, "unsupported", KindUnsupported.String())
}
