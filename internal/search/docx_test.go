package search

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)

	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestExtractDocxText(t *testing.T) {
	data := buildDocx(t, `<?xml version="1.0" encoding="UTF-8"?>
<document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <body>
    <p><r><t>First paragraph.</t></r></p>
    <p><r><t>Second </t></r><r><t>paragraph.</t></r></p>
  </body>
</document>`)

	text, err := extractDocxText(data)

	assert.NoError(t, err)
	assert.Equal(t, "First paragraph.\nSecond paragraph.", text)
}

func TestExtractDocxTextNotAZip(t *testing.T) {
	_, err := extractDocxText([]byte("definitely not a zip archive"))
	assert.Error(t, err)
}

func TestExtractDocxTextMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/other.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte("<document/>"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = extractDocxText(buf.Bytes())
	assert.Error(t, err)
}

func TestExtractDocxTextMalformedXML(t *testing.T) {
	data := buildDocx(t, "<document><body><p>unclosed")

	_, err := extractDocxText(data)
	assert.Error(t, err)
}
