package extract

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
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestTextPlainFallback(t *testing.T) {
	out, err := Text("resume.txt", []byte("Jane Doe\nSkills: Go, SQL"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSkills: Go, SQL", out)

	out, err = Text("resume", []byte("no extension"))
	require.NoError(t, err)
	assert.Equal(t, "no extension", out)
}

func TestTextDocx(t *testing.T) {
	doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Skills: Py</w:t></w:r><w:r><w:t>thon, Django</w:t></w:r></w:p>
    <w:p></w:p>
  </w:body>
</w:document>`

	out, err := Text("resume.docx", buildDocx(t, doc))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSkills: Python, Django", out)
}

func TestTextDocxMissingBody(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/other.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = Text("resume.docx", buf.Bytes())
	assert.Error(t, err)
}

func TestTextDocxNotAZip(t *testing.T) {
	_, err := Text("resume.docx", []byte("definitely not a zip"))
	assert.Error(t, err)
}

func TestTextPdfCorrupt(t *testing.T) {
	_, err := Text("resume.pdf", []byte("%PDF-1.4 truncated garbage"))
	assert.Error(t, err)
}
