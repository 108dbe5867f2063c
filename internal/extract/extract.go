// Package extract pulls plain text out of uploaded resume files. PDF and
// DOCX get real extraction; anything else is treated as UTF-8 text.
package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
)

// Text extracts readable text from an uploaded file, dispatching on the
// file extension. Unknown extensions fall through to a raw UTF-8 read so
// .txt and extensionless uploads still work.
func Text(fileName string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return pdfText(data)
	case ".docx":
		return docxText(data)
	default:
		return string(data), nil
	}
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var b strings.Builder
	for page := 1; page <= reader.NumPage(); page++ {
		p := reader.Page(page)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			// One broken page should not sink the rest of the document.
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("pdf contains no extractable text")
	}
	return b.String(), nil
}

// docxText reads the WordprocessingML body out of the zip container and
// flattens each w:p paragraph to a line of text.
func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}

	var body io.ReadCloser
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			body, err = f.Open()
			if err != nil {
				return "", fmt.Errorf("open document body: %w", err)
			}
			break
		}
	}
	if body == nil {
		return "", fmt.Errorf("docx has no document body")
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return "", fmt.Errorf("parse document body: %w", err)
	}

	var lines []string
	doc.Find(`w\:p`).Each(func(_ int, p *goquery.Selection) {
		var parts []string
		p.Find(`w\:t`).Each(func(_ int, t *goquery.Selection) {
			parts = append(parts, t.Text())
		})
		if line := strings.TrimSpace(strings.Join(parts, "")); line != "" {
			lines = append(lines, line)
		}
	})
	if len(lines) == 0 {
		return "", fmt.Errorf("docx contains no extractable text")
	}
	return strings.Join(lines, "\n"), nil
}
