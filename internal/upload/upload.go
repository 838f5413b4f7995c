// Package upload turns user-supplied context files into plain text for
// prompt assembly.
package upload

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// MaxUploadSize caps the accepted context file size.
const MaxUploadSize = 5 << 20

// maxContextRunes caps the extracted text so prompts stay a sane size.
const maxContextRunes = 20000

// TextContext extracts plain text from an uploaded context file. PDFs are
// parsed page by page; anything else must be valid UTF-8 text.
func TextContext(filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	if len(data) > MaxUploadSize {
		return "", fmt.Errorf("upload: file exceeds %d bytes", MaxUploadSize)
	}

	var text string
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		extracted, err := extractTextFromPDF(data)
		if err != nil {
			return "", fmt.Errorf("upload: read pdf: %w", err)
		}
		text = extracted
	} else {
		if !utf8.Valid(data) {
			return "", fmt.Errorf("upload: %s is not a text or pdf file", filepath.Base(filename))
		}
		text = string(data)
	}

	text = strings.TrimSpace(text)
	if runes := []rune(text); len(runes) > maxContextRunes {
		text = string(runes[:maxContextRunes])
	}
	return text, nil
}

func extractTextFromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var builder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}
