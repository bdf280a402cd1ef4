package resume

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"code.sajari.com/docconv"
	pdf "github.com/ledongthuc/pdf"
)

// SupportedExtensions lists the file types ParseResumeText accepts.
var SupportedExtensions = []string{".pdf", ".docx", ".odt", ".txt"}

// Supported reports whether filename has one of SupportedExtensions.
func Supported(filename string) bool {
	return slices.Contains(SupportedExtensions, strings.ToLower(filepath.Ext(filename)))
}

// ParseResumeText extracts plain text from supported resume formats.
func ParseResumeText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	var (
		text string
		err  error
	)
	switch ext {
	case ".pdf":
		text, err = extractTextFromPDF(data)
	case ".docx":
		text, _, err = docconv.ConvertDocx(bytes.NewReader(data))
	case ".odt":
		text, _, err = docconv.ConvertODT(bytes.NewReader(data))
	case ".txt":
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%s: text file is not valid utf-8", filename)
		}
		text = string(data)
	default:
		return "", ErrUnsupportedFile
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", ext, err)
	}
	return normalizeWhitespace(text), nil
}

func extractTextFromPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	r, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var (
	reSpaces   = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewlines = regexp.MustCompile(`\s*\n\s*`)
)

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = reSpaces.ReplaceAllString(s, " ")
	s = reNewlines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
