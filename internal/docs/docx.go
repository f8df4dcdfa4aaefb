package docs

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	docxXMLTag       = regexp.MustCompile(`<[^>]+>`)
)

// readDOCX extracts text from a DOCX file. Paragraph boundaries become
// newlines; remaining XML markup is stripped and entities unescaped.
func (s *Service) readDOCX(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to open DOCX file: %v", ErrDecodeFailure, err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()

	text := docxParagraphEnd.ReplaceAllString(content, "\n")
	text = docxXMLTag.ReplaceAllString(text, "")
	text = html.UnescapeString(text)

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: no text extracted from DOCX: %s", ErrDecodeFailure, path)
	}

	return text, nil
}
