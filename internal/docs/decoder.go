package docs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/talentsift/resume-extract/internal/extract"
)

// Service decodes resume documents into raw text blobs. It implements
// extract.Decoder: decode problems never surface as errors, they are logged
// and degrade to empty text so the extraction pipeline can run on empty
// input.
type Service struct {
	maxFileSize int64
}

// NewService creates a decoder service. Files larger than maxFileSize are
// rejected as decode failures.
func NewService(maxFileSize int64) *Service {
	return &Service{maxFileSize: maxFileSize}
}

// ClassifyFormat infers the document format from the file extension.
func ClassifyFormat(path string) extract.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return extract.FormatText
	case ".docx":
		return extract.FormatDOCX
	case ".pdf":
		return extract.FormatPDF
	case ".doc":
		return extract.FormatLegacyDoc
	default:
		return extract.FormatUnknown
	}
}

// DecodeFile decodes the file at path into a raw text blob. Unsupported
// extensions and decode failures are logged and yield empty text; the format
// tag is returned either way.
func (s *Service) DecodeFile(path string) (string, extract.Format) {
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}

	format := ClassifyFormat(path)

	text, err := s.decode(path, format)
	if err != nil {
		log.Printf("error decoding %s: %v", path, err)
		return "", format
	}

	return text, format
}

// decode dispatches to the per-format reader.
func (s *Service) decode(path string, format extract.Format) (string, error) {
	if err := s.validateFile(path); err != nil {
		return "", err
	}

	switch format {
	case extract.FormatText:
		return s.readText(path)
	case extract.FormatDOCX:
		return s.readDOCX(path)
	case extract.FormatPDF:
		return s.readPDF(path)
	case extract.FormatLegacyDoc:
		// Legacy .doc is a recognized format but no pure-Go decoder is
		// wired for the binary Word format.
		return "", fmt.Errorf("%w: legacy .doc decoding is not available", ErrDecodeFailure)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// validateFile checks the file exists, is a regular file, and fits the size
// limit.
func (s *Service) validateFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: file does not exist: %s", ErrDecodeFailure, path)
	}
	if err != nil {
		return fmt.Errorf("%w: cannot access file: %v", ErrDecodeFailure, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%w: path is a directory, not a file: %s", ErrDecodeFailure, path)
	}

	if s.maxFileSize > 0 && info.Size() > s.maxFileSize {
		return fmt.Errorf("%w: file too large: %d bytes (max: %d bytes)",
			ErrDecodeFailure, info.Size(), s.maxFileSize)
	}

	return nil
}

// readText reads a plain text file.
func (s *Service) readText(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read text file: %v", ErrDecodeFailure, err)
	}
	return string(content), nil
}
