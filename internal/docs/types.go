package docs

import "errors"

// Sentinel errors for the decoding layer. Both are recovered locally by the
// decoder service: callers of DecodeFile only ever see empty text plus a
// diagnostic log line.
var (
	// ErrUnsupportedFormat marks a file extension the decoder does not
	// recognize.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrDecodeFailure marks a recognized format that could not be decoded.
	ErrDecodeFailure = errors.New("document decode failure")
)

// FileInfo describes a resume file found by a directory search.
type FileInfo struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	ModifiedTime string `json:"modified_time"`
}

// SearchDirectoryRequest asks for resume files in a directory, optionally
// filtered by a fuzzy filename query.
type SearchDirectoryRequest struct {
	Directory string `json:"directory"`
	Query     string `json:"query"`
}

// SearchDirectoryResult lists the resume files found by a directory search.
type SearchDirectoryResult struct {
	Files       []FileInfo `json:"files"`
	TotalCount  int        `json:"total_count"`
	Directory   string     `json:"directory"`
	SearchQuery string     `json:"search_query,omitempty"`
}
