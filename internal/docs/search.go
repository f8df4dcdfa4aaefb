package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resume file extensions recognized by directory search.
var resumeExtensions = map[string]bool{
	".txt":  true,
	".docx": true,
	".pdf":  true,
	".doc":  true,
}

// SearchDirectory finds resume files in the specified directory, optionally
// filtered by a fuzzy filename query. Files that fail validation are skipped
// rather than failing the whole search.
func (s *Service) SearchDirectory(req SearchDirectoryRequest) (*SearchDirectoryResult, error) {
	if req.Directory == "" {
		return nil, fmt.Errorf("directory cannot be empty")
	}

	if _, err := os.Stat(req.Directory); os.IsNotExist(err) {
		return nil, fmt.Errorf("directory does not exist: %s", req.Directory)
	}

	absDirectory, err := filepath.Abs(req.Directory)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory path: %w", err)
	}

	query := strings.ToLower(strings.TrimSpace(req.Query))
	var files []FileInfo

	err = filepath.Walk(absDirectory, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Continue walking even if we encounter an error with a specific file
			return nil //nolint:nilerr // Intentionally continue on file errors
		}

		// Security check: ensure path is within the configured directory
		withinDir, err := isPathWithinDirectory(path, absDirectory)
		if err != nil || !withinDir {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			return nil
		}

		if !IsResumeFile(info.Name()) {
			return nil
		}

		if s.maxFileSize > 0 && info.Size() > s.maxFileSize {
			return nil
		}

		if query != "" && !matchesQuery(info.Name(), query) {
			return nil
		}

		files = append(files, FileInfo{
			Path:         path,
			Name:         info.Name(),
			Size:         info.Size(),
			ModifiedTime: info.ModTime().Format("2006-01-02 15:04:05"),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory: %w", err)
	}

	return &SearchDirectoryResult{
		Files:       files,
		TotalCount:  len(files),
		Directory:   absDirectory,
		SearchQuery: req.Query,
	}, nil
}

// CountResumesInDirectory counts the resume files in a directory.
func (s *Service) CountResumesInDirectory(directory string) (int, error) {
	result, err := s.SearchDirectory(SearchDirectoryRequest{Directory: directory})
	if err != nil {
		return 0, err
	}
	return result.TotalCount, nil
}

// IsResumeFile checks whether a filename has a supported resume extension.
func IsResumeFile(filename string) bool {
	return resumeExtensions[strings.ToLower(filepath.Ext(filename))]
}

// isPathWithinDirectory checks if a path is within the specified directory.
func isPathWithinDirectory(path, directory string) (bool, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false, fmt.Errorf("failed to resolve path: %w", err)
	}

	absDir, err := filepath.Abs(directory)
	if err != nil {
		return false, fmt.Errorf("failed to resolve directory: %w", err)
	}

	realPath, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		// If the file doesn't exist yet, just use the absolute path
		if !os.IsNotExist(err) {
			return false, fmt.Errorf("failed to evaluate symlinks: %w", err)
		}
		realPath = absPath
	}

	realDir, err := filepath.EvalSymlinks(absDir)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate directory symlinks: %w", err)
	}

	realPath = filepath.Clean(realPath)
	realDir = filepath.Clean(realDir)

	if !strings.HasSuffix(realDir, string(filepath.Separator)) {
		realDir += string(filepath.Separator)
	}

	return strings.HasPrefix(realPath, realDir) ||
		realPath == strings.TrimSuffix(realDir, string(filepath.Separator)), nil
}

// matchesQuery performs fuzzy matching on the filename.
func matchesQuery(filename, query string) bool {
	if query == "" {
		return true
	}

	fileName := strings.ToLower(filename)
	if strings.Contains(fileName, query) {
		return true
	}

	nameWithoutExt := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	if strings.Contains(nameWithoutExt, query) {
		return true
	}

	// Word-based matching: every query word must appear in some filename word
	words := splitIntoWords(nameWithoutExt)
	for _, queryWord := range splitIntoWords(query) {
		found := false
		for _, word := range words {
			if strings.Contains(word, queryWord) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// splitIntoWords splits a string into words using common separators.
func splitIntoWords(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		switch r {
		case ' ', '_', '-', '.', '(', ')', '[', ']':
			return true
		}
		return false
	})
}
