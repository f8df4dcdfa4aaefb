package extract

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// Default header synonyms recognized as the start of the professional
// summary section.
var defaultSectionHeaders = []string{
	"career goal",
	"objective",
	"career objective",
	"employment objective",
	"professional objective",
	"career summary",
	"professional summary",
	"summary of qualifications",
	"summary",
	"profile",
	"about me",
}

const (
	// A captured line ends the section when at least half of its
	// characters are uppercase letters, or when it reaches this length.
	sectionUppercaseRatio = 0.5
	sectionMaxLineLength  = 30
)

// scanState is the state of the section scan.
type scanState int

const (
	stateSearching scanState = iota
	stateCapturing
	stateDone
)

// SectionExtractor locates a named section within a normalized line sequence
// by header synonym and bounds it with a termination heuristic.
type SectionExtractor struct {
	headers []*regexp.Regexp
}

// NewSectionExtractor creates a section extractor using the default header
// synonyms.
func NewSectionExtractor() *SectionExtractor {
	return NewSectionExtractorWithHeaders(defaultSectionHeaders)
}

// NewSectionExtractorWithHeaders creates a section extractor with a custom
// set of header synonyms. Each synonym matches as a whole-word,
// case-insensitive substring.
func NewSectionExtractorWithHeaders(headers []string) *SectionExtractor {
	patterns := make([]*regexp.Regexp, 0, len(headers))
	for _, header := range headers {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(header)+`\b`))
	}
	return &SectionExtractor{headers: patterns}
}

// Extract scans lines in order for a header synonym, then captures subsequent
// lines until the termination heuristic fires. The header line itself is not
// captured, the terminating line is excluded, and the scan stops entirely on
// termination: only a single section is ever captured.
func (e *SectionExtractor) Extract(lines []string) SectionCapture {
	capture := SectionCapture{Lines: []string{}}
	state := stateSearching

	for _, line := range lines {
		switch state {
		case stateSearching:
			if e.isHeader(line) {
				state = stateCapturing
				capture.Started = true
			}
		case stateCapturing:
			if shouldTerminateSection(line) {
				state = stateDone
			} else {
				capture.Lines = append(capture.Lines, line)
			}
		case stateDone:
			return capture
		}
	}

	return capture
}

// isHeader reports whether a line contains any header synonym.
func (e *SectionExtractor) isHeader(line string) bool {
	for _, pattern := range e.headers {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}

// shouldTerminateSection is the termination predicate: a line ends the
// capture when its uppercase-letter ratio is at least 0.5 or it is 30 or more
// characters long. An empty line has ratio 0 and continues the capture; the
// normalizer never emits one, but the contract is defined regardless.
func shouldTerminateSection(line string) bool {
	if utf8.RuneCountInString(line) >= sectionMaxLineLength {
		return true
	}
	if line == "" {
		return false
	}

	upper, total := 0, 0
	for _, r := range line {
		total++
		if unicode.IsUpper(r) {
			upper++
		}
	}

	return float64(upper)/float64(total) >= sectionUppercaseRatio
}
