package extract

import (
	"log"
	"strings"

	"github.com/talentsift/resume-extract/internal/nlp"
)

// Proper-noun span lengths for the two name patterns. A three-token span
// always wins over a two-token span found in the same line.
const (
	namePatternLong  = 3
	namePatternShort = 2
)

// NameExtractor finds a candidate person name by scanning normalized lines
// for consecutive proper-noun tokens.
type NameExtractor struct {
	annotator nlp.Annotator
}

// NewNameExtractor creates a name extractor backed by the given annotator.
func NewNameExtractor(annotator nlp.Annotator) *NameExtractor {
	return &NameExtractor{annotator: annotator}
}

// Extract scans lines in order. Within a line, the first run of three
// consecutive proper nouns wins immediately; otherwise the last run of two
// is used. The scan stops at the first line that yields either match. An
// empty string means no name was found anywhere.
func (e *NameExtractor) Extract(lines []string) string {
	for _, line := range lines {
		tokens, err := e.annotator.Tokens(line)
		if err != nil {
			log.Printf("name extraction: annotation failed for line %q: %v", line, err)
			continue
		}

		if name := matchNameInLine(tokens); name != "" {
			return name
		}
	}

	return ""
}

// matchNameInLine applies both name patterns to a tagged line. The whole
// line is scanned before a two-token candidate is accepted, since a
// three-token match later in the line takes precedence.
func matchNameInLine(tokens []nlp.Token) string {
	var shortMatch string

	for i := 0; i < len(tokens); i++ {
		if !nlp.IsProperNoun(tokens[i]) {
			continue
		}

		if i+namePatternLong <= len(tokens) && properNounRun(tokens[i:i+namePatternLong]) {
			return spanText(tokens[i : i+namePatternLong])
		}
		if i+namePatternShort <= len(tokens) && properNounRun(tokens[i:i+namePatternShort]) {
			shortMatch = spanText(tokens[i : i+namePatternShort])
		}
	}

	return shortMatch
}

// properNounRun reports whether every token in the span is a proper noun.
func properNounRun(span []nlp.Token) bool {
	for _, tok := range span {
		if !nlp.IsProperNoun(tok) {
			return false
		}
	}
	return true
}

// spanText joins a token span back into text.
func spanText(span []nlp.Token) string {
	parts := make([]string, 0, len(span))
	for _, tok := range span {
		parts = append(parts, tok.Text)
	}
	return strings.Join(parts, " ")
}
