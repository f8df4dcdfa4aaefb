package extract

import (
	"regexp"
	"strings"
)

var (
	newlineRunPattern = regexp.MustCompile(`\n+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// NormalizeText converts a raw text blob into an ordered sequence of cleaned
// lines. Runs of newlines collapse to one, carriage returns become newlines,
// tabs become spaces, inner whitespace runs collapse to a single space, and
// lines that are empty after stripping are dropped. Line order follows the
// original document. The operation is idempotent: normalizing already
// normalized lines is a no-op.
func NormalizeText(raw string) []string {
	if raw == "" {
		return nil
	}

	clean := newlineRunPattern.ReplaceAllString(raw, "\n")
	clean = strings.ReplaceAll(clean, "\r", "\n")
	clean = strings.ReplaceAll(clean, "\t", " ")

	var lines []string
	for _, line := range strings.Split(clean, "\n") {
		line = whitespacePattern.ReplaceAllString(strings.TrimSpace(line), " ")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines
}
