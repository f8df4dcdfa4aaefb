package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionExtractorCapturesUntilTermination(t *testing.T) {
	e := NewSectionExtractor()

	lines := []string{
		"Summary",
		"Built systems.",
		"Worked on X.",
		"EDUCATION",
		"Stanford University",
	}

	capture := e.Extract(lines)

	assert.True(t, capture.Started)
	assert.Equal(t, []string{"Built systems.", "Worked on X."}, capture.Lines)
}

func TestSectionExtractorNotFound(t *testing.T) {
	e := NewSectionExtractor()

	capture := e.Extract([]string{"Jane Doe", "Senior Engineer", "EXPERIENCE"})

	if capture.Started {
		t.Error("expected section-started to be false when no header matches")
	}
	if len(capture.Lines) != 0 {
		t.Errorf("expected empty capture, got %v", capture.Lines)
	}
}

func TestSectionExtractorFoundButEmpty(t *testing.T) {
	e := NewSectionExtractor()

	// Header immediately followed by a terminating line: distinguishable
	// from "not found" via Started.
	capture := e.Extract([]string{"PROFESSIONAL SUMMARY", "WORK EXPERIENCE"})

	assert.True(t, capture.Started)
	assert.Empty(t, capture.Lines)
}

func TestSectionExtractorSingleSectionOnly(t *testing.T) {
	e := NewSectionExtractor()

	// After termination the scan stops entirely; a later header synonym
	// must not reopen capture.
	lines := []string{
		"Summary",
		"short line.",
		"EDUCATION",
		"Objective",
		"another line.",
	}

	capture := e.Extract(lines)

	assert.Equal(t, []string{"short line."}, capture.Lines)
}

func TestSectionExtractorHeaderLineNotCaptured(t *testing.T) {
	e := NewSectionExtractor()

	capture := e.Extract([]string{"My profile", "builds things."})

	assert.True(t, capture.Started)
	assert.Equal(t, []string{"builds things."}, capture.Lines)
}

func TestSectionExtractorWholeWordHeaderMatch(t *testing.T) {
	e := NewSectionExtractorWithHeaders([]string{"summary"})

	// "summarybody" contains the synonym but not on a word boundary.
	capture := e.Extract([]string{"summarybody", "text."})

	assert.False(t, capture.Started)
}

func TestSectionExtractorCapturesToEndOfInput(t *testing.T) {
	e := NewSectionExtractor()

	capture := e.Extract([]string{"Objective", "build things.", "ship them."})

	assert.Equal(t, []string{"build things.", "ship them."}, capture.Lines)
}

func TestShouldTerminateSection(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"all caps short line", "EDUCATION", true},
		{"exactly half uppercase", "ABcd", true},
		{"low ratio short line", "Built systems.", false},
		{"length at threshold", "a23456789012345678901234567890", true},
		{"length just under threshold", "a2345678901234567890123456789", false},
		{"empty line keeps capturing", "", false},
		{"mostly lowercase", "worked on search quality.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldTerminateSection(tt.line); got != tt.want {
				t.Errorf("shouldTerminateSection(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}
