package extract

import (
	"errors"
	"strings"

	"github.com/talentsift/resume-extract/internal/nlp"
)

// fakeAnnotator is a deterministic stand-in for the prose-backed annotator.
// It tags words listed in properNouns as NNP, everything else as NN, and
// returns a preset entity list.
type fakeAnnotator struct {
	properNouns map[string]bool
	entities    []nlp.Entity
	tokensErr   error
}

func (f *fakeAnnotator) Tokens(text string) ([]nlp.Token, error) {
	if f.tokensErr != nil {
		return nil, f.tokensErr
	}

	var tokens []nlp.Token
	for _, field := range strings.Fields(text) {
		for _, word := range splitTrailingPunct(field) {
			tag := "NN"
			if f.properNouns[word] {
				tag = "NNP"
			} else if len(word) == 1 && strings.ContainsAny(word, ".,;:!?") {
				tag = "."
			}
			tokens = append(tokens, nlp.Token{Text: word, Tag: tag})
		}
	}

	return tokens, nil
}

func (f *fakeAnnotator) Entities(string) ([]nlp.Entity, error) {
	if f.tokensErr != nil {
		return nil, f.tokensErr
	}
	return f.entities, nil
}

// splitTrailingPunct separates trailing sentence punctuation into its own
// tokens, the way a real tokenizer would.
func splitTrailingPunct(field string) []string {
	trimmed := strings.TrimRight(field, ".,;:!?")
	var out []string
	if trimmed != "" {
		out = append(out, trimmed)
	}
	for _, r := range field[len(trimmed):] {
		out = append(out, string(r))
	}
	return out
}

var errAnnotation = errors.New("annotation service unavailable")
