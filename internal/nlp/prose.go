package nlp

import (
	"fmt"

	prose "github.com/jdkato/prose/v2"
)

// ProseAnnotator implements Annotator using the prose NLP library.
// The underlying models are loaded once per process and are read-only, so a
// single instance can be shared across extraction calls.
type ProseAnnotator struct{}

// NewProseAnnotator creates a prose-backed annotator.
func NewProseAnnotator() *ProseAnnotator {
	return &ProseAnnotator{}
}

// Tokens tokenizes text and tags each token with its part of speech.
func (a *ProseAnnotator) Tokens(text string) ([]Token, error) {
	if text == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to annotate text: %w", err)
	}

	proseTokens := doc.Tokens()
	tokens := make([]Token, 0, len(proseTokens))
	for _, tok := range proseTokens {
		tokens = append(tokens, Token{Text: tok.Text, Tag: tok.Tag})
	}

	return tokens, nil
}

// prose's entity model folds companies and institutions into GPE or FACILITY
// and never emits a bare organization label, so these are all normalized to
// LabelOrganization.
var organizationLabels = map[string]bool{
	"ORG":          true,
	"ORGANIZATION": true,
	"GPE":          true,
	"FACILITY":     true,
}

// Entities returns the named entities found in text, with organization-like
// labels normalized to LabelOrganization.
func (a *ProseAnnotator) Entities(text string) ([]Entity, error) {
	if text == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("failed to extract entities: %w", err)
	}

	proseEnts := doc.Entities()
	entities := make([]Entity, 0, len(proseEnts))
	for _, ent := range proseEnts {
		label := ent.Label
		if organizationLabels[label] {
			label = LabelOrganization
		}
		entities = append(entities, Entity{Text: ent.Text, Label: label})
	}

	return entities, nil
}
