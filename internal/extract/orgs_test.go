package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talentsift/resume-extract/internal/nlp"
)

func newTestClassifier(entities []nlp.Entity, vocabEntries []string) *OrgClassifier {
	annotator := &fakeAnnotator{entities: entities}
	var matcher *SkillMatcher
	if vocabEntries != nil {
		matcher = NewSkillMatcher(newVocabulary(vocabEntries), annotator)
	}
	return NewOrgClassifier(annotator, matcher)
}

func TestIsEducation(t *testing.T) {
	tests := []struct {
		org  string
		want bool
	}{
		{"Stanford University", true},
		{"MIT School of Engineering", true},
		{"Ecole Polytechnique", true},
		{"Bachelors of Science", true},
		{"Google", false},
		{"Acme Widget Corp", false},
	}

	for _, tt := range tests {
		t.Run(tt.org, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEducation(tt.org))
		})
	}
}

func TestClassifyPartitionsEducationAndEmployers(t *testing.T) {
	c := newTestClassifier([]nlp.Entity{
		{Text: "Stanford University", Label: "ORG"},
		{Text: "Google", Label: "ORG"},
		{Text: "San Francisco", Label: "GPE"},
	}, nil)

	education, companies := c.Classify("resume text")

	assert.Equal(t, []string{"Stanford University"}, education)
	assert.Equal(t, []string{"Google"}, companies)
}

func TestClassifyDeduplicatesExactMatches(t *testing.T) {
	c := newTestClassifier([]nlp.Entity{
		{Text: "Google", Label: "ORG"},
		{Text: "Google", Label: "ORG"},
		{Text: "google", Label: "ORG"}, // different case is a different entity
	}, nil)

	_, companies := c.Classify("resume text")

	assert.Equal(t, []string{"Google", "google"}, companies)
}

func TestClassifyFiltersSkillLikeEmployers(t *testing.T) {
	// "Python" is tagged ORG by the annotator but matches the skill
	// vocabulary, so it is rejected as an employer.
	c := newTestClassifier([]nlp.Entity{
		{Text: "Python", Label: "ORG"},
		{Text: "Google", Label: "ORG"},
	}, []string{"python"})

	education, companies := c.Classify("resume text")

	assert.Empty(t, education)
	assert.Equal(t, []string{"Google"}, companies)
}

func TestClassifyWithProseAnnotator(t *testing.T) {
	// Drives the classifier through the production annotator rather than a
	// fake, so the label contract between the two packages is covered.
	c := NewOrgClassifier(nlp.NewProseAnnotator(), nil)

	education, companies := c.Classify(
		"Worked at Google and Microsoft. Studied at Stanford University in California.")

	assert.Contains(t, education, "Stanford University")
	assert.Contains(t, companies, "Google")
}

func TestClassifyAnnotationFailureDegrades(t *testing.T) {
	c := NewOrgClassifier(&fakeAnnotator{tokensErr: errAnnotation}, nil)

	education, companies := c.Classify("resume text")

	assert.Empty(t, education)
	assert.Empty(t, companies)
}
