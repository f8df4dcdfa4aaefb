package extract

import (
	"log"
	"sort"
	"strings"

	"github.com/talentsift/resume-extract/internal/nlp"
)

// Reserved words marking an organization as an education institution when
// present as a case-insensitive substring.
var educationReservedWords = []string{
	"school", "college", "university", "academy", "faculty", "institute",
	"faculdades", "schola", "schule", "lise", "lyceum", "lycee",
	"polytechnic", "kolej", "ünivers", "okul", "bachelor", "masters",
	"bachelors", "nit",
}

// OrgClassifier partitions organization entities into education institutions
// and candidate employers, then filters out employers that are really skill
// names mis-tagged as organizations.
type OrgClassifier struct {
	annotator nlp.Annotator
	skills    *SkillMatcher
}

// NewOrgClassifier creates an organization classifier. The skill matcher is
// used to reject employer candidates whose text matches the skill
// vocabulary.
func NewOrgClassifier(annotator nlp.Annotator, skills *SkillMatcher) *OrgClassifier {
	return &OrgClassifier{annotator: annotator, skills: skills}
}

// Classify extracts ORG entities from the raw text and returns the education
// institutions and remaining candidate employers, each deduplicated by exact
// text equality and sorted.
func (c *OrgClassifier) Classify(rawText string) (education, companies []string) {
	orgs := c.Organizations(rawText)

	eduSet := make(map[string]bool)
	for _, org := range orgs {
		if IsEducation(org) {
			eduSet[org] = true
		}
	}

	for _, org := range orgs {
		if eduSet[org] {
			continue
		}
		// Reject spans that are actually skill names mis-tagged as
		// organizations.
		if c.skills != nil && c.skills.Matches(strings.ToLower(org)) {
			continue
		}
		companies = append(companies, org)
	}

	for org := range eduSet {
		education = append(education, org)
	}
	sort.Strings(education)
	sort.Strings(companies)

	return education, companies
}

// Organizations returns the deduplicated ORG-labeled entity texts found in
// the raw text, sorted. Equality is exact and case-sensitive. Annotation
// failure degrades to an empty result.
func (c *OrgClassifier) Organizations(rawText string) []string {
	entities, err := c.annotator.Entities(rawText)
	if err != nil {
		log.Printf("organization extraction: annotation failed: %v", err)
		return nil
	}

	seen := make(map[string]bool)
	var orgs []string
	for _, ent := range entities {
		if ent.Label != nlp.LabelOrganization {
			continue
		}
		if seen[ent.Text] {
			continue
		}
		seen[ent.Text] = true
		orgs = append(orgs, ent.Text)
	}
	sort.Strings(orgs)

	return orgs
}

// IsEducation reports whether an organization name contains any education
// reserved word as a case-insensitive substring.
func IsEducation(org string) bool {
	lowered := strings.ToLower(org)
	for _, word := range educationReservedWords {
		if strings.Contains(lowered, word) {
			return true
		}
	}
	return false
}
