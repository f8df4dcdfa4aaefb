package extract

import (
	"regexp"

	"github.com/nyaruka/phonenumbers"
)

var (
	emailPattern = regexp.MustCompile(`(?i)\b[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}\b`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s\-().]{7,}\d`)
)

// phoneStrategy attempts to find a phone number in text, returning the raw
// matched substring or empty when nothing matched. Strategies never fail;
// they degrade to empty.
type phoneStrategy func(text string) string

// ContactExtractor finds email addresses and phone numbers in raw resume
// text.
type ContactExtractor struct {
	region     string
	strategies []phoneStrategy
}

// NewContactExtractor creates a contact extractor. The region is the default
// phone-number region used to validate candidates in national format (e.g.
// "US").
func NewContactExtractor(region string) *ContactExtractor {
	e := &ContactExtractor{region: region}
	e.strategies = []phoneStrategy{
		e.grammarPhone,
		e.fallbackPhone,
	}
	return e
}

// Extract returns all email matches in order of appearance (duplicates
// included) and the first phone number found by the strategy chain.
func (e *ContactExtractor) Extract(rawText string) ContactInfo {
	return ContactInfo{
		Emails: e.FindEmails(rawText),
		Phone:  e.FindPhone(rawText),
	}
}

// FindEmails returns every email-shaped substring in the text, in order of
// appearance. Duplicates are preserved.
func (e *ContactExtractor) FindEmails(text string) []string {
	return emailPattern.FindAllString(text, -1)
}

// FindPhone runs the phone strategies in order and returns the first
// non-empty result, or empty string when no strategy matches. The returned
// substring keeps its original formatting.
func (e *ContactExtractor) FindPhone(text string) string {
	for _, strategy := range e.strategies {
		if match := strategy(text); match != "" {
			return match
		}
	}
	return ""
}

// grammarPhone sweeps the text for numeric candidates and returns the first
// one the phone-number grammar accepts as a valid number, either in national
// format for the configured region or in international format.
func (e *ContactExtractor) grammarPhone(text string) string {
	for _, candidate := range phonePattern.FindAllString(text, -1) {
		num, err := phonenumbers.Parse(candidate, e.region)
		if err != nil {
			continue
		}
		if phonenumbers.IsValidNumber(num) || phonenumbers.IsPossibleNumber(num) {
			return candidate
		}
	}
	return ""
}

// fallbackPhone is the generic numeric pattern used when the grammar
// strategy yields nothing.
func (e *ContactExtractor) fallbackPhone(text string) string {
	return phonePattern.FindString(text)
}
