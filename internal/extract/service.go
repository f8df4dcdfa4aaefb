package extract

import (
	"github.com/talentsift/resume-extract/internal/nlp"
)

// Decoder turns a document file into a raw text blob. Implementations never
// fail: decode problems are logged and degrade to empty text so the pipeline
// can still run and produce empty results.
type Decoder interface {
	DecodeFile(path string) (text string, format Format)
}

// Service runs the full extraction pipeline over a resume document. All
// components share the read-only skill vocabulary and annotator configured
// at construction; the service itself holds no per-call state.
type Service struct {
	decoder Decoder
	section *SectionExtractor
	contact *ContactExtractor
	name    *NameExtractor
	orgs    *OrgClassifier
	skills  *SkillMatcher
}

// NewService wires the extraction pipeline. The vocabulary and annotator are
// treated as immutable and may be shared across services.
func NewService(decoder Decoder, annotator nlp.Annotator, vocab *SkillVocabulary, region string) *Service {
	skills := NewSkillMatcher(vocab, annotator)
	return &Service{
		decoder: decoder,
		section: NewSectionExtractor(),
		contact: NewContactExtractor(region),
		name:    NewNameExtractor(annotator),
		orgs:    NewOrgClassifier(annotator, skills),
		skills:  skills,
	}
}

// ExtractFile decodes the file at path and extracts all resume fields.
// Decode failures yield a result with empty fields rather than an error.
func (s *Service) ExtractFile(path string) *ResumeFields {
	text, format := s.decoder.DecodeFile(path)

	fields := s.ExtractText(text)
	fields.Path = path
	fields.Format = format

	return fields
}

// ExtractText runs every extractor over the raw text blob. Components
// operating on lines receive the normalized line sequence; contact and
// entity extraction see the raw text.
func (s *Service) ExtractText(rawText string) *ResumeFields {
	lines := NormalizeText(rawText)

	contact := s.contact.Extract(rawText)
	education, companies := s.orgs.Classify(rawText)

	return &ResumeFields{
		Name:      s.name.Extract(lines),
		Emails:    contact.Emails,
		Phone:     contact.Phone,
		Summary:   s.section.Extract(lines).Lines,
		Education: education,
		Companies: companies,
		Skills:    s.skills.Match(rawText),
	}
}

// Summary extracts only the professional summary section from raw text,
// preserving the found/empty distinction.
func (s *Service) Summary(rawText string) SectionCapture {
	return s.section.Extract(NormalizeText(rawText))
}
