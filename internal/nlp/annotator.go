package nlp

// Token is a single token produced by the annotation service, carrying its
// Penn Treebank part-of-speech tag.
type Token struct {
	Text string `json:"text"`
	Tag  string `json:"tag"`
}

// LabelOrganization is the normalized label carried by entities that refer to
// an organization. Annotators map their backend's organization-like labels
// onto this one.
const LabelOrganization = "ORG"

// Entity is a named-entity span with its label (e.g. "ORG", "PERSON").
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Annotator provides tokenization with part-of-speech tags and named-entity
// recognition. Implementations must be safe for repeated stateless calls and
// deterministic for identical input.
type Annotator interface {
	// Tokens tokenizes text and tags each token with its part of speech.
	Tokens(text string) ([]Token, error)

	// Entities returns the named entities found in text.
	Entities(text string) ([]Entity, error)
}

// IsProperNoun reports whether a token is tagged as a proper noun.
func IsProperNoun(t Token) bool {
	return t.Tag == "NNP" || t.Tag == "NNPS"
}
