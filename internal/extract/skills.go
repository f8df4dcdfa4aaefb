package extract

import (
	"bufio"
	_ "embed"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/talentsift/resume-extract/internal/nlp"
)

//go:embed data/skills.txt
var defaultSkillList string

// Vocabulary entries that tokenize to this many tokens or more are excluded
// from matching. Guards against near-paragraph-length entries in the word
// list polluting matches.
const maxPhraseTokens = 10

// SkillVocabulary is the read-only phrase vocabulary matched against resume
// text. It is loaded once at startup and shared by all extraction calls;
// the phrase index is never mutated after construction.
type SkillVocabulary struct {
	// byFirstToken indexes phrases by their first token for matching.
	byFirstToken map[string][][]string
	count        int
}

// LoadVocabulary reads a skill word list from path, one phrase per line.
// Entries are lowercased and stripped. An empty path loads the embedded
// default list.
func LoadVocabulary(path string) (*SkillVocabulary, error) {
	if path == "" {
		return newVocabulary(strings.Split(defaultSkillList, "\n")), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open skill list %s: %w", path, err)
	}
	defer f.Close()

	var entries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		entries = append(entries, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read skill list %s: %w", path, err)
	}

	return newVocabulary(entries), nil
}

// newVocabulary builds the phrase index from raw word list entries.
func newVocabulary(entries []string) *SkillVocabulary {
	vocab := &SkillVocabulary{byFirstToken: make(map[string][][]string)}

	for _, entry := range entries {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}

		tokens := strings.Fields(entry)
		if len(tokens) >= maxPhraseTokens {
			continue
		}

		vocab.byFirstToken[tokens[0]] = append(vocab.byFirstToken[tokens[0]], tokens)
		vocab.count++
	}

	return vocab
}

// Size returns the number of phrases in the match vocabulary.
func (v *SkillVocabulary) Size() int {
	return v.count
}

// SkillMatcher matches the skill vocabulary against text using exact,
// token-boundary-aligned phrase matching.
type SkillMatcher struct {
	vocab     *SkillVocabulary
	annotator nlp.Annotator
}

// NewSkillMatcher creates a skill matcher over the given vocabulary.
func NewSkillMatcher(vocab *SkillVocabulary, annotator nlp.Annotator) *SkillMatcher {
	return &SkillMatcher{vocab: vocab, annotator: annotator}
}

// Match lowercases the text, tokenizes it, and returns every vocabulary
// phrase that occurs on token boundaries, deduplicated and sorted. No
// partial or fuzzy matching is performed.
func (m *SkillMatcher) Match(text string) []string {
	tokens, err := m.annotator.Tokens(strings.ToLower(text))
	if err != nil {
		log.Printf("skill matching: annotation failed: %v", err)
		return nil
	}

	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		words = append(words, tok.Text)
	}

	found := make(map[string]bool)
	for i, word := range words {
		for _, phrase := range m.vocab.byFirstToken[word] {
			if phraseAt(words, i, phrase) {
				found[strings.Join(phrase, " ")] = true
			}
		}
	}

	matched := make([]string, 0, len(found))
	for skill := range found {
		matched = append(matched, skill)
	}
	sort.Strings(matched)

	return matched
}

// Matches reports whether the text contains any vocabulary phrase at all.
func (m *SkillMatcher) Matches(text string) bool {
	return len(m.Match(text)) > 0
}

// phraseAt reports whether phrase occurs in words starting at index i.
func phraseAt(words []string, i int, phrase []string) bool {
	if i+len(phrase) > len(words) {
		return false
	}
	for j, p := range phrase {
		if words[i+j] != p {
			return false
		}
	}
	return true
}
