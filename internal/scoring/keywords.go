package scoring

import (
	"math"
	"regexp"
	"strings"
)

// maxKeywords caps how many keywords are derived from a criteria text.
const maxKeywords = 20

var nonWordRe = regexp.MustCompile(`[^\w]`)

// stopWords are common words excluded from keyword derivation.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"have": {}, "has": {}, "had": {}, "will": {}, "would": {}, "could": {},
	"should": {}, "may": {}, "might": {}, "can": {}, "must": {},
}

// DeriveKeywords extracts up to 20 salient keywords from a normalized
// criteria text: tokens are stripped of non-word characters, tokens of
// length <= 3 and stop-words are dropped, and duplicates are removed
// keeping first-seen order.
func DeriveKeywords(criteriaText string) []string {
	seen := make(map[string]struct{})
	keywords := make([]string, 0, maxKeywords)

	for _, token := range strings.Fields(criteriaText) {
		word := nonWordRe.ReplaceAllString(token, "")
		if len(word) <= 3 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		keywords = append(keywords, word)
		if len(keywords) == maxKeywords {
			break
		}
	}

	return keywords
}

// MatchKeywords scores keyword coverage: the share of derived keywords
// found by substring containment in the normalized candidate text. An empty
// keyword set scores zero rather than dividing by it.
func MatchKeywords(keywords []string, candidateText string) int {
	if len(keywords) == 0 {
		return 0
	}

	matches := 0
	for _, keyword := range keywords {
		if strings.Contains(candidateText, keyword) {
			matches++
		}
	}

	score := int(math.Round(float64(matches) / float64(len(keywords)) * 100))
	return min(100, score)
}
