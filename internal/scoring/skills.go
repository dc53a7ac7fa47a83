package scoring

import (
	"math"
	"strings"
)

// SkillsResult is the skill-coverage sub-score for one candidate.
// Identified preserves catalog order and is never nil.
type SkillsResult struct {
	Identified []string
	Score      int
}

// MatchSkills tests each catalog term for literal substring containment in
// the normalized candidate text. Substring matching is intentional: "sql"
// matching inside "mysql" is accepted behavior, not a bug to fix.
func MatchSkills(text string, catalog []string) SkillsResult {
	identified := make([]string, 0, len(catalog))
	for _, skill := range catalog {
		if strings.Contains(text, skill) {
			identified = append(identified, skill)
		}
	}

	result := SkillsResult{Identified: identified}
	if len(catalog) == 0 {
		return result
	}

	score := int(math.Round(float64(len(identified)) / float64(len(catalog)) * 100))
	result.Score = min(100, score)
	return result
}
