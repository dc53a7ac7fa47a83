package scoring

import (
	"talenthub/resume-ranker/internal/models"
)

// summaryLimit bounds the resume summary carried in a score breakdown.
const summaryLimit = 200

// Aggregate merges the four independent sub-scorer results into one
// ScoreBreakdown. It is a pure assembly step: every degradation value a
// sub-scorer can produce (zero, empty) is representable without
// special-casing.
func Aggregate(
	similarity SimilarityResult,
	experience ExperienceResult,
	skills SkillsResult,
	keywordsScore int,
	candidateText string,
) models.ScoreBreakdown {
	identified := skills.Identified
	if identified == nil {
		identified = []string{}
	}

	return models.ScoreBreakdown{
		OverallScore:     similarity.Overall,
		JobMatch:         similarity.JobMatch,
		ExperienceScore:  experience.Score,
		YearsExperience:  experience.Years,
		SkillsScore:      skills.Score,
		IdentifiedSkills: identified,
		KeywordsScore:    keywordsScore,
		ResumeSummary:    Summarize(candidateText),
	}
}

// Summarize truncates candidate text to at most 200 runes, appending an
// ellipsis marker when truncated.
func Summarize(text string) string {
	runes := []rune(text)
	if len(runes) <= summaryLimit {
		return text
	}
	return string(runes[:summaryLimit]) + "..."
}
