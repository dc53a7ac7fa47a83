package scoring

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ExperienceSource names which signal produced an experience result.
type ExperienceSource string

const (
	// ExperienceExplicit means a numeric years-of-experience claim matched.
	ExperienceExplicit ExperienceSource = "explicit"
	// ExperienceIndicators means only generic experience vocabulary was found.
	ExperienceIndicators ExperienceSource = "indicators"
	// ExperienceNone means the text carried no experience signal at all.
	ExperienceNone ExperienceSource = "none"
)

// ExperienceResult is the experience sub-score for one candidate.
type ExperienceResult struct {
	Years  int
	Score  int
	Source ExperienceSource
}

// yearPatterns are tried in order against normalized text; every captured
// integer across all patterns is collected and the maximum wins.
var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*\+?\s*years?\s+(?:of\s+)?experience`),
	regexp.MustCompile(`(\d+)\s*years?\s+experience`),
	regexp.MustCompile(`experience\s*:?\s*(\d+)\s*years?`),
	regexp.MustCompile(`(\d+)\s*years?\s+in`),
	regexp.MustCompile(`(\d+)\s*yr\s`),
	regexp.MustCompile(`(\d+)\s*-\s*(\d+)\s*years?`),
}

// experienceIndicators is the weaker fallback vocabulary used when no
// explicit year number appears.
var experienceIndicators = []string{
	"years", "year", "experience", "experienced", "exp", "months", "month",
	"internship", "intern", "work", "worked", "employment", "job", "position",
}

// ExtractExperience extracts a years-of-experience signal from normalized
// text. Explicit numeric claims are trusted over keyword density, but the
// absence of numbers does not zero out the score: indicator words provide a
// rough fallback estimate. Ten or more explicit years saturate the score.
func ExtractExperience(text string) ExperienceResult {
	var years []int
	for _, pattern := range yearPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			for _, group := range match[1:] {
				if n, err := strconv.Atoi(group); err == nil {
					years = append(years, n)
				}
			}
		}
	}

	if len(years) > 0 {
		top := years[0]
		for _, n := range years[1:] {
			if n > top {
				top = n
			}
		}
		score := int(math.Round(float64(top) / 10 * 100))
		return ExperienceResult{
			Years:  top,
			Score:  min(100, score),
			Source: ExperienceExplicit,
		}
	}

	indicators := 0
	for _, word := range experienceIndicators {
		if strings.Contains(text, word) {
			indicators++
		}
	}

	if indicators == 0 {
		return ExperienceResult{Source: ExperienceNone}
	}

	return ExperienceResult{
		Years:  max(1, indicators/2),
		Score:  min(100, indicators*10),
		Source: ExperienceIndicators,
	}
}
