package scoring

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveKeywords_FiltersTokens(t *testing.T) {
	// "the"/"and" are stop-words, "fox"/"dog" are too short.
	keywords := DeriveKeywords("the quick brown fox and lazy dog programming")

	assert.Equal(t, []string{"quick", "brown", "lazy", "programming"}, keywords)
}

func TestDeriveKeywords_StripsPunctuationAndDeduplicates(t *testing.T) {
	keywords := DeriveKeywords("python, python. (docker) docker!")

	assert.Equal(t, []string{"python", "docker"}, keywords)
}

func TestDeriveKeywords_CapsAtTwenty(t *testing.T) {
	var tokens []string
	for i := 0; i < 30; i++ {
		tokens = append(tokens, fmt.Sprintf("keyword%02d", i))
	}

	keywords := DeriveKeywords(strings.Join(tokens, " "))

	assert.Len(t, keywords, 20)
}

func TestDeriveKeywords_EmptyInput(t *testing.T) {
	assert.Empty(t, DeriveKeywords(""))
}

func TestMatchKeywords_PartialCoverage(t *testing.T) {
	keywords := []string{"python", "docker", "kubernetes", "terraform"}

	score := MatchKeywords(keywords, "shipped python services on docker")

	assert.Equal(t, 50, score)
}

func TestMatchKeywords_Rounding(t *testing.T) {
	score := MatchKeywords([]string{"python", "docker", "react"}, "python")

	assert.Equal(t, 33, score)
}

func TestMatchKeywords_SubstringContainment(t *testing.T) {
	// Same policy as skill matching: "sql" matches inside "mysql".
	score := MatchKeywords([]string{"sql"}, "ran mysql migrations")

	assert.Equal(t, 100, score)
}

func TestMatchKeywords_NoKeywords(t *testing.T) {
	assert.Equal(t, 0, MatchKeywords(nil, "any candidate text"))
	assert.Equal(t, 0, MatchKeywords([]string{}, "any candidate text"))
}
