package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talenthub/resume-ranker/internal/models"
	"talenthub/resume-ranker/internal/roles"
	"talenthub/resume-ranker/internal/scoring"
)

// stubProvider returns canned vectors per input text, with a fallback for
// anything unlisted (criteria texts, typically).
type stubProvider struct {
	vectors  map[string][]float32
	fallback []float32
}

func (s *stubProvider) Embed(_ context.Context, text string) ([]float32, error) {
	if vec, ok := s.vectors[text]; ok {
		return vec, nil
	}
	return s.fallback, nil
}

func (s *stubProvider) Model() string { return "stub" }

// panicProvider simulates an unexpected fault inside the scoring stage.
type panicProvider struct{}

func (p *panicProvider) Embed(context.Context, string) ([]float32, error) {
	panic("embedding backend corrupted")
}

func (p *panicProvider) Model() string { return "panic" }

func newTestOrchestrator(t *testing.T, provider interface {
	Embed(context.Context, string) ([]float32, error)
	Model() string
}) *Orchestrator {
	t.Helper()

	repo, err := roles.NewRepository()
	require.NoError(t, err)

	similarity := scoring.NewSimilarityScorer(provider, 0, nil)
	return NewOrchestrator(repo, similarity, nil)
}

func TestRun_EndToEnd(t *testing.T) {
	// Identical vectors for candidate and criteria: full semantic match.
	provider := &stubProvider{fallback: []float32{1, 2, 3}}
	orchestrator := newTestOrchestrator(t, provider)

	doc := models.CandidateDocument{
		Filename: "candidate.txt",
		Text:     "Experienced software engineer with 8 years experience in Python, React, Docker and Git",
		Status:   models.ExtractionOK,
	}

	outcome := orchestrator.Run(context.Background(), doc, roles.RoleSoftwareEngineer)

	assert.Equal(t, models.RunSuccess, outcome.Status)
	assert.InDelta(t, 100.0, outcome.Breakdown.OverallScore, 0.001)
	assert.Equal(t, outcome.Breakdown.OverallScore, outcome.Breakdown.JobMatch)
	assert.Equal(t, 80, outcome.Breakdown.ExperienceScore)
	assert.Equal(t, 8, outcome.Breakdown.YearsExperience)
	assert.Equal(t, []string{"python", "react", "git", "docker"}, outcome.Breakdown.IdentifiedSkills)
	assert.Greater(t, outcome.Breakdown.SkillsScore, 0)
	assert.Greater(t, outcome.Breakdown.KeywordsScore, 0)
	assert.Equal(t, doc.Text, outcome.Breakdown.ResumeSummary)
}

func TestRun_FailedExtractionGetsPlaceholderText(t *testing.T) {
	orchestrator := newTestOrchestrator(t, &stubProvider{fallback: []float32{1, 0}})

	doc := models.CandidateDocument{
		Filename: "broken.pdf",
		Status:   models.ExtractionFailed,
	}

	outcome := orchestrator.Run(context.Background(), doc, roles.RoleSoftwareEngineer)

	// The candidate is scored on placeholder text instead of being dropped.
	assert.Equal(t, models.RunDegraded, outcome.Status)
	assert.Equal(t, "Minimal content from broken.pdf", outcome.Breakdown.ResumeSummary)
	assert.Equal(t, 0, outcome.Breakdown.ExperienceScore)
	assert.Empty(t, outcome.Breakdown.IdentifiedSkills)
}

func TestRun_UnknownRoleFallsBackToDefault(t *testing.T) {
	orchestrator := newTestOrchestrator(t, &stubProvider{fallback: []float32{1, 0}})

	doc := models.CandidateDocument{
		Filename: "candidate.txt",
		Text:     "python and docker developer with 3 years experience",
		Status:   models.ExtractionOK,
	}

	outcome := orchestrator.Run(context.Background(), doc, "astronaut")

	// Matched against the default (software-engineer) catalog.
	assert.Equal(t, []string{"python", "docker"}, outcome.Breakdown.IdentifiedSkills)
	assert.Equal(t, 3, outcome.Breakdown.YearsExperience)
}

func TestRun_MissingProviderDegradesSimilarityOnly(t *testing.T) {
	orchestrator := newTestOrchestrator(t, nil)

	doc := models.CandidateDocument{
		Filename: "candidate.txt",
		Text:     "python developer with 5+ years experience",
		Status:   models.ExtractionOK,
	}

	outcome := orchestrator.Run(context.Background(), doc, roles.RoleSoftwareEngineer)

	assert.Equal(t, models.RunDegraded, outcome.Status)
	assert.Equal(t, 0.0, outcome.Breakdown.OverallScore)
	// The heuristic sub-scores survive the missing semantic signal.
	assert.Equal(t, 50, outcome.Breakdown.ExperienceScore)
	assert.Contains(t, outcome.Breakdown.IdentifiedSkills, "python")
}

func TestRun_ScorerFaultYieldsZeroBreakdown(t *testing.T) {
	orchestrator := newTestOrchestrator(t, &panicProvider{})

	doc := models.CandidateDocument{
		Filename: "candidate.txt",
		Text:     "python developer with 5 years experience",
		Status:   models.ExtractionOK,
	}

	var outcome Outcome
	assert.NotPanics(t, func() {
		outcome = orchestrator.Run(context.Background(), doc, roles.RoleSoftwareEngineer)
	})

	assert.Equal(t, models.RunError, outcome.Status)
	assert.Equal(t, 0.0, outcome.Breakdown.OverallScore)
	assert.Equal(t, 0, outcome.Breakdown.ExperienceScore)
	assert.Equal(t, 0, outcome.Breakdown.SkillsScore)
	assert.Equal(t, 0, outcome.Breakdown.KeywordsScore)
	assert.NotNil(t, outcome.Breakdown.IdentifiedSkills)
}

func TestRun_BoundsHoldUnderDegradedInput(t *testing.T) {
	tests := []struct {
		name string
		doc  models.CandidateDocument
	}{
		{
			name: "empty text",
			doc:  models.CandidateDocument{Filename: "empty.txt", Status: models.ExtractionOK},
		},
		{
			name: "degraded extraction",
			doc:  models.CandidateDocument{Filename: "short.txt", Text: "hi", Status: models.ExtractionDegraded},
		},
	}

	orchestrator := newTestOrchestrator(t, &stubProvider{fallback: []float32{0, 0}})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := orchestrator.Run(context.Background(), tt.doc, roles.RoleSoftwareEngineer)

			b := outcome.Breakdown
			assert.GreaterOrEqual(t, b.OverallScore, 0.0)
			assert.LessOrEqual(t, b.OverallScore, 100.0)
			assert.GreaterOrEqual(t, b.ExperienceScore, 0)
			assert.LessOrEqual(t, b.ExperienceScore, 100)
			assert.GreaterOrEqual(t, b.SkillsScore, 0)
			assert.LessOrEqual(t, b.SkillsScore, 100)
			assert.GreaterOrEqual(t, b.KeywordsScore, 0)
			assert.LessOrEqual(t, b.KeywordsScore, 100)
			assert.GreaterOrEqual(t, b.YearsExperience, 0)
		})
	}
}
