package models

// ScoreBreakdown is the output of one scoring run. All bounded fields stay in
// [0,100] even for degraded input; degradation maps to zero, never NaN.
type ScoreBreakdown struct {
	OverallScore     float64  `json:"overall_score"`
	JobMatch         float64  `json:"job_match"`
	ExperienceScore  int      `json:"experience_score"`
	YearsExperience  int      `json:"years_experience"`
	SkillsScore      int      `json:"skills_score"`
	IdentifiedSkills []string `json:"identified_skills"`
	KeywordsScore    int      `json:"keywords_score"`
	ResumeSummary    string   `json:"resume_summary"`
}

// ZeroBreakdown is the breakdown substituted when scoring a candidate fails
// entirely. IdentifiedSkills is non-nil so it serializes as an empty list.
func ZeroBreakdown(summary string) ScoreBreakdown {
	return ScoreBreakdown{
		IdentifiedSkills: []string{},
		ResumeSummary:    summary,
	}
}

// RunStatus marks how a pipeline run ended, for callers that want to
// distinguish a real zero score from a degraded one.
type RunStatus string

const (
	RunSuccess  RunStatus = "success"
	RunDegraded RunStatus = "degraded"
	RunError    RunStatus = "error"
)

// RankedResult pairs a candidate's filename with its breakdown inside a
// batch response, ordered by overall score descending. The breakdown is
// embedded so result rows serialize flat.
type RankedResult struct {
	Filename string    `json:"resume"`
	Status   RunStatus `json:"status"`
	ScoreBreakdown
}
