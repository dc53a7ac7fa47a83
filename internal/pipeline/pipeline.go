// Package pipeline drives one candidate document through the staged
// scoring computation: Parse -> LoadCriteria -> Score -> Done, with an
// absorbing Failed state. A run is total: whatever goes wrong inside it,
// the caller always gets a ScoreBreakdown back.
package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"talenthub/resume-ranker/internal/models"
	"talenthub/resume-ranker/internal/roles"
	"talenthub/resume-ranker/internal/scoring"
)

// State names a position in the pipeline state machine.
type State string

const (
	StateStart          State = "start"
	StateParsed         State = "parsed"
	StateCriteriaLoaded State = "criteria_loaded"
	StateScored         State = "scored"
	StateDone           State = "done"
	StateFailed         State = "failed"
)

// Outcome is the result of one pipeline run.
type Outcome struct {
	Filename  string
	Status    models.RunStatus
	Breakdown models.ScoreBreakdown
}

// runState is the mutable scratch record threading through the stages.
// It is owned by exactly one run and discarded when the run completes.
type runState struct {
	state     State
	doc       models.CandidateDocument
	role      roles.Role
	text      string
	criteria  *roles.Criteria
	breakdown models.ScoreBreakdown
	degraded  bool
	failure   string
}

// Orchestrator sequences the pipeline stages over shared read-only state.
type Orchestrator struct {
	repo       *roles.Repository
	similarity *scoring.SimilarityScorer
	log        *zap.Logger
}

func NewOrchestrator(repo *roles.Repository, similarity *scoring.SimilarityScorer, log *zap.Logger) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{repo: repo, similarity: similarity, log: log}
}

// Run scores one candidate document against a role. It never returns an
// error and never panics: extraction failures are replaced with placeholder
// text, unknown roles fall back to the default profile, and a faulting
// scorer yields a zero-valued breakdown for this candidate only.
func (o *Orchestrator) Run(ctx context.Context, doc models.CandidateDocument, role roles.Role) Outcome {
	run := &runState{state: StateStart, doc: doc, role: role}

	for run.state != StateDone && run.state != StateFailed {
		switch run.state {
		case StateStart:
			o.parse(run)
		case StateParsed:
			o.loadCriteria(run)
		case StateCriteriaLoaded:
			o.score(ctx, run)
		case StateScored:
			run.state = StateDone
		}
	}

	if run.state == StateFailed {
		o.log.Error("pipeline run failed",
			zap.String("filename", doc.Filename),
			zap.String("role", string(role)),
			zap.String("reason", run.failure),
		)
		return Outcome{
			Filename:  doc.Filename,
			Status:    models.RunError,
			Breakdown: models.ZeroBreakdown(scoring.Summarize(run.doc.Text)),
		}
	}

	status := models.RunSuccess
	if run.degraded {
		status = models.RunDegraded
	}

	return Outcome{Filename: doc.Filename, Status: status, Breakdown: run.breakdown}
}

// parse moves Start -> Parsed. A document whose extraction failed is not
// dropped: it gets placeholder text so downstream scoring still runs.
func (o *Orchestrator) parse(run *runState) {
	text := run.doc.Text

	if run.doc.Status == models.ExtractionFailed || text == "" {
		text = fmt.Sprintf("Minimal content from %s", run.doc.Filename)
		run.doc.Text = text
		run.degraded = true
	} else if run.doc.Status == models.ExtractionDegraded {
		run.degraded = true
	}

	run.text = scoring.Normalize(text)
	run.state = StateParsed

	o.log.Debug("candidate parsed",
		zap.String("filename", run.doc.Filename),
		zap.Int("text_length", len(run.text)),
		zap.Bool("degraded", run.degraded),
	)
}

// loadCriteria moves Parsed -> CriteriaLoaded. It cannot fail: unknown
// roles resolve to the default role's criteria by policy.
func (o *Orchestrator) loadCriteria(run *runState) {
	run.criteria = o.repo.Criteria(run.role)
	run.state = StateCriteriaLoaded

	o.log.Debug("criteria loaded",
		zap.String("requested_role", string(run.role)),
		zap.String("resolved_role", string(run.criteria.Role)),
	)
}

// score moves CriteriaLoaded -> Scored, or to Failed if a scorer faults.
// The four sub-scorers are independent; a panic in any of them is contained
// here so one candidate's fault cannot abort a batch.
func (o *Orchestrator) score(ctx context.Context, run *runState) {
	defer func() {
		if r := recover(); r != nil {
			run.failure = fmt.Sprintf("scorer fault: %v", r)
			run.state = StateFailed
		}
	}()

	similarity := o.similarity.Score(ctx, run.text, run.criteria.NormalizedText)
	if similarity.Reason != scoring.DegradeNone {
		run.degraded = true
		o.log.Debug("similarity degraded",
			zap.String("filename", run.doc.Filename),
			zap.String("reason", string(similarity.Reason)),
		)
	}

	experience := scoring.ExtractExperience(run.text)
	skills := scoring.MatchSkills(run.text, run.criteria.Skills)
	keywords := scoring.MatchKeywords(run.criteria.Keywords, run.text)

	run.breakdown = scoring.Aggregate(similarity, experience, skills, keywords, run.doc.Text)
	run.state = StateScored

	o.log.Info("candidate scored",
		zap.String("filename", run.doc.Filename),
		zap.String("role", string(run.criteria.Role)),
		zap.Float64("overall", run.breakdown.OverallScore),
		zap.Int("experience", run.breakdown.ExperienceScore),
		zap.Int("skills", run.breakdown.SkillsScore),
		zap.Int("keywords", run.breakdown.KeywordsScore),
	)
}
