package pipeline

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"talenthub/resume-ranker/internal/models"
	"talenthub/resume-ranker/internal/roles"
)

// Engine scores batches of candidate documents concurrently. Runs share
// only read-only state, so the pool needs no coordination beyond a size
// limit.
type Engine struct {
	orchestrator *Orchestrator
	concurrency  int
	log          *zap.Logger
}

func NewEngine(orchestrator *Orchestrator, concurrency int, log *zap.Logger) *Engine {
	if concurrency < 1 {
		concurrency = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{orchestrator: orchestrator, concurrency: concurrency, log: log}
}

// ScoreAll runs every document through the pipeline with bounded
// parallelism and returns all results ordered by overall score descending.
// Ties keep their input order. The slice always has one entry per input
// document: individual failures surface as zero breakdowns, never as
// missing rows.
func (e *Engine) ScoreAll(ctx context.Context, docs []models.CandidateDocument, role roles.Role) []models.RankedResult {
	batchID := uuid.New()
	e.log.Info("scoring batch",
		zap.String("batch_id", batchID.String()),
		zap.String("role", string(role)),
		zap.Int("candidates", len(docs)),
		zap.Int("concurrency", e.concurrency),
	)

	results := make([]models.RankedResult, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i, doc := range docs {
		g.Go(func() error {
			outcome := e.orchestrator.Run(ctx, doc, role)
			results[i] = models.RankedResult{
				Filename:       outcome.Filename,
				Status:         outcome.Status,
				ScoreBreakdown: outcome.Breakdown,
			}
			return nil
		})
	}

	// Run never returns an error; Wait only synchronizes the pool.
	_ = g.Wait()

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].OverallScore > results[j].OverallScore
	})

	e.log.Info("batch complete",
		zap.String("batch_id", batchID.String()),
		zap.Int("results", len(results)),
	)

	return results
}
