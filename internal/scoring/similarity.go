package scoring

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"talenthub/resume-ranker/internal/embedding"
)

// DegradeReason names why a similarity score was degraded to zero.
type DegradeReason string

const (
	DegradeNone                DegradeReason = ""
	DegradeProviderUnavailable DegradeReason = "provider_unavailable"
	DegradeProviderError       DegradeReason = "provider_error"
	DegradeZeroNorm            DegradeReason = "zero_norm"
	DegradeNotFinite           DegradeReason = "not_finite"
)

// SimilarityResult is the semantic-similarity sub-score for one candidate.
// Overall and JobMatch carry the same value, as a percentage in [0,100].
type SimilarityResult struct {
	Overall  float64
	JobMatch float64
	Reason   DegradeReason
}

// SimilarityScorer computes a cosine-similarity match score between
// candidate and criteria text through an embedding provider. Every failure
// mode degrades silently to a zero score: a missing semantic signal must
// not abort the pipeline.
type SimilarityScorer struct {
	provider embedding.Provider
	timeout  time.Duration
	log      *zap.Logger
}

// NewSimilarityScorer wraps the provider. A nil provider is valid and
// yields zero scores with reason "provider_unavailable". The timeout bounds
// each embedding call so one stuck call cannot block a whole batch.
func NewSimilarityScorer(provider embedding.Provider, timeout time.Duration, log *zap.Logger) *SimilarityScorer {
	if log == nil {
		log = zap.NewNop()
	}
	return &SimilarityScorer{provider: provider, timeout: timeout, log: log}
}

// Score embeds both texts and returns the cosine similarity scaled to a
// percentage. Negative similarity clamps to zero; zero-norm vectors and
// non-finite values refuse to produce an undefined ratio and score zero.
func (s *SimilarityScorer) Score(ctx context.Context, candidateText, criteriaText string) SimilarityResult {
	if s.provider == nil {
		return SimilarityResult{Reason: DegradeProviderUnavailable}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	candidateVec, err := s.provider.Embed(ctx, candidateText)
	if err != nil {
		s.log.Warn("candidate embedding failed", zap.Error(err))
		return SimilarityResult{Reason: DegradeProviderError}
	}

	criteriaVec, err := s.provider.Embed(ctx, criteriaText)
	if err != nil {
		s.log.Warn("criteria embedding failed", zap.Error(err))
		return SimilarityResult{Reason: DegradeProviderError}
	}

	similarity, reason := cosine(candidateVec, criteriaVec)
	if reason != DegradeNone {
		return SimilarityResult{Reason: reason}
	}

	score := math.Max(0, similarity) * 100
	return SimilarityResult{Overall: score, JobMatch: score}
}

// cosine computes the cosine similarity of two vectors in float64 space.
func cosine(a, b []float32) (float64, DegradeReason) {
	if len(a) != len(b) || len(a) == 0 {
		return 0, DegradeZeroNorm
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0, DegradeZeroNorm
	}

	similarity := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if math.IsNaN(similarity) || math.IsInf(similarity, 0) {
		return 0, DegradeNotFinite
	}

	return similarity, DegradeNone
}
