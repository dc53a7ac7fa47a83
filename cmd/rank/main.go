// Command rank scores local resume files against a role from the terminal,
// using the same pipeline as the API server.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"talenthub/resume-ranker/internal/config"
	"talenthub/resume-ranker/internal/embedding"
	"talenthub/resume-ranker/internal/extract"
	"talenthub/resume-ranker/internal/models"
	"talenthub/resume-ranker/internal/pipeline"
	"talenthub/resume-ranker/internal/roles"
	"talenthub/resume-ranker/internal/scoring"
)

var (
	roleFlag        string
	concurrencyFlag int
	verboseFlag     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rank [files...]",
		Short: "Rank resume files against a target role",
		Long: `Rank scores one or more resume files (PDF or plain text) against a
target role's requirements and prints the ranked results.`,
		Args: cobra.MinimumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVar(&roleFlag, "role", string(roles.DefaultRole), "target role identifier")
	rootCmd.Flags().IntVar(&concurrencyFlag, "concurrency", 0, "number of concurrent scoring workers (0 = config default)")
	rootCmd.Flags().BoolVar(&verboseFlag, "verbose", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	zlog := zap.NewNop()
	if verboseFlag {
		var err error
		zlog, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		defer zlog.Sync()
	}

	repo, err := roles.NewRepository()
	if err != nil {
		return fmt.Errorf("build role repository: %w", err)
	}

	provider, err := embedding.New(embedding.Config{
		Provider:     cfg.Embedding.Provider,
		GeminiAPIKey: cfg.Embedding.GeminiKey,
		GeminiModel:  cfg.Embedding.GeminiModel,
		OllamaModel:  cfg.Embedding.OllamaModel,
	})
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: embedding provider unavailable (%v), similarity disabled\n", err)
		provider = nil
	}

	concurrency := cfg.Worker.Concurrency
	if concurrencyFlag > 0 {
		concurrency = concurrencyFlag
	}

	similarity := scoring.NewSimilarityScorer(provider, cfg.Embedding.Timeout, zlog)
	orchestrator := pipeline.NewOrchestrator(repo, similarity, zlog)
	engine := pipeline.NewEngine(orchestrator, concurrency, zlog)
	extractor := extract.New(zlog)

	docs := make([]models.CandidateDocument, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: cannot read %s: %v\n", path, err)
			docs = append(docs, models.CandidateDocument{Filename: path, Status: models.ExtractionFailed})
			continue
		}
		docs = append(docs, extractor.ExtractText(data, path))
	}

	results := engine.ScoreAll(cmd.Context(), docs, roles.Role(roleFlag))

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RESUME\tOVERALL\tEXPERIENCE\tSKILLS\tKEYWORDS\tYEARS\tSTATUS")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%.2f\t%d\t%d\t%d\t%d\t%s\n",
			r.Filename,
			r.OverallScore,
			r.ExperienceScore,
			r.SkillsScore,
			r.KeywordsScore,
			r.YearsExperience,
			r.Status,
		)
	}
	return w.Flush()
}
