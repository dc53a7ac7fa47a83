package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"talenthub/resume-ranker/internal/config"
	"talenthub/resume-ranker/internal/embedding"
	"talenthub/resume-ranker/internal/extract"
	"talenthub/resume-ranker/internal/handlers"
	"talenthub/resume-ranker/internal/logger"
	"talenthub/resume-ranker/internal/pipeline"
	"talenthub/resume-ranker/internal/roles"
	"talenthub/resume-ranker/internal/scoring"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.New(cfg.Logging.JSON, cfg.Logging.Debug)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Initialize the role criteria repository
	repo, err := roles.NewRepository()
	if err != nil {
		zlog.Fatal("failed to build role repository", zap.Error(err))
	}
	zlog.Info("role criteria loaded", zap.Int("roles", len(repo.Roles())))

	// Initialize the embedding provider. A failed provider is not fatal:
	// the pipeline degrades the similarity score to zero without it.
	provider, err := embedding.New(embedding.Config{
		Provider:     cfg.Embedding.Provider,
		GeminiAPIKey: cfg.Embedding.GeminiKey,
		GeminiModel:  cfg.Embedding.GeminiModel,
		OllamaModel:  cfg.Embedding.OllamaModel,
	})
	if err != nil {
		zlog.Warn("embedding provider unavailable, similarity scoring disabled", zap.Error(err))
		provider = nil
	} else if provider != nil {
		zlog.Info("embedding provider ready",
			zap.String("provider", cfg.Embedding.Provider),
			zap.String("model", provider.Model()),
		)
	}

	// Initialize the scoring pipeline
	similarity := scoring.NewSimilarityScorer(provider, cfg.Embedding.Timeout, zlog)
	orchestrator := pipeline.NewOrchestrator(repo, similarity, zlog)
	engine := pipeline.NewEngine(orchestrator, cfg.Worker.Concurrency, zlog)
	extractor := extract.New(zlog)

	filterHandler := handlers.NewFilterHandler(extractor, engine, repo, zlog)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Ranker API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/filter", filterHandler.HandleFilter)
	api.Get("/roles", filterHandler.HandleRoles)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Ranker API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/filter",
				"GET /api/v1/roles",
				"GET /api/v1/health",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zlog.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			zlog.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.Server.Env))

	if err := app.Listen(addr); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
