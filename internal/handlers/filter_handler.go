package handlers

import (
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"talenthub/resume-ranker/internal/extract"
	"talenthub/resume-ranker/internal/models"
	"talenthub/resume-ranker/internal/pipeline"
	"talenthub/resume-ranker/internal/roles"
)

type FilterHandler struct {
	extractor extract.Extractor
	engine    *pipeline.Engine
	repo      *roles.Repository
	log       *zap.Logger
}

func NewFilterHandler(
	extractor extract.Extractor,
	engine *pipeline.Engine,
	repo *roles.Repository,
	log *zap.Logger,
) *FilterHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &FilterHandler{
		extractor: extractor,
		engine:    engine,
		repo:      repo,
		log:       log,
	}
}

// HandleFilter handles POST /filter: multipart field "resumes" (one file
// per candidate) plus form value "role". Responds with every candidate's
// score breakdown sorted by overall score descending. Only malformed
// top-level input is a request error; per-candidate failures come back as
// zero-scored rows.
func (h *FilterHandler) HandleFilter(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	files := form.File["resumes"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resumes uploaded",
		})
	}

	role := c.FormValue("role")
	if role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No role specified",
		})
	}

	docs := make([]models.CandidateDocument, 0, len(files))
	for _, file := range files {
		docs = append(docs, h.readDocument(file))
	}

	results := h.engine.ScoreAll(c.Context(), docs, roles.Role(role))

	return c.JSON(fiber.Map{
		"results": results,
		"total":   len(results),
	})
}

// readDocument loads one uploaded file and extracts its text. Unreadable
// uploads become failed-status documents so they still get a result row.
func (h *FilterHandler) readDocument(file *multipart.FileHeader) models.CandidateDocument {
	f, err := file.Open()
	if err != nil {
		h.log.Warn("failed to open upload", zap.String("filename", file.Filename), zap.Error(err))
		return models.CandidateDocument{Filename: file.Filename, Status: models.ExtractionFailed}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		h.log.Warn("failed to read upload", zap.String("filename", file.Filename), zap.Error(err))
		return models.CandidateDocument{Filename: file.Filename, Status: models.ExtractionFailed}
	}

	return h.extractor.ExtractText(data, file.Filename)
}

// HandleRoles handles GET /roles.
func (h *FilterHandler) HandleRoles(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"roles":   h.repo.Roles(),
		"default": roles.DefaultRole,
	})
}
