// Package extract turns uploaded resume files into plain text plus a
// best-effort status flag. Extraction never fails hard: a file the service
// cannot read produces a failed-status document, and the scoring pipeline
// decides what to do with it.
package extract

import (
	"bytes"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"talenthub/resume-ranker/internal/models"
)

// minUsableText is the length below which extracted text counts as degraded.
const minUsableText = 5

type Extractor interface {
	ExtractText(data []byte, filename string) models.CandidateDocument
}

type extractor struct {
	log *zap.Logger
}

func New(log *zap.Logger) Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &extractor{log: log}
}

// ExtractText decodes the file by extension. Supported: .pdf and .txt.
// Other formats (including .docx, which has no reader in this service)
// come back with status failed and empty text.
func (e *extractor) ExtractText(data []byte, filename string) models.CandidateDocument {
	doc := models.CandidateDocument{Filename: filename, Status: models.ExtractionFailed}

	var text string
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err = extractPDF(data)
	case ".txt":
		text = extractPlainText(data)
	default:
		e.log.Warn("unsupported file format",
			zap.String("filename", filename),
		)
		return doc
	}

	if err != nil {
		e.log.Warn("text extraction failed",
			zap.String("filename", filename),
			zap.Error(err),
		)
		return doc
	}

	// Collapse whitespace but keep the raw casing; normalization for
	// matching happens inside the pipeline.
	text = strings.Join(strings.Fields(text), " ")
	doc.Text = text

	switch {
	case text == "":
		doc.Status = models.ExtractionFailed
	case utf8.RuneCountInString(text) < minUsableText:
		doc.Status = models.ExtractionDegraded
	default:
		doc.Status = models.ExtractionOK
	}

	return doc
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages and keep whatever the rest yields.
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	return textBuilder.String(), nil
}

// extractPlainText decodes bytes as UTF-8, salvaging non-UTF-8 uploads by
// treating each byte as a Latin-1 code point.
func extractPlainText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}
