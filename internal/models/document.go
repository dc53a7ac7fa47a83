package models

// ExtractionStatus reports how well text extraction went for an uploaded file.
type ExtractionStatus string

const (
	ExtractionOK       ExtractionStatus = "ok"
	ExtractionDegraded ExtractionStatus = "degraded"
	ExtractionFailed   ExtractionStatus = "failed"
)

// CandidateDocument is one uploaded resume after text extraction.
// It is owned by a single pipeline run and never mutated after construction.
type CandidateDocument struct {
	Filename string
	Text     string
	Status   ExtractionStatus
}
