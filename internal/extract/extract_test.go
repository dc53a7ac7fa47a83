package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"talenthub/resume-ranker/internal/models"
)

func TestExtractText_PlainText(t *testing.T) {
	doc := New(nil).ExtractText([]byte("Software engineer with Go experience"), "resume.txt")

	assert.Equal(t, models.ExtractionOK, doc.Status)
	assert.Equal(t, "Software engineer with Go experience", doc.Text)
	assert.Equal(t, "resume.txt", doc.Filename)
}

func TestExtractText_CollapsesWhitespace(t *testing.T) {
	doc := New(nil).ExtractText([]byte("line one\n\nline   two\t end"), "resume.txt")

	assert.Equal(t, models.ExtractionOK, doc.Status)
	assert.Equal(t, "line one line two end", doc.Text)
}

func TestExtractText_Latin1Salvage(t *testing.T) {
	// 0xE9 is "é" in Latin-1 but not valid UTF-8 on its own.
	data := []byte("r\xe9sum\xe9 of a python engineer")

	doc := New(nil).ExtractText(data, "resume.txt")

	assert.Equal(t, models.ExtractionOK, doc.Status)
	assert.Contains(t, doc.Text, "résumé")
}

func TestExtractText_EmptyFileFails(t *testing.T) {
	doc := New(nil).ExtractText(nil, "empty.txt")

	assert.Equal(t, models.ExtractionFailed, doc.Status)
	assert.Empty(t, doc.Text)
}

func TestExtractText_VeryShortTextIsDegraded(t *testing.T) {
	doc := New(nil).ExtractText([]byte("hi"), "tiny.txt")

	assert.Equal(t, models.ExtractionDegraded, doc.Status)
	assert.Equal(t, "hi", doc.Text)
}

func TestExtractText_UnsupportedFormatFails(t *testing.T) {
	tests := []struct {
		name     string
		filename string
	}{
		{name: "docx has no reader", filename: "resume.docx"},
		{name: "unknown extension", filename: "resume.xyz"},
		{name: "no extension", filename: "resume"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := New(nil).ExtractText([]byte("some bytes"), tt.filename)

			assert.Equal(t, models.ExtractionFailed, doc.Status)
			assert.Empty(t, doc.Text)
		})
	}
}

func TestExtractText_CorruptPDFFails(t *testing.T) {
	doc := New(nil).ExtractText([]byte("not a real pdf"), "resume.pdf")

	assert.Equal(t, models.ExtractionFailed, doc.Status)
	assert.Empty(t, doc.Text)
}
