package upload_test

import (
	"testing"

	"go-portfolio-backend/pkg/upload"

	"github.com/stretchr/testify/assert"
)

const maxSize = 5 << 20

var pdfHead = []byte("%PDF-1.7\n%binary")

func TestValidateResume(t *testing.T) {
	t.Run("Should accept a well-formed PDF", func(t *testing.T) {
		result := upload.ValidateResume("resume.pdf", 1024, maxSize, pdfHead)
		assert.True(t, result.Valid)
		assert.Equal(t, ".pdf", result.Extension)
		assert.Empty(t, result.Error)
	})

	t.Run("Should reject non-pdf extensions", func(t *testing.T) {
		for _, name := range []string{"resume.docx", "resume.exe", "resume", "resume.pdf.sh"} {
			result := upload.ValidateResume(name, 1024, maxSize, pdfHead)
			assert.False(t, result.Valid, name)
		}
	})

	t.Run("Should be case-insensitive about the extension", func(t *testing.T) {
		result := upload.ValidateResume("Resume.PDF", 1024, maxSize, pdfHead)
		assert.True(t, result.Valid)
	})

	t.Run("Should reject an empty file", func(t *testing.T) {
		result := upload.ValidateResume("resume.pdf", 0, maxSize, nil)
		assert.False(t, result.Valid)
	})

	t.Run("Should reject an oversized file", func(t *testing.T) {
		result := upload.ValidateResume("resume.pdf", maxSize+1, maxSize, pdfHead)
		assert.False(t, result.Valid)
	})

	t.Run("Should reject a renamed non-PDF by magic bytes", func(t *testing.T) {
		result := upload.ValidateResume("resume.pdf", 1024, maxSize, []byte("MZ\x90\x00 executable"))
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "PDF")
	})
}
