package upload

import (
	"bytes"
	"path/filepath"
	"strings"
)

// ValidationResult contains the result of resume file validation
type ValidationResult struct {
	Valid     bool   // Whether the file passed all validation checks
	Extension string // Detected file extension
	Error     string // Error message if validation failed
}

// %PDF magic bytes - the resume upload endpoint accepts PDFs only
var pdfMagic = []byte{0x25, 0x50, 0x44, 0x46}

// ValidateResume checks the filename extension, size and magic bytes of an
// uploaded resume. Content sniffing is deliberately strict: a renamed
// executable with a .pdf extension is rejected.
func ValidateResume(filename string, size int64, maxSize int64, head []byte) ValidationResult {
	ext := strings.ToLower(filepath.Ext(filename))
	result := ValidationResult{Extension: ext}

	if ext != ".pdf" {
		result.Error = "only PDF files are allowed"
		return result
	}

	if size <= 0 {
		result.Error = "file is empty"
		return result
	}
	if size > maxSize {
		result.Error = "file exceeds the maximum allowed size"
		return result
	}

	if !bytes.HasPrefix(head, pdfMagic) {
		result.Error = "file content does not match a PDF document"
		return result
	}

	result.Valid = true
	return result
}
