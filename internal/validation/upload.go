package validation

import (
	"mime/multipart"
	"strings"
	"unicode/utf8"

	"resumeroast/resume-analyzer/internal/apperrors"
)

// Upload limits. These are part of the API contract.
const (
	MaxFileSize      = 5 * 1024 * 1024 // 5 MiB
	MinJobDescLen    = 50              // characters, post-trim
	MinResumeTextLen = 100             // characters, post-trim
	AllowedMIMEType  = "application/pdf"
)

// ValidateUpload checks the uploaded resume and job description before any
// extraction work happens. Checks run in a fixed order and the first failure
// wins. The file content is never read here; the declared Content-Type is
// trusted as provided by the upload.
func ValidateUpload(file *multipart.FileHeader, jobDesc string) error {
	if file == nil {
		return apperrors.MissingFile()
	}

	if utf8.RuneCountInString(strings.TrimSpace(jobDesc)) < MinJobDescLen {
		return apperrors.DescriptionTooShort()
	}

	if file.Header.Get("Content-Type") != AllowedMIMEType {
		return apperrors.UnsupportedFileType()
	}

	if file.Size > MaxFileSize {
		return apperrors.FileTooLarge()
	}

	return nil
}

// ValidateExtractedText guards against scanned or image-only PDFs: the
// extractor succeeded, but too little text came out to analyze.
func ValidateExtractedText(text string) error {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < MinResumeTextLen {
		return apperrors.InsufficientText()
	}
	return nil
}
