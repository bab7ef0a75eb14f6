package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type Kind string

const (
	KindMissingFile          Kind = "missing_file"
	KindDescriptionTooShort  Kind = "description_too_short"
	KindUnsupportedFileType  Kind = "unsupported_file_type"
	KindFileTooLarge         Kind = "file_too_large"
	KindInsufficientText     Kind = "insufficient_text"
	KindExtractionFailed     Kind = "extraction_failed"
	KindMalformedResponse    Kind = "malformed_response"
	KindInvalidResponseShape Kind = "invalid_response_shape"
	KindQuotaExceeded        Kind = "quota_exceeded"
	KindUpstreamTimeout      Kind = "upstream_timeout"
	KindUnclassified         Kind = "unclassified"
)

// AppError carries an error kind, the HTTP status it maps to, and the
// user-facing message. The wrapped error never reaches the caller; it is
// only for server-side logs.
type AppError struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func newError(kind Kind, status int, message string, err error) *AppError {
	return &AppError{
		Kind:    kind,
		Status:  status,
		Message: message,
		Err:     err,
	}
}

func MissingFile() *AppError {
	return newError(KindMissingFile, http.StatusBadRequest, "No resume file provided", nil)
}

func DescriptionTooShort() *AppError {
	return newError(KindDescriptionTooShort, http.StatusBadRequest, "Job description must be at least 50 characters", nil)
}

func UnsupportedFileType() *AppError {
	return newError(KindUnsupportedFileType, http.StatusBadRequest, "Only PDF files are supported", nil)
}

func FileTooLarge() *AppError {
	return newError(KindFileTooLarge, http.StatusBadRequest, "File size exceeds 5MB limit", nil)
}

func InsufficientText() *AppError {
	return newError(KindInsufficientText, http.StatusBadRequest,
		"Could not extract sufficient text from PDF. Ensure it's a text-based PDF (not scanned).", nil)
}

func ExtractionFailed(err error) *AppError {
	return newError(KindExtractionFailed, http.StatusInternalServerError, "Failed to analyze resume", err)
}

func MalformedResponse(err error) *AppError {
	return newError(KindMalformedResponse, http.StatusInternalServerError,
		"Failed to parse AI response. Please try again.", err)
}

func InvalidResponseShape() *AppError {
	return newError(KindInvalidResponseShape, http.StatusInternalServerError, "Invalid AI response structure", nil)
}

func QuotaExceeded(err error) *AppError {
	return newError(KindQuotaExceeded, http.StatusInternalServerError,
		"API quota exceeded. Please try again later.", err)
}

func UpstreamTimeout(err error) *AppError {
	return newError(KindUpstreamTimeout, http.StatusInternalServerError,
		"Request timed out. Try with a shorter resume.", err)
}

func Unclassified(err error) *AppError {
	return newError(KindUnclassified, http.StatusInternalServerError, "Failed to analyze resume", err)
}

// ClassifyModelError maps a failed LLM call to one of the model-call kinds.
// Quota and timeout conditions get their own user messages; everything else
// is surfaced generically.
func ClassifyModelError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "quota"):
		return QuotaExceeded(err)
	case errors.Is(err, context.DeadlineExceeded),
		strings.Contains(msg, "timeout"),
		strings.Contains(msg, "deadline exceeded"):
		return UpstreamTimeout(err)
	default:
		return Unclassified(err)
	}
}
