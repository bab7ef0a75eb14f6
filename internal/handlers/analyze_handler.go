package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"resumeroast/resume-analyzer/internal/apperrors"
	"resumeroast/resume-analyzer/internal/services"
	"resumeroast/resume-analyzer/internal/validation"
)

type AnalyzeHandler struct {
	analyzer services.AnalyzerService
	timeout  time.Duration
}

func NewAnalyzeHandler(analyzer services.AnalyzerService, timeout time.Duration) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: analyzer,
		timeout:  timeout,
	}
}

// HandleAnalyze handles POST /analyze. Multipart fields: "resume" (PDF) and
// "jobDesc" (text). Every failure is converted to one taxonomy kind here or
// below; no raw error text reaches the caller.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		file = nil
	}
	jobDesc := c.FormValue("jobDesc")

	if err := validation.ValidateUpload(file, jobDesc); err != nil {
		return h.writeError(c, err)
	}

	src, err := file.Open()
	if err != nil {
		return h.writeError(c, apperrors.Unclassified(err))
	}
	defer src.Close()

	resume, err := io.ReadAll(src)
	if err != nil {
		return h.writeError(c, apperrors.Unclassified(err))
	}

	// One end-to-end deadline covers extraction and the model call. There is
	// no server-side retry; deadline expiry is reported as a timeout failure.
	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	result, err := h.analyzer.AnalyzeResume(ctx, resume, strings.TrimSpace(jobDesc))
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(result)
}

func (h *AnalyzeHandler) writeError(c *fiber.Ctx, err error) error {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.Unclassified(err)
	}

	if appErr.Err != nil {
		log.Printf("❌ Analysis error (%s): %v", appErr.Kind, appErr.Err)
	}

	return c.Status(appErr.Status).JSON(fiber.Map{
		"error": appErr.Message,
	})
}
