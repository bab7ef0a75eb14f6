package services

import (
	"context"
	"log"

	"resumeroast/resume-analyzer/internal/apperrors"
	"resumeroast/resume-analyzer/internal/models"
	"resumeroast/resume-analyzer/internal/validation"
)

// AnalyzerService runs the full analysis pipeline for one request:
// extract text, build the prompt, call the LLM, validate the response.
// Steps are strictly sequential; each output feeds the next step.
type AnalyzerService interface {
	AnalyzeResume(ctx context.Context, resume []byte, jobDescription string) (*models.AnalysisResult, error)
}

type analyzerService struct {
	pdfParser     PDFParserService
	llm           Analyzer
	promptBuilder *PromptBuilder
}

func NewAnalyzerService(pdfParser PDFParserService, llm Analyzer) AnalyzerService {
	return &analyzerService{
		pdfParser:     pdfParser,
		llm:           llm,
		promptBuilder: NewPromptBuilder(),
	}
}

// AnalyzeResume implements AnalyzerService. Input validation has already
// happened at the HTTP boundary; jobDescription arrives trimmed.
func (s *analyzerService) AnalyzeResume(ctx context.Context, resume []byte, jobDescription string) (*models.AnalysisResult, error) {
	text, err := s.pdfParser.ExtractText(resume)
	if err != nil {
		return nil, apperrors.ExtractionFailed(err)
	}

	if err := validation.ValidateExtractedText(text); err != nil {
		return nil, err
	}

	prompt := s.promptBuilder.BuildAnalysisPrompt(jobDescription, CleanText(text))
	log.Printf("📝 Analysis prompt length: %d characters", len(prompt))

	response, err := s.llm.Analyze(ctx, prompt)
	if err != nil {
		return nil, apperrors.ClassifyModelError(err)
	}

	log.Printf("✅ Analysis response received: %d characters", len(response))

	return validation.ValidateAnalysisResponse(response)
}
