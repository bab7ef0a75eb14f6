package validation

import (
	"fmt"

	"github.com/tidwall/gjson"

	"resumeroast/resume-analyzer/internal/apperrors"
	"resumeroast/resume-analyzer/internal/models"
)

var listFields = []string{"missing_keywords", "formatting_issues", "strengths", "recommendations"}

// ValidateAnalysisResponse parses the raw LLM output and checks it against
// the expected result shape before anything downstream trusts it.
//
// The parse is strict: the whole response must be a single JSON document.
// Prose wrapping the JSON ("Sure, here's the analysis: {...}") fails rather
// than being salvaged. Field types are checked one level deep; list element
// types are not, and the score is passed through without clamping.
func ValidateAnalysisResponse(raw string) (*models.AnalysisResult, error) {
	if !gjson.Valid(raw) {
		return nil, apperrors.MalformedResponse(fmt.Errorf("response is not valid JSON"))
	}

	parsed := gjson.Parse(raw)

	score := parsed.Get("score")
	if score.Type != gjson.Number {
		return nil, apperrors.InvalidResponseShape()
	}

	summary := parsed.Get("summary")
	if summary.Type != gjson.String {
		return nil, apperrors.InvalidResponseShape()
	}

	result := &models.AnalysisResult{
		Score:   int(score.Int()),
		Summary: summary.String(),
	}

	for _, field := range listFields {
		list := parsed.Get(field)
		if !list.IsArray() {
			return nil, apperrors.InvalidResponseShape()
		}

		items := list.Array()
		values := make([]string, 0, len(items))
		for _, item := range items {
			values = append(values, item.String())
		}

		switch field {
		case "missing_keywords":
			result.MissingKeywords = values
		case "formatting_issues":
			result.FormattingIssues = values
		case "strengths":
			result.Strengths = values
		case "recommendations":
			result.Recommendations = values
		}
	}

	return result, nil
}
