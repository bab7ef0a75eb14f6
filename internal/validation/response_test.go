package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeroast/resume-analyzer/internal/apperrors"
	"resumeroast/resume-analyzer/internal/models"
)

const validResponse = `{
	"score": 82,
	"summary": "Strong backend background. Missing some cloud experience.",
	"missing_keywords": ["Kubernetes", "Terraform"],
	"formatting_issues": [],
	"strengths": ["Go expertise", "API design"],
	"recommendations": ["Add cloud certifications"]
}`

func TestValidateAnalysisResponse_ValidInputPassesUnchanged(t *testing.T) {
	result, err := ValidateAnalysisResponse(validResponse)
	require.NoError(t, err)

	assert.Equal(t, &models.AnalysisResult{
		Score:            82,
		Summary:          "Strong backend background. Missing some cloud experience.",
		MissingKeywords:  []string{"Kubernetes", "Terraform"},
		FormattingIssues: []string{},
		Strengths:        []string{"Go expertise", "API design"},
		Recommendations:  []string{"Add cloud certifications"},
	}, result)
}

func TestValidateAnalysisResponse_ProseWrappedJSONIsMalformed(t *testing.T) {
	raw := `Sure, here's the analysis: {"score": 82, "summary": "ok", "missing_keywords": [], "formatting_issues": [], "strengths": [], "recommendations": []}`

	result, err := ValidateAnalysisResponse(raw)
	assert.Nil(t, result)
	requireKind(t, err, apperrors.KindMalformedResponse)
}

func TestValidateAnalysisResponse_TruncatedJSONIsMalformed(t *testing.T) {
	result, err := ValidateAnalysisResponse(`{"score": 82, "summary": "cut off`)
	assert.Nil(t, result)
	requireKind(t, err, apperrors.KindMalformedResponse)
}

func TestValidateAnalysisResponse_MissingFieldIsInvalidShape(t *testing.T) {
	cases := map[string]string{
		"no score":            `{"summary": "ok", "missing_keywords": [], "formatting_issues": [], "strengths": [], "recommendations": []}`,
		"no summary":          `{"score": 82, "missing_keywords": [], "formatting_issues": [], "strengths": [], "recommendations": []}`,
		"no missing_keywords": `{"score": 82, "summary": "ok", "formatting_issues": [], "strengths": [], "recommendations": []}`,
		"no recommendations":  `{"score": 82, "summary": "ok", "missing_keywords": [], "formatting_issues": [], "strengths": []}`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			result, err := ValidateAnalysisResponse(raw)
			assert.Nil(t, result)
			requireKind(t, err, apperrors.KindInvalidResponseShape)
		})
	}
}

func TestValidateAnalysisResponse_MistypedFieldIsInvalidShape(t *testing.T) {
	cases := map[string]string{
		"score as string":  `{"score": "82", "summary": "ok", "missing_keywords": [], "formatting_issues": [], "strengths": [], "recommendations": []}`,
		"summary as array": `{"score": 82, "summary": ["ok"], "missing_keywords": [], "formatting_issues": [], "strengths": [], "recommendations": []}`,
		"list as object":   `{"score": 82, "summary": "ok", "missing_keywords": {}, "formatting_issues": [], "strengths": [], "recommendations": []}`,
		"list as string":   `{"score": 82, "summary": "ok", "missing_keywords": [], "formatting_issues": "none", "strengths": [], "recommendations": []}`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			result, err := ValidateAnalysisResponse(raw)
			assert.Nil(t, result)
			requireKind(t, err, apperrors.KindInvalidResponseShape)
		})
	}
}

func TestValidateAnalysisResponse_ScoreNotClamped(t *testing.T) {
	raw := `{"score": 150, "summary": "ok", "missing_keywords": [], "formatting_issues": [], "strengths": [], "recommendations": []}`

	result, err := ValidateAnalysisResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, 150, result.Score)
}

func TestValidateAnalysisResponse_TopLevelArrayIsInvalidShape(t *testing.T) {
	result, err := ValidateAnalysisResponse(`[1, 2, 3]`)
	assert.Nil(t, result)
	requireKind(t, err, apperrors.KindInvalidResponseShape)
}
