package models

// AnalysisResult is the structured feedback returned by the LLM and, after
// validation, the JSON body of a successful analyze response.
type AnalysisResult struct {
	Score            int      `json:"score"`
	Summary          string   `json:"summary"`
	MissingKeywords  []string `json:"missing_keywords"`
	FormattingIssues []string `json:"formatting_issues"`
	Strengths        []string `json:"strengths"`
	Recommendations  []string `json:"recommendations"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
