package services

import (
	"fmt"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildAnalysisPrompt composes the instruction sent to the LLM. Pure string
// templating: both inputs are embedded verbatim under delimited headings, and
// the expected JSON schema plus scoring bands are spelled out so the response
// validator has a satisfiable contract.
func (pb *PromptBuilder) BuildAnalysisPrompt(jobDescription, resumeText string) string {
	return fmt.Sprintf(`You are an expert ATS (Applicant Tracking System) and hiring manager with 15 years of experience.
Your task is to evaluate the resume against the job description and provide actionable feedback.

JOB DESCRIPTION:
%s

RESUME TEXT:
%s

Analyze the resume and return a valid JSON object with the following structure:
{
  "score": number (0-100 integer, overall match percentage),
  "summary": string (exactly 2 sentences describing the candidate's fit),
  "missing_keywords": string[] (array of important skills/keywords from the JD that are missing),
  "formatting_issues": string[] (array of specific formatting problems found),
  "strengths": string[] (array of what the candidate does well),
  "recommendations": string[] (array of actionable improvements to increase match score)
}

Scoring guidelines:
- 90-100: Exceptional match, all key requirements met
- 75-89: Strong match, most requirements met with minor gaps
- 60-74: Moderate match, some key requirements missing
- 40-59: Weak match, significant gaps in experience/skills
- 0-39: Poor match, fundamental requirements not met

Be thorough but fair in your assessment. Focus on actionable feedback that helps the candidate improve.`,
		jobDescription, resumeText)
}
