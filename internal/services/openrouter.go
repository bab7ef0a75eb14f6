package services

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const openRouterURL = "https://openrouter.ai/api/v1/chat/completions"

type openRouterService struct {
	client *resty.Client
	apiKey string
	model  string
}

// NewOpenRouterService builds the OpenRouter analyzer, an alternative to
// Gemini behind the same Analyzer interface.
func NewOpenRouterService(apiKey string) Analyzer {
	return &openRouterService{
		client: resty.New(),
		apiKey: apiKey,
		model:  "openai/gpt-4o-mini",
	}
}

// Analyze implements Analyzer.
func (s *openRouterService) Analyze(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model":       s.model,
			"temperature": analysisTemperature,
			"response_format": map[string]string{
				"type": "json_object",
			},
			"messages": []map[string]string{
				{"role": "user", "content": prompt},
			},
		}).
		Post(openRouterURL)
	if err != nil {
		return "", fmt.Errorf("openrouter request failed: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("openrouter returned %d: %s", resp.StatusCode(), resp.String())
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return "", fmt.Errorf("no response from LLM")
	}

	return text, nil
}
