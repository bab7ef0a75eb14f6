package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Analyzer sends a composed prompt to a hosted LLM and returns the raw
// response text. Implementations must not retry; a single failure is
// surfaced to the caller.
type Analyzer interface {
	Analyze(ctx context.Context, prompt string) (string, error)
}

// analysisTemperature is fixed so output is repeatable-ish across requests.
const analysisTemperature = 0.7

type geminiService struct {
	client    *genai.Client
	modelName string
}

// NewGeminiService builds the Gemini analyzer. Constructed once at process
// start and shared read-only across request handlers.
func NewGeminiService(apiKey string) (Analyzer, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: "gemini-2.5-flash",
	}, nil
}

// Analyze implements Analyzer.
func (g *geminiService) Analyze(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(analysisTemperature)),
		ResponseMIMEType: "application/json",
		MaxOutputTokens:  4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate analysis: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}
