package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_GeminiProviderRequiresKey(t *testing.T) {
	cfg := &Config{LLM: LLMConfig{Provider: ProviderGemini}}
	assert.Error(t, cfg.Validate())

	cfg.LLM.GeminiAPIKey = "key"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_OpenRouterProviderRequiresKey(t *testing.T) {
	cfg := &Config{LLM: LLMConfig{Provider: ProviderOpenRouter}}
	assert.Error(t, cfg.Validate())

	cfg.LLM.OpenRouterAPIKey = "key"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := &Config{LLM: LLMConfig{Provider: "claude", GeminiAPIKey: "key"}}
	assert.Error(t, cfg.Validate())
}
