package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	LLM    LLMConfig
}

type ServerConfig struct {
	Port           string
	Env            string
	RequestTimeout time.Duration
}

type LLMConfig struct {
	Provider         string
	GeminiAPIKey     string
	OpenRouterAPIKey string
}

const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
)

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "3000"),
			Env:            getEnv("ENV", "development"),
			RequestTimeout: getEnvAsDuration("REQUEST_TIMEOUT", "10s"),
		},
		LLM: LLMConfig{
			Provider:         getEnv("LLM_PROVIDER", ProviderGemini),
			GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
			OpenRouterAPIKey: getEnv("OPENROUTER_API_KEY", ""),
		},
	}
}

// Validate checks the parts of the configuration that must be present at
// process start. A missing API key is a fatal startup condition, never a
// per-request error.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderGemini:
		if c.LLM.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY environment variable is not set")
		}
	case ProviderOpenRouter:
		if c.LLM.OpenRouterAPIKey == "" {
			return fmt.Errorf("OPENROUTER_API_KEY environment variable is not set")
		}
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.LLM.Provider)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
