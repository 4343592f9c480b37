package ai

import (
	"context"
	"fmt"

	"flightassist/config"
	"flightassist/models"
)

// Engine is an opaque text-generation service: a system instruction and a
// user prompt in, prose out.
type Engine interface {
	GenerateContent(ctx context.Context, system, prompt string) (string, error)
}

// NewEngine builds the engine named by LLM_PROVIDER. A missing API key is a
// ConfigurationError; callers treat it as a recoverable per-turn condition,
// not a startup failure.
func NewEngine(ctx context.Context) (Engine, error) {
	cfg := config.AppConfig
	switch cfg.LLMProvider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, models.ConfigurationError{Missing: "Gemini API key"}
		}
		return NewGeminiEngine(ctx, cfg.GeminiAPIKey)
	case "openai", "":
		if cfg.OpenAIAPIKey == "" {
			return nil, models.ConfigurationError{Missing: "OpenAI API key"}
		}
		return NewOpenAIEngine(ctx, cfg.OpenAIAPIKey, cfg.OpenAIModel)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}
