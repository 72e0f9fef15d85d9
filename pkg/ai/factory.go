package ai

import "fmt"

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType // "gemini", "ollama" or "auto"

	// Gemini config
	GeminiAPIKey string

	// Ollama config
	OllamaBaseURL string // e.g., "http://localhost:11434"
	OllamaModel   string // e.g., "llama3", "mistral"
}

// NewMealPlannerService creates a MealPlannerService based on the config.
// This is the factory function - switch AI provider by changing cfg.Provider.
func NewMealPlannerService(cfg Config) (MealPlannerService, error) {
	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for Gemini provider")
		}
		return NewGeminiService(cfg.GeminiAPIKey), nil

	case ProviderOllama:
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), nil

	case ProviderAuto, "":
		// Use whatever is configured; with both, prefer Ollama and fall back
		// to Gemini on connection errors
		var gemini MealPlannerService
		if cfg.GeminiAPIKey != "" {
			gemini = NewGeminiService(cfg.GeminiAPIKey)
		}
		var ollama *OllamaService
		if cfg.OllamaBaseURL != "" {
			ollama = NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel)
		}
		if gemini == nil && ollama == nil {
			return nil, fmt.Errorf("no AI provider configured")
		}
		return NewFallbackService(gemini, ollama), nil

	default:
		return nil, fmt.Errorf("unknown AI provider: %s", cfg.Provider)
	}
}
