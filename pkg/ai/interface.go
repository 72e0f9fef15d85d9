package ai

import (
	"context"

	mealdomain "wellness-backend/internal/mealplan/domain"
)

// MealPlannerService is the interface for AI meal-plan generation.
// Implement this interface to add new AI providers (Gemini, Ollama, OpenAI, etc.)
type MealPlannerService interface {
	GenerateMealPlan(ctx context.Context, preferences string) (mealdomain.WeekPlan, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
