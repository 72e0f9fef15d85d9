package ai

import (
	"context"
	"fmt"
	"log"
	"net"
	"strings"

	mealdomain "wellness-backend/internal/mealplan/domain"
)

// FallbackService routes meal-plan generation across providers:
// Ollama first (local, free), Gemini when Ollama is unreachable.
type FallbackService struct {
	gemini MealPlannerService
	ollama *OllamaService
}

// NewFallbackService creates a new fallback service with both providers
func NewFallbackService(gemini MealPlannerService, ollama *OllamaService) *FallbackService {
	return &FallbackService{
		gemini: gemini,
		ollama: ollama,
	}
}

// isConnectionError checks if the error is a network/connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if _, ok := err.(net.Error); ok {
		return true
	}

	errStr := strings.ToLower(err.Error())
	connectionIndicators := []string{
		"connection refused",
		"no such host",
		"network is unreachable",
		"connection reset",
		"timeout",
		"dial tcp",
		"eof",
	}
	for _, indicator := range connectionIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}
	return false
}

// GenerateMealPlan tries Ollama first, falls back to Gemini on connection error
func (f *FallbackService) GenerateMealPlan(ctx context.Context, preferences string) (mealdomain.WeekPlan, error) {
	if f.ollama != nil {
		log.Println("[AI] Trying Ollama for meal plan generation...")
		plan, err := f.ollama.GenerateMealPlan(ctx, preferences)
		if err == nil {
			return plan, nil
		}
		if !isConnectionError(err) {
			return nil, err
		}
		log.Printf("[AI] Ollama unreachable, falling back to Gemini: %v", err)
	}

	if f.gemini != nil {
		return f.gemini.GenerateMealPlan(ctx, preferences)
	}
	return nil, fmt.Errorf("no AI provider available")
}
