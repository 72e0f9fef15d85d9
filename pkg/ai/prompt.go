package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	mealdomain "wellness-backend/internal/mealplan/domain"
)

// mealPlanPrompt asks the model for a strict-JSON weekly plan so the response
// can be parsed without provider-specific post-processing
func mealPlanPrompt(preferences string) string {
	return fmt.Sprintf(`You are a nutrition coach for a wellness app. Create a Monday-to-Friday meal plan matching the user's preferences.

RULES:
- Respond with JSON ONLY, no prose, no markdown fences
- Keys: weekday names. Values: objects with "breakfast", "lunch", "snack", "dinner"
- Whole-food meals, each named in a short phrase

EXAMPLE:
{"Monday":{"breakfast":"Berry Smoothie Bowl","lunch":"Salmon Salad","snack":"Apple with Almond Butter","dinner":"Grass-fed Beef with Roasted Vegetables"}}

USER PREFERENCES:
%s

JSON:`, preferences)
}

// parseWeekPlan extracts the JSON object from a model response. Models wrap
// JSON in markdown fences or chatter despite instructions, so take the
// outermost braces.
func parseWeekPlan(response string) (mealdomain.WeekPlan, error) {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in AI response")
	}

	var plan mealdomain.WeekPlan
	if err := json.Unmarshal([]byte(response[start:end+1]), &plan); err != nil {
		return nil, fmt.Errorf("failed to parse meal plan JSON: %w", err)
	}
	if len(plan) == 0 {
		return nil, fmt.Errorf("AI returned an empty meal plan")
	}
	return plan, nil
}
