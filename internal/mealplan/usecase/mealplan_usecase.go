package usecase

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"strings"

	mealdomain "wellness-backend/internal/mealplan/domain"
	"wellness-backend/pkg/ai"
)

// MealPlanUsecase generates weekly meal plans and converts them into
// grocery lists for ordering
type MealPlanUsecase interface {
	// Generate builds a meal plan from the user's preferences, via the AI
	// provider when one is configured
	Generate(ctx context.Context, preferences map[string]interface{}) (mealdomain.WeekPlan, error)

	// GroceryList flattens a meal plan into grocery items with an estimated total
	GroceryList(plan mealdomain.WeekPlan) ([]mealdomain.GroceryItem, float64)

	// SetAIService injects the AI provider (optional)
	SetAIService(svc ai.MealPlannerService)
}

// mealPlanUsecase implements MealPlanUsecase interface
type mealPlanUsecase struct {
	aiService ai.MealPlannerService
}

// NewMealPlanUsecase creates a new instance of mealPlanUsecase
func NewMealPlanUsecase() MealPlanUsecase {
	return &mealPlanUsecase{}
}

func (u *mealPlanUsecase) SetAIService(svc ai.MealPlannerService) {
	u.aiService = svc
}

func (u *mealPlanUsecase) Generate(ctx context.Context, preferences map[string]interface{}) (mealdomain.WeekPlan, error) {
	if u.aiService == nil {
		return defaultWeekPlan(), nil
	}

	prefs, err := json.Marshal(preferences)
	if err != nil {
		return nil, err
	}

	plan, err := u.aiService.GenerateMealPlan(ctx, string(prefs))
	if err != nil {
		// AI providers are best-effort; serve the built-in plan rather than
		// failing the request
		log.Printf("[WARN] AI meal plan generation failed, using built-in plan: %v", err)
		return defaultWeekPlan(), nil
	}
	return plan, nil
}

// ingredient maps a meal-name keyword to a grocery line and estimated price
type ingredient struct {
	keyword string
	name    string
	price   float64
}

var ingredientCatalog = []ingredient{
	{"salmon", "Wild-caught salmon (1 lb)", 12.99},
	{"beef", "Grass-fed ground beef (1 lb)", 8.99},
	{"chicken", "Free-range chicken breast (2 lb)", 10.99},
	{"turkey", "Ground turkey (1 lb)", 7.49},
	{"lamb", "Lamb chops (1 lb)", 14.99},
	{"cod", "Wild cod fillets (1 lb)", 9.99},
	{"tuna", "Ahi tuna (1 lb)", 11.99},
	{"sardine", "Wild sardines (2 cans)", 5.49},
	{"egg", "Pasture-raised eggs (1 dozen)", 6.49},
	{"spinach", "Organic baby spinach (5 oz)", 3.99},
	{"berr", "Organic mixed berries (12 oz)", 5.99},
	{"avocado", "Hass avocados (6 count)", 4.99},
	{"broccoli", "Broccoli crowns (1 lb)", 2.99},
	{"asparagus", "Asparagus (1 bunch)", 3.49},
	{"cauliflower", "Cauliflower (1 head)", 3.79},
	{"sweet potato", "Sweet potatoes (2 lb)", 3.29},
	{"cucumber", "Cucumbers (3 count)", 2.49},
	{"celery", "Organic celery (1 bunch)", 2.79},
	{"almond butter", "Almond butter (12 oz jar)", 7.99},
	{"yogurt", "Coconut yogurt (16 oz)", 5.29},
	{"smoothie", "Frozen smoothie greens (10 oz)", 4.59},
	{"nuts", "Raw mixed nuts (8 oz)", 8.49},
	{"hummus", "Classic hummus (10 oz)", 3.89},
}

func (u *mealPlanUsecase) GroceryList(plan mealdomain.WeekPlan) ([]mealdomain.GroceryItem, float64) {
	seen := make(map[string]bool)
	items := make([]mealdomain.GroceryItem, 0)
	total := 0.0

	for _, day := range plan {
		meals := strings.ToLower(strings.Join([]string{day.Breakfast, day.Lunch, day.Snack, day.Dinner}, " "))
		for _, ing := range ingredientCatalog {
			if strings.Contains(meals, ing.keyword) && !seen[ing.name] {
				seen[ing.name] = true
				items = append(items, mealdomain.GroceryItem{Name: ing.name, EstimatedPrice: ing.price})
				total += ing.price
			}
		}
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, total
}

// defaultWeekPlan is served when no AI provider is configured or the provider
// is unavailable
func defaultWeekPlan() mealdomain.WeekPlan {
	return mealdomain.WeekPlan{
		"Monday": {
			Breakfast: "Berry Smoothie Bowl",
			Lunch:     "Salmon Salad",
			Snack:     "Apple with Almond Butter",
			Dinner:    "Grass-fed Beef with Roasted Vegetables",
		},
		"Tuesday": {
			Breakfast: "Scrambled Eggs with Spinach",
			Lunch:     "Chicken Avocado Bowl",
			Snack:     "Mixed Berries",
			Dinner:    "Baked Cod with Asparagus",
		},
		"Wednesday": {
			Breakfast: "Coconut Yogurt with Berries",
			Lunch:     "Turkey Lettuce Wraps",
			Snack:     "Cucumber with Hummus",
			Dinner:    "Grilled Chicken with Broccoli",
		},
		"Thursday": {
			Breakfast: "Avocado Toast (Grain-free)",
			Lunch:     "Sardine Salad",
			Snack:     "Handful of Nuts",
			Dinner:    "Lamb Chops with Cauliflower Mash",
		},
		"Friday": {
			Breakfast: "Green Smoothie",
			Lunch:     "Tuna Poke Bowl",
			Snack:     "Celery with Almond Butter",
			Dinner:    "Salmon with Sweet Potato",
		},
	}
}
