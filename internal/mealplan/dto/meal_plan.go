package dto

import mealdomain "wellness-backend/internal/mealplan/domain"

// GenerateRequest is the body of POST /api/meal-plan/generate
type GenerateRequest struct {
	UserID      string                 `json:"userId"`
	Preferences map[string]interface{} `json:"preferences"`
}

// GenerateResponse carries the generated meal plan
type GenerateResponse struct {
	Success     bool                   `json:"success"`
	MealPlan    mealdomain.WeekPlan    `json:"mealPlan"`
	Preferences map[string]interface{} `json:"preferences,omitempty"`
	Message     string                 `json:"message"`
}

// GroceryListRequest is the body of POST /api/meal-plan/grocery-list
type GroceryListRequest struct {
	MealPlan mealdomain.WeekPlan `json:"mealPlan" binding:"required"`
}

// GroceryListResponse carries the flattened grocery list
type GroceryListResponse struct {
	Success        bool                     `json:"success"`
	GroceryList    []mealdomain.GroceryItem `json:"groceryList"`
	EstimatedTotal string                   `json:"estimatedTotal"`
}
