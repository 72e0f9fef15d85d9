package domain

// DayPlan is one day's meals
type DayPlan struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Snack     string `json:"snack"`
	Dinner    string `json:"dinner"`
}

// WeekPlan maps a weekday name to that day's meals
type WeekPlan map[string]DayPlan

// GroceryItem is one line of the shopping list derived from a meal plan
type GroceryItem struct {
	Name           string  `json:"name"`
	EstimatedPrice float64 `json:"estimatedPrice,omitempty"`
}
