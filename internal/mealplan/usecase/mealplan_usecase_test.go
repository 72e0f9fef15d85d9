package usecase

import (
	"context"
	"errors"
	"sort"
	"testing"

	mealdomain "wellness-backend/internal/mealplan/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPlanner struct {
	plan mealdomain.WeekPlan
	err  error
}

func (s *stubPlanner) GenerateMealPlan(ctx context.Context, preferences string) (mealdomain.WeekPlan, error) {
	return s.plan, s.err
}

func TestGenerateWithoutAIServesBuiltInPlan(t *testing.T) {
	uc := NewMealPlanUsecase()

	plan, err := uc.Generate(context.Background(), map[string]interface{}{"diet": "paleo"})
	require.NoError(t, err)
	assert.Len(t, plan, 5)
	assert.Contains(t, plan, "Monday")
}

func TestGenerateFallsBackWhenAIFails(t *testing.T) {
	uc := NewMealPlanUsecase()
	uc.SetAIService(&stubPlanner{err: errors.New("provider down")})

	plan, err := uc.Generate(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, defaultWeekPlan(), plan)
}

func TestGenerateUsesAIPlan(t *testing.T) {
	custom := mealdomain.WeekPlan{
		"Monday": {Breakfast: "Omelette", Lunch: "Salmon Salad", Snack: "Nuts", Dinner: "Steak"},
	}
	uc := NewMealPlanUsecase()
	uc.SetAIService(&stubPlanner{plan: custom})

	plan, err := uc.Generate(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, custom, plan)
}

func TestGroceryListDeduplicatesAcrossDays(t *testing.T) {
	uc := NewMealPlanUsecase()
	plan := mealdomain.WeekPlan{
		"Monday":  {Lunch: "Salmon Salad", Dinner: "Grilled Salmon"},
		"Tuesday": {Dinner: "Salmon with Sweet Potato"},
	}

	items, total := uc.GroceryList(plan)

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	assert.Contains(t, names, "Wild-caught salmon (1 lb)")
	// Salmon appears three times across the week but is listed once
	count := 0
	for _, name := range names {
		if name == "Wild-caught salmon (1 lb)" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Contains(t, names, "Sweet potatoes (2 lb)")
	assert.InDelta(t, 12.99+3.29, total, 0.001)
}

func TestGroceryListSortedByName(t *testing.T) {
	uc := NewMealPlanUsecase()
	plan := mealdomain.WeekPlan{
		"Monday": {Breakfast: "Berry Smoothie", Lunch: "Chicken Avocado Bowl", Dinner: "Beef with Broccoli"},
	}

	items, total := uc.GroceryList(plan)
	require.NotEmpty(t, items)
	assert.Positive(t, total)
	assert.True(t, sort.SliceIsSorted(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	}))
}

func TestGroceryListEmptyPlan(t *testing.T) {
	uc := NewMealPlanUsecase()

	items, total := uc.GroceryList(mealdomain.WeekPlan{})
	assert.Empty(t, items)
	assert.Zero(t, total)
}
