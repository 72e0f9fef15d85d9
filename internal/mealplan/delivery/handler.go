package delivery

import (
	"fmt"
	"net/http"

	mealdto "wellness-backend/internal/mealplan/dto"
	"wellness-backend/internal/mealplan/usecase"

	"github.com/gin-gonic/gin"
)

type MealPlanHandler struct {
	mealPlanUsecase usecase.MealPlanUsecase
}

func NewMealPlanHandler(mealPlanUsecase usecase.MealPlanUsecase) *MealPlanHandler {
	return &MealPlanHandler{
		mealPlanUsecase: mealPlanUsecase,
	}
}

// Generate handles POST /api/meal-plan/generate
func (h *MealPlanHandler) Generate(c *gin.Context) {
	var req mealdto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.mealPlanUsecase.Generate(c.Request.Context(), req.Preferences)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, mealdto.GenerateResponse{
		Success:     true,
		MealPlan:    plan,
		Preferences: req.Preferences,
		Message:     "AI meal plan generated successfully!",
	})
}

// GroceryList handles POST /api/meal-plan/grocery-list
func (h *MealPlanHandler) GroceryList(c *gin.Context) {
	var req mealdto.GroceryListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, total := h.mealPlanUsecase.GroceryList(req.MealPlan)
	c.JSON(http.StatusOK, mealdto.GroceryListResponse{
		Success:        true,
		GroceryList:    items,
		EstimatedTotal: fmt.Sprintf("$%.2f", total),
	})
}
