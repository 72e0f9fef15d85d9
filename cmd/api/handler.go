package api

import (
	"log"

	groceryUsecase "wellness-backend/internal/grocery/usecase"
	mealplanUsecase "wellness-backend/internal/mealplan/usecase"
	"wellness-backend/pkg/ai"
	"wellness-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	groceryUsecase  groceryUsecase.GroceryUsecase
	mealPlanUsecase mealplanUsecase.MealPlanUsecase
	config          *config.Config
}

func NewHandler(groceryUc groceryUsecase.GroceryUsecase, mealPlanUc mealplanUsecase.MealPlanUsecase, cfg *config.Config) *Handler {
	// Initialize the AI service for meal-plan generation. The meal planner
	// works without it (built-in plan), so failure is a warning, not fatal.
	aiService, err := ai.NewMealPlannerService(ai.Config{
		Provider:      ai.ProviderType(cfg.AIProvider),
		GeminiAPIKey:  cfg.GeminiApiKey,
		OllamaBaseURL: cfg.OllamaBaseURL,
		OllamaModel:   cfg.OllamaModel,
	})
	if err != nil {
		log.Printf("Warning: Failed to initialize AI service: %v", err)
	} else {
		log.Printf("AI service initialized with provider: %s", cfg.AIProvider)
		mealPlanUc.SetAIService(aiService)
	}

	return &Handler{
		groceryUsecase:  groceryUc,
		mealPlanUsecase: mealPlanUc,
		config:          cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.groceryUsecase, h.mealPlanUsecase, h.config)

	return r.Run(addr)
}
