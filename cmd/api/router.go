package api

import (
	"net/http"
	"time"

	authDelivery "wellness-backend/internal/auth/delivery"
	groceryDelivery "wellness-backend/internal/grocery/delivery"
	groceryUsecase "wellness-backend/internal/grocery/usecase"
	mealplanDelivery "wellness-backend/internal/mealplan/delivery"
	mealplanUsecase "wellness-backend/internal/mealplan/usecase"
	"wellness-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, groceryUc groceryUsecase.GroceryUsecase, mealPlanUc mealplanUsecase.MealPlanUsecase, cfg *config.Config) {
	groceryHandler := groceryDelivery.NewGroceryHandler(groceryUc)
	mealPlanHandler := mealplanDelivery.NewMealPlanHandler(mealPlanUc)

	// OAuth popup endpoints. The callback is hit by Kroger's redirect, so it
	// cannot carry a Supabase token.
	r.GET("/auth/kroger", groceryHandler.StartAuth)
	r.GET("/auth/callback", groceryHandler.AuthCallback)

	api := r.Group("/api")
	api.Use(authDelivery.SupabaseAuthMiddleware(cfg.SupabaseJWTSecret))
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":           "healthy",
				"krogerConfigured": cfg.KrogerClientID != "",
				"timestamp":        time.Now().UTC().Format(time.RFC3339),
			})
		})

		// Store routes
		stores := api.Group("/stores")
		{
			stores.GET("", groceryHandler.GetStores)
			stores.POST("/select", groceryHandler.SelectStore)
			stores.GET("/selected", groceryHandler.GetSelectedStore)
		}

		// Order routes
		orders := api.Group("/orders")
		{
			orders.POST("", groceryHandler.PlaceOrder)
			orders.GET("", groceryHandler.ListOrders)
			orders.GET("/:id", groceryHandler.GetOrder)
		}

		// Catalog search
		api.GET("/products/search", groceryHandler.SearchProducts)

		// Meal plan routes
		mealPlan := api.Group("/meal-plan")
		{
			mealPlan.POST("/generate", mealPlanHandler.Generate)
			mealPlan.POST("/grocery-list", mealPlanHandler.GroceryList)
		}
	}
}
