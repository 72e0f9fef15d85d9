package main

import (
	"log"

	api "wellness-backend/cmd/api"
	grocerydomain "wellness-backend/internal/grocery/domain"
	groceryRepo "wellness-backend/internal/grocery/repository"
	groceryUsecase "wellness-backend/internal/grocery/usecase"
	mealplanUsecase "wellness-backend/internal/mealplan/usecase"
	"wellness-backend/pkg/config"
	"wellness-backend/pkg/database"
	"wellness-backend/pkg/kroger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&grocerydomain.UserToken{}, &grocerydomain.CartSession{}, &grocerydomain.UserStore{}, &grocerydomain.ProductCacheEntry{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	tokenRepo := groceryRepo.NewTokenRepository(db)
	sessionRepo := groceryRepo.NewCartSessionRepository(db)
	storeRepo := groceryRepo.NewStoreRepository(db)
	cacheRepo := groceryRepo.NewProductCacheRepository(db)

	// Initialize the Kroger partner client
	if cfg.KrogerClientID == "" || cfg.KrogerClientSecret == "" {
		log.Printf("[WARN] KROGER_CLIENT_ID/KROGER_CLIENT_SECRET not configured, partner calls will fail")
	}
	krogerClient := kroger.NewClient(cfg, tokenRepo, cacheRepo)

	// Initialize use cases (dependency injection)
	groceryUsecaseInstance := groceryUsecase.NewGroceryUsecase(krogerClient, tokenRepo, sessionRepo, storeRepo)
	mealPlanUsecaseInstance := mealplanUsecase.NewMealPlanUsecase()

	// Initialize HTTP handler
	handler := api.NewHandler(groceryUsecaseInstance, mealPlanUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
