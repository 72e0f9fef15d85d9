package usecase

import (
	"context"

	"wellness-backend/internal/grocery/domain"
)

// KrogerClient is the slice of the partner API client the grocery flows use
type KrogerClient interface {
	AuthorizeURL(userID string) string
	ExchangeCodeForToken(ctx context.Context, code string) (*domain.TokenData, error)
	GetStores(ctx context.Context, lat, lon float64, radiusMiles int) []domain.Store
	SearchProducts(ctx context.Context, query, storeID string) []domain.Product
	AddToCart(ctx context.Context, userID, productID string, quantity int) error
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
}

// OrderResult summarizes one completed order attempt
type OrderResult struct {
	SessionID      string              `json:"sessionId"`
	CartURL        string              `json:"cartUrl"`
	EstimatedTotal float64             `json:"estimatedTotal"`
	ItemsAdded     []domain.AddedItem  `json:"items_added"`
	ItemsFailed    []domain.FailedItem `json:"items_failed"`
}

// GroceryUsecase drives the Kroger integration: OAuth linking, store
// selection, product search/matching and order placement
type GroceryUsecase interface {
	// AuthURL builds the Kroger OAuth authorize URL for a user
	AuthURL(userID string) string

	// CompleteOAuth exchanges the callback code and stores the user's tokens
	CompleteOAuth(ctx context.Context, code, userID string) error

	// HasToken reports whether the user has linked their Kroger account
	HasToken(userID string) (bool, error)

	// NearbyStores lists grocery stores near a coordinate; fails with
	// kroger.ErrReauthRequired when the user never linked their account
	NearbyStores(ctx context.Context, userID string, lat, lon float64) ([]domain.Store, error)

	// SelectStore upserts the user's pickup/delivery store
	SelectStore(userID, storeID, storeName, storeAddress string) error

	// SelectedStore returns the user's chosen store, or nil
	SelectedStore(userID string) (*domain.UserStore, error)

	// SearchProducts searches the catalog for a free-text term
	SearchProducts(ctx context.Context, term, storeID string) []domain.Product

	// FindBestMatch resolves a grocery-list line to the best catalog
	// candidate, or nil when nothing matches
	FindBestMatch(ctx context.Context, groceryItem, storeID string) *domain.Product

	// PlaceOrder runs the full cart-building workflow for a grocery list,
	// recording per-item outcomes and progress in a cart session
	PlaceOrder(ctx context.Context, userID string, items []string, storeID, mealPlanID string) (*OrderResult, error)

	// GetSession returns one cart session by id, or nil
	GetSession(id string) (*domain.CartSession, error)

	// ListSessions returns the user's cart sessions, newest first
	ListSessions(userID string) ([]*domain.CartSession, error)
}
