package repository

import (
	"time"

	"wellness-backend/internal/grocery/domain"
)

// TokenRepository defines the interface for Kroger token persistence.
// Tokens are upserted per user so replaying the OAuth callback can never
// create a second row.
type TokenRepository interface {
	// Save upserts the token row for a user from an OAuth token response
	Save(userID string, data *domain.TokenData) (*domain.UserToken, error)

	// FindByUserID returns the stored token, or nil if the user never authorized
	FindByUserID(userID string) (*domain.UserToken, error)

	// DeleteByUserID removes the stored token (forces re-authentication)
	DeleteByUserID(userID string) error
}

// CartSessionRepository defines the interface for cart session persistence
type CartSessionRepository interface {
	Create(session *domain.CartSession) error

	// Update persists the session's current state (progress, items, status)
	Update(session *domain.CartSession) error

	FindByID(id string) (*domain.CartSession, error)

	// FindByUserID returns the user's sessions, newest first
	FindByUserID(userID string) ([]*domain.CartSession, error)
}

// StoreRepository defines the interface for the user's selected store
type StoreRepository interface {
	// Save upserts the user's selected store
	Save(store *domain.UserStore) error

	FindByUserID(userID string) (*domain.UserStore, error)
}

// ProductCacheRepository defines the interface for cached product searches
type ProductCacheRepository interface {
	// Get returns the cached entry for (term, store), or nil when the entry
	// is missing or expired. The term is matched case-insensitively.
	Get(term, storeID string) (*domain.ProductCacheEntry, error)

	// Put upserts the cached search result with the given TTL
	Put(term, storeID string, productData []byte, ttl time.Duration) error
}
