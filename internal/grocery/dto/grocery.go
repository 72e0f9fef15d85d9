package dto

import "wellness-backend/internal/grocery/domain"

// OrderRequest is the body of POST /api/orders
type OrderRequest struct {
	UserID     string   `json:"userId" binding:"required"`
	Items      []string `json:"items" binding:"required,min=1"`
	StoreID    string   `json:"storeId" binding:"required"`
	MealPlanID string   `json:"mealPlanId,omitempty"`
}

// OrderResponse reports the outcome of one order attempt
type OrderResponse struct {
	Success        bool                `json:"success"`
	Message        string              `json:"message"`
	SessionID      string              `json:"sessionId"`
	CartURL        string              `json:"cartUrl"`
	EstimatedTotal float64             `json:"estimatedTotal"`
	ItemsAdded     []domain.AddedItem  `json:"items_added"`
	ItemsFailed    []domain.FailedItem `json:"items_failed"`
}

// SelectStoreRequest is the body of POST /api/stores/select
type SelectStoreRequest struct {
	UserID       string `json:"userId" binding:"required"`
	StoreID      string `json:"storeId" binding:"required"`
	StoreName    string `json:"storeName"`
	StoreAddress string `json:"storeAddress"`
}

// AuthURLResponse carries the Kroger OAuth authorize URL
type AuthURLResponse struct {
	Success bool   `json:"success"`
	AuthURL string `json:"authUrl"`
	Message string `json:"message"`
}

// StoresResponse lists nearby Kroger stores
type StoresResponse struct {
	Success bool           `json:"success"`
	Stores  []domain.Store `json:"stores"`
}

// ProductsResponse lists catalog search results
type ProductsResponse struct {
	Products []domain.Product `json:"products"`
}

// SessionsResponse lists a user's cart sessions
type SessionsResponse struct {
	Sessions []*domain.CartSession `json:"sessions"`
}
