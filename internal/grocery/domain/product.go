package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Product is a catalog item from Kroger's product search, reduced to the
// fields the app uses. Kroger's response shapes drift between versions, so
// everything besides the identifiers is optional.
type Product struct {
	ProductID   string  `json:"productId"`
	UPC         string  `json:"upc"`
	Brand       string  `json:"brand,omitempty"`
	Description string  `json:"description"`
	Size        string  `json:"size,omitempty"`
	Price       float64 `json:"price,omitempty"`
	PromoPrice  float64 `json:"promo_price,omitempty"`
}

// ProductCacheEntry is one cached search result, keyed by lower-cased
// search term and store. Only rows with expires_at in the future are served.
type ProductCacheEntry struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	SearchTerm  string         `json:"search_term" gorm:"index:idx_product_cache_term_store,unique;not null"`
	StoreID     string         `json:"kroger_store_id" gorm:"column:kroger_store_id;index:idx_product_cache_term_store,unique"`
	ProductData datatypes.JSON `json:"product_data"`
	ExpiresAt   time.Time      `json:"expires_at" gorm:"index"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (ProductCacheEntry) TableName() string {
	return "kroger_product_cache"
}

// Cart is the user's current Kroger cart
type Cart struct {
	CartID string     `json:"cartId"`
	Items  []CartItem `json:"items,omitempty"`
}

// CartItem is one line in the Kroger cart
type CartItem struct {
	UPC      string `json:"upc"`
	Quantity int    `json:"quantity"`
}
