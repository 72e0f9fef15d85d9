package domain

import "time"

// UserStore is the user's selected pickup/delivery location (one per user)
type UserStore struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	UserID       string    `json:"user_id" gorm:"uniqueIndex;not null"`
	StoreID      string    `json:"store_id" gorm:"not null"`
	StoreName    string    `json:"store_name"`
	StoreAddress string    `json:"store_address"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (UserStore) TableName() string {
	return "user_kroger_stores"
}

// Store is a nearby Kroger location returned by the locations API
type Store struct {
	LocationID string `json:"locationId"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Phone      string `json:"phone,omitempty"`
}
