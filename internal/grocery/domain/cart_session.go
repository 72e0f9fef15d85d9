package domain

import (
	"time"

	"gorm.io/datatypes"
)

// OrderStatus represents the current state of a cart session
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusFailed     OrderStatus = "failed"
)

// CartSession records one order-placement attempt and its outcome.
// It is created in pending, updated after every item, and finalized to
// completed or failed. A completed session is never mutated again.
type CartSession struct {
	ID            string         `json:"id" gorm:"primaryKey"`
	UserID        string         `json:"user_id" gorm:"index;not null"`
	MealPlanID    string         `json:"meal_plan_id,omitempty"`
	GroceryItems  datatypes.JSON `json:"grocery_items"`
	KrogerCartID  string         `json:"kroger_cart_id,omitempty"`
	Status        OrderStatus    `json:"status" gorm:"default:pending"`
	Progress      int            `json:"progress" gorm:"default:0"`
	ItemsAdded    datatypes.JSON `json:"items_added"`
	ItemsFailed   datatypes.JSON `json:"items_failed"`
	ErrorMessage  string         `json:"error_message,omitempty"`
	KrogerCartURL string         `json:"kroger_cart_url,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (CartSession) TableName() string {
	return "grocery_cart_sessions"
}

// AddedItem is one grocery line that was matched and placed in the cart
type AddedItem struct {
	Name        string  `json:"name"`
	ProductID   string  `json:"product_id"`
	UPC         string  `json:"upc"`
	Description string  `json:"description"`
	Price       float64 `json:"price,omitempty"`
}

// FailedItem is one grocery line that could not be placed, with the reason
type FailedItem struct {
	Item  string `json:"item"`
	Error string `json:"error"`
}
