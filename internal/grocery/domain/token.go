package domain

import "time"

// UserToken holds the Kroger OAuth tokens for one user.
// There is at most one row per user; the row is replaced on refresh and
// deleted when a refresh fails (the user must re-authorize).
type UserToken struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	UserID       string    `json:"user_id" gorm:"uniqueIndex;not null"`
	AccessToken  string    `json:"-" gorm:"not null"` // Never return tokens in JSON
	RefreshToken string    `json:"-"`
	ExpiresAt    time.Time `json:"expires_at"`
	Scope        string    `json:"scope,omitempty"`
	TokenType    string    `json:"token_type" gorm:"default:Bearer"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (UserToken) TableName() string {
	return "user_kroger_tokens"
}

// TokenData is the token response shape returned by Kroger's OAuth endpoint
type TokenData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int    `json:"expires_in"`
	Scope        string `json:"scope,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
}
