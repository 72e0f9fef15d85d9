package repository

import (
	"errors"
	"time"

	"wellness-backend/internal/grocery/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tokenRepository implements TokenRepository interface
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new instance of tokenRepository
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// Save upserts the token for a user (atomic upsert on user_id)
func (r *tokenRepository) Save(userID string, data *domain.TokenData) (*domain.UserToken, error) {
	tokenType := data.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}

	token := &domain.UserToken{
		ID:           uuid.New().String(),
		UserID:       userID,
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(data.ExpiresIn) * time.Second),
		Scope:        data.Scope,
		TokenType:    tokenType,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	// Atomic upsert: INSERT ... ON CONFLICT (user_id) DO UPDATE
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"access_token", "refresh_token", "expires_at", "scope", "token_type", "updated_at"}),
	}).Create(token).Error
	if err != nil {
		return nil, err
	}
	return token, nil
}

func (r *tokenRepository) FindByUserID(userID string) (*domain.UserToken, error) {
	var token domain.UserToken
	err := r.db.Where("user_id = ?", userID).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

func (r *tokenRepository) DeleteByUserID(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&domain.UserToken{}).Error
}
