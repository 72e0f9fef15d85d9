package repository

import (
	"errors"
	"time"

	"wellness-backend/internal/grocery/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// cartSessionRepository implements CartSessionRepository interface
type cartSessionRepository struct {
	db *gorm.DB
}

// NewCartSessionRepository creates a new instance of cartSessionRepository
func NewCartSessionRepository(db *gorm.DB) CartSessionRepository {
	return &cartSessionRepository{
		db: db,
	}
}

func (r *cartSessionRepository) Create(session *domain.CartSession) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	session.CreatedAt = time.Now()
	session.UpdatedAt = time.Now()
	return r.db.Create(session).Error
}

func (r *cartSessionRepository) Update(session *domain.CartSession) error {
	session.UpdatedAt = time.Now()
	return r.db.Save(session).Error
}

func (r *cartSessionRepository) FindByID(id string) (*domain.CartSession, error) {
	var session domain.CartSession
	err := r.db.Where("id = ?", id).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *cartSessionRepository) FindByUserID(userID string) ([]*domain.CartSession, error) {
	var sessions []*domain.CartSession
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
