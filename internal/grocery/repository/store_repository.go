package repository

import (
	"errors"
	"time"

	"wellness-backend/internal/grocery/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// storeRepository implements StoreRepository interface
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository creates a new instance of storeRepository
func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{
		db: db,
	}
}

// Save upserts the user's selected store (atomic upsert on user_id)
func (r *storeRepository) Save(store *domain.UserStore) error {
	if store.ID == "" {
		store.ID = uuid.New().String()
	}
	store.CreatedAt = time.Now()
	store.UpdatedAt = time.Now()

	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"store_id", "store_name", "store_address", "updated_at"}),
	}).Create(store).Error
}

func (r *storeRepository) FindByUserID(userID string) (*domain.UserStore, error) {
	var store domain.UserStore
	err := r.db.Where("user_id = ?", userID).First(&store).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &store, nil
}
