package repository

import (
	"errors"
	"strings"
	"time"

	"wellness-backend/internal/grocery/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// productCacheRepository implements ProductCacheRepository interface
type productCacheRepository struct {
	db *gorm.DB
}

// NewProductCacheRepository creates a new instance of productCacheRepository
func NewProductCacheRepository(db *gorm.DB) ProductCacheRepository {
	return &productCacheRepository{
		db: db,
	}
}

// Get returns the cached search result, skipping expired entries
func (r *productCacheRepository) Get(term, storeID string) (*domain.ProductCacheEntry, error) {
	var entry domain.ProductCacheEntry
	err := r.db.
		Where("search_term = ? AND kroger_store_id = ? AND expires_at > ?", strings.ToLower(term), storeID, time.Now()).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// Put upserts the cached search result (atomic upsert on term + store)
func (r *productCacheRepository) Put(term, storeID string, productData []byte, ttl time.Duration) error {
	entry := &domain.ProductCacheEntry{
		ID:          uuid.New().String(),
		SearchTerm:  strings.ToLower(term),
		StoreID:     storeID,
		ProductData: productData,
		ExpiresAt:   time.Now().Add(ttl),
		CreatedAt:   time.Now(),
	}

	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "search_term"}, {Name: "kroger_store_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"product_data", "expires_at"}),
	}).Create(entry).Error
}
