package repository

import (
	"testing"
	"time"

	"wellness-backend/internal/grocery/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestTokenRepositorySaveUpsertsOnUserID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTokenRepository(db)

	mock.ExpectExec(`INSERT INTO "user_kroger_tokens" .+ ON CONFLICT \("user_id"\) DO UPDATE SET .*"access_token"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	token, err := repo.Save("user-1", &domain.TokenData{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresIn:    1800,
	})
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.NotEmpty(t, token.ID)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.WithinDuration(t, time.Now().Add(1800*time.Second), token.ExpiresAt, 5*time.Second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepositoryFindByUserIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTokenRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "user_kroger_tokens" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "access_token"}))

	token, err := repo.FindByUserID("user-1")
	require.NoError(t, err)
	assert.Nil(t, token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepositoryFindByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTokenRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "user_kroger_tokens" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "access_token", "refresh_token"}).
			AddRow("t1", "user-1", "access", "refresh"))

	token, err := repo.FindByUserID("user-1")
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, "access", token.AccessToken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepositoryDeleteByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTokenRepository(db)

	mock.ExpectExec(`DELETE FROM "user_kroger_tokens" WHERE user_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteByUserID("user-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductCacheGetFiltersExpiredAndLowercases(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductCacheRepository(db)

	// The expiry filter lives in the query, so an expired row is never served
	mock.ExpectQuery(`SELECT \* FROM "kroger_product_cache" WHERE search_term = \$1 AND kroger_store_id = \$2 AND expires_at > \$3`).
		WithArgs("salmon", "store-1", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "search_term", "kroger_store_id", "product_data", "expires_at"}))

	entry, err := repo.Get("Salmon", "store-1")
	require.NoError(t, err)
	assert.Nil(t, entry)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductCacheGetReturnsFreshEntry(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductCacheRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "kroger_product_cache" WHERE search_term = \$1 AND kroger_store_id = \$2 AND expires_at > \$3`).
		WithArgs("salmon", "store-1", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "search_term", "kroger_store_id", "product_data", "expires_at"}).
			AddRow("c1", "salmon", "store-1", []byte(`[{"productId":"p1"}]`), time.Now().Add(time.Hour)))

	entry, err := repo.Get("salmon", "store-1")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.JSONEq(t, `[{"productId":"p1"}]`, string(entry.ProductData))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductCachePutUpsertsOnTermAndStore(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductCacheRepository(db)

	mock.ExpectExec(`INSERT INTO "kroger_product_cache" .+ ON CONFLICT \("search_term","kroger_store_id"\) DO UPDATE SET .*"product_data"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Put("Salmon", "store-1", []byte(`[]`), time.Hour))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreRepositorySaveUpsertsOnUserID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStoreRepository(db)

	mock.ExpectExec(`INSERT INTO "user_kroger_stores" .+ ON CONFLICT \("user_id"\) DO UPDATE SET .*"store_id"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(&domain.UserStore{
		UserID:    "user-1",
		StoreID:   "01400376",
		StoreName: "Kroger Downtown",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartSessionRepositoryFindByUserIDOrdersNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartSessionRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "grocery_cart_sessions" WHERE user_id = \$1 ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "status"}).
			AddRow("s2", "user-1", "completed").
			AddRow("s1", "user-1", "completed"))

	sessions, err := repo.FindByUserID("user-1")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "s2", sessions[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
