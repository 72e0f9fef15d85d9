package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"wellness-backend/internal/grocery/domain"
	"wellness-backend/internal/grocery/repository"
	"wellness-backend/pkg/kroger"
)

const krogerCartURL = "https://www.kroger.com/cart"

// groceryUsecase implements GroceryUsecase interface
type groceryUsecase struct {
	client   KrogerClient
	tokens   repository.TokenRepository
	sessions repository.CartSessionRepository
	stores   repository.StoreRepository

	// One lock per user: the Kroger cart is a single per-user resource, so
	// two concurrent orders for the same user must not interleave writes.
	// Entries are never removed; the map grows with the set of users that
	// ordered during this process's lifetime.
	mu         sync.Mutex
	orderLocks map[string]*sync.Mutex
}

// NewGroceryUsecase creates a new instance of groceryUsecase
func NewGroceryUsecase(client KrogerClient, tokens repository.TokenRepository, sessions repository.CartSessionRepository, stores repository.StoreRepository) GroceryUsecase {
	return &groceryUsecase{
		client:     client,
		tokens:     tokens,
		sessions:   sessions,
		stores:     stores,
		orderLocks: make(map[string]*sync.Mutex),
	}
}

func (u *groceryUsecase) AuthURL(userID string) string {
	return u.client.AuthorizeURL(userID)
}

func (u *groceryUsecase) CompleteOAuth(ctx context.Context, code, userID string) error {
	data, err := u.client.ExchangeCodeForToken(ctx, code)
	if err != nil {
		return err
	}
	if _, err := u.tokens.Save(userID, data); err != nil {
		return fmt.Errorf("failed to save kroger token: %w", err)
	}
	return nil
}

func (u *groceryUsecase) HasToken(userID string) (bool, error) {
	token, err := u.tokens.FindByUserID(userID)
	if err != nil {
		return false, err
	}
	return token != nil, nil
}

func (u *groceryUsecase) NearbyStores(ctx context.Context, userID string, lat, lon float64) ([]domain.Store, error) {
	linked, err := u.HasToken(userID)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, kroger.ErrReauthRequired
	}
	return u.client.GetStores(ctx, lat, lon, 0), nil
}

func (u *groceryUsecase) SelectStore(userID, storeID, storeName, storeAddress string) error {
	return u.stores.Save(&domain.UserStore{
		UserID:       userID,
		StoreID:      storeID,
		StoreName:    storeName,
		StoreAddress: storeAddress,
	})
}

func (u *groceryUsecase) SelectedStore(userID string) (*domain.UserStore, error) {
	return u.stores.FindByUserID(userID)
}

func (u *groceryUsecase) SearchProducts(ctx context.Context, term, storeID string) []domain.Product {
	return u.client.SearchProducts(ctx, term, storeID)
}

// PlaceOrder turns a grocery list into Kroger cart contents. Items are
// processed strictly sequentially; one item's failure is recorded and does
// not abort the rest. Partial success still finalizes as completed, with
// items_failed communicating what was skipped.
func (u *groceryUsecase) PlaceOrder(ctx context.Context, userID string, items []string, storeID, mealPlanID string) (*OrderResult, error) {
	if len(items) == 0 {
		return nil, errors.New("at least one grocery item is required")
	}

	// Cart writes need a linked Kroger account; reject before creating a
	// session so an unauthenticated attempt leaves no trace
	linked, err := u.HasToken(userID)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, kroger.ErrReauthRequired
	}

	lock := u.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	groceryItems, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}

	session := &domain.CartSession{
		UserID:       userID,
		MealPlanID:   mealPlanID,
		GroceryItems: groceryItems,
		Status:       domain.OrderStatusPending,
		Progress:     0,
		ItemsAdded:   []byte("[]"),
		ItemsFailed:  []byte("[]"),
	}
	if err := u.sessions.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create cart session: %w", err)
	}

	session.Status = domain.OrderStatusProcessing
	u.persistSession(session)

	added := make([]domain.AddedItem, 0, len(items))
	failed := make([]domain.FailedItem, 0)
	estimatedTotal := 0.0

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			u.failSession(session, err)
			return nil, err
		}

		product := u.FindBestMatch(ctx, item, storeID)
		if product == nil {
			failed = append(failed, domain.FailedItem{Item: item, Error: "No matching product found"})
		} else if err := u.client.AddToCart(ctx, userID, product.UPC, 1); err != nil {
			// A revoked token cannot recover item by item; abort the order
			if errors.Is(err, kroger.ErrReauthRequired) {
				u.failSession(session, err)
				return nil, err
			}
			// Isolate this item's failure from the remaining items
			failed = append(failed, domain.FailedItem{Item: item, Error: err.Error()})
		} else {
			added = append(added, domain.AddedItem{
				Name:        item,
				ProductID:   product.ProductID,
				UPC:         product.UPC,
				Description: product.Description,
				Price:       product.Price,
			})
			estimatedTotal += product.Price
		}

		// Progress counts processed items so a partially failed order still
		// finishes at 100
		session.Progress = (i + 1) * 100 / len(items)
		session.ItemsAdded, _ = json.Marshal(added)
		session.ItemsFailed, _ = json.Marshal(failed)
		u.persistSession(session)
	}

	// Completed regardless of per-item failures; items_failed tells the caller
	// what was skipped
	if cart, err := u.client.GetCart(ctx, userID); err != nil {
		log.Printf("[WARN] Failed to fetch kroger cart for user %s: %v", userID, err)
	} else {
		session.KrogerCartID = cart.CartID
	}
	session.Status = domain.OrderStatusCompleted
	session.KrogerCartURL = krogerCartURL
	if err := u.sessions.Update(session); err != nil {
		return nil, fmt.Errorf("failed to finalize cart session: %w", err)
	}

	return &OrderResult{
		SessionID:      session.ID,
		CartURL:        krogerCartURL,
		EstimatedTotal: estimatedTotal,
		ItemsAdded:     added,
		ItemsFailed:    failed,
	}, nil
}

func (u *groceryUsecase) GetSession(id string) (*domain.CartSession, error) {
	return u.sessions.FindByID(id)
}

func (u *groceryUsecase) ListSessions(userID string) ([]*domain.CartSession, error) {
	return u.sessions.FindByUserID(userID)
}

func (u *groceryUsecase) userLock(userID string) *sync.Mutex {
	u.mu.Lock()
	defer u.mu.Unlock()
	lock, ok := u.orderLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		u.orderLocks[userID] = lock
	}
	return lock
}

func (u *groceryUsecase) persistSession(session *domain.CartSession) {
	if err := u.sessions.Update(session); err != nil {
		log.Printf("[WARN] Failed to persist cart session %s: %v", session.ID, err)
	}
}

func (u *groceryUsecase) failSession(session *domain.CartSession, cause error) {
	session.Status = domain.OrderStatusFailed
	session.ErrorMessage = cause.Error()
	u.persistSession(session)
}
