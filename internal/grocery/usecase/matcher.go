package usecase

import (
	"context"

	"wellness-backend/internal/grocery/domain"
	"wellness-backend/pkg/match"
)

// FindBestMatch resolves a free-text grocery line to the best catalog
// candidate. Search uses the normalized line first, then falls back to the
// individual words (longer than two characters) until one yields results.
// Returns nil when no search attempt produced candidates.
func (u *groceryUsecase) FindBestMatch(ctx context.Context, groceryItem, storeID string) *domain.Product {
	clean := match.Normalize(groceryItem)

	products := u.client.SearchProducts(ctx, clean, storeID)
	if len(products) == 0 {
		for _, word := range match.Words(clean) {
			if len(word) <= 2 {
				continue
			}
			products = u.client.SearchProducts(ctx, word, storeID)
			if len(products) > 0 {
				break
			}
		}
	}

	if len(products) == 0 {
		return nil
	}

	best := products[0]
	bestScore := match.Score(best.Description, clean, groceryItem)
	for _, candidate := range products[1:] {
		// Strict comparison keeps first-seen order on ties
		if score := match.Score(candidate.Description, clean, groceryItem); score > bestScore {
			best = candidate
			bestScore = score
		}
	}
	return &best
}
