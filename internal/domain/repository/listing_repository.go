package repository

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ListingRepository persists shop listings.
type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error

	// ListByShop returns the shop's listings newest first together with the total count.
	ListByShop(ctx context.Context, shopID uuid.UUID, offset, limit int) ([]*entity.Listing, int64, error)
}
