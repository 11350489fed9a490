package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrShopNotFound is returned when no shop matches a lookup.
var ErrShopNotFound = errors.New("shop not found")

// ShopRepository defines persistence operations for shops.
type ShopRepository interface {
	// Create inserts a shop. A second shop for the same owner, or a name that differs from an
	// existing one only by letter case, fails with a unique-constraint error.
	Create(ctx context.Context, shop *entity.Shop) error

	// FindByOwner returns the owner's shop with its address and contact preloaded.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error)

	// FindAllByName returns every shop whose name equals the given one ignoring case,
	// oldest first, with address and contact preloaded.
	FindAllByName(ctx context.Context, name string) ([]*entity.Shop, error)

	// ExistsByOwner reports whether the user owns a shop.
	ExistsByOwner(ctx context.Context, ownerID uuid.UUID) (bool, error)

	// ExistsByName reports whether a shop name is taken, ignoring case.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// List returns shops ordered by name ascending together with the total count.
	List(ctx context.Context, offset, limit int) ([]*entity.Shop, int64, error)

	// ListMapPins returns every shop that has resolved coordinates.
	ListMapPins(ctx context.Context) ([]*entity.MapPin, error)

	// AdjustActiveListings adds delta to the shop's active listing counter.
	AdjustActiveListings(ctx context.Context, shopID uuid.UUID, delta int) error
}
