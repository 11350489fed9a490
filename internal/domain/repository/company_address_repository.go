package repository

import (
	"context"

	"bazaar/internal/domain/entity"
)

// CompanyAddressRepository persists the geocoded business address of a shop. A shop has at most one.
type CompanyAddressRepository interface {
	Create(ctx context.Context, address *entity.CompanyAddress) error
}
