package repository

import (
	"context"

	"bazaar/internal/domain/entity"
)

// ContactRepository persists shop contact channels.
type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error

	// ExistsByEmail reports whether any shop already uses this contact email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
