package repository

import (
	"context"

	"bazaar/internal/domain/entity"
)

// PostRepository persists blog posts.
type PostRepository interface {
	// Create inserts a post; DatePosted is set by the storage when zero.
	Create(ctx context.Context, post *entity.Post) error

	// List returns posts newest first, with AuthorName filled, together with the total count.
	List(ctx context.Context, offset, limit int) ([]*entity.Post, int64, error)
}
