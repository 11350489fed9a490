package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePostInput is a new blog entry.
type CreatePostInput struct {
	Title   string `json:"title" validate:"required,max=100"`
	Content string `json:"content" validate:"required"`
}

// MapOutput is the data behind the seller map.
type MapOutput struct {
	Pins   []*entity.MapPin
	APIKey string
}

// DirectoryUsecase serves the browse pages: shop directory, blog and map.
type DirectoryUsecase interface {
	// ListShops returns one page of shops ordered by name. Pages past the end are empty.
	ListShops(ctx context.Context, page int) (*entity.Page[*entity.Shop], error)

	// ListPosts returns one page of blog posts, newest first.
	ListPosts(ctx context.Context, page int) (*entity.Page[*entity.Post], error)

	CreatePost(ctx context.Context, authorID uuid.UUID, input *CreatePostInput) (*entity.Post, error)

	// MapData returns every geocoded shop and the browser map key.
	MapData(ctx context.Context) (*MapOutput, error)
}
