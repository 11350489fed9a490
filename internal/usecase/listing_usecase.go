package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// AddListingInput is a new product of the caller's shop.
type AddListingInput struct {
	Name   string            `json:"name" validate:"required,max=30"`
	Tags   []string          `json:"tags" validate:"max=13,dive,required,max=20"`
	Images map[string]string `json:"images" validate:"max=10,dive,imageext"`
}

// ListingUsecase manages shop listings.
type ListingUsecase interface {
	// AddListing creates a listing in the caller's shop.
	AddListing(ctx context.Context, ownerID uuid.UUID, input *AddListingInput) (*entity.Listing, error)

	// ListShopListings returns one page of a shop's listings, newest first.
	ListShopListings(ctx context.Context, shopName string, page int) (*entity.Page[*entity.Listing], error)
}
