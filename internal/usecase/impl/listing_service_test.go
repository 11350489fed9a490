package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"
	"bazaar/internal/usecase/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemListingService(store *memStore) usecase.ListingUsecase {
	return NewListingService(ListingServiceParams{
		TxManager:   store,
		ShopRepo:    store.shops(),
		ListingRepo: store.listings(),
		Validator:   validation.New(),
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})
}

func TestAddListing_DefaultsImagesAndCountsActiveListing(t *testing.T) {
	store := newMemStore()
	ownerID := uuid.New()
	shop := entity.NewShop(ownerID, "TribeZero", entity.ShopCategoryJewelry, "")
	require.NoError(t, store.shops().Create(context.Background(), shop))
	srv := newMemListingService(store)

	listing, err := srv.AddListing(context.Background(), ownerID, &usecase.AddListingInput{Name: " Silver ring ", Tags: []string{"ring"}})
	require.NoError(t, err)

	assert.Equal(t, shop.ID, listing.ShopID)
	assert.Equal(t, "Silver ring", listing.Name)
	assert.Equal(t, entity.DefaultListingImages(), listing.Images)
	assert.Equal(t, 1, store.snapshot().shops[shop.ID].Counters.ActiveListings)
}

func TestAddListing_RequiresShop(t *testing.T) {
	store := newMemStore()
	srv := newMemListingService(store)

	_, err := srv.AddListing(context.Background(), uuid.New(), &usecase.AddListingInput{Name: "Ring"})

	assert.True(t, errors.Is(err, domainerrors.ErrShopNotFound))
	assert.Empty(t, store.snapshot().listings)
}

func TestAddListing_ValidatesName(t *testing.T) {
	srv := newMemListingService(newMemStore())

	_, err := srv.AddListing(context.Background(), uuid.New(), &usecase.AddListingInput{Name: "a listing name that is far too long"})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestListShopListings_NewestFirst(t *testing.T) {
	store := newMemStore()
	ownerID := uuid.New()
	require.NoError(t, store.shops().Create(context.Background(), entity.NewShop(ownerID, "TribeZero", entity.ShopCategoryJewelry, "")))
	srv := newMemListingService(store)
	ctx := context.Background()

	for _, name := range []string{"First", "Second", "Third"} {
		_, err := srv.AddListing(ctx, ownerID, &usecase.AddListingInput{Name: name})
		require.NoError(t, err)
	}

	page, err := srv.ListShopListings(ctx, "tribezero", 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "Third", page.Items[0].Name)
	assert.Equal(t, int64(3), page.Total)

	_, err = srv.ListShopListings(ctx, "unknown", 1)
	assert.True(t, errors.Is(err, domainerrors.ErrShopNotFound))
}
