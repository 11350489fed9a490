package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"
	"bazaar/internal/usecase/validation"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type listingService struct {
	txManager   repository.TransactionManager
	shopRepo    repository.ShopRepository
	listingRepo repository.ListingRepository
	validator   *validation.Validator
	pageSize    int
	logger      *slog.Logger
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ShopRepo    repository.ShopRepository
	ListingRepo repository.ListingRepository
	Validator   *validation.Validator
	Config      *config.Config
	Logger      *slog.Logger
}

// NewListingService is the constructor for listingService.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	pageSize := 12
	if params.Config != nil && params.Config.Directory != nil && params.Config.Directory.ListingPageSize > 0 {
		pageSize = params.Config.Directory.ListingPageSize
	}

	return &listingService{
		txManager:   params.TxManager,
		shopRepo:    params.ShopRepo,
		listingRepo: params.ListingRepo,
		validator:   params.Validator,
		pageSize:    pageSize,
		logger:      params.Logger,
	}
}

func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddListing creates a listing in the caller's shop and bumps its active listing counter
// in the same transaction.
func (srv *listingService) AddListing(ctx context.Context, ownerID uuid.UUID, input *usecase.AddListingInput) (*entity.Listing, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	listing := &entity.Listing{
		ID:        uuid.New(),
		Name:      input.Name,
		Tags:      input.Tags,
		Images:    input.Images,
		CreatedAt: time.Now().UTC(),
	}
	if listing.Tags == nil {
		listing.Tags = []string{}
	}
	if len(listing.Images) == 0 {
		listing.Images = entity.DefaultListingImages()
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shopRepo := repoFactory.NewShopRepository()

		shop, err := shopRepo.FindByOwner(ctx, ownerID)
		if err != nil {
			if errors.Is(err, repository.ErrShopNotFound) {
				return domainerrors.ErrShopNotFound.WrapMessage("open a shop before adding listings")
			}

			return errors.Wrap(err, "failed to find shop by owner")
		}

		listing.ShopID = shop.ID
		if err := repoFactory.NewListingRepository().Create(ctx, listing); err != nil {
			return errors.Wrap(err, "failed to create listing")
		}

		return errors.Wrap(shopRepo.AdjustActiveListings(ctx, shop.ID, 1), "failed to update active listings")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute add listing transaction")
	}

	srv.log(ctx).Info("Listing added", slog.Any("listingID", listing.ID), slog.Any("shopID", listing.ShopID))

	return listing, nil
}

// ListShopListings returns one page of a shop's listings, newest first.
func (srv *listingService) ListShopListings(ctx context.Context, shopName string, page int) (*entity.Page[*entity.Listing], error) {
	shop, err := findShopByName(ctx, srv.shopRepo, srv.log(ctx), shopName)
	if err != nil {
		return nil, err
	}

	page = clampPage(page)
	listings, total, err := srv.listingRepo.ListByShop(ctx, shop.ID, entity.Offset(page, srv.pageSize), srv.pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shop listings")
	}

	return entity.NewPage(listings, page, srv.pageSize, total), nil
}
