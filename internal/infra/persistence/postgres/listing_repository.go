package postgres

import (
	"context"
	"fmt"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// listingRepository implements the repository.ListingRepository interface using GORM.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository creates a new listing repository instance.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

func (repo *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(listingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrShopNotFound.WrapMessage("listing references an unknown shop")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	listing.ID = listingM.ID
	listing.CreatedAt = listingM.CreatedAt

	return nil
}

func (repo *listingRepository) ListByShop(ctx context.Context, shopID uuid.UUID, offset, limit int) ([]*entity.Listing, int64, error) {
	base := repo.db.WithContext(ctx).Model(&model.ListingModel{}).Where("shop_id = ?", shopID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count listings")
	}
	if total == 0 {
		return []*entity.Listing{}, 0, nil
	}

	var listingsM []*model.ListingModel
	err := base.Session(&gorm.Session{}).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&listingsM).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list listings")
	}

	listings := make([]*entity.Listing, 0, len(listingsM))
	for _, listingM := range listingsM {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings, total, nil
}

func toListingDomain(data *model.ListingModel) *entity.Listing {
	if data == nil {
		return nil
	}

	images := make(map[string]string, len(data.Images))
	for name, path := range data.Images {
		images[name] = fmt.Sprint(path)
	}

	tags := []string(data.Tags)
	if tags == nil {
		tags = []string{}
	}

	return &entity.Listing{
		ID:        data.ID,
		ShopID:    data.ShopID,
		Name:      data.Name,
		Tags:      tags,
		Images:    images,
		CreatedAt: data.CreatedAt,
	}
}

func fromListingDomain(data *entity.Listing) *model.ListingModel {
	if data == nil {
		return nil
	}

	images := make(datatypes.JSONMap, len(data.Images))
	for name, path := range data.Images {
		images[name] = path
	}

	tags := data.Tags
	if tags == nil {
		tags = []string{}
	}

	return &model.ListingModel{
		ID:        data.ID,
		ShopID:    data.ShopID,
		Name:      data.Name,
		Tags:      datatypes.JSONSlice[string](tags),
		Images:    images,
		CreatedAt: data.CreatedAt,
	}
}
