package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// shopRepository implements the repository.ShopRepository interface using GORM.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository creates a new shop repository instance.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

// Create inserts the shop row only; address and contact have their own repositories.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(shopM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			switch violatedConstraint(err) {
			case model.ShopsOwnerIndex:
				return domainerrors.ErrAlreadyHasShop.WrapMessage("owner already has a shop")
			case model.ShopsLowerNameIndex:
				return domainerrors.NewDuplicateError("shop_name", "That shop name is taken. Please choose a different one.")
			}

			return domainerrors.ErrDuplicateEntity.WrapMessage("shop already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("shop owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	shop.ID = shopM.ID
	shop.CreatedAt = shopM.CreatedAt
	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

func (repo *shopRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel
	err := repo.db.WithContext(ctx).
		Preload("Address").
		Preload("Contact").
		Where("owner_id = ?", ownerID).
		First(&shopM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by owner")
	}

	return toShopDomain(&shopM), nil
}

// FindAllByName matches on lower(name) so the expression index serves the lookup.
func (repo *shopRepository) FindAllByName(ctx context.Context, name string) ([]*entity.Shop, error) {
	var shopsM []*model.ShopModel
	err := repo.db.WithContext(ctx).
		Preload("Address").
		Preload("Contact").
		Where("lower(name) = lower(?)", name).
		Order("created_at ASC").
		Find(&shopsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shops by name")
	}

	return toShopDomains(shopsM), nil
}

func (repo *shopRepository) ExistsByOwner(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ShopModel{}).Where("owner_id = ?", ownerID).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check shop owner")
	}

	return count > 0, nil
}

func (repo *shopRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ShopModel{}).Where("lower(name) = lower(?)", name).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check shop name")
	}

	return count > 0, nil
}

// List returns one page of shops ordered by name, with the id as a tie breaker.
func (repo *shopRepository) List(ctx context.Context, offset, limit int) ([]*entity.Shop, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.ShopModel{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count shops")
	}
	if total == 0 {
		return []*entity.Shop{}, 0, nil
	}

	var shopsM []*model.ShopModel
	err := repo.db.WithContext(ctx).
		Order("name ASC").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&shopsM).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list shops")
	}

	return toShopDomains(shopsM), total, nil
}

type mapPinRow struct {
	ShopID      uuid.UUID
	Name        string
	Category    string
	Description string
	Latitude    float64
	Longitude   float64
}

// ListMapPins joins shops with their addresses; a shop without an address has no pin.
func (repo *shopRepository) ListMapPins(ctx context.Context) ([]*entity.MapPin, error) {
	var rows []mapPinRow
	err := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Select("shops.id AS shop_id, shops.name, shops.category, shops.description, " +
			"company_addresses.latitude, company_addresses.longitude").
		Joins("JOIN company_addresses ON company_addresses.shop_id = shops.id").
		Order("shops.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list map pins")
	}

	pins := make([]*entity.MapPin, 0, len(rows))
	for _, row := range rows {
		pins = append(pins, &entity.MapPin{
			ShopID:      row.ShopID,
			Name:        row.Name,
			Category:    entity.ShopCategory(row.Category),
			Description: row.Description,
			Coordinates: entity.Coordinates{Latitude: row.Latitude, Longitude: row.Longitude},
		})
	}

	return pins, nil
}

// AdjustActiveListings updates the counter in place so concurrent writers do not lose increments.
func (repo *shopRepository) AdjustActiveListings(ctx context.Context, shopID uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("id = ?", shopID).
		UpdateColumn("active_listings", gorm.Expr("GREATEST(active_listings + ?, 0)", delta))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to adjust active listings")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	return &entity.Shop{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		Name:         data.Name,
		Category:     entity.ShopCategory(data.Category),
		Description:  data.Description,
		ImageFile:    data.ImageFile,
		CoverImage:   data.CoverImage,
		ResponseRate: data.ResponseRate,
		Counters: entity.ShopCounters{
			TotalOrders:      data.TotalOrders,
			TotalSales:       data.TotalSales,
			CancelledSales:   data.CancelledSales,
			ActiveListings:   data.ActiveListings,
			InactiveListings: data.InactiveListings,
			ExpiredListings:  data.ExpiredListings,
			TimesFavorited:   data.TimesFavorited,
			TimesViewed:      data.TimesViewed,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		Address:   toCompanyAddressDomain(data.Address),
		Contact:   toContactDomain(data.Contact),
	}
}

func toShopDomains(data []*model.ShopModel) []*entity.Shop {
	shops := make([]*entity.Shop, 0, len(data))
	for _, shopM := range data {
		shops = append(shops, toShopDomain(shopM))
	}

	return shops
}

func fromShopDomain(data *entity.Shop) *model.ShopModel {
	if data == nil {
		return nil
	}

	return &model.ShopModel{
		ID:               data.ID,
		OwnerID:          data.OwnerID,
		Name:             data.Name,
		Category:         data.Category.String(),
		Description:      data.Description,
		ImageFile:        data.ImageFile,
		CoverImage:       data.CoverImage,
		ResponseRate:     data.ResponseRate,
		TotalOrders:      data.Counters.TotalOrders,
		TotalSales:       data.Counters.TotalSales,
		CancelledSales:   data.Counters.CancelledSales,
		ActiveListings:   data.Counters.ActiveListings,
		InactiveListings: data.Counters.InactiveListings,
		ExpiredListings:  data.Counters.ExpiredListings,
		TimesFavorited:   data.Counters.TimesFavorited,
		TimesViewed:      data.Counters.TimesViewed,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
