package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// companyAddressRepository implements the repository.CompanyAddressRepository interface using GORM.
type companyAddressRepository struct {
	db *gorm.DB
}

// NewCompanyAddressRepository creates a new company address repository instance.
func NewCompanyAddressRepository(db *gorm.DB) repository.CompanyAddressRepository {
	return &companyAddressRepository{db: db}
}

func (repo *companyAddressRepository) Create(ctx context.Context, address *entity.CompanyAddress) error {
	addressM := fromCompanyAddressDomain(address)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(addressM).Error; err != nil {
		return mapCompanyAddressWriteError(err)
	}

	address.ID = addressM.ID

	return nil
}

func mapCompanyAddressWriteError(err error) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrDuplicateEntity.WrapMessage("shop already has an address")
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrShopNotFound.WrapMessage("address references an unknown shop")
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
	case isCheckConstraintViolation(err):
		// Only the coordinate range checks exist on this table.
		return domainerrors.ErrGeocodingUnresolved.WrapMessage("geocoded coordinates out of range")
	}

	return domainerrors.NewDatabaseExecuteError(err, "failed to create company address")
}

func toCompanyAddressDomain(data *model.CompanyAddressModel) *entity.CompanyAddress {
	if data == nil {
		return nil
	}

	return &entity.CompanyAddress{
		ID:          data.ID,
		ShopID:      data.ShopID,
		CompanyName: data.CompanyName,
		Address: entity.PostalAddress{
			StreetLine1: data.StreetLine1,
			StreetLine2: data.StreetLine2,
			City:        data.City,
			Region:      data.Region,
			ZipCode:     data.ZipCode,
			CountryCode: data.CountryCode,
		},
		BuildingNumber:  data.BuildingNumber,
		ApartmentNumber: data.ApartmentNumber,
		Coordinates: entity.Coordinates{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
		},
	}
}

func fromCompanyAddressDomain(data *entity.CompanyAddress) *model.CompanyAddressModel {
	if data == nil {
		return nil
	}

	return &model.CompanyAddressModel{
		ID:              data.ID,
		ShopID:          data.ShopID,
		CompanyName:     data.CompanyName,
		StreetLine1:     data.Address.StreetLine1,
		StreetLine2:     data.Address.StreetLine2,
		BuildingNumber:  data.BuildingNumber,
		ApartmentNumber: data.ApartmentNumber,
		City:            data.Address.City,
		Region:          data.Address.Region,
		ZipCode:         data.Address.ZipCode,
		CountryCode:     data.Address.CountryCode,
		Latitude:        data.Coordinates.Latitude,
		Longitude:       data.Coordinates.Longitude,
	}
}
