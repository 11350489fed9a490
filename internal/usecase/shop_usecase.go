package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// OpenShopInput is the onboarding form of a new shop: the shop itself, its company address and
// its public contact.
type OpenShopInput struct {
	ShopName    string `json:"shop_name" validate:"required,min=4,max=20"`
	Category    string `json:"category" validate:"required,shopcategory"`
	Description string `json:"description" validate:"max=500"`

	CompanyName     string `json:"company_name" validate:"required,min=4,max=20"`
	StreetLine1     string `json:"street_line1" validate:"required,min=5,max=500"`
	StreetLine2     string `json:"street_line2" validate:"max=500"`
	BuildingNumber  string `json:"building_number" validate:"max=6"`
	ApartmentNumber string `json:"apartment_number" validate:"max=6"`
	City            string `json:"city" validate:"required,min=2,max=50"`
	Region          string `json:"region" validate:"required,min=2,max=50"`
	ZipCode         string `json:"zip_code" validate:"required,min=3,max=10"`
	CountryCode     string `json:"country_code" validate:"required,countrycode"`

	Email string `json:"email" validate:"required,email,max=120"`
	Phone string `json:"phone" validate:"max=20"`
}

// PostalAddress returns the address part of the form.
func (in *OpenShopInput) PostalAddress() entity.PostalAddress {
	return entity.PostalAddress{
		StreetLine1: in.StreetLine1,
		StreetLine2: in.StreetLine2,
		City:        in.City,
		Region:      in.Region,
		ZipCode:     in.ZipCode,
		CountryCode: in.CountryCode,
	}
}

// ShopUsecase covers shop onboarding and single-shop lookups.
type ShopUsecase interface {
	// OpenShop provisions a shop together with its company address and contact, all or nothing.
	OpenShop(ctx context.Context, ownerID uuid.UUID, input *OpenShopInput) (*entity.Shop, error)

	// OwnsShop reports whether the user already owns a shop.
	OwnsShop(ctx context.Context, ownerID uuid.UUID) (bool, error)

	// GetShopByName looks a shop up by name ignoring case.
	GetShopByName(ctx context.Context, name string) (*entity.Shop, error)

	// GetShopManager returns the owner's own shop for the management page.
	GetShopManager(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error)

	// ShopQRCode renders a PNG QR code that links to the shop page.
	ShopQRCode(ctx context.Context, name string) ([]byte, error)
}
