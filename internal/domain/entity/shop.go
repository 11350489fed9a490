package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultShopImage is the avatar given to every new shop.
	DefaultShopImage = "default_shop.jpg"
	// DefaultShopCover is the banner given to every new shop.
	DefaultShopCover = "default_cover.jpg"
)

// Shop is a marketplace storefront owned by exactly one User.
type Shop struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         string // Unique regardless of letter case.
	Category     ShopCategory
	Description  string
	ImageFile    string
	CoverImage   string
	ResponseRate *float64
	Counters     ShopCounters
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Address and Contact are only populated by queries that preload them.
	Address *CompanyAddress
	Contact *Contact
}

// ShopCounters are aggregate statistics maintained by the order and listing flows.
// They all start at zero.
type ShopCounters struct {
	TotalOrders      int
	TotalSales       int
	CancelledSales   int
	ActiveListings   int
	InactiveListings int
	ExpiredListings  int
	TimesFavorited   int
	TimesViewed      int
}

// NewShop builds a shop with default images and zeroed counters.
func NewShop(ownerID uuid.UUID, name string, category ShopCategory, description string) *Shop {
	return &Shop{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        name,
		Category:    category,
		Description: description,
		ImageFile:   DefaultShopImage,
		CoverImage:  DefaultShopCover,
	}
}
