package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ListingModel mirrors the 'listings' table. Tags and images are stored as jsonb.
type ListingModel struct {
	ID        uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ShopID    uuid.UUID                   `gorm:"type:uuid;not null;index:idx_listings_shop_created,priority:1"`
	Name      string                      `gorm:"type:varchar(140);not null"`
	Tags      datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	Images    datatypes.JSONMap           `gorm:"type:jsonb;not null"`
	CreatedAt time.Time                   `gorm:"index:idx_listings_shop_created,priority:2,sort:desc"`

	Shop *ShopModel `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}
