package model

import (
	"time"

	"github.com/google/uuid"
)

// Unique index names of the shops table. The name index is an expression index on lower(name)
// and is created by the migration rather than by struct tags.
const (
	ShopsOwnerIndex     = "idx_shops_owner_id"
	ShopsLowerNameIndex = "idx_shops_lower_name"
)

// ShopModel mirrors the 'shops' table.
type ShopModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_shops_owner_id"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Category     string    `gorm:"type:varchar(32);not null"`
	Description  string    `gorm:"type:text;not null;default:''"`
	ImageFile    string    `gorm:"type:varchar(255);not null"`
	CoverImage   string    `gorm:"type:varchar(255);not null"`
	ResponseRate *float64  `gorm:"type:double precision"`

	TotalOrders      int `gorm:"not null;default:0"`
	TotalSales       int `gorm:"not null;default:0"`
	CancelledSales   int `gorm:"not null;default:0"`
	ActiveListings   int `gorm:"not null;default:0"`
	InactiveListings int `gorm:"not null;default:0"`
	ExpiredListings  int `gorm:"not null;default:0"`
	TimesFavorited   int `gorm:"not null;default:0"`
	TimesViewed      int `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Owner   *UserModel           `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Address *CompanyAddressModel `gorm:"foreignKey:ShopID"`
	Contact *ContactModel        `gorm:"foreignKey:ShopID"`
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}

// Check constraints keeping stored coordinates on the globe.
const (
	CompanyAddressesLatitudeCheck  = "chk_company_addresses_latitude"
	CompanyAddressesLongitudeCheck = "chk_company_addresses_longitude"
)

// CompanyAddressModel mirrors the 'company_addresses' table. One row per shop.
type CompanyAddressModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ShopID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CompanyName     string    `gorm:"type:varchar(120);not null"`
	StreetLine1     string    `gorm:"type:varchar(500);not null"`
	StreetLine2     string    `gorm:"type:varchar(500);not null;default:''"`
	BuildingNumber  string    `gorm:"type:varchar(20);not null"`
	ApartmentNumber string    `gorm:"type:varchar(20);not null;default:''"`
	City            string    `gorm:"type:varchar(80);not null"`
	Region          string    `gorm:"type:varchar(80);not null;default:''"`
	ZipCode         string    `gorm:"type:varchar(20);not null"`
	CountryCode     string    `gorm:"type:char(2);not null"`
	Latitude        float64   `gorm:"type:decimal(10,8);not null;check:chk_company_addresses_latitude,latitude BETWEEN -90 AND 90"`
	Longitude       float64   `gorm:"type:decimal(11,8);not null;check:chk_company_addresses_longitude,longitude BETWEEN -180 AND 180"`
	CreatedAt       time.Time

	Shop *ShopModel `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CompanyAddressModel) TableName() string {
	return "company_addresses"
}

// ContactsEmailIndex is the unique index on contact emails.
const ContactsEmailIndex = "idx_contacts_email"

// ContactModel mirrors the 'contacts' table.
type ContactModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ShopID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Email     string    `gorm:"type:varchar(120);not null;uniqueIndex:idx_contacts_email"`
	Phone     string    `gorm:"type:varchar(32);not null"`
	CreatedAt time.Time

	Shop *ShopModel `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}

// FinancialModel mirrors the 'financials' table. No onboarding step writes it yet.
type FinancialModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ShopID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	VATID         string    `gorm:"column:vat_id;type:varchar(32)"`
	TaxpayerID    string    `gorm:"type:varchar(32)"`
	Revenue       int       `gorm:"not null;default:0"`
	PayPalAccount string    `gorm:"column:paypal_account;type:varchar(120)"`
	AmountDue     int       `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Shop *ShopModel `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (FinancialModel) TableName() string {
	return "financials"
}
