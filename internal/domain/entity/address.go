// Package entity contains the core business objects of the project.
package entity

import (
	"strings"

	"github.com/google/uuid"
)

// PostalAddress is a free-form postal address as submitted by a shop owner.
type PostalAddress struct {
	StreetLine1 string
	StreetLine2 string
	City        string
	Region      string
	ZipCode     string
	CountryCode string // ISO-3166 alpha-2, upper case.
}

// String joins the non-empty parts in the order a geocoding provider expects.
func (a PostalAddress) String() string {
	parts := make([]string, 0, 6)
	for _, part := range []string{a.StreetLine1, a.StreetLine2, a.City, a.Region, a.ZipCode, a.CountryCode} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	return strings.Join(parts, ", ")
}

// Coordinates is a resolved geographic position.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// CompanyAddress is the postal address of a Shop together with its resolved coordinates.
// Exactly one exists per Shop and it is created in the same transaction as the Shop.
type CompanyAddress struct {
	ID              uuid.UUID
	ShopID          uuid.UUID
	CompanyName     string
	Address         PostalAddress
	BuildingNumber  string
	ApartmentNumber string
	Coordinates     Coordinates
}
