package entity

import "github.com/google/uuid"

// MapPin is the projection of a geocoded shop used by the seller map.
type MapPin struct {
	ShopID      uuid.UUID
	Name        string
	Category    ShopCategory
	Description string
	Coordinates Coordinates
}
