package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultListingImages is assigned to listings created without pictures.
func DefaultListingImages() map[string]string {
	return map[string]string{"image1": "default_listing.jpg"}
}

// Listing is a product offered by a Shop.
type Listing struct {
	ID        uuid.UUID
	ShopID    uuid.UUID
	Name      string
	Tags      []string
	Images    map[string]string // image name -> stored path
	CreatedAt time.Time
}
