package service

import (
	"context"

	"bazaar/internal/domain/entity"
)

// Geocoder resolves a postal address to a single best-match position.
type Geocoder interface {
	// Geocode returns the coordinates of the first provider match. Every provider failure,
	// including an empty result set or a timeout, is reported as errors.ErrGeocodingUnresolved.
	Geocode(ctx context.Context, address entity.PostalAddress) (entity.Coordinates, error)
}
