package entity

import "github.com/google/uuid"

// Contact is the public contact channel of a Shop.
type Contact struct {
	ID     uuid.UUID
	ShopID uuid.UUID
	Email  string
	Phone  string
}
