package entity

import "github.com/google/uuid"

// Financial holds tax and payout identifiers of a Shop.
// The billing step that fills it in is not part of shop onboarding, so no flow creates it yet.
type Financial struct {
	ID            uuid.UUID
	ShopID        uuid.UUID
	VATID         string
	TaxpayerID    string
	Revenue       int
	PayPalAccount string
	AmountDue     int
}
