package service

import (
	"context"
	"time"
)

// ShopOpenedEvent announces a newly provisioned shop to downstream consumers
// (search indexing, welcome mail).
type ShopOpenedEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	ShopID     string    `json:"shop_id"`
	OwnerID    string    `json:"owner_id"`
	ShopName   string    `json:"shop_name"`
	Category   string    `json:"category"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishShopOpened publishes a shop lifecycle event after the shop was committed
	PublishShopOpened(ctx context.Context, event *ShopOpenedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
