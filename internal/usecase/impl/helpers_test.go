package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Directory: &config.DirectoryConfig{ShopPageSize: 10, BlogPageSize: 5, ListingPageSize: 12},
		Maps:      &config.MapsConfig{APIKey: "maps-key"},
	}
}

func validOpenShopInput(name string) *usecase.OpenShopInput {
	return &usecase.OpenShopInput{
		ShopName:    name,
		Category:    "Jewelry",
		Description: "Handmade rings",
		CompanyName: "Tribe Zero Ltd",
		StreetLine1: "1600 Amphitheatre Parkway",
		City:        "Mountain View",
		Region:      "CA",
		ZipCode:     "94043",
		CountryCode: "us",
		Email:       "Hello@" + strings.ReplaceAll(name, " ", "") + ".test",
		Phone:       "+1 650 253 0000",
	}
}

// stubGeocoder resolves every address to the same point unless err is set.
type stubGeocoder struct {
	mu     sync.Mutex
	coords entity.Coordinates
	err    error
	calls  int
}

func (g *stubGeocoder) Geocode(_ context.Context, _ entity.PostalAddress) (entity.Coordinates, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.calls++
	if g.err != nil {
		return entity.Coordinates{}, g.err
	}

	return g.coords, nil
}

func unresolvedGeocoder() *stubGeocoder {
	return &stubGeocoder{err: domainerrors.ErrGeocodingUnresolved.WrapMessage("zero results")}
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.ShopOpenedEvent
	err    error
}

func (p *recordingPublisher) PublishShopOpened(_ context.Context, event *service.ShopOpenedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)

	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) published() []*service.ShopOpenedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]*service.ShopOpenedEvent(nil), p.events...)
}

type stubQRCode struct{}

func (stubQRCode) GenerateShopQR(shopName string) ([]byte, error) {
	return []byte("png:" + shopName), nil
}

func (stubQRCode) ShopURL(shopName string) string {
	return "http://bazaar.test/shop/" + shopName
}
