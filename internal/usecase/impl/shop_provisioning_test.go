package impl

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"
	"bazaar/internal/usecase/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type provisioningEnv struct {
	store     *memStore
	geocoder  *stubGeocoder
	publisher *recordingPublisher
	service   usecase.ShopUsecase
}

func newProvisioningEnv(geocoder *stubGeocoder) *provisioningEnv {
	store := newMemStore()
	publisher := &recordingPublisher{}

	return &provisioningEnv{
		store:     store,
		geocoder:  geocoder,
		publisher: publisher,
		service: NewShopService(ShopServiceParams{
			TxManager:   store,
			ShopRepo:    store.shops(),
			ContactRepo: store.contacts(),
			Geocoder:    geocoder,
			Publisher:   publisher,
			QRCode:      stubQRCode{},
			Validator:   validation.New(),
			Logger:      newDiscardLogger(),
		}),
	}
}

func TestOpenShop_PersistsShopWithAddressAndContact(t *testing.T) {
	env := newProvisioningEnv(&stubGeocoder{coords: entity.Coordinates{Latitude: 37.4224, Longitude: -122.0842}})
	owner := env.store.addUser("tribezero1", "owner@tribezero.test")

	shop, err := env.service.OpenShop(context.Background(), owner.ID, validOpenShopInput("TribeZero"))
	require.NoError(t, err)

	data := env.store.snapshot()
	require.Len(t, data.shops, 1)
	require.Len(t, data.addresses, 1)
	require.Len(t, data.contacts, 1)

	stored := data.shops[shop.ID]
	assert.Equal(t, owner.ID, stored.OwnerID)
	assert.Equal(t, entity.DefaultShopImage, stored.ImageFile)
	assert.Equal(t, entity.DefaultShopCover, stored.CoverImage)
	assert.Equal(t, entity.ShopCounters{}, stored.Counters)
	assert.Nil(t, stored.ResponseRate)

	address := data.addresses[shop.ID]
	assert.InDelta(t, 37.4224, address.Coordinates.Latitude, 1e-9)
	assert.InDelta(t, -122.0842, address.Coordinates.Longitude, 1e-9)
	assert.Equal(t, "Tribe Zero Ltd", address.CompanyName)
	assert.Equal(t, "hello@tribezero.test", data.contacts[shop.ID].Email)

	events := env.publisher.published()
	require.Len(t, events, 1)
	assert.Equal(t, shop.ID.String(), events[0].ShopID)
	assert.InDelta(t, 37.4224, events[0].Latitude, 1e-9)
}

func TestOpenShop_UnresolvedAddressPersistsNothing(t *testing.T) {
	env := newProvisioningEnv(unresolvedGeocoder())
	owner := env.store.addUser("tribezero1", "owner@tribezero.test")

	shop, err := env.service.OpenShop(context.Background(), owner.ID, validOpenShopInput("TribeZero"))

	assert.Nil(t, shop)
	assert.True(t, errors.Is(err, domainerrors.ErrGeocodingUnresolved))

	data := env.store.snapshot()
	assert.Empty(t, data.shops)
	assert.Empty(t, data.addresses)
	assert.Empty(t, data.contacts)
	assert.Empty(t, env.publisher.published())
}

func TestOpenShop_SecondShopIsRejected(t *testing.T) {
	env := newProvisioningEnv(&stubGeocoder{coords: entity.Coordinates{Latitude: 1, Longitude: 2}})
	owner := env.store.addUser("tribezero1", "owner@tribezero.test")
	ctx := context.Background()

	first, err := env.service.OpenShop(ctx, owner.ID, validOpenShopInput("FirstShop"))
	require.NoError(t, err)
	before := env.store.snapshot()

	second, err := env.service.OpenShop(ctx, owner.ID, validOpenShopInput("SecondShop"))

	assert.Nil(t, second)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyHasShop))
	assert.Equal(t, before, env.store.snapshot())
	assert.Equal(t, 1, env.geocoder.calls)

	owns, err := env.service.OwnsShop(ctx, owner.ID)
	require.NoError(t, err)
	assert.True(t, owns)

	managed, err := env.service.GetShopManager(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, managed.ID)
	require.NotNil(t, managed.Address)
	require.NotNil(t, managed.Contact)
}

func TestOpenShop_ConcurrentAttemptsOfOneOwnerCreateOneShop(t *testing.T) {
	env := newProvisioningEnv(&stubGeocoder{coords: entity.Coordinates{Latitude: 1, Longitude: 2}})
	owner := env.store.addUser("tribezero1", "owner@tribezero.test")

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := env.service.OpenShop(context.Background(), owner.ID, validOpenShopInput(fmt.Sprintf("ConcShop%d", i)))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domainerrors.ErrAlreadyHasShop):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, rejected)

	data := env.store.snapshot()
	assert.Len(t, data.shops, 1)
	assert.Len(t, data.addresses, 1)
	assert.Len(t, data.contacts, 1)
}

func TestOpenShop_NameTakenIgnoringCase(t *testing.T) {
	env := newProvisioningEnv(&stubGeocoder{coords: entity.Coordinates{Latitude: 1, Longitude: 2}})
	ctx := context.Background()
	alice := env.store.addUser("alice1234", "alice@shop.test")
	bob := env.store.addUser("bob123456", "bob@shop.test")

	_, err := env.service.OpenShop(ctx, alice.ID, validOpenShopInput("Tribe Zero"))
	require.NoError(t, err)

	input := validOpenShopInput("TRIBE ZERO")
	input.Email = "bob@shop.test"
	shop, err := env.service.OpenShop(ctx, bob.ID, input)

	assert.Nil(t, shop)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEntity))

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	_, ok := verr.Field("shop_name")
	assert.True(t, ok)
	assert.Equal(t, 1, env.geocoder.calls)
}

func TestOpenShop_ContactEmailTakenIgnoringCase(t *testing.T) {
	env := newProvisioningEnv(&stubGeocoder{coords: entity.Coordinates{Latitude: 1, Longitude: 2}})
	ctx := context.Background()
	alice := env.store.addUser("alice1234", "alice@shop.test")
	bob := env.store.addUser("bob123456", "bob@shop.test")

	first := validOpenShopInput("AliceShop")
	first.Email = "a@x.com"
	_, err := env.service.OpenShop(ctx, alice.ID, first)
	require.NoError(t, err)

	second := validOpenShopInput("BobsShop")
	second.Email = "A@x.com"
	_, err = env.service.OpenShop(ctx, bob.ID, second)

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	fe, ok := verr.Field("email")
	require.True(t, ok)
	assert.Equal(t, domainerrors.CodeDuplicate, fe.Code)
}

func TestOpenShop_InvalidInputSkipsGeocoding(t *testing.T) {
	env := newProvisioningEnv(&stubGeocoder{})
	owner := env.store.addUser("tribezero1", "owner@tribezero.test")

	input := validOpenShopInput("TribeZero")
	input.City = "X"
	input.Category = "weapons"

	_, err := env.service.OpenShop(context.Background(), owner.ID, input)

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields(), 2)
	assert.Zero(t, env.geocoder.calls)
	assert.Empty(t, env.store.snapshot().shops)
}

func TestGetShopByName_MatchesIgnoringCase(t *testing.T) {
	env := newProvisioningEnv(&stubGeocoder{coords: entity.Coordinates{Latitude: 1, Longitude: 2}})
	ctx := context.Background()
	owner := env.store.addUser("tribezero1", "owner@tribezero.test")

	opened, err := env.service.OpenShop(ctx, owner.ID, validOpenShopInput("TribeZero"))
	require.NoError(t, err)

	for _, name := range []string{"TribeZero", "tribezero", "TRIBEZERO"} {
		shop, err := env.service.GetShopByName(ctx, name)
		require.NoError(t, err, name)
		assert.Equal(t, opened.ID, shop.ID)
		assert.Equal(t, "TribeZero", shop.Name)
	}

	_, err = env.service.GetShopByName(ctx, "TribeZer")
	assert.True(t, errors.Is(err, domainerrors.ErrShopNotFound))
}
