package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"
	"bazaar/internal/usecase/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// shopServiceFixtures holds all test dependencies for shop service tests.
type shopServiceFixtures struct {
	service     usecase.ShopUsecase
	txManager   *mockRepo.MockTransactionManager
	shopRepo    *mockRepo.MockShopRepository
	contactRepo *mockRepo.MockContactRepository
	geocoder    *mockSvc.MockGeocoder
	publisher   *mockSvc.MockEventPublisher
	qrcode      *mockSvc.MockQRCodeService
}

func createTestShopService(t *testing.T) shopServiceFixtures {
	f := shopServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		shopRepo:    mockRepo.NewMockShopRepository(t),
		contactRepo: mockRepo.NewMockContactRepository(t),
		geocoder:    mockSvc.NewMockGeocoder(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		qrcode:      mockSvc.NewMockQRCodeService(t),
	}
	f.service = NewShopService(ShopServiceParams{
		TxManager:   f.txManager,
		ShopRepo:    f.shopRepo,
		ContactRepo: f.contactRepo,
		Geocoder:    f.geocoder,
		Publisher:   f.publisher,
		QRCode:      f.qrcode,
		Validator:   validation.New(),
		Logger:      newDiscardLogger(),
	})

	return f
}

func TestShopService_OpenShop_AlreadyHasShop(t *testing.T) {
	f := createTestShopService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	f.shopRepo.EXPECT().ExistsByOwner(ctx, ownerID).Return(true, nil)

	shop, err := f.service.OpenShop(ctx, ownerID, validOpenShopInput("tribezero"))

	assert.Nil(t, shop)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyHasShop))
}

func TestShopService_OpenShop_GeocodingFailureSkipsTransaction(t *testing.T) {
	f := createTestShopService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	f.shopRepo.EXPECT().ExistsByOwner(ctx, ownerID).Return(false, nil)
	f.shopRepo.EXPECT().ExistsByName(ctx, "tribezero").Return(false, nil)
	f.contactRepo.EXPECT().ExistsByEmail(ctx, "hello@tribezero.test").Return(false, nil)
	f.geocoder.EXPECT().
		Geocode(ctx, mock.AnythingOfType("entity.PostalAddress")).
		Return(entity.Coordinates{}, errors.New("dial tcp: i/o timeout"))

	shop, err := f.service.OpenShop(ctx, ownerID, validOpenShopInput("tribezero"))

	assert.Nil(t, shop)
	assert.True(t, errors.Is(err, domainerrors.ErrGeocodingUnresolved))
	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestShopService_OpenShop_ContactFailureReturnsError(t *testing.T) {
	f := createTestShopService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	dbErr := errors.New("connection reset")

	f.shopRepo.EXPECT().ExistsByOwner(ctx, ownerID).Return(false, nil)
	f.shopRepo.EXPECT().ExistsByName(ctx, "tribezero").Return(false, nil)
	f.contactRepo.EXPECT().ExistsByEmail(ctx, "hello@tribezero.test").Return(false, nil)
	f.geocoder.EXPECT().
		Geocode(ctx, mock.AnythingOfType("entity.PostalAddress")).
		Return(entity.Coordinates{Latitude: 37.42, Longitude: -122.08}, nil)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txShopRepo := mockRepo.NewMockShopRepository(t)
			txAddressRepo := mockRepo.NewMockCompanyAddressRepository(t)
			txContactRepo := mockRepo.NewMockContactRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)
			mockFactory.EXPECT().NewShopRepository().Return(txShopRepo)
			mockFactory.EXPECT().NewCompanyAddressRepository().Return(txAddressRepo)
			mockFactory.EXPECT().NewContactRepository().Return(txContactRepo)

			txUserRepo.EXPECT().LockByID(ctx, ownerID).Return(&entity.User{ID: ownerID}, nil)
			txShopRepo.EXPECT().ExistsByOwner(ctx, ownerID).Return(false, nil)
			txShopRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Shop")).Return(nil)
			txAddressRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.CompanyAddress")).
				Run(func(_ context.Context, address *entity.CompanyAddress) {
					assert.InDelta(t, 37.42, address.Coordinates.Latitude, 1e-9)
					assert.Equal(t, "US", address.Address.CountryCode)
				}).
				Return(nil)
			txContactRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Contact")).Return(dbErr)

			return fn(mockFactory)
		})

	shop, err := f.service.OpenShop(ctx, ownerID, validOpenShopInput("tribezero"))

	assert.Nil(t, shop)
	assert.True(t, errors.Is(err, dbErr))
}

func TestShopService_OpenShop_PublishFailureIsNotReturned(t *testing.T) {
	f := createTestShopService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	f.shopRepo.EXPECT().ExistsByOwner(ctx, ownerID).Return(false, nil)
	f.shopRepo.EXPECT().ExistsByName(ctx, "tribezero").Return(false, nil)
	f.contactRepo.EXPECT().ExistsByEmail(ctx, "hello@tribezero.test").Return(false, nil)
	f.geocoder.EXPECT().
		Geocode(ctx, mock.AnythingOfType("entity.PostalAddress")).
		Return(entity.Coordinates{Latitude: 1, Longitude: 2}, nil)
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil)
	f.publisher.EXPECT().
		PublishShopOpened(mock.Anything, mock.AnythingOfType("*service.ShopOpenedEvent")).
		Return(errors.New("topic not found"))

	shop, err := f.service.OpenShop(ctx, ownerID, validOpenShopInput("tribezero"))

	require.NoError(t, err)
	assert.Equal(t, "tribezero", shop.Name)
	assert.Equal(t, entity.ShopCategoryJewelry, shop.Category)
	require.NotNil(t, shop.Contact)
	assert.Equal(t, "hello@tribezero.test", shop.Contact.Email)
}

func TestShopService_GetShopByName_MultipleMatchesReturnsFirst(t *testing.T) {
	f := createTestShopService(t)
	ctx := context.Background()
	first := &entity.Shop{ID: uuid.New(), Name: "Tribe"}
	second := &entity.Shop{ID: uuid.New(), Name: "TRIBE"}

	f.shopRepo.EXPECT().FindAllByName(ctx, "tribe").Return([]*entity.Shop{first, second}, nil)

	shop, err := f.service.GetShopByName(ctx, " tribe ")

	require.NoError(t, err)
	assert.Same(t, first, shop)
}

func TestShopService_GetShopByName_NotFound(t *testing.T) {
	f := createTestShopService(t)
	ctx := context.Background()

	f.shopRepo.EXPECT().FindAllByName(ctx, "ghost").Return(nil, nil)

	shop, err := f.service.GetShopByName(ctx, "ghost")

	assert.Nil(t, shop)
	assert.True(t, errors.Is(err, domainerrors.ErrShopNotFound))
}

func TestShopService_GetShopManager_NoShop(t *testing.T) {
	f := createTestShopService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	f.shopRepo.EXPECT().FindByOwner(ctx, ownerID).Return(nil, repository.ErrShopNotFound)

	shop, err := f.service.GetShopManager(ctx, ownerID)

	assert.Nil(t, shop)
	assert.True(t, errors.Is(err, domainerrors.ErrShopNotFound))
}

func TestShopService_ShopQRCode(t *testing.T) {
	f := createTestShopService(t)
	ctx := context.Background()
	shop := &entity.Shop{ID: uuid.New(), Name: "TribeZero"}

	f.shopRepo.EXPECT().FindAllByName(ctx, "tribezero").Return([]*entity.Shop{shop}, nil)
	f.qrcode.EXPECT().GenerateShopQR("TribeZero").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := f.service.ShopQRCode(ctx, "tribezero")

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}

func TestShopService_ShopQRCode_GenerationFailure(t *testing.T) {
	f := createTestShopService(t)
	ctx := context.Background()
	shop := &entity.Shop{ID: uuid.New(), Name: "TribeZero"}

	f.shopRepo.EXPECT().FindAllByName(ctx, "TribeZero").Return([]*entity.Shop{shop}, nil)
	f.qrcode.EXPECT().GenerateShopQR("TribeZero").Return(nil, errors.New("content too long"))

	_, err := f.service.ShopQRCode(ctx, "TribeZero")

	assert.True(t, errors.Is(err, domainerrors.ErrQRCodeFailed))
}
