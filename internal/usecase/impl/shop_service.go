// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/lifecycle"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"
	"bazaar/internal/usecase/validation"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// shopService implements the ShopUsecase interface.
type shopService struct {
	txManager   repository.TransactionManager
	shopRepo    repository.ShopRepository
	contactRepo repository.ContactRepository
	geocoder    service.Geocoder
	publisher   service.EventPublisher
	qrcode      service.QRCodeService
	validator   *validation.Validator
	logger      *slog.Logger
}

// ShopServiceParams holds dependencies for ShopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ShopRepo    repository.ShopRepository
	ContactRepo repository.ContactRepository
	Geocoder    service.Geocoder
	Publisher   service.EventPublisher
	QRCode      service.QRCodeService
	Validator   *validation.Validator
	Logger      *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	return &shopService{
		txManager:   params.TxManager,
		shopRepo:    params.ShopRepo,
		contactRepo: params.ContactRepo,
		geocoder:    params.Geocoder,
		publisher:   params.Publisher,
		qrcode:      params.QRCode,
		validator:   params.Validator,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// OpenShop runs the onboarding workflow. The geocoding lookup happens before the write
// transaction, so a failed lookup never leaves partial records behind.
func (srv *shopService) OpenShop(ctx context.Context, ownerID uuid.UUID, input *usecase.OpenShopInput) (*entity.Shop, error) {
	normalizeShopInput(input)
	srv.log(ctx).Info("Opening shop", slog.Any("ownerID", ownerID), slog.String("shopName", input.ShopName))

	owns, err := srv.shopRepo.ExistsByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check shop ownership")
	}
	if owns {
		return nil, domainerrors.ErrAlreadyHasShop.WrapMessage("owner already has a shop")
	}

	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}
	if err := srv.validator.Check(ctx,
		validation.Unique("shop_name", input.ShopName, srv.shopRepo.ExistsByName).
			WithMessage("That shop name is taken. Please choose a different one."),
		validation.Unique("email", input.Email, srv.contactRepo.ExistsByEmail).
			WithMessage("That email is taken. Please choose a different one."),
	); err != nil {
		return nil, err
	}

	coords, err := srv.geocoder.Geocode(ctx, input.PostalAddress())
	if err != nil {
		srv.log(ctx).Warn("Shop address could not be geocoded",
			slog.Any("ownerID", ownerID),
			slog.String("address", input.PostalAddress().String()),
			slog.Any("error", err),
		)
		if !errors.Is(err, domainerrors.ErrGeocodingUnresolved) {
			return nil, domainerrors.ErrGeocodingUnresolved.WrapMessage(err.Error())
		}

		return nil, err
	}

	shop := entity.NewShop(ownerID, input.ShopName, entity.ShopCategory(input.Category), input.Description)
	address := &entity.CompanyAddress{
		ID:              uuid.New(),
		ShopID:          shop.ID,
		CompanyName:     input.CompanyName,
		Address:         input.PostalAddress(),
		BuildingNumber:  input.BuildingNumber,
		ApartmentNumber: input.ApartmentNumber,
		Coordinates:     coords,
	}
	contact := &entity.Contact{
		ID:     uuid.New(),
		ShopID: shop.ID,
		Email:  input.Email,
		Phone:  input.Phone,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return provisionShop(ctx, repoFactory, shop, address, contact)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to provision shop", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute shop provisioning transaction")
	}

	shop.Address = address
	shop.Contact = contact
	srv.log(ctx).Info("Shop opened", slog.Any("shopID", shop.ID), slog.Any("ownerID", ownerID))
	srv.publishShopOpened(ctx, shop)

	return shop, nil
}

// provisionShop writes the shop and its dependents. The owner row lock serializes concurrent
// attempts of the same user, so the ownership guard is re-checked under the lock.
func provisionShop(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	shop *entity.Shop,
	address *entity.CompanyAddress,
	contact *entity.Contact,
) error {
	if _, err := repoFactory.NewUserRepository().LockByID(ctx, shop.OwnerID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("shop owner does not exist")
		}

		return errors.Wrap(err, "failed to lock shop owner")
	}

	shopRepo := repoFactory.NewShopRepository()
	owns, err := shopRepo.ExistsByOwner(ctx, shop.OwnerID)
	if err != nil {
		return errors.Wrap(err, "failed to re-check shop ownership")
	}
	if owns {
		return domainerrors.ErrAlreadyHasShop.WrapMessage("owner opened a shop concurrently")
	}

	if err := shopRepo.Create(ctx, shop); err != nil {
		return errors.Wrap(err, "failed to create shop")
	}
	if err := repoFactory.NewCompanyAddressRepository().Create(ctx, address); err != nil {
		return errors.Wrap(err, "failed to create company address")
	}
	if err := repoFactory.NewContactRepository().Create(ctx, contact); err != nil {
		return errors.Wrap(err, "failed to create shop contact")
	}

	return nil
}

func (srv *shopService) publishShopOpened(ctx context.Context, shop *entity.Shop) {
	event := &service.ShopOpenedEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		ShopID:     shop.ID.String(),
		OwnerID:    shop.OwnerID.String(),
		ShopName:   shop.Name,
		Category:   shop.Category.String(),
		OccurredAt: time.Now().UTC(),
	}
	if shop.Address != nil {
		event.Latitude = shop.Address.Coordinates.Latitude
		event.Longitude = shop.Address.Coordinates.Longitude
	}

	// The shop is committed at this point; a lost event must not fail the request.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if err := srv.publisher.PublishShopOpened(publishCtx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish shop opened event", slog.Any("shopID", shop.ID), slog.Any("error", err))
	}
}

// OwnsShop reports whether the user already owns a shop.
func (srv *shopService) OwnsShop(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	owns, err := srv.shopRepo.ExistsByOwner(ctx, ownerID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check shop ownership")
	}

	return owns, nil
}

// GetShopByName looks a shop up by name ignoring case.
func (srv *shopService) GetShopByName(ctx context.Context, name string) (*entity.Shop, error) {
	return findShopByName(ctx, srv.shopRepo, srv.log(ctx), name)
}

// GetShopManager returns the owner's shop with its address and contact.
func (srv *shopService) GetShopManager(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error) {
	shop, err := srv.shopRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound.WrapMessage("you do not have a shop yet")
		}

		return nil, errors.Wrap(err, "failed to find shop by owner")
	}

	return shop, nil
}

// ShopQRCode renders a QR code linking to the public page of the shop.
func (srv *shopService) ShopQRCode(ctx context.Context, name string) ([]byte, error) {
	shop, err := srv.GetShopByName(ctx, name)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateShopQR(shop.Name)
	if err != nil {
		srv.log(ctx).Error("Failed to generate shop QR code", slog.Any("shopID", shop.ID), slog.Any("error", err))

		return nil, domainerrors.ErrQRCodeFailed.WrapMessage(err.Error())
	}

	return png, nil
}

func normalizeShopInput(input *usecase.OpenShopInput) {
	input.ShopName = strings.TrimSpace(input.ShopName)
	input.Category = strings.ToLower(strings.TrimSpace(input.Category))
	input.CompanyName = strings.TrimSpace(input.CompanyName)
	input.StreetLine1 = strings.TrimSpace(input.StreetLine1)
	input.StreetLine2 = strings.TrimSpace(input.StreetLine2)
	input.City = strings.TrimSpace(input.City)
	input.Region = strings.TrimSpace(input.Region)
	input.ZipCode = strings.TrimSpace(input.ZipCode)
	input.CountryCode = strings.ToUpper(strings.TrimSpace(input.CountryCode))
	input.Email = normalizeEmail(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
}
