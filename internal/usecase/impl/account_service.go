package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"
	"bazaar/internal/usecase/validation"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo  repository.UserRepository
	shopRepo  repository.ShopRepository
	hasher    service.PasswordHasher
	sessions  service.SessionService
	validator *validation.Validator
	logger    *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	ShopRepo  repository.ShopRepository
	Hasher    service.PasswordHasher
	Sessions  service.SessionService
	Validator *validation.Validator
	Logger    *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:  params.UserRepo,
		shopRepo:  params.ShopRepo,
		hasher:    params.Hasher,
		sessions:  params.Sessions,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account after the field rules and both uniqueness checks pass.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}
	if err := srv.validator.Check(ctx,
		validation.Unique("username", input.Username, srv.userRepo.ExistsByUsername),
		validation.Unique("email", input.Email, srv.userRepo.ExistsByEmail),
	); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		ImageFile:    entity.DefaultProfileImage,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return user, nil
}

// Login verifies the credentials and issues a session token.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	token, expiresAt, err := srv.sessions.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &usecase.LoginOutput{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// ResolveSession maps a session token to its user.
func (srv *accountService) ResolveSession(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.sessions.Validate(token)
	if err != nil {
		return nil, domainerrors.ErrSessionInvalid.WrapMessage(err.Error())
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrSessionInvalid.WrapMessage("session user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find session user")
	}

	return user, nil
}

// GetAccount returns the user together with whether they already run a shop.
func (srv *accountService) GetAccount(ctx context.Context, userID uuid.UUID) (*usecase.AccountOutput, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	hasShop, err := srv.shopRepo.ExistsByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check shop ownership")
	}

	return &usecase.AccountOutput{User: user, HasShop: hasShop}, nil
}

// UpdateAccount changes the non-empty fields. Keeping the current username or email is never a conflict.
func (srv *accountService) UpdateAccount(ctx context.Context, userID uuid.UUID, input *usecase.UpdateAccountInput) (*entity.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = normalizeEmail(input.Email)
	input.ImageFile = strings.TrimSpace(input.ImageFile)

	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := srv.validator.Check(ctx,
		validation.Unique("username", input.Username, srv.userRepo.ExistsByUsername).Except(user.Username),
		validation.Unique("email", input.Email, srv.userRepo.ExistsByEmail).Except(user.Email),
	); err != nil {
		return nil, err
	}

	if input.Username != "" {
		user.Username = input.Username
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.ImageFile != "" {
		user.ImageFile = input.ImageFile
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Info("Account updated", slog.Any("userID", user.ID))

	return user, nil
}

func (srv *accountService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("account does not exist")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
