// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Username        string `json:"username" validate:"required,min=8,max=20"`
	Email           string `json:"email" validate:"required,email,max=120"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateAccountInput carries the editable account fields. Empty fields keep their current value.
type UpdateAccountInput struct {
	Username  string `json:"username" validate:"omitempty,min=8,max=20"`
	Email     string `json:"email" validate:"omitempty,email,max=120"`
	ImageFile string `json:"picture" validate:"omitempty,imageext"`
}

// --- Output DTOs ---

// LoginOutput returns the signed session after a successful login.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// AccountOutput is the account page view of a user.
type AccountOutput struct {
	User    *entity.User
	HasShop bool
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ResolveSession maps a session token to its user. Invalid or expired tokens, and tokens of
	// deleted users, return errors.ErrSessionInvalid.
	ResolveSession(ctx context.Context, token string) (*entity.User, error)

	GetAccount(ctx context.Context, userID uuid.UUID) (*AccountOutput, error)
	UpdateAccount(ctx context.Context, userID uuid.UUID, input *UpdateAccountInput) (*entity.User, error)
}
