package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims defines the custom claims of a signed session token.
type SessionClaims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

// SessionService issues and validates signed session tokens.
// This abstracts the details of token creation from the use cases.
type SessionService interface {
	// Issue creates a session token for the user and returns its expiry.
	Issue(userID uuid.UUID) (token string, expiresAt time.Time, err error)

	// Validate checks the signature and expiry of a token string.
	Validate(tokenString string) (*SessionClaims, error)

	// TTL returns the configured lifetime of a session.
	TTL() time.Duration
}
