package middleware

import (
	"context"
	"strings"

	"bazaar/config"
	"bazaar/internal/delivery/api/response"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const contextKeyUser = "auth.user"

// ResolveSessionFunc maps a session token to the user it was issued for.
type ResolveSessionFunc func(ctx context.Context, token string) (*entity.User, error)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Config    *config.Config
}

// AuthMiddleware authenticates requests by session cookie or bearer token.
type AuthMiddleware struct {
	resolve    ResolveSessionFunc
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return NewAuthMiddlewareWithResolver(params.AccountUC.ResolveSession, params.Config.Auth.CookieName)
}

// NewAuthMiddlewareWithResolver builds the middleware around an explicit resolver.
func NewAuthMiddlewareWithResolver(resolve ResolveSessionFunc, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{resolve: resolve, cookieName: cookieName}
}

// Authenticate rejects requests without a valid session.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.sessionToken(c)
		if token == "" {
			return response.FromAppError(c, domainerrors.ErrUnauthorized)
		}

		user, err := m.resolve(c.Request().Context(), token)
		if err != nil {
			if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
				return response.FromAppError(c, appErr)
			}

			return errors.WithStack(err)
		}

		attachUser(c, user)

		return next(c)
	}
}

// Identify attaches the user when a valid session is present and lets every request through.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token := m.sessionToken(c); token != "" {
			if user, err := m.resolve(c.Request().Context(), token); err == nil {
				attachUser(c, user)
			}
		}

		return next(c)
	}
}

// attachUser stores the user for handlers and tags the request context for the use cases.
func attachUser(c echo.Context, user *entity.User) {
	c.Set(contextKeyUser, user)
	req := c.Request()
	c.SetRequest(req.WithContext(deliverycontext.WithUserID(req.Context(), user.ID)))
}

// sessionToken prefers the session cookie over the Authorization header.
func (m *AuthMiddleware) sessionToken(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}

	return ""
}

// GetUser returns the authenticated user set by Authenticate or Identify.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(contextKeyUser).(*entity.User)

	return user, ok && user != nil
}

// GetUserID returns the ID of the authenticated user.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	user, ok := GetUser(c)
	if !ok {
		return uuid.Nil, false
	}

	return user.ID, true
}
