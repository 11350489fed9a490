package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bazaar/config"
	"bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// AccountHandler serves registration, login and account pages.
type AccountHandler struct {
	accountUC    usecase.AccountUsecase
	cookieName   string
	secureCookie bool
	logger       *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC:    params.AccountUC,
		cookieName:   params.Config.Auth.CookieName,
		secureCookie: params.Config.Auth.SecureCookie,
		logger:       params.Logger,
	}
}

// Register creates an account.
func (h *AccountHandler) Register(c echo.Context) error {
	if _, ok := middleware.GetUser(c); ok {
		return response.Success(c, http.StatusOK, map[string]string{"redirect": "/"})
	}

	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	user, err := h.accountUC.Register(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newUserView(user))
}

// Login checks credentials and starts a session. The token is set as an HttpOnly cookie
// and also returned for bearer-token clients.
func (h *AccountHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.accountUC.Login(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    output.Token,
		Path:     "/",
		Expires:  output.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, &LoginView{
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
		User:      newUserView(output.User),
	})
}

// Logout clears the session cookie. Sessions are stateless, so bearer tokens stay valid until they expire.
func (h *AccountHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, map[string]string{"redirect": "/"})
}

// GetAccount shows the signed-in user.
func (h *AccountHandler) GetAccount(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.FromAppError(c, domainerrors.ErrUnauthorized)
	}

	output, err := h.accountUC.GetAccount(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &AccountView{
		User:    newUserView(output.User),
		HasShop: output.HasShop,
	})
}

// UpdateAccount changes username, email or picture of the signed-in user.
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.FromAppError(c, domainerrors.ErrUnauthorized)
	}

	var input usecase.UpdateAccountInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}

	user, err := h.accountUC.UpdateAccount(c.Request().Context(), userID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserView(user))
}
