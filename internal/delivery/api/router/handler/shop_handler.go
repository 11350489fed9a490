package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC usecase.ShopUsecase
	QRCode service.QRCodeService
	Logger *slog.Logger
}

// ShopHandler serves shop onboarding, the shop manager and public shop pages.
type ShopHandler struct {
	shopUC usecase.ShopUsecase
	qrcode service.QRCodeService
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		shopUC: params.ShopUC,
		qrcode: params.QRCode,
		logger: params.Logger,
	}
}

// OpenShop runs shop onboarding for the signed-in user.
func (h *ShopHandler) OpenShop(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.FromAppError(c, domainerrors.ErrUnauthorized)
	}

	var input usecase.OpenShopInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop input")
	}

	shop, err := h.shopUC.OpenShop(c.Request().Context(), userID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, shopPath(shop.Name), newShopView(shop))
}

// ShopManagerView is the owner's view of their shop.
type ShopManagerView struct {
	Shop     *ShopView `json:"shop"`
	ShareURL string    `json:"share_url"`
	QRCode   string    `json:"qr_code"`
}

// ShopManager shows the signed-in user's shop with its private details.
func (h *ShopHandler) ShopManager(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.FromAppError(c, domainerrors.ErrUnauthorized)
	}

	shop, err := h.shopUC.GetShopManager(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &ShopManagerView{
		Shop:     newShopView(shop),
		ShareURL: h.qrcode.ShopURL(shop.Name),
		QRCode:   shopPath(shop.Name) + "/qr",
	})
}

// GetShop shows the public page of a shop. The name matches regardless of letter case.
func (h *ShopHandler) GetShop(c echo.Context) error {
	shop, err := h.shopUC.GetShopByName(c.Request().Context(), shopNameParam(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view := newShopView(shop)
	// Company address stays private to the owner.
	view.Address = nil

	return response.Success(c, http.StatusOK, view)
}

// ShopQRCode returns a PNG QR code that links to the shop page.
func (h *ShopHandler) ShopQRCode(c echo.Context) error {
	png, err := h.shopUC.ShopQRCode(c.Request().Context(), shopNameParam(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
