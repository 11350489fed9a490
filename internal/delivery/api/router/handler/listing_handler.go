package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	ListingUC usecase.ListingUsecase
	Logger    *slog.Logger
}

// ListingHandler serves shop listings.
type ListingHandler struct {
	listingUC usecase.ListingUsecase
	logger    *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		listingUC: params.ListingUC,
		logger:    params.Logger,
	}
}

// AddListing adds a listing to the signed-in user's shop.
func (h *ListingHandler) AddListing(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.FromAppError(c, domainerrors.ErrUnauthorized)
	}

	var input usecase.AddListingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}

	listing, err := h.listingUC.AddListing(c.Request().Context(), userID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newListingView(listing))
}

// ListShopListings returns one page of a shop's listings, newest first.
func (h *ListingHandler) ListShopListings(c echo.Context) error {
	page, err := h.listingUC.ListShopListings(c.Request().Context(), shopNameParam(c), ParsePage(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPageView(page, newListingView))
}
