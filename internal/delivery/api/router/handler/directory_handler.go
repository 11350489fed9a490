package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/response"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

// DirectoryHandlerParams holds dependencies for DirectoryHandler, injected by Fx.
type DirectoryHandlerParams struct {
	fx.In

	DirectoryUC usecase.DirectoryUsecase
	Logger      *slog.Logger
}

// DirectoryHandler serves the shop directory, the seller map and the blog.
type DirectoryHandler struct {
	directoryUC usecase.DirectoryUsecase
	logger      *slog.Logger
}

// NewDirectoryHandler is the constructor for DirectoryHandler
func NewDirectoryHandler(params DirectoryHandlerParams) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUC: params.DirectoryUC,
		logger:      params.Logger,
	}
}

// ListShops returns one page of the shop directory in name order.
func (h *DirectoryHandler) ListShops(c echo.Context) error {
	page, err := h.directoryUC.ListShops(c.Request().Context(), ParsePage(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPageView(page, newShopView))
}

// MapView carries the shops as GeoJSON points plus the key the browser map needs.
type MapView struct {
	APIKey string                     `json:"api_key"`
	Shops  *geojson.FeatureCollection `json:"shops"`
}

// Map returns every geocoded shop.
func (h *DirectoryHandler) Map(c echo.Context) error {
	output, err := h.directoryUC.MapData(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &MapView{
		APIKey: output.APIKey,
		Shops:  pinsToFeatureCollection(output.Pins),
	})
}

// pinsToFeatureCollection builds GeoJSON points; GeoJSON orders coordinates longitude first.
func pinsToFeatureCollection(pins []*entity.MapPin) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, pin := range pins {
		feature := geojson.NewFeature(orb.Point{pin.Coordinates.Longitude, pin.Coordinates.Latitude})
		feature.ID = pin.ShopID.String()
		feature.Properties["name"] = pin.Name
		feature.Properties["category"] = pin.Category.String()
		feature.Properties["description"] = pin.Description
		feature.Properties["url"] = shopPath(pin.Name)
		fc.Append(feature)
	}

	return fc
}

// ListPosts returns one page of blog posts, newest first.
func (h *DirectoryHandler) ListPosts(c echo.Context) error {
	page, err := h.directoryUC.ListPosts(c.Request().Context(), ParsePage(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPageView(page, newPostView))
}

// CreatePost publishes a blog post by the signed-in user.
func (h *DirectoryHandler) CreatePost(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.FromAppError(c, domainerrors.ErrUnauthorized)
	}

	var input usecase.CreatePostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}

	post, err := h.directoryUC.CreatePost(c.Request().Context(), userID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newPostView(post))
}
