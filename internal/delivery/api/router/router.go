// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler   *handler.AccountHandler
	ShopHandler      *handler.ShopHandler
	DirectoryHandler *handler.DirectoryHandler
	ListingHandler   *handler.ListingHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler   *handler.AccountHandler
	shopHandler      *handler.ShopHandler
	directoryHandler *handler.DirectoryHandler
	listingHandler   *handler.ListingHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:   params.AccountHandler,
		shopHandler:      params.ShopHandler,
		directoryHandler: params.DirectoryHandler,
		listingHandler:   params.ListingHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Middleware is attached per route so unknown paths still answer 404.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public pages; a valid session is attached when present.
	identify := r.authMiddleware.Identify
	e.GET("/", handler.Index, identify)
	e.GET("/home", handler.Index, identify)
	e.POST("/register", r.accountHandler.Register, identify)
	e.POST("/login", r.accountHandler.Login)
	e.POST("/logout", r.accountHandler.Logout)

	e.GET("/shops", r.directoryHandler.ListShops)
	e.GET("/shop/:name", r.shopHandler.GetShop)
	e.GET("/shop/:name/qr", r.shopHandler.ShopQRCode)
	e.GET("/shop/:name/listings", r.listingHandler.ListShopListings)
	e.GET("/map", r.directoryHandler.Map)
	e.GET("/blog", r.directoryHandler.ListPosts)

	// Pages that require a signed-in user.
	authenticate := r.authMiddleware.Authenticate
	e.GET("/account", r.accountHandler.GetAccount, authenticate)
	e.PUT("/account", r.accountHandler.UpdateAccount, authenticate)
	e.GET("/shop_manager", r.shopHandler.ShopManager, authenticate)
	e.POST("/open_shop", r.shopHandler.OpenShop, authenticate)
	e.POST("/listings", r.listingHandler.AddListing, authenticate)
	e.POST("/blog", r.directoryHandler.CreatePost, authenticate)
}
