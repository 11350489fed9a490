package handler

import (
	"net/http"

	"bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// Index lists the entry points of the API. Signed-in users also see their own links.
func Index(c echo.Context) error {
	links := map[string]string{
		"shops": "/shops",
		"map":   "/map",
		"blog":  "/blog",
	}

	if user, ok := middleware.GetUser(c); ok {
		links["account"] = "/account"
		links["shop_manager"] = "/shop_manager"
		links["open_shop"] = "/open_shop"
		links["logout"] = "/logout"

		return response.Success(c, http.StatusOK, map[string]any{
			"user":  user.Username,
			"links": links,
		})
	}

	links["register"] = "/register"
	links["login"] = "/login"

	return response.Success(c, http.StatusOK, map[string]any{"links": links})
}
