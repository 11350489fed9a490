package handler

import (
	"net/url"

	"github.com/labstack/echo/v4"
)

// ParsePage reads the 1-based ?page= parameter. Missing or malformed values mean the first page;
// the use cases clamp values below one.
func ParsePage(c echo.Context) int {
	page := 1
	if err := echo.QueryParamsBinder(c).Int("page", &page).BindError(); err != nil {
		return 1
	}

	return page
}

// shopNameParam returns the :name path parameter. Echo matches on the raw path when the
// request contains escaped slashes, so the parameter is unescaped in that case.
func shopNameParam(c echo.Context) string {
	name := c.Param("name")
	if c.Request().URL.RawPath == "" {
		return name
	}
	if unescaped, err := url.PathUnescape(name); err == nil {
		return unescaped
	}

	return name
}
