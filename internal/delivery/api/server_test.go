package api

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bazaar/config"
	"bazaar/internal/usecase/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRoutes struct{}

func (stubRoutes) RegisterRoutes(e *echo.Echo) {
	e.GET("/shops", func(c echo.Context) error { return c.String(http.StatusOK, "shops") })
	e.POST("/blog", func(c echo.Context) error { return c.NoContent(http.StatusCreated) })
	e.GET("/boom", func(echo.Context) error { panic("boom") })
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.PublicBaseURL = "https://bazaar.test/"

	return newEcho(cfg, slog.New(slog.DiscardHandler), validation.New(), stubRoutes{})
}

func TestNewEcho_TrailingSlashAndRequestID(t *testing.T) {
	e := newTestEcho(t)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/shops/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "shops", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
}

func TestNewEcho_CORSAllowsPublicOrigin(t *testing.T) {
	e := newTestEcho(t)

	tests := []struct {
		origin string
		want   string
	}{
		{origin: "https://bazaar.test", want: "https://bazaar.test"},
		{origin: "https://evil.test", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/shops", nil)
			req.Header.Set(echo.HeaderOrigin, tt.origin)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		})
	}
}

func TestNewEcho_BodyLimit(t *testing.T) {
	e := newTestEcho(t)
	req := httptest.NewRequest(http.MethodPost, "/blog", strings.NewReader(strings.Repeat("x", 4096)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "PAYLOAD_TOO_LARGE")
}

func TestNewEcho_RecoversPanics(t *testing.T) {
	e := newTestEcho(t)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}

func TestNewEcho_UnknownPath(t *testing.T) {
	e := newTestEcho(t)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}
