package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bazaar/config"
	apimiddleware "bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/router"
	"bazaar/internal/delivery/api/router/handler"
	"bazaar/internal/delivery/middleware"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	servicemocks "bazaar/internal/mocks/service"
	usecasemocks "bazaar/internal/mocks/usecase"
	"bazaar/internal/usecase/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const (
	testCookie = "bazaar_session"
	ownerToken = "owner-token"
)

type testServer struct {
	echo      *echo.Echo
	owner     *entity.User
	accounts  *usecasemocks.MockAccountUsecase
	shops     *usecasemocks.MockShopUsecase
	directory *usecasemocks.MockDirectoryUsecase
	listings  *usecasemocks.MockListingUsecase
	qrcode    *servicemocks.MockQRCodeService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Auth: &config.AuthConfig{CookieName: testCookie}}

	ts := &testServer{
		echo:      echo.New(),
		owner:     &entity.User{ID: uuid.New(), Username: "shopowner1", Email: "owner@bazaar.test"},
		accounts:  usecasemocks.NewMockAccountUsecase(t),
		shops:     usecasemocks.NewMockShopUsecase(t),
		directory: usecasemocks.NewMockDirectoryUsecase(t),
		listings:  usecasemocks.NewMockListingUsecase(t),
		qrcode:    servicemocks.NewMockQRCodeService(t),
	}

	resolve := func(_ context.Context, token string) (*entity.User, error) {
		if token == ownerToken {
			return ts.owner, nil
		}

		return nil, domainerrors.ErrSessionInvalid
	}

	ts.echo.Validator = validation.New()
	ts.echo.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	ts.echo.Use(middleware.NewRequestIDMiddleware(logger).Process)

	router.NewRouter(router.RouterParams{
		AccountHandler: handler.NewAccountHandler(handler.AccountHandlerParams{
			AccountUC: ts.accounts, Config: cfg, Logger: logger,
		}),
		ShopHandler: handler.NewShopHandler(handler.ShopHandlerParams{
			ShopUC: ts.shops, QRCode: ts.qrcode, Logger: logger,
		}),
		DirectoryHandler: handler.NewDirectoryHandler(handler.DirectoryHandlerParams{
			DirectoryUC: ts.directory, Logger: logger,
		}),
		ListingHandler: handler.NewListingHandler(handler.ListingHandlerParams{
			ListingUC: ts.listings, Logger: logger,
		}),
		AuthMiddleware: apimiddleware.NewAuthMiddlewareWithResolver(resolve, testCookie),
	}).RegisterRoutes(ts.echo)

	return ts
}

func newRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	return req
}

func (ts *testServer) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	return rec
}

// do sends a request; a non-empty token is passed as the session cookie.
func (ts *testServer) do(method, target, body, token string) *httptest.ResponseRecorder {
	req := newRequest(method, target, body)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	}

	return ts.serve(req)
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string                    `json:"code"`
		Message string                    `json:"message"`
		Details []domainerrors.FieldError `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var data T
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))

	return data
}
