package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "bazaar/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code    string                    `json:"code"`
		Message string                    `json:"message"`
		Details []domainerrors.FieldError `json:"details"`
	} `json:"error"`
}

func handle(t *testing.T, err error) (*httptest.ResponseRecorder, errorBody) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/open_shop", nil), rec)

	NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError(err, c)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_ValidationErrorCarriesFields(t *testing.T) {
	verr := domainerrors.NewDuplicateError("shop_name", "That shop name is taken.")
	verr.Add("email", domainerrors.CodeInvalid, "Invalid email address.")

	rec, body := handle(t, errors.Wrap(verr, "open shop"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "DUPLICATE_ENTITY", body.Error.Code)
	require.Len(t, body.Error.Details, 2)
	assert.Equal(t, "shop_name", body.Error.Details[0].Field)
	assert.Equal(t, domainerrors.CodeDuplicate, body.Error.Details[0].Code)
}

func TestErrorMiddleware_AppErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "already has shop", err: domainerrors.ErrAlreadyHasShop.WrapMessage("owner has a shop"), wantCode: http.StatusConflict},
		{name: "geocoding unresolved", err: domainerrors.ErrGeocodingUnresolved.WrapMessage("ZERO_RESULTS"), wantCode: http.StatusUnprocessableEntity},
		{name: "shop not found", err: domainerrors.ErrShopNotFound, wantCode: http.StatusNotFound},
		{name: "database", err: domainerrors.NewDatabaseExecuteError(errors.New("conn refused"), "insert"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := handle(t, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Empty(t, body.Error.Details)
		})
	}
}

func TestErrorMiddleware_EchoAndUnknownErrors(t *testing.T) {
	rec, body := handle(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)

	rec, body = handle(t, echo.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)

	rec, body = handle(t, echo.ErrStatusRequestEntityTooLarge)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "PAYLOAD_TOO_LARGE", body.Error.Code)

	rec, body = handle(t, errors.New("pq: relation does not exist"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "relation")
}
