package validation

import (
	"context"
	"strings"
	"testing"

	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validShopInput() *usecase.OpenShopInput {
	return &usecase.OpenShopInput{
		ShopName:    "Tribe Zero",
		Category:    "jewelry",
		CompanyName: "Tribe Zero Ltd",
		StreetLine1: "1600 Amphitheatre Parkway",
		City:        "Mountain View",
		Region:      "CA",
		ZipCode:     "94043",
		CountryCode: "US",
		Email:       "hello@tribezero.test",
	}
}

func requireFieldCode(t *testing.T, err error, field, code string) {
	t.Helper()

	verr, ok := errors.AsType[*domainerrors.ValidationError](err)
	require.True(t, ok, "expected a validation error, got %v", err)

	fe, found := verr.Field(field)
	require.True(t, found, "field %q not reported in %v", field, verr.Fields())
	assert.Equal(t, code, fe.Code)
	assert.NotEmpty(t, fe.Message)
}

func TestStruct_ValidShopInput(t *testing.T) {
	assert.NoError(t, New().Struct(validShopInput()))
}

func TestStruct_ShopInputRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.OpenShopInput)
		field  string
		code   string
	}{
		{"shop name too short", func(in *usecase.OpenShopInput) { in.ShopName = "abc" }, "shop_name", domainerrors.CodeTooShort},
		{"shop name too long", func(in *usecase.OpenShopInput) { in.ShopName = "abcdefghijklmnopqrstu" }, "shop_name", domainerrors.CodeTooLong},
		{"company name missing", func(in *usecase.OpenShopInput) { in.CompanyName = "" }, "company_name", domainerrors.CodeRequired},
		{"street too short", func(in *usecase.OpenShopInput) { in.StreetLine1 = "1 A" }, "street_line1", domainerrors.CodeTooShort},
		{"street too long", func(in *usecase.OpenShopInput) { in.StreetLine1 = strings.Repeat("a", 501) }, "street_line1", domainerrors.CodeTooLong},
		{"second street line too long", func(in *usecase.OpenShopInput) { in.StreetLine2 = strings.Repeat("b", 501) }, "street_line2", domainerrors.CodeTooLong},
		{"city too short", func(in *usecase.OpenShopInput) { in.City = "X" }, "city", domainerrors.CodeTooShort},
		{"zip too short", func(in *usecase.OpenShopInput) { in.ZipCode = "12" }, "zip_code", domainerrors.CodeTooShort},
		{"building number too long", func(in *usecase.OpenShopInput) { in.BuildingNumber = "1234567" }, "building_number", domainerrors.CodeTooLong},
		{"unknown category", func(in *usecase.OpenShopInput) { in.Category = "weapons" }, "category", domainerrors.CodeInvalid},
		{"unknown country", func(in *usecase.OpenShopInput) { in.CountryCode = "XX" }, "country_code", domainerrors.CodeInvalid},
		{"bad contact email", func(in *usecase.OpenShopInput) { in.Email = "not-an-email" }, "email", domainerrors.CodeInvalid},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validShopInput()
			tt.mutate(in)

			err := v.Struct(in)

			requireFieldCode(t, err, tt.field, tt.code)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			assert.False(t, errors.Is(err, domainerrors.ErrDuplicateEntity))
		})
	}
}

func TestStruct_LongStreetLinesWithinLimit(t *testing.T) {
	in := validShopInput()
	in.StreetLine1 = strings.Repeat("a", 500)
	in.StreetLine2 = strings.Repeat("b", 300)

	assert.NoError(t, New().Struct(in))
}

func TestStruct_ReportsEveryFailedField(t *testing.T) {
	err := New().Struct(&usecase.RegisterInput{
		Username:        "short",
		Email:           "bad",
		Password:        "12345678",
		ConfirmPassword: "87654321",
	})

	requireFieldCode(t, err, "username", domainerrors.CodeTooShort)
	requireFieldCode(t, err, "email", domainerrors.CodeInvalid)
	requireFieldCode(t, err, "confirm_password", domainerrors.CodeMismatch)
}

func TestStruct_ImageExtension(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(&usecase.UpdateAccountInput{ImageFile: "me.JPEG"}))
	assert.NoError(t, v.Struct(&usecase.UpdateAccountInput{}))
	requireFieldCode(t, v.Struct(&usecase.UpdateAccountInput{ImageFile: "me.gif"}), "picture", domainerrors.CodeInvalid)

	err := v.Struct(&usecase.AddListingInput{Name: "Ring", Images: map[string]string{"image1": "ring.bmp"}})
	requireFieldCode(t, err, "images[image1]", domainerrors.CodeInvalid)
}

func TestCheck_ReportsDuplicates(t *testing.T) {
	taken := func(_ context.Context, value string) (bool, error) { return value == "tribe zero", nil }

	err := New().Check(context.Background(),
		Unique("shop_name", "tribe zero", taken),
		Unique("email", "free@shop.test", taken),
	)

	requireFieldCode(t, err, "shop_name", domainerrors.CodeDuplicate)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEntity))

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields(), 1)
}

func TestCheck_ExcludesCurrentValue(t *testing.T) {
	calls := 0
	taken := func(_ context.Context, _ string) (bool, error) {
		calls++
		return true, nil
	}

	err := New().Check(context.Background(),
		Unique("username", "tribezero1", taken).Except("tribezero1"),
		Unique("email", "", taken),
	)

	assert.NoError(t, err)
	assert.Zero(t, calls)
}

func TestCheck_PropagatesStorageErrors(t *testing.T) {
	dbErr := errors.New("connection refused")
	failing := func(_ context.Context, _ string) (bool, error) { return false, dbErr }

	err := New().Check(context.Background(), Unique("email", "a@b.test", failing).WithMessage("taken"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, dbErr))
	assert.False(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
