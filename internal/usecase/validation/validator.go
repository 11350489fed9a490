// Package validation is the entity validation layer: structural field rules through
// go-playground/validator and uniqueness probes against persisted entities.
package validation

import (
	"context"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/errors"

	"github.com/go-playground/validator/v10"
)

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// Validator checks user input before it reaches persistence.
// It also satisfies echo.Validator so handlers can call c.Validate.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the marketplace-specific tags registered.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Report json field names so messages line up with the submitted form.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	validate.RegisterAlias("countrycode", "iso3166_1_alpha2")
	// Registration only fails for empty tags or nil funcs.
	_ = validate.RegisterValidation("shopcategory", isShopCategory)
	_ = validate.RegisterValidation("imageext", isImageFile)

	return &Validator{validate: validate}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.Struct(i)
}

// Struct runs the tag rules of input and returns a *errors.ValidationError listing every failed field.
func (v *Validator) Struct(input any) error {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return errors.Wrap(err, "failed to validate input")
	}

	verr := domainerrors.NewValidationError()
	for _, fe := range fieldErrs {
		code, message := describe(fe)
		verr.Add(fe.Field(), code, message)
	}

	return verr
}

// Probe is a single uniqueness check of a candidate value.
type Probe struct {
	field      string
	candidate  string
	current    string
	hasCurrent bool
	message    string
	exists     func(ctx context.Context, value string) (bool, error)
}

// Unique builds a probe that fails when exists reports the candidate as taken.
// Empty candidates are skipped.
func Unique(field, candidate string, exists func(ctx context.Context, value string) (bool, error)) Probe {
	return Probe{
		field:     field,
		candidate: candidate,
		exists:    exists,
		message:   "That " + strings.ReplaceAll(field, "_", " ") + " is taken. Please choose a different one.",
	}
}

// Except excludes the entity's own current value, so keeping it is never a conflict.
func (p Probe) Except(current string) Probe {
	p.current = current
	p.hasCurrent = true

	return p
}

// WithMessage overrides the user-facing message of a conflict.
func (p Probe) WithMessage(message string) Probe {
	p.message = message

	return p
}

// Check runs the probes in order and returns a duplicate *errors.ValidationError naming every
// conflicting field. Storage failures abort the check and are returned as-is.
func (v *Validator) Check(ctx context.Context, probes ...Probe) error {
	verr := domainerrors.NewValidationError()
	for _, p := range probes {
		if p.candidate == "" || (p.hasCurrent && p.candidate == p.current) {
			continue
		}

		taken, err := p.exists(ctx, p.candidate)
		if err != nil {
			return errors.Wrapf(err, "failed to check %s uniqueness", p.field)
		}
		if taken {
			verr.Add(p.field, domainerrors.CodeDuplicate, p.message)
		}
	}

	if verr.Empty() {
		return nil
	}

	return verr
}

func isShopCategory(fl validator.FieldLevel) bool {
	return entity.ShopCategory(fl.Field().String()).IsValid()
}

func isImageFile(fl validator.FieldLevel) bool {
	_, ok := imageExtensions[strings.ToLower(filepath.Ext(fl.Field().String()))]

	return ok
}

func describe(fe validator.FieldError) (code, message string) {
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return domainerrors.CodeRequired, "This field is required."
	case "min":
		if isString {
			return domainerrors.CodeTooShort, fmt.Sprintf("Field must be at least %s characters long.", fe.Param())
		}

		return domainerrors.CodeTooShort, fmt.Sprintf("Field must contain at least %s items.", fe.Param())
	case "max":
		if isString {
			return domainerrors.CodeTooLong, fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
		}

		return domainerrors.CodeTooLong, fmt.Sprintf("Field cannot contain more than %s items.", fe.Param())
	case "email":
		return domainerrors.CodeInvalid, "Invalid email address."
	case "eqfield":
		return domainerrors.CodeMismatch, "Field must be equal to " + strings.ToLower(fe.Param()) + "."
	case "shopcategory":
		return domainerrors.CodeInvalid, "Not a valid choice."
	case "imageext":
		return domainerrors.CodeInvalid, "File does not have an approved extension: jpg, png, jpeg"
	case "countrycode":
		return domainerrors.CodeInvalid, "Not a valid ISO country code."
	default:
		return domainerrors.CodeInvalid, "Invalid value."
	}
}
