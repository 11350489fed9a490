package postgres

import (
	"fmt"
	"testing"

	domainerrors "bazaar/internal/domain/errors"
	internalerrors "bazaar/internal/errors"
	"bazaar/internal/infra/persistence/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationHelpers(t *testing.T) {
	unique := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: model.ShopsLowerNameIndex}
	wrapped := fmt.Errorf("insert shop: %w", unique)

	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		notNull    bool
		check      bool
		constraint string
	}{
		{name: "pg unique", err: unique, unique: true, constraint: model.ShopsLowerNameIndex},
		{name: "wrapped pg unique", err: wrapped, unique: true, constraint: model.ShopsLowerNameIndex},
		{name: "pkg wrapped pg unique", err: errors.Wrap(unique, "create"), unique: true, constraint: model.ShopsLowerNameIndex},
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, unique: true},
		{name: "pg foreign key", err: &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "fk_shops_owner"}, foreignKey: true, constraint: "fk_shops_owner"},
		{name: "gorm foreign key", err: gorm.ErrForeignKeyViolated, foreignKey: true},
		{name: "pg not null", err: &pgconn.PgError{Code: pgNotNullViolation}, notNull: true},
		{name: "pg check", err: &pgconn.PgError{Code: pgCheckViolation}, check: true},
		{name: "gorm check", err: gorm.ErrCheckConstraintViolated, check: true},
		{name: "unrelated", err: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
			assert.Equal(t, tt.check, isCheckConstraintViolation(tt.err))
			assert.Equal(t, tt.constraint, violatedConstraint(tt.err))
		})
	}
}

func TestMapCompanyAddressWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "second address", err: &pgconn.PgError{Code: pgUniqueViolation}, want: domainerrors.ErrDuplicateEntity},
		{name: "unknown shop", err: &pgconn.PgError{Code: pgForeignKeyViolation}, want: domainerrors.ErrShopNotFound},
		{name: "missing column", err: &pgconn.PgError{Code: pgNotNullViolation}, want: domainerrors.ErrValidationFailed},
		{
			name: "latitude off the globe",
			err:  &pgconn.PgError{Code: pgCheckViolation, ConstraintName: model.CompanyAddressesLatitudeCheck},
			want: domainerrors.ErrGeocodingUnresolved,
		},
		{
			name: "longitude off the globe",
			err:  &pgconn.PgError{Code: pgCheckViolation, ConstraintName: model.CompanyAddressesLongitudeCheck},
			want: domainerrors.ErrGeocodingUnresolved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapCompanyAddressWriteError(tt.err)
			assert.True(t, errors.Is(got, tt.want), "got %v", got)
		})
	}
}

func TestMapCompanyAddressWriteError_OtherFailuresAreDatabaseErrors(t *testing.T) {
	got := mapCompanyAddressWriteError(errors.New("connection reset"))

	dbErr, ok := internalerrors.AsType[*domainerrors.DatabaseExecuteError](got)
	assert.True(t, ok, "got %T", got)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", dbErr.ErrorCode())
}
