package postgres

import (
	"context"

	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Models lists every persisted model in dependency order.
func Models() []any {
	return []any{
		&model.UserModel{},
		&model.ShopModel{},
		&model.CompanyAddressModel{},
		&model.ContactModel{},
		&model.FinancialModel{},
		&model.ListingModel{},
		&model.PostModel{},
	}
}

// Migrate creates or updates the schema. Indexes GORM tags cannot express are created afterwards.
func Migrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)

	if err := tx.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate models")
	}

	statements := []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS " + model.ShopsLowerNameIndex + " ON shops (lower(name))",
	}
	for _, stmt := range statements {
		if err := tx.Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "failed to execute migration statement %q", stmt)
		}
	}

	return nil
}
