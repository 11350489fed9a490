package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// contactRepository implements the repository.ContactRepository interface using GORM.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository instance.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	contactM := fromContactDomain(contact)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(contactM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if violatedConstraint(err) == model.ContactsEmailIndex {
				return domainerrors.NewDuplicateError("email", "That email is taken. Please choose a different one.")
			}

			return domainerrors.ErrDuplicateEntity.WrapMessage("shop already has a contact")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrShopNotFound.WrapMessage("contact references an unknown shop")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact")
	}

	contact.ID = contactM.ID

	return nil
}

// ExistsByEmail compares lower-cased; emails are stored normalized.
func (repo *contactRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ContactModel{}).Where("email = lower(?)", email).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check contact email")
	}

	return count > 0, nil
}

func toContactDomain(data *model.ContactModel) *entity.Contact {
	if data == nil {
		return nil
	}

	return &entity.Contact{
		ID:     data.ID,
		ShopID: data.ShopID,
		Email:  data.Email,
		Phone:  data.Phone,
	}
}

func fromContactDomain(data *entity.Contact) *model.ContactModel {
	if data == nil {
		return nil
	}

	return &model.ContactModel{
		ID:     data.ID,
		ShopID: data.ShopID,
		Email:  data.Email,
		Phone:  data.Phone,
	}
}
