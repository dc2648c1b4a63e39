// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/moneydiary/backend/internal/application/adapter"
	"github.com/moneydiary/backend/internal/domain/entity"
	domainerror "github.com/moneydiary/backend/internal/domain/error"
	"github.com/moneydiary/backend/internal/integration/persistence/model"
)

// accountTypeRepository implements the adapter.AccountTypeRepository interface.
type accountTypeRepository struct {
	db *gorm.DB
}

// NewAccountTypeRepository creates a new account type repository instance.
func NewAccountTypeRepository(db *gorm.DB) adapter.AccountTypeRepository {
	return &accountTypeRepository{
		db: db,
	}
}

// Create creates a new account type in the database.
func (r *accountTypeRepository) Create(ctx context.Context, accountType *entity.AccountType) error {
	accountTypeModel := model.AccountTypeFromEntity(accountType)
	return r.db.WithContext(ctx).Create(accountTypeModel).Error
}

// FindByID retrieves an account type by its ID.
func (r *accountTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AccountType, error) {
	var accountTypeModel model.AccountTypeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&accountTypeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAccountTypeNotFound
		}
		return nil, result.Error
	}
	return accountTypeModel.ToEntity(), nil
}

// FindVisibleToUser retrieves the system account types plus the user's own,
// system types first, then by name.
func (r *accountTypeRepository) FindVisibleToUser(ctx context.Context, userID uuid.UUID) ([]*entity.AccountType, error) {
	var accountTypeModels []model.AccountTypeModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? OR is_system = ?", userID, true).
		Order("is_system DESC, name ASC").
		Find(&accountTypeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	accountTypes := make([]*entity.AccountType, len(accountTypeModels))
	for i := range accountTypeModels {
		accountTypes[i] = accountTypeModels[i].ToEntity()
	}
	return accountTypes, nil
}

// ExistsByNameForUser checks whether a visible account type with the given
// name already exists for the user.
func (r *accountTypeRepository) ExistsByNameForUser(ctx context.Context, userID uuid.UUID, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.AccountTypeModel{}).
		Where("(user_id = ? OR is_system = ?) AND LOWER(name) = LOWER(?)", userID, true, name).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Delete removes an account type from the database.
func (r *accountTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.AccountTypeModel{}, "id = ?", id).Error
}
