// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/moneydiary/backend/internal/application/adapter"
	"github.com/moneydiary/backend/internal/domain/entity"
	domainerror "github.com/moneydiary/backend/internal/domain/error"
	"github.com/moneydiary/backend/internal/integration/persistence/model"
)

// accountRepository implements the adapter.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository instance.
func NewAccountRepository(db *gorm.DB) adapter.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account in the database.
func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountFromEntity(account)
	return r.db.WithContext(ctx).Create(accountModel).Error
}

// FindByID retrieves an account by its ID with its account type resolved.
func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountModel model.AccountModel
	result := r.db.WithContext(ctx).
		Preload("AccountType").
		Where("id = ?", id).
		First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAccountNotFound
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// FindActiveByUser retrieves the user's active accounts with their account
// types resolved, ordered by creation time.
func (r *accountRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]entity.Account, error) {
	var accountModels []model.AccountModel
	result := r.db.WithContext(ctx).
		Preload("AccountType").
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at ASC").
		Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}

	accounts := make([]entity.Account, len(accountModels))
	for i := range accountModels {
		accounts[i] = *accountModels[i].ToEntity()
	}
	return accounts, nil
}

// Update updates an existing account in the database.
func (r *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountFromEntity(account)
	return r.db.WithContext(ctx).Save(accountModel).Error
}

// Deactivate soft-deletes an account by marking it inactive.
func (r *accountRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		}).Error
}

// CountByAccountType counts accounts referencing the given account type,
// including inactive ones.
func (r *accountRepository) CountByAccountType(ctx context.Context, accountTypeID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("account_type_id = ?", accountTypeID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
