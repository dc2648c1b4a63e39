// Package accounttype contains account type related use cases.
package accounttype

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/moneydiary/backend/internal/application/adapter"
	"github.com/moneydiary/backend/internal/domain/entity"
	domainerror "github.com/moneydiary/backend/internal/domain/error"
)

// MaxAccountTypeNameLength is the maximum allowed length for account type names.
const MaxAccountTypeNameLength = 50

// CreateAccountTypeInput represents the input for account type creation.
type CreateAccountTypeInput struct {
	UserID          uuid.UUID
	Name            string
	Category        entity.AccountTypeCategory
	Role            entity.AccountTypeRole // Optional, defaults to general
	AffectsNetWorth bool
}

// CreateAccountTypeOutput represents the output of account type creation.
type CreateAccountTypeOutput struct {
	AccountType *entity.AccountType
}

// CreateAccountTypeUseCase handles account type creation logic.
type CreateAccountTypeUseCase struct {
	accountTypeRepo adapter.AccountTypeRepository
}

// NewCreateAccountTypeUseCase creates a new CreateAccountTypeUseCase instance.
func NewCreateAccountTypeUseCase(accountTypeRepo adapter.AccountTypeRepository) *CreateAccountTypeUseCase {
	return &CreateAccountTypeUseCase{
		accountTypeRepo: accountTypeRepo,
	}
}

// Execute performs the account type creation.
func (uc *CreateAccountTypeUseCase) Execute(ctx context.Context, input CreateAccountTypeInput) (*CreateAccountTypeOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewAccountTypeError(
			domainerror.ErrCodeMissingAccountTypeFields,
			"account type name is required",
			domainerror.ErrInvalidAccountTypeCategory,
		)
	}
	if len(name) > MaxAccountTypeNameLength {
		return nil, domainerror.NewAccountTypeError(
			domainerror.ErrCodeMissingAccountTypeFields,
			fmt.Sprintf("account type name must not exceed %d characters", MaxAccountTypeNameLength),
			domainerror.ErrInvalidAccountTypeCategory,
		)
	}

	if !isValidCategory(input.Category) {
		return nil, domainerror.NewAccountTypeError(
			domainerror.ErrCodeInvalidAccountTypeCategory,
			"category must be 'asset', 'liability' or 'equity'",
			domainerror.ErrInvalidAccountTypeCategory,
		)
	}

	role := input.Role
	if role == "" {
		role = entity.AccountTypeRoleGeneral
	}
	if !isValidRole(role) {
		return nil, domainerror.NewAccountTypeError(
			domainerror.ErrCodeInvalidAccountTypeRole,
			"role must be 'general', 'cash', 'emergency_fund' or 'investment'",
			domainerror.ErrInvalidAccountTypeRole,
		)
	}

	exists, err := uc.accountTypeRepo.ExistsByNameForUser(ctx, input.UserID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check account type name existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAccountTypeError(
			domainerror.ErrCodeAccountTypeNameExists,
			"an account type with this name already exists",
			domainerror.ErrAccountTypeNameExists,
		)
	}

	accountType := entity.NewAccountType(input.UserID, name, input.Category, role, input.AffectsNetWorth)

	if err := uc.accountTypeRepo.Create(ctx, accountType); err != nil {
		return nil, fmt.Errorf("failed to create account type: %w", err)
	}

	return &CreateAccountTypeOutput{
		AccountType: accountType,
	}, nil
}

// isValidCategory validates the account type category.
func isValidCategory(category entity.AccountTypeCategory) bool {
	switch category {
	case entity.AccountTypeCategoryAsset, entity.AccountTypeCategoryLiability, entity.AccountTypeCategoryEquity:
		return true
	}
	return false
}

// isValidRole validates the account type role.
func isValidRole(role entity.AccountTypeRole) bool {
	switch role {
	case entity.AccountTypeRoleGeneral, entity.AccountTypeRoleCash,
		entity.AccountTypeRoleEmergencyFund, entity.AccountTypeRoleInvestment:
		return true
	}
	return false
}
