// Package accounttype contains account type related use cases.
package accounttype

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/moneydiary/backend/internal/application/adapter"
	domainerror "github.com/moneydiary/backend/internal/domain/error"
)

// DeleteAccountTypeInput represents the input for account type deletion.
type DeleteAccountTypeInput struct {
	UserID        uuid.UUID
	AccountTypeID uuid.UUID
}

// DeleteAccountTypeOutput represents the output of account type deletion.
type DeleteAccountTypeOutput struct {
	Message string
}

// DeleteAccountTypeUseCase handles account type deletion logic.
type DeleteAccountTypeUseCase struct {
	accountTypeRepo adapter.AccountTypeRepository
	accountRepo     adapter.AccountRepository
}

// NewDeleteAccountTypeUseCase creates a new DeleteAccountTypeUseCase instance.
func NewDeleteAccountTypeUseCase(
	accountTypeRepo adapter.AccountTypeRepository,
	accountRepo adapter.AccountRepository,
) *DeleteAccountTypeUseCase {
	return &DeleteAccountTypeUseCase{
		accountTypeRepo: accountTypeRepo,
		accountRepo:     accountRepo,
	}
}

// Execute performs the account type deletion. System types and types still
// referenced by accounts cannot be removed.
func (uc *DeleteAccountTypeUseCase) Execute(ctx context.Context, input DeleteAccountTypeInput) (*DeleteAccountTypeOutput, error) {
	accountType, err := uc.accountTypeRepo.FindByID(ctx, input.AccountTypeID)
	if err != nil {
		return nil, domainerror.NewAccountTypeError(
			domainerror.ErrCodeAccountTypeNotFound,
			"account type not found",
			domainerror.ErrAccountTypeNotFound,
		)
	}

	if accountType.IsSystem {
		return nil, domainerror.NewAccountTypeError(
			domainerror.ErrCodeSystemAccountTypeReadOnly,
			"system account types cannot be deleted",
			domainerror.ErrSystemAccountTypeReadOnly,
		)
	}
	if accountType.UserID != input.UserID {
		return nil, domainerror.NewAccountTypeError(
			domainerror.ErrCodeNotAuthorizedAccountType,
			"not authorized to delete this account type",
			domainerror.ErrNotAuthorizedToModifyAccountType,
		)
	}

	count, err := uc.accountRepo.CountByAccountType(ctx, input.AccountTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to count accounts for type: %w", err)
	}
	if count > 0 {
		return nil, domainerror.NewAccountTypeError(
			domainerror.ErrCodeAccountTypeInUse,
			"account type has accounts and cannot be deleted",
			domainerror.ErrAccountTypeInUse,
		)
	}

	if err := uc.accountTypeRepo.Delete(ctx, input.AccountTypeID); err != nil {
		return nil, fmt.Errorf("failed to delete account type: %w", err)
	}

	return &DeleteAccountTypeOutput{
		Message: "Account type deleted successfully",
	}, nil
}
