// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/moneydiary/backend/internal/application/adapter"
	domainerror "github.com/moneydiary/backend/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
}

// DeleteAccountOutput represents the output of account deletion.
type DeleteAccountOutput struct {
	Message string
}

// DeleteAccountUseCase handles account deletion logic.
type DeleteAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(accountRepo adapter.AccountRepository) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute soft-deletes the account. Its transactions are kept so historical
// reports stay intact; the account simply stops appearing in listings and
// net worth.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) (*DeleteAccountOutput, error) {
	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}
	if account.UserID != input.UserID {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeNotAuthorizedAccount,
			"not authorized to delete this account",
			domainerror.ErrNotAuthorizedToModifyAccount,
		)
	}
	if !account.IsActive {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountInactive,
			"account is already inactive",
			domainerror.ErrAccountInactive,
		)
	}

	if err := uc.accountRepo.Deactivate(ctx, input.AccountID); err != nil {
		return nil, fmt.Errorf("failed to deactivate account: %w", err)
	}

	return &DeleteAccountOutput{
		Message: "Account deleted successfully",
	}, nil
}
