// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneydiary/backend/internal/application/adapter"
	"github.com/moneydiary/backend/internal/domain/entity"
	domainerror "github.com/moneydiary/backend/internal/domain/error"
)

// UpdateAccountInput represents the input for account update.
// Nil pointer fields are left unchanged.
type UpdateAccountInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
	Name      *string
	Balance   *decimal.Decimal // Manual balance correction
}

// UpdateAccountOutput represents the output of account update.
type UpdateAccountOutput struct {
	Account *entity.Account
}

// UpdateAccountUseCase handles account update logic.
type UpdateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepo adapter.AccountRepository) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account update.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
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
			"not authorized to modify this account",
			domainerror.ErrNotAuthorizedToModifyAccount,
		)
	}
	if !account.IsActive {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountInactive,
			"account is inactive",
			domainerror.ErrAccountInactive,
		)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeMissingAccountFields,
				"account name is required",
				domainerror.ErrAccountNameTooLong,
			)
		}
		if len(name) > MaxAccountNameLength {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeAccountNameTooLong,
				fmt.Sprintf("account name must not exceed %d characters", MaxAccountNameLength),
				domainerror.ErrAccountNameTooLong,
			)
		}
		account.Name = name
	}

	if input.Balance != nil {
		account.Balance = *input.Balance
	}

	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return &UpdateAccountOutput{
		Account: account,
	}, nil
}
