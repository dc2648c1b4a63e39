// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneydiary/backend/internal/application/adapter"
	"github.com/moneydiary/backend/internal/domain/entity"
	domainerror "github.com/moneydiary/backend/internal/domain/error"
)

// MaxAccountNameLength is the maximum allowed length for account names.
const MaxAccountNameLength = 100

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	UserID         uuid.UUID
	AccountTypeID  uuid.UUID
	Name           string
	InitialBalance decimal.Decimal
	Currency       string // Optional, defaults to the user's currency
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo     adapter.AccountRepository
	accountTypeRepo adapter.AccountTypeRepository
	userRepo        adapter.UserRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(
	accountRepo adapter.AccountRepository,
	accountTypeRepo adapter.AccountTypeRepository,
	userRepo adapter.UserRepository,
) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo:     accountRepo,
		accountTypeRepo: accountTypeRepo,
		userRepo:        userRepo,
	}
}

// Execute performs the account creation. The opening balance becomes the
// account's current balance.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	name := strings.TrimSpace(input.Name)
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

	// The account type must be a system type or one the user owns
	accountType, err := uc.accountTypeRepo.FindByID(ctx, input.AccountTypeID)
	if err != nil {
		return nil, domainerror.NewAccountTypeError(
			domainerror.ErrCodeAccountTypeNotFound,
			"account type not found",
			domainerror.ErrAccountTypeNotFound,
		)
	}
	if !accountType.IsSystem && accountType.UserID != input.UserID {
		return nil, domainerror.NewAccountTypeError(
			domainerror.ErrCodeNotAuthorizedAccountType,
			"not authorized to use this account type",
			domainerror.ErrNotAuthorizedToModifyAccountType,
		)
	}

	currency := input.Currency
	if currency == "" {
		user, err := uc.userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load user: %w", err)
		}
		currency = user.Currency
	}

	account := entity.NewAccount(input.UserID, input.AccountTypeID, name, input.InitialBalance, currency)
	account.AccountType = accountType

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{
		Account: account,
	}, nil
}
