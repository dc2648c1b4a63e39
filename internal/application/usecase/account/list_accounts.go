// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneydiary/backend/internal/application/adapter"
	"github.com/moneydiary/backend/internal/domain/entity"
	"github.com/moneydiary/backend/internal/domain/finance"
)

// ListAccountsInput represents the input for listing accounts.
type ListAccountsInput struct {
	UserID uuid.UUID
}

// ListAccountsOutput represents the output of listing accounts.
type ListAccountsOutput struct {
	Accounts         []entity.Account
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	NetWorth         decimal.Decimal
}

// ListAccountsUseCase handles listing accounts logic.
type ListAccountsUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(accountRepo adapter.AccountRepository) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		accountRepo: accountRepo,
	}
}

// Execute returns the user's active accounts with rolled-up totals.
func (uc *ListAccountsUseCase) Execute(ctx context.Context, input ListAccountsInput) (*ListAccountsOutput, error) {
	accounts, err := uc.accountRepo.FindActiveByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return &ListAccountsOutput{
		Accounts:         accounts,
		TotalAssets:      finance.TotalAssets(accounts),
		TotalLiabilities: finance.TotalLiabilities(accounts),
		NetWorth:         finance.NetWorth(accounts),
	}, nil
}
