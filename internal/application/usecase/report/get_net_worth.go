// Package report contains reporting and analytics use cases.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneydiary/backend/internal/application/adapter"
	"github.com/moneydiary/backend/internal/domain/entity"
	"github.com/moneydiary/backend/internal/domain/finance"
)

// GetNetWorthInput represents the input for the net worth report.
type GetNetWorthInput struct {
	UserID uuid.UUID
}

// AccountContribution describes how one account affects net worth.
type AccountContribution struct {
	AccountID       uuid.UUID
	AccountName     string
	AccountTypeName string
	Category        entity.AccountTypeCategory
	Balance         decimal.Decimal
	Contribution    decimal.Decimal // Signed amount added to net worth, zero when excluded
}

// GetNetWorthOutput represents the output of the net worth report.
type GetNetWorthOutput struct {
	NetWorth         decimal.Decimal
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	Accounts         []AccountContribution
}

// GetNetWorthUseCase computes net worth from stored account balances.
type GetNetWorthUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewGetNetWorthUseCase creates a new GetNetWorthUseCase instance.
func NewGetNetWorthUseCase(accountRepo adapter.AccountRepository) *GetNetWorthUseCase {
	return &GetNetWorthUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the net worth computation.
func (uc *GetNetWorthUseCase) Execute(ctx context.Context, input GetNetWorthInput) (*GetNetWorthOutput, error) {
	accounts, err := uc.accountRepo.FindActiveByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	contributions := make([]AccountContribution, 0, len(accounts))
	for i := range accounts {
		a := &accounts[i]
		contribution := AccountContribution{
			AccountID:    a.ID,
			AccountName:  a.Name,
			Balance:      a.Balance,
			Contribution: decimal.Zero,
		}
		if a.AccountType != nil {
			contribution.AccountTypeName = a.AccountType.Name
			contribution.Category = a.AccountType.Category
			if a.AccountType.AffectsNetWorth {
				switch a.AccountType.Category {
				case entity.AccountTypeCategoryAsset:
					contribution.Contribution = a.Balance
				case entity.AccountTypeCategoryLiability:
					contribution.Contribution = a.Balance.Neg()
				}
			}
		}
		contributions = append(contributions, contribution)
	}

	return &GetNetWorthOutput{
		NetWorth:         finance.NetWorth(accounts),
		TotalAssets:      finance.TotalAssets(accounts),
		TotalLiabilities: finance.TotalLiabilities(accounts),
		Accounts:         contributions,
	}, nil
}
