// Package report contains reporting and analytics use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneydiary/backend/internal/application/adapter"
	"github.com/moneydiary/backend/internal/domain/finance"
)

// GetSummaryInput represents the input for the summary report.
type GetSummaryInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// GetSummaryOutput represents the output of the summary report.
type GetSummaryOutput struct {
	Balance          decimal.Decimal
	Income           decimal.Decimal
	Expenses         decimal.Decimal
	TransactionCount int
	CategoryTotals   []finance.CategoryTotal
}

// GetSummaryUseCase computes income, expenses, derived balance and the
// per-category expense breakdown over an optional date range.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(transactionRepo adapter.TransactionRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the summary computation.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	if err := validateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	all, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	filtered := finance.FilterTransactions(all, finance.Filter{
		Type: finance.TypeFilterAll,
		From: input.StartDate,
		To:   input.EndDate,
	})
	// The summary describes income and spending activity; transfer legs
	// belong to neither and are left out of the count as well.
	activity := finance.ExcludeTransferLegs(filtered)

	return &GetSummaryOutput{
		Balance:          finance.Balance(activity),
		Income:           finance.Income(activity),
		Expenses:         finance.Expenses(activity),
		TransactionCount: len(activity),
		CategoryTotals:   finance.SortedCategoryTotals(activity),
	}, nil
}
