// Package report contains reporting and analytics use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/moneydiary/backend/internal/application/adapter"
	"github.com/moneydiary/backend/internal/domain/finance"
)

// GetInsightsInput represents the input for the insights report.
type GetInsightsInput struct {
	UserID uuid.UUID
}

// GetInsightsOutput represents the output of the insights report.
type GetInsightsOutput struct {
	Metrics finance.Metrics
	Report  finance.Report
}

// GetInsightsUseCase computes financial health metrics over the user's full
// history and generates the rule-based insight list.
type GetInsightsUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
}

// NewGetInsightsUseCase creates a new GetInsightsUseCase instance.
func NewGetInsightsUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
) *GetInsightsUseCase {
	return &GetInsightsUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

// Execute performs the insights computation.
func (uc *GetInsightsUseCase) Execute(ctx context.Context, input GetInsightsInput) (*GetInsightsOutput, error) {
	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	accounts, err := uc.accountRepo.FindActiveByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	metrics := finance.ComputeMetrics(transactions, accounts)
	report := finance.GenerateInsights(metrics, transactions, time.Now().UTC())

	return &GetInsightsOutput{
		Metrics: metrics,
		Report:  report,
	}, nil
}
