// Package report contains reporting and analytics use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneydiary/backend/internal/application/adapter"
	domainerror "github.com/moneydiary/backend/internal/domain/error"
	"github.com/moneydiary/backend/internal/domain/finance"
)

// GetTrendsInput represents the input for the trends report.
type GetTrendsInput struct {
	UserID      uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	Granularity Granularity
}

// TrendPoint represents a single trend data point.
type TrendPoint struct {
	Date             time.Time
	PeriodLabel      string
	Income           decimal.Decimal
	Expenses         decimal.Decimal
	Balance          decimal.Decimal
	TransactionCount int
}

// GetTrendsOutput represents the output of the trends report.
type GetTrendsOutput struct {
	StartDate   time.Time
	EndDate     time.Time
	Granularity Granularity
	Trends      []TrendPoint
}

// GetTrendsUseCase buckets the user's transactions into a continuous
// income/expense series. Empty periods appear with zero values so chart
// rendering has no gaps.
type GetTrendsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTrendsUseCase creates a new GetTrendsUseCase instance.
func NewGetTrendsUseCase(transactionRepo adapter.TransactionRepository) *GetTrendsUseCase {
	return &GetTrendsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the trends computation.
func (uc *GetTrendsUseCase) Execute(ctx context.Context, input GetTrendsInput) (*GetTrendsOutput, error) {
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"start_date and end_date are required",
			domainerror.ErrInvalidDateRange,
		)
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must be after start_date",
			domainerror.ErrInvalidDateRange,
		)
	}
	if err := validateGranularity(input.Granularity); err != nil {
		return nil, err
	}

	all, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	inRange := finance.FilterTransactions(all, finance.Filter{
		Type: finance.TypeFilterAll,
		From: &input.StartDate,
		To:   &input.EndDate,
	})

	type bucket struct {
		income   decimal.Decimal
		expenses decimal.Decimal
		count    int
	}
	buckets := make(map[string]*bucket)
	for i := range inRange {
		t := &inRange[i]
		if t.IsTransferLeg() {
			continue
		}
		key := PeriodKeyForDate(t.Date, input.Granularity)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{income: decimal.Zero, expenses: decimal.Zero}
			buckets[key] = b
		}
		switch {
		case t.SignedAmount().IsPositive():
			b.income = b.income.Add(t.Amount)
		default:
			b.expenses = b.expenses.Add(t.Amount)
		}
		b.count++
	}

	periods := GeneratePeriodSeries(input.StartDate, input.EndDate, input.Granularity)
	trends := make([]TrendPoint, 0, len(periods))
	for _, period := range periods {
		point := TrendPoint{
			Date:        period.Date,
			PeriodLabel: period.PeriodLabel,
			Income:      decimal.Zero,
			Expenses:    decimal.Zero,
			Balance:     decimal.Zero,
		}
		if b, ok := buckets[period.Date.Format("2006-01-02")]; ok {
			point.Income = b.income
			point.Expenses = b.expenses
			point.Balance = b.income.Sub(b.expenses)
			point.TransactionCount = b.count
		}
		trends = append(trends, point)
	}

	return &GetTrendsOutput{
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Granularity: input.Granularity,
		Trends:      trends,
	}, nil
}
