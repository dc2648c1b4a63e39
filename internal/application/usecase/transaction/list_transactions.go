// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneydiary/backend/internal/application/adapter"
	"github.com/moneydiary/backend/internal/domain/entity"
	domainerror "github.com/moneydiary/backend/internal/domain/error"
	"github.com/moneydiary/backend/internal/domain/finance"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID      uuid.UUID
	Search      string
	Type        finance.TypeFilter
	StartDate   *time.Time
	EndDate     *time.Time
	GroupByDate bool
	Page        int
	PageSize    int
}

// PaginationOutput represents pagination information in the output.
type PaginationOutput struct {
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// TotalsOutput represents aggregated totals over the filtered set.
type TotalsOutput struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []entity.Transaction
	Groups       []finance.DateGroup // Populated when GroupByDate is set
	Pagination   PaginationOutput
	Totals       TotalsOutput
}

// ListTransactionsUseCase handles listing transactions logic.
// Filtering and pagination run in memory over the user's transaction
// snapshot so the semantics are identical everywhere they are needed.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	typeFilter := input.Type
	switch typeFilter {
	case "":
		typeFilter = finance.TypeFilterAll
	case finance.TypeFilterAll, finance.TypeFilterIncome, finance.TypeFilterExpense:
	default:
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type filter must be 'all', 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = finance.DefaultPageSize
	}
	if pageSize > 100 {
		pageSize = 100
	}

	all, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	filter := finance.Filter{
		Search: input.Search,
		Type:   typeFilter,
		From:   input.StartDate,
		To:     input.EndDate,
	}
	filtered := finance.FilterTransactions(all, filter)

	page := finance.Paginate(filtered, input.Page, pageSize)

	output := &ListTransactionsOutput{
		Transactions: page.Items,
		Pagination: PaginationOutput{
			Page:       page.PageNumber,
			PageSize:   pageSize,
			Total:      page.TotalCount,
			TotalPages: page.TotalPages,
		},
		Totals: TotalsOutput{
			Income:   finance.Income(filtered),
			Expenses: finance.Expenses(filtered),
			Balance:  finance.Balance(filtered),
		},
	}

	if input.GroupByDate {
		output.Groups = finance.GroupByDate(page.Items)
	}

	return output, nil
}
