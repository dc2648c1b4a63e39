// Package transaction contains transaction-related use cases.
package transaction

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/moneydiary/backend/internal/application/adapter"
	"github.com/moneydiary/backend/internal/domain/finance"
)

// ExportTransactionsInput represents the input for transaction export.
// The same filters as listing apply; pagination does not.
type ExportTransactionsInput struct {
	UserID    uuid.UUID
	Search    string
	Type      finance.TypeFilter
	StartDate *time.Time
	EndDate   *time.Time
}

// ExportTransactionsOutput represents the output of transaction export.
type ExportTransactionsOutput struct {
	Filename string
	Content  []byte
}

// ExportTransactionsUseCase renders the filtered transaction list as CSV.
type ExportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ExportTransactionsUseCase {
	return &ExportTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction export.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context, input ExportTransactionsInput) (*ExportTransactionsOutput, error) {
	all, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	typeFilter := input.Type
	if typeFilter == "" {
		typeFilter = finance.TypeFilterAll
	}
	filtered := finance.FilterTransactions(all, finance.Filter{
		Search: input.Search,
		Type:   typeFilter,
		From:   input.StartDate,
		To:     input.EndDate,
	})

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Date", "Description", "Category", "Type", "Amount"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for i := range filtered {
		t := &filtered[i]
		record := []string{
			t.Date.Format("2006-01-02"),
			t.Description,
			t.CategoryName,
			string(t.Type),
			t.Amount.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	filename := fmt.Sprintf("transactions-%s.csv", time.Now().UTC().Format("2006-01-02"))

	return &ExportTransactionsOutput{
		Filename: filename,
		Content:  buf.Bytes(),
	}, nil
}
