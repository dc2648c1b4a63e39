// Package transaction contains transaction-related use cases.
package transaction

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

// UpdateTransactionInput represents the input for transaction update.
// Nil pointer fields are left unchanged.
type UpdateTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	CategoryID    *uuid.UUID
	Description   *string
	Amount        *decimal.Decimal
	Date          *time.Time
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	accountRepo     adapter.AccountRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	accountRepo adapter.AccountRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		accountRepo:     accountRepo,
	}
}

// Execute performs the transaction update. When the amount changes, the
// difference is posted to the account so its balance stays consistent.
// Transfer legs cannot be edited individually.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	if transaction.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to modify this transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}
	if transaction.IsTransferLeg() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransferLegImmutable,
			"transfer legs cannot be edited individually",
			domainerror.ErrTransferLegImmutable,
		)
	}

	oldSigned := transaction.SignedAmount()

	if input.CategoryID != nil {
		category, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil || !category.VisibleTo(input.UserID) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
		// Recategorizing cannot flip the transaction between income and
		// expense; that would silently change the sign of the posting
		if entity.CategoryType(transaction.Type) != category.Type {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeCategoryTypeMismatch,
				"transaction type must match category type",
				domainerror.ErrCategoryTypeMismatch,
			)
		}
		transaction.CategoryID = category.ID
		transaction.CategoryName = category.Name
	}

	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if len(description) > MaxDescriptionLength {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeDescriptionTooLong,
				fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
				domainerror.ErrDescriptionTooLong,
			)
		}
		transaction.Description = description
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionAmount,
				"transaction amount must be positive",
				domainerror.ErrInvalidTransactionAmount,
			)
		}
		transaction.Amount = *input.Amount
	}

	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionDate,
				"transaction date is required",
				domainerror.ErrInvalidTransactionDate,
			)
		}
		transaction.Date = *input.Date
	}

	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	// Post only the delta so other postings on the account are untouched
	delta := transaction.SignedAmount().Sub(oldSigned)
	if !delta.IsZero() {
		account, err := uc.accountRepo.FindByID(ctx, transaction.AccountID)
		if err != nil {
			return nil, fmt.Errorf("failed to load account: %w", err)
		}
		account.Post(delta)
		if err := uc.accountRepo.Update(ctx, account); err != nil {
			return nil, fmt.Errorf("failed to update account balance: %w", err)
		}
	}

	return &UpdateTransactionOutput{
		Transaction: transaction,
	}, nil
}
