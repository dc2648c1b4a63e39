// Package transfer contains the account to account transfer use case.
package transfer

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

// CreateTransferInput represents the input for a transfer between accounts.
type CreateTransferInput struct {
	UserID        uuid.UUID
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	Amount        decimal.Decimal
	Description   string
	Date          time.Time
}

// CreateTransferOutput represents the output of a transfer.
type CreateTransferOutput struct {
	TransferGroupID uuid.UUID
	OutLeg          *entity.Transaction
	InLeg           *entity.Transaction
	FromAccount     *entity.Account
	ToAccount       *entity.Account
}

// CreateTransferUseCase moves money between two of the user's accounts by
// recording a pair of transactions that share a transfer group ID. The legs
// adjust account balances only; income, expense and category aggregates
// exclude transfer legs entirely.
type CreateTransferUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	categoryRepo    adapter.CategoryRepository
}

// NewCreateTransferUseCase creates a new CreateTransferUseCase instance.
func NewCreateTransferUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateTransferUseCase {
	return &CreateTransferUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transfer.
func (uc *CreateTransferUseCase) Execute(ctx context.Context, input CreateTransferInput) (*CreateTransferOutput, error) {
	if input.FromAccountID == input.ToAccountID {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeSameTransferAccounts,
			"transfer source and destination must differ",
			domainerror.ErrSameTransferAccounts,
		)
	}
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidTransferAmount,
			"transfer amount must be positive",
			domainerror.ErrInvalidTransferAmount,
		)
	}
	date := input.Date
	if date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"transfer date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	from, err := uc.loadAccount(ctx, input.UserID, input.FromAccountID)
	if err != nil {
		return nil, err
	}
	to, err := uc.loadAccount(ctx, input.UserID, input.ToAccountID)
	if err != nil {
		return nil, err
	}

	outCategory, inCategory, err := uc.transferCategories(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		description = fmt.Sprintf("Transfer from %s to %s", from.Name, to.Name)
	}

	groupID := uuid.New()

	outLeg := entity.NewTransaction(input.UserID, from.ID, outCategory, description, input.Amount, date)
	outLeg.TransferGroupID = &groupID
	inLeg := entity.NewTransaction(input.UserID, to.ID, inCategory, description, input.Amount, date)
	inLeg.TransferGroupID = &groupID

	if err := uc.transactionRepo.CreatePair(ctx, outLeg, inLeg); err != nil {
		return nil, fmt.Errorf("failed to create transfer legs: %w", err)
	}

	from.Post(input.Amount.Neg())
	if err := uc.accountRepo.Update(ctx, from); err != nil {
		return nil, fmt.Errorf("failed to update source account: %w", err)
	}
	to.Post(input.Amount)
	if err := uc.accountRepo.Update(ctx, to); err != nil {
		return nil, fmt.Errorf("failed to update destination account: %w", err)
	}

	return &CreateTransferOutput{
		TransferGroupID: groupID,
		OutLeg:          outLeg,
		InLeg:           inLeg,
		FromAccount:     from,
		ToAccount:       to,
	}, nil
}

func (uc *CreateTransferUseCase) loadAccount(ctx context.Context, userID, accountID uuid.UUID) (*entity.Account, error) {
	account, err := uc.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}
	if account.UserID != userID {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeNotAuthorizedAccount,
			"not authorized to use this account",
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
	return account, nil
}

// transferCategories resolves the seeded "Transfer Out" and "Transfer In"
// categories used to record the two legs.
func (uc *CreateTransferUseCase) transferCategories(ctx context.Context, userID uuid.UUID) (out, in *entity.Category, err error) {
	categories, err := uc.categoryRepo.FindVisibleToUser(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load categories: %w", err)
	}
	for _, c := range categories {
		switch {
		case c.IsDefault && c.Name == entity.TransferOutCategoryName:
			out = c
		case c.IsDefault && c.Name == entity.TransferInCategoryName:
			in = c
		}
	}
	if out == nil || in == nil {
		return nil, nil, fmt.Errorf("transfer categories are not seeded")
	}
	return out, in, nil
}
