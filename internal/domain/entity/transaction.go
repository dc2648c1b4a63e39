// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a financial transaction in MoneyDiary.
// Amount is always positive; the sign of its contribution to balances is
// derived from Type. CategoryName and Type are denormalized from the category
// at write time so that snapshots are self-contained.
type Transaction struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	AccountID       uuid.UUID
	CategoryID      uuid.UUID
	CategoryName    string
	Type            TransactionType
	Description     string
	Amount          decimal.Decimal
	Date            time.Time // Calendar date, no time component
	TransferGroupID *uuid.UUID // Set on the paired legs of a transfer
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	accountID uuid.UUID,
	category *Category,
	description string,
	amount decimal.Decimal,
	date time.Time,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:           uuid.New(),
		UserID:       userID,
		AccountID:    accountID,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		Type:         TransactionType(category.Type),
		Description:  description,
		Amount:       amount,
		Date:         date,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// SignedAmount returns the amount with the sign implied by the transaction
// type: positive for income, negative for expenses.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

// IsTransferLeg reports whether the transaction is one half of a transfer.
func (t *Transaction) IsTransferLeg() bool {
	return t.TransferGroupID != nil
}
