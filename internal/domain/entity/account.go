// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account represents a financial account owned by a user.
// The stored balance is the source of truth for account-level metrics; it
// starts at InitialBalance and is mutated only by transactions and transfers
// posting to the account. Deleting an account is a soft-delete
// (IsActive=false).
type Account struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	AccountTypeID  uuid.UUID
	AccountType    *AccountType // Resolved join; nil when the type failed to load
	Name           string
	Balance        decimal.Decimal
	InitialBalance decimal.Decimal
	Currency       string
	IsActive       bool
	IsDefault      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewAccount creates a new Account entity with its balance set to the
// initial balance.
func NewAccount(
	userID uuid.UUID,
	accountTypeID uuid.UUID,
	name string,
	initialBalance decimal.Decimal,
	currency string,
) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:             uuid.New(),
		UserID:         userID,
		AccountTypeID:  accountTypeID,
		Name:           name,
		Balance:        initialBalance,
		InitialBalance: initialBalance,
		Currency:       currency,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Post applies a signed amount to the account balance. Income and incoming
// transfers post positive amounts; expenses and outgoing transfers post
// negative amounts.
func (a *Account) Post(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
	a.UpdatedAt = time.Now().UTC()
}
