// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountTypeCategory represents the accounting nature of an account type.
type AccountTypeCategory string

const (
	AccountTypeCategoryAsset     AccountTypeCategory = "asset"
	AccountTypeCategoryLiability AccountTypeCategory = "liability"
	AccountTypeCategoryEquity    AccountTypeCategory = "equity"
)

// AccountTypeRole tags an account type with its role in ratio calculations.
// It replaces name-substring matching with a structural property set at
// creation time.
type AccountTypeRole string

const (
	AccountTypeRoleGeneral       AccountTypeRole = "general"
	AccountTypeRoleCash          AccountTypeRole = "cash"
	AccountTypeRoleEmergencyFund AccountTypeRole = "emergency_fund"
	AccountTypeRoleInvestment    AccountTypeRole = "investment"
)

// AccountType classifies accounts (e.g. Savings, Credit Card, Mutual Funds).
// System types are seeded rows with a Nil UserID, shared read-only across all
// users; they cannot be deleted.
type AccountType struct {
	ID              uuid.UUID
	UserID          uuid.UUID // uuid.Nil for system types
	Name            string
	Category        AccountTypeCategory
	Role            AccountTypeRole
	AffectsNetWorth bool
	IsSystem        bool
	IsDefault       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewAccountType creates a new user-owned AccountType entity.
func NewAccountType(
	userID uuid.UUID,
	name string,
	category AccountTypeCategory,
	role AccountTypeRole,
	affectsNetWorth bool,
) *AccountType {
	now := time.Now().UTC()

	return &AccountType{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            name,
		Category:        category,
		Role:            role,
		AffectsNetWorth: affectsNetWorth,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// IsLiquid reports whether balances of this type count toward the emergency
// fund.
func (t *AccountType) IsLiquid() bool {
	return t.Role == AccountTypeRoleCash || t.Role == AccountTypeRoleEmergencyFund
}
