package dto

import (
	"time"

	"github.com/moneydiary/backend/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Name           string  `json:"name" binding:"required,min=1,max=100"`
	AccountTypeID  string  `json:"account_type_id" binding:"required,uuid"`
	InitialBalance float64 `json:"initial_balance"`
	Currency       string  `json:"currency,omitempty" binding:"omitempty,len=3"`
}

// UpdateAccountRequest represents the request body for account update.
type UpdateAccountRequest struct {
	Name    *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Balance *float64 `json:"balance,omitempty"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	AccountTypeID  string               `json:"account_type_id"`
	AccountType    *AccountTypeResponse `json:"account_type,omitempty"`
	Balance        string               `json:"balance"`
	InitialBalance string               `json:"initial_balance"`
	Currency       string               `json:"currency"`
	IsActive       bool                 `json:"is_active"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// AccountTotalsResponse represents aggregated balances across accounts.
type AccountTotalsResponse struct {
	TotalAssets      string `json:"total_assets"`
	TotalLiabilities string `json:"total_liabilities"`
	NetWorth         string `json:"net_worth"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse     `json:"accounts"`
	Totals   AccountTotalsResponse `json:"totals"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse DTO.
func ToAccountResponse(account *entity.Account) AccountResponse {
	response := AccountResponse{
		ID:             account.ID.String(),
		Name:           account.Name,
		AccountTypeID:  account.AccountTypeID.String(),
		Balance:        account.Balance.StringFixed(2),
		InitialBalance: account.InitialBalance.StringFixed(2),
		Currency:       account.Currency,
		IsActive:       account.IsActive,
		CreatedAt:      account.CreatedAt,
		UpdatedAt:      account.UpdatedAt,
	}
	if account.AccountType != nil {
		accountType := ToAccountTypeResponse(account.AccountType)
		response.AccountType = &accountType
	}
	return response
}
