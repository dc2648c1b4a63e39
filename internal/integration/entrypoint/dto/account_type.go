package dto

import (
	"time"

	"github.com/moneydiary/backend/internal/domain/entity"
)

// CreateAccountTypeRequest represents the request body for account type creation.
type CreateAccountTypeRequest struct {
	Name            string `json:"name" binding:"required,min=1,max=50"`
	Category        string `json:"category" binding:"required,oneof=asset liability equity"`
	Role            string `json:"role,omitempty" binding:"omitempty,oneof=general cash emergency_fund investment"`
	AffectsNetWorth *bool  `json:"affects_net_worth,omitempty"`
}

// AccountTypeResponse represents a single account type in API responses.
type AccountTypeResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Role            string    `json:"role"`
	AffectsNetWorth bool      `json:"affects_net_worth"`
	IsSystem        bool      `json:"is_system"`
	CreatedAt       time.Time `json:"created_at"`
}

// AccountTypeListResponse represents the response for listing account types.
type AccountTypeListResponse struct {
	AccountTypes []AccountTypeResponse `json:"account_types"`
}

// ToAccountTypeResponse converts a domain AccountType entity to an AccountTypeResponse DTO.
func ToAccountTypeResponse(accountType *entity.AccountType) AccountTypeResponse {
	return AccountTypeResponse{
		ID:              accountType.ID.String(),
		Name:            accountType.Name,
		Category:        string(accountType.Category),
		Role:            string(accountType.Role),
		AffectsNetWorth: accountType.AffectsNetWorth,
		IsSystem:        accountType.IsSystem,
		CreatedAt:       accountType.CreatedAt,
	}
}

// ToAccountTypeListResponse converts a slice of account types to an AccountTypeListResponse DTO.
func ToAccountTypeListResponse(accountTypes []*entity.AccountType) AccountTypeListResponse {
	responses := make([]AccountTypeResponse, 0, len(accountTypes))
	for _, accountType := range accountTypes {
		responses = append(responses, ToAccountTypeResponse(accountType))
	}
	return AccountTypeListResponse{AccountTypes: responses}
}
