package dto

import (
	"time"

	"github.com/moneydiary/backend/internal/application/usecase/transaction"
	"github.com/moneydiary/backend/internal/domain/entity"
	"github.com/moneydiary/backend/internal/domain/finance"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	AccountID   string  `json:"account_id" binding:"required,uuid"`
	CategoryID  string  `json:"category_id" binding:"required,uuid"`
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Date        string  `json:"date" binding:"required"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	CategoryID  *string  `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Description *string  `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount      *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Date        *string  `json:"date,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID              string    `json:"id"`
	AccountID       string    `json:"account_id"`
	CategoryID      string    `json:"category_id"`
	CategoryName    string    `json:"category_name"`
	Type            string    `json:"type"`
	Description     string    `json:"description"`
	Amount          string    `json:"amount"`
	Date            string    `json:"date"`
	TransferGroupID *string   `json:"transfer_group_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TransactionPaginationResponse represents pagination information in API responses.
type TransactionPaginationResponse struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// TransactionTotalsResponse represents aggregated totals over the filtered set.
type TransactionTotalsResponse struct {
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Balance  string `json:"balance"`
}

// TransactionGroupResponse represents transactions grouped by calendar date.
type TransactionGroupResponse struct {
	Date         string                `json:"date"`
	Transactions []TransactionResponse `json:"transactions"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse         `json:"transactions"`
	Groups       []TransactionGroupResponse    `json:"groups,omitempty"`
	Pagination   TransactionPaginationResponse `json:"pagination"`
	Totals       TransactionTotalsResponse     `json:"totals"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:           txn.ID.String(),
		AccountID:    txn.AccountID.String(),
		CategoryID:   txn.CategoryID.String(),
		CategoryName: txn.CategoryName,
		Type:         string(txn.Type),
		Description:  txn.Description,
		Amount:       txn.Amount.StringFixed(2),
		Date:         txn.Date.Format("2006-01-02"),
		CreatedAt:    txn.CreatedAt,
		UpdatedAt:    txn.UpdatedAt,
	}
	if txn.TransferGroupID != nil {
		groupID := txn.TransferGroupID.String()
		response.TransferGroupID = &groupID
	}
	return response
}

// ToTransactionListResponse converts a list use case output to a TransactionListResponse DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, 0, len(output.Transactions))
	for i := range output.Transactions {
		transactions = append(transactions, ToTransactionResponse(&output.Transactions[i]))
	}

	response := TransactionListResponse{
		Transactions: transactions,
		Pagination: TransactionPaginationResponse{
			Page:       output.Pagination.Page,
			PageSize:   output.Pagination.PageSize,
			Total:      output.Pagination.Total,
			TotalPages: output.Pagination.TotalPages,
		},
		Totals: TransactionTotalsResponse{
			Income:   output.Totals.Income.StringFixed(2),
			Expenses: output.Totals.Expenses.StringFixed(2),
			Balance:  output.Totals.Balance.StringFixed(2),
		},
	}

	for _, group := range output.Groups {
		response.Groups = append(response.Groups, toTransactionGroupResponse(group))
	}

	return response
}

func toTransactionGroupResponse(group finance.DateGroup) TransactionGroupResponse {
	transactions := make([]TransactionResponse, 0, len(group.Transactions))
	for i := range group.Transactions {
		transactions = append(transactions, ToTransactionResponse(&group.Transactions[i]))
	}
	return TransactionGroupResponse{
		Date:         group.Date.Format("2006-01-02"),
		Transactions: transactions,
	}
}
