package dto

import (
	"github.com/moneydiary/backend/internal/application/usecase/transfer"
)

// CreateTransferRequest represents the request body for a transfer between accounts.
type CreateTransferRequest struct {
	FromAccountID string  `json:"from_account_id" binding:"required,uuid"`
	ToAccountID   string  `json:"to_account_id" binding:"required,uuid"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Description   string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Date          string  `json:"date" binding:"required"`
}

// TransferResponse represents the response for a completed transfer.
type TransferResponse struct {
	TransferGroupID string              `json:"transfer_group_id"`
	OutTransaction  TransactionResponse `json:"out_transaction"`
	InTransaction   TransactionResponse `json:"in_transaction"`
	FromAccount     AccountResponse     `json:"from_account"`
	ToAccount       AccountResponse     `json:"to_account"`
}

// ToTransferResponse converts a transfer use case output to a TransferResponse DTO.
func ToTransferResponse(output *transfer.CreateTransferOutput) TransferResponse {
	return TransferResponse{
		TransferGroupID: output.TransferGroupID.String(),
		OutTransaction:  ToTransactionResponse(output.OutLeg),
		InTransaction:   ToTransactionResponse(output.InLeg),
		FromAccount:     ToAccountResponse(output.FromAccount),
		ToAccount:       ToAccountResponse(output.ToAccount),
	}
}
