package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneydiary/backend/internal/application/usecase/transfer"
	domainerror "github.com/moneydiary/backend/internal/domain/error"
	"github.com/moneydiary/backend/internal/integration/entrypoint/dto"
	"github.com/moneydiary/backend/internal/integration/entrypoint/middleware"
)

// TransferController handles transfer endpoints.
type TransferController struct {
	createUseCase *transfer.CreateTransferUseCase
}

// NewTransferController creates a new transfer controller instance.
func NewTransferController(createUseCase *transfer.CreateTransferUseCase) *TransferController {
	return &TransferController{
		createUseCase: createUseCase,
	}
}

// Create handles POST /transfers requests.
func (c *TransferController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateTransferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingAccountFields),
		})
		return
	}

	fromAccountID, err := uuid.Parse(req.FromAccountID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid source account ID format",
		})
		return
	}

	toAccountID, err := uuid.Parse(req.ToAccountID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid destination account ID format",
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidTransactionDate),
		})
		return
	}

	input := transfer.CreateTransferInput{
		UserID:        userID,
		FromAccountID: fromAccountID,
		ToAccountID:   toAccountID,
		Amount:        decimal.NewFromFloat(req.Amount),
		Description:   req.Description,
		Date:          date,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransferError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransferResponse(output))
}

// handleTransferError handles transfer errors and returns appropriate HTTP responses.
func (c *TransferController) handleTransferError(ctx *gin.Context, err error) {
	var accErr *domainerror.AccountError
	if errors.As(err, &accErr) {
		statusCode := http.StatusBadRequest
		switch accErr.Code {
		case domainerror.ErrCodeAccountNotFound:
			statusCode = http.StatusNotFound
		case domainerror.ErrCodeNotAuthorizedAccount:
			statusCode = http.StatusForbidden
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: accErr.Message,
			Code:  string(accErr.Code),
		})
		return
	}

	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		statusCode := http.StatusBadRequest
		if txnErr.Code == domainerror.ErrCodeTxnCategoryNotFound {
			statusCode = http.StatusInternalServerError
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
