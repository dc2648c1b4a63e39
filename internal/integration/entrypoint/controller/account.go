package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneydiary/backend/internal/application/usecase/account"
	domainerror "github.com/moneydiary/backend/internal/domain/error"
	"github.com/moneydiary/backend/internal/integration/entrypoint/dto"
	"github.com/moneydiary/backend/internal/integration/entrypoint/middleware"
)

// AccountController handles account endpoints.
type AccountController struct {
	listUseCase   *account.ListAccountsUseCase
	createUseCase *account.CreateAccountUseCase
	updateUseCase *account.UpdateAccountUseCase
	deleteUseCase *account.DeleteAccountUseCase
}

// NewAccountController creates a new account controller instance.
func NewAccountController(
	listUseCase *account.ListAccountsUseCase,
	createUseCase *account.CreateAccountUseCase,
	updateUseCase *account.UpdateAccountUseCase,
	deleteUseCase *account.DeleteAccountUseCase,
) *AccountController {
	return &AccountController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /accounts requests.
func (c *AccountController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), account.ListAccountsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	accounts := make([]dto.AccountResponse, 0, len(output.Accounts))
	for i := range output.Accounts {
		accounts = append(accounts, dto.ToAccountResponse(&output.Accounts[i]))
	}

	ctx.JSON(http.StatusOK, dto.AccountListResponse{
		Accounts: accounts,
		Totals: dto.AccountTotalsResponse{
			TotalAssets:      output.TotalAssets.StringFixed(2),
			TotalLiabilities: output.TotalLiabilities.StringFixed(2),
			NetWorth:         output.NetWorth.StringFixed(2),
		},
	})
}

// Create handles POST /accounts requests.
func (c *AccountController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingAccountFields),
		})
		return
	}

	accountTypeID, err := uuid.Parse(req.AccountTypeID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account type ID format",
		})
		return
	}

	input := account.CreateAccountInput{
		UserID:         userID,
		AccountTypeID:  accountTypeID,
		Name:           req.Name,
		InitialBalance: decimal.NewFromFloat(req.InitialBalance),
		Currency:       req.Currency,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAccountResponse(output.Account))
}

// Update handles PATCH /accounts/:id requests.
func (c *AccountController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	var req dto.UpdateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := account.UpdateAccountInput{
		UserID:    userID,
		AccountID: accountID,
		Name:      req.Name,
	}
	if req.Balance != nil {
		balance := decimal.NewFromFloat(*req.Balance)
		input.Balance = &balance
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountResponse(output.Account))
}

// Delete handles DELETE /accounts/:id requests.
// Accounts are soft-deleted so the history behind their transactions survives.
func (c *AccountController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	input := account.DeleteAccountInput{
		UserID:    userID,
		AccountID: accountID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleAccountError handles account errors and returns appropriate HTTP responses.
func (c *AccountController) handleAccountError(ctx *gin.Context, err error) {
	var accErr *domainerror.AccountError
	if errors.As(err, &accErr) {
		statusCode := c.getStatusCodeForAccountError(accErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: accErr.Message,
			Code:  string(accErr.Code),
		})
		return
	}

	var typeErr *domainerror.AccountTypeError
	if errors.As(err, &typeErr) {
		statusCode := http.StatusBadRequest
		if typeErr.Code == domainerror.ErrCodeAccountTypeNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: typeErr.Message,
			Code:  string(typeErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAccountError maps account error codes to HTTP status codes.
func (c *AccountController) getStatusCodeForAccountError(code domainerror.AccountErrorCode) int {
	switch code {
	case domainerror.ErrCodeAccountNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedAccount:
		return http.StatusForbidden
	case domainerror.ErrCodeAccountInactive,
		domainerror.ErrCodeAccountNameTooLong,
		domainerror.ErrCodeMissingAccountFields,
		domainerror.ErrCodeSameTransferAccounts,
		domainerror.ErrCodeInvalidTransferAmount:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
