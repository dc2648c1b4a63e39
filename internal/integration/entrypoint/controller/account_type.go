package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/moneydiary/backend/internal/application/usecase/accounttype"
	"github.com/moneydiary/backend/internal/domain/entity"
	domainerror "github.com/moneydiary/backend/internal/domain/error"
	"github.com/moneydiary/backend/internal/integration/entrypoint/dto"
	"github.com/moneydiary/backend/internal/integration/entrypoint/middleware"
)

// AccountTypeController handles account type endpoints.
type AccountTypeController struct {
	listUseCase   *accounttype.ListAccountTypesUseCase
	createUseCase *accounttype.CreateAccountTypeUseCase
	deleteUseCase *accounttype.DeleteAccountTypeUseCase
}

// NewAccountTypeController creates a new account type controller instance.
func NewAccountTypeController(
	listUseCase *accounttype.ListAccountTypesUseCase,
	createUseCase *accounttype.CreateAccountTypeUseCase,
	deleteUseCase *accounttype.DeleteAccountTypeUseCase,
) *AccountTypeController {
	return &AccountTypeController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /account-types requests.
func (c *AccountTypeController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), accounttype.ListAccountTypesInput{
		UserID: userID,
	})
	if err != nil {
		c.handleAccountTypeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountTypeListResponse(output.AccountTypes))
}

// Create handles POST /account-types requests.
func (c *AccountTypeController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateAccountTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingAccountTypeFields),
		})
		return
	}

	// Net worth inclusion defaults to true unless explicitly disabled.
	affectsNetWorth := true
	if req.AffectsNetWorth != nil {
		affectsNetWorth = *req.AffectsNetWorth
	}

	input := accounttype.CreateAccountTypeInput{
		UserID:          userID,
		Name:            req.Name,
		Category:        entity.AccountTypeCategory(req.Category),
		Role:            entity.AccountTypeRole(req.Role),
		AffectsNetWorth: affectsNetWorth,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAccountTypeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAccountTypeResponse(output.AccountType))
}

// Delete handles DELETE /account-types/:id requests.
func (c *AccountTypeController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	accountTypeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account type ID format",
		})
		return
	}

	input := accounttype.DeleteAccountTypeInput{
		UserID:        userID,
		AccountTypeID: accountTypeID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleAccountTypeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleAccountTypeError handles account type errors and returns appropriate HTTP responses.
func (c *AccountTypeController) handleAccountTypeError(ctx *gin.Context, err error) {
	var typeErr *domainerror.AccountTypeError
	if errors.As(err, &typeErr) {
		statusCode := c.getStatusCodeForAccountTypeError(typeErr.Code)
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

// getStatusCodeForAccountTypeError maps account type error codes to HTTP status codes.
func (c *AccountTypeController) getStatusCodeForAccountTypeError(code domainerror.AccountTypeErrorCode) int {
	switch code {
	case domainerror.ErrCodeAccountTypeNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeAccountTypeNameExists,
		domainerror.ErrCodeAccountTypeInUse:
		return http.StatusConflict
	case domainerror.ErrCodeNotAuthorizedAccountType,
		domainerror.ErrCodeSystemAccountTypeReadOnly:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidAccountTypeCategory,
		domainerror.ErrCodeInvalidAccountTypeRole,
		domainerror.ErrCodeMissingAccountTypeFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
