// Package accounttype contains account type related use cases.
package accounttype

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/moneydiary/backend/internal/application/adapter"
	"github.com/moneydiary/backend/internal/domain/entity"
)

// ListAccountTypesInput represents the input for listing account types.
type ListAccountTypesInput struct {
	UserID uuid.UUID
}

// ListAccountTypesOutput represents the output of listing account types.
type ListAccountTypesOutput struct {
	AccountTypes []*entity.AccountType
}

// ListAccountTypesUseCase handles listing account types logic.
type ListAccountTypesUseCase struct {
	accountTypeRepo adapter.AccountTypeRepository
}

// NewListAccountTypesUseCase creates a new ListAccountTypesUseCase instance.
func NewListAccountTypesUseCase(accountTypeRepo adapter.AccountTypeRepository) *ListAccountTypesUseCase {
	return &ListAccountTypesUseCase{
		accountTypeRepo: accountTypeRepo,
	}
}

// Execute returns the system account types plus the user's own.
func (uc *ListAccountTypesUseCase) Execute(ctx context.Context, input ListAccountTypesInput) (*ListAccountTypesOutput, error) {
	accountTypes, err := uc.accountTypeRepo.FindVisibleToUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list account types: %w", err)
	}

	return &ListAccountTypesOutput{
		AccountTypes: accountTypes,
	}, nil
}
