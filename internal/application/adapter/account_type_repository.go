// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/moneydiary/backend/internal/domain/entity"
)

// AccountTypeRepository defines the interface for account type persistence operations.
type AccountTypeRepository interface {
	// Create creates a new account type in the database.
	Create(ctx context.Context, accountType *entity.AccountType) error

	// FindByID retrieves an account type by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AccountType, error)

	// FindVisibleToUser retrieves the system account types plus the user's own.
	FindVisibleToUser(ctx context.Context, userID uuid.UUID) ([]*entity.AccountType, error)

	// ExistsByNameForUser checks whether a visible account type with the
	// given name already exists for the user.
	ExistsByNameForUser(ctx context.Context, userID uuid.UUID, name string) (bool, error)

	// Delete removes an account type from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
