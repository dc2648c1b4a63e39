// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/moneydiary/backend/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
type AccountRepository interface {
	// Create creates a new account in the database.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its ID with its account type resolved.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindActiveByUser retrieves the user's active accounts with their
	// account types resolved, ordered by creation time. Returned as a value
	// slice because the snapshot feeds the aggregation functions directly.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]entity.Account, error)

	// Update updates an existing account in the database.
	Update(ctx context.Context, account *entity.Account) error

	// Deactivate soft-deletes an account by marking it inactive.
	Deactivate(ctx context.Context, id uuid.UUID) error

	// CountByAccountType counts accounts referencing the given account type,
	// including inactive ones.
	CountByAccountType(ctx context.Context, accountTypeID uuid.UUID) (int64, error)
}
