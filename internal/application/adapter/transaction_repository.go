// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/moneydiary/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// CreatePair creates two transactions atomically. Used for transfers,
	// where both legs must be persisted or neither.
	CreatePair(ctx context.Context, first, second *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByUser retrieves all of the user's transactions ordered by date
	// descending, then creation time descending. Returned as a value slice
	// because the snapshot feeds the aggregation functions directly.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]entity.Transaction, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByCategory counts transactions referencing the given category.
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)

	// CountByAccount counts transactions referencing the given account.
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
}
