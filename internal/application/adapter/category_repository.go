// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/moneydiary/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindVisibleToUser retrieves all categories visible to a user, which
	// includes the seeded defaults and the user's own categories.
	FindVisibleToUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// ExistsByNameForUser checks whether a visible category with the given
	// name and type already exists for the user.
	ExistsByNameForUser(ctx context.Context, userID uuid.UUID, name string, categoryType entity.CategoryType) (bool, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
