// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#6366F1"

// Seeded category names used to record the two legs of a transfer.
const (
	TransferOutCategoryName = "Transfer Out"
	TransferInCategoryName  = "Transfer In"
)

// Category represents a transaction category in MoneyDiary.
// Default categories are seeded rows with a Nil UserID; they are visible to
// every user and cannot be modified or deleted.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID // uuid.Nil for seeded defaults
	Name      string
	Type      CategoryType
	Color     string
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new user-owned Category entity.
// Defaulting logic for the color should be applied in the Application layer
// (UseCase) before calling this constructor.
func NewCategory(userID uuid.UUID, name string, categoryType CategoryType, color string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Type:      categoryType,
		Color:     color,
		IsDefault: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// VisibleTo reports whether the category can be used by the given user.
func (c *Category) VisibleTo(userID uuid.UUID) bool {
	return c.IsDefault || c.UserID == userID
}
