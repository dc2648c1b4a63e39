// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/moneydiary/backend/internal/domain/entity"
	"github.com/moneydiary/backend/internal/integration/persistence/model"
)

// seedCategory describes one default category row.
type seedCategory struct {
	name  string
	typ   entity.CategoryType
	color string
}

// defaultCategories are seeded once and shared read-only by every user.
var defaultCategories = []seedCategory{
	{"Salary", entity.CategoryTypeIncome, "#22C55E"},
	{"Freelance", entity.CategoryTypeIncome, "#10B981"},
	{"Investment Income", entity.CategoryTypeIncome, "#14B8A6"},
	{"Other Income", entity.CategoryTypeIncome, "#84CC16"},
	{entity.TransferInCategoryName, entity.CategoryTypeIncome, "#64748B"},
	{"Food & Dining", entity.CategoryTypeExpense, "#F97316"},
	{"Groceries", entity.CategoryTypeExpense, "#F59E0B"},
	{"Transportation", entity.CategoryTypeExpense, "#3B82F6"},
	{"Shopping", entity.CategoryTypeExpense, "#EC4899"},
	{"Entertainment", entity.CategoryTypeExpense, "#8B5CF6"},
	{"Bills & Utilities", entity.CategoryTypeExpense, "#EF4444"},
	{"Rent", entity.CategoryTypeExpense, "#DC2626"},
	{"Healthcare", entity.CategoryTypeExpense, "#06B6D4"},
	{"Education", entity.CategoryTypeExpense, "#6366F1"},
	{"Travel", entity.CategoryTypeExpense, "#0EA5E9"},
	{"Other", entity.CategoryTypeExpense, "#A8A29E"},
	{entity.TransferOutCategoryName, entity.CategoryTypeExpense, "#64748B"},
}

// seedAccountType describes one system account type row.
type seedAccountType struct {
	name            string
	category        entity.AccountTypeCategory
	role            entity.AccountTypeRole
	affectsNetWorth bool
}

// systemAccountTypes are seeded once and shared read-only by every user.
var systemAccountTypes = []seedAccountType{
	{"Savings Account", entity.AccountTypeCategoryAsset, entity.AccountTypeRoleCash, true},
	{"Current Account", entity.AccountTypeCategoryAsset, entity.AccountTypeRoleCash, true},
	{"Cash", entity.AccountTypeCategoryAsset, entity.AccountTypeRoleCash, true},
	{"Emergency Fund", entity.AccountTypeCategoryAsset, entity.AccountTypeRoleEmergencyFund, true},
	{"Fixed Deposit", entity.AccountTypeCategoryAsset, entity.AccountTypeRoleInvestment, true},
	{"Mutual Funds", entity.AccountTypeCategoryAsset, entity.AccountTypeRoleInvestment, true},
	{"Stocks", entity.AccountTypeCategoryAsset, entity.AccountTypeRoleInvestment, true},
	{"Credit Card", entity.AccountTypeCategoryLiability, entity.AccountTypeRoleGeneral, true},
	{"Loan", entity.AccountTypeCategoryLiability, entity.AccountTypeRoleGeneral, true},
}

// Seed inserts the default categories and system account types if they are
// missing. It is idempotent and safe to run on every boot.
func Seed(db *gorm.DB) error {
	now := time.Now().UTC()

	for _, c := range defaultCategories {
		var count int64
		if err := db.Model(&model.CategoryModel{}).
			Where("is_default = ? AND name = ? AND type = ?", true, c.name, string(c.typ)).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check default category %q: %w", c.name, err)
		}
		if count > 0 {
			continue
		}
		row := &model.CategoryModel{
			ID:        uuid.New(),
			UserID:    uuid.Nil,
			Name:      c.name,
			Type:      string(c.typ),
			Color:     c.color,
			IsDefault: true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := db.Create(row).Error; err != nil {
			return fmt.Errorf("failed to seed default category %q: %w", c.name, err)
		}
	}

	for _, t := range systemAccountTypes {
		var count int64
		if err := db.Model(&model.AccountTypeModel{}).
			Where("is_system = ? AND name = ?", true, t.name).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check system account type %q: %w", t.name, err)
		}
		if count > 0 {
			continue
		}
		row := &model.AccountTypeModel{
			ID:              uuid.New(),
			UserID:          uuid.Nil,
			Name:            t.name,
			Category:        string(t.category),
			Role:            string(t.role),
			AffectsNetWorth: t.affectsNetWorth,
			IsSystem:        true,
			IsDefault:       true,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := db.Create(row).Error; err != nil {
			return fmt.Errorf("failed to seed system account type %q: %w", t.name, err)
		}
	}

	return nil
}
