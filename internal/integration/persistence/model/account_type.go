// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/moneydiary/backend/internal/domain/entity"
)

// AccountTypeModel represents the account_types table in the database.
// System types carry the nil UUID as user_id.
type AccountTypeModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"type:varchar(50);not null"`
	Category        string    `gorm:"type:varchar(10);not null"`
	Role            string    `gorm:"type:varchar(20);not null;default:'general'"`
	AffectsNetWorth bool      `gorm:"default:true"`
	IsSystem        bool      `gorm:"default:false"`
	IsDefault       bool      `gorm:"default:false"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the AccountTypeModel.
func (AccountTypeModel) TableName() string {
	return "account_types"
}

// ToEntity converts an AccountTypeModel to a domain AccountType entity.
func (m *AccountTypeModel) ToEntity() *entity.AccountType {
	return &entity.AccountType{
		ID:              m.ID,
		UserID:          m.UserID,
		Name:            m.Name,
		Category:        entity.AccountTypeCategory(m.Category),
		Role:            entity.AccountTypeRole(m.Role),
		AffectsNetWorth: m.AffectsNetWorth,
		IsSystem:        m.IsSystem,
		IsDefault:       m.IsDefault,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// AccountTypeFromEntity creates an AccountTypeModel from a domain AccountType entity.
func AccountTypeFromEntity(accountType *entity.AccountType) *AccountTypeModel {
	return &AccountTypeModel{
		ID:              accountType.ID,
		UserID:          accountType.UserID,
		Name:            accountType.Name,
		Category:        string(accountType.Category),
		Role:            string(accountType.Role),
		AffectsNetWorth: accountType.AffectsNetWorth,
		IsSystem:        accountType.IsSystem,
		IsDefault:       accountType.IsDefault,
		CreatedAt:       accountType.CreatedAt,
		UpdatedAt:       accountType.UpdatedAt,
	}
}
