// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneydiary/backend/internal/domain/entity"
)

// AccountModel represents the accounts table in the database.
type AccountModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountTypeID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name           string          `gorm:"type:varchar(100);not null"`
	Balance        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	InitialBalance decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency       string          `gorm:"type:varchar(3);not null;default:'INR'"`
	IsActive       bool            `gorm:"default:true;index"`
	IsDefault      bool            `gorm:"default:false"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`

	// Relationship, loaded with Preload
	AccountType *AccountTypeModel `gorm:"foreignKey:AccountTypeID;references:ID"`
}

// TableName returns the table name for the AccountModel.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToEntity converts an AccountModel to a domain Account entity.
func (m *AccountModel) ToEntity() *entity.Account {
	account := &entity.Account{
		ID:             m.ID,
		UserID:         m.UserID,
		AccountTypeID:  m.AccountTypeID,
		Name:           m.Name,
		Balance:        m.Balance,
		InitialBalance: m.InitialBalance,
		Currency:       m.Currency,
		IsActive:       m.IsActive,
		IsDefault:      m.IsDefault,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.AccountType != nil {
		account.AccountType = m.AccountType.ToEntity()
	}
	return account
}

// AccountFromEntity creates an AccountModel from a domain Account entity.
// The AccountType relationship is not written back; it belongs to its own
// table.
func AccountFromEntity(account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:             account.ID,
		UserID:         account.UserID,
		AccountTypeID:  account.AccountTypeID,
		Name:           account.Name,
		Balance:        account.Balance,
		InitialBalance: account.InitialBalance,
		Currency:       account.Currency,
		IsActive:       account.IsActive,
		IsDefault:      account.IsDefault,
		CreatedAt:      account.CreatedAt,
		UpdatedAt:      account.UpdatedAt,
	}
}
