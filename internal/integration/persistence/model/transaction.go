// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneydiary/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Category name and type are denormalized at write time so listing and
// aggregation never need the categories table.
type TransactionModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryName    string          `gorm:"type:varchar(50);not null"`
	Type            string          `gorm:"type:varchar(10);not null;index"`
	Description     string          `gorm:"type:varchar(255);not null"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date            time.Time       `gorm:"type:date;not null;index"`
	TransferGroupID *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:              m.ID,
		UserID:          m.UserID,
		AccountID:       m.AccountID,
		CategoryID:      m.CategoryID,
		CategoryName:    m.CategoryName,
		Type:            entity.TransactionType(m.Type),
		Description:     m.Description,
		Amount:          m.Amount,
		Date:            m.Date,
		TransferGroupID: m.TransferGroupID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:              transaction.ID,
		UserID:          transaction.UserID,
		AccountID:       transaction.AccountID,
		CategoryID:      transaction.CategoryID,
		CategoryName:    transaction.CategoryName,
		Type:            string(transaction.Type),
		Description:     transaction.Description,
		Amount:          transaction.Amount,
		Date:            transaction.Date,
		TransferGroupID: transaction.TransferGroupID,
		CreatedAt:       transaction.CreatedAt,
		UpdatedAt:       transaction.UpdatedAt,
	}
}
