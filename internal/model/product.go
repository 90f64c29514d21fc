package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a raw material tracked by the stock ledger.
// Quantity is a cached aggregate: it must always equal the signed sum of all
// StockMovements for this product, and is only ever adjusted inside the same
// transaction that appends the movement.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SKU         string    `gorm:"uniqueIndex;not null"`
	Name        string    `gorm:"index;not null"`
	Description *string
	Category    *string         `gorm:"index"`
	Unit        string          `gorm:"not null;default:'kg'"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Quantity    decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0"`
	SupplierID  *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Supplier *Supplier `gorm:"foreignKey:SupplierID"`
}
