package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementType is the direction of a stock movement.
type MovementType string

const (
	MovementIn  MovementType = "IN"
	MovementOut MovementType = "OUT"
)

// StockMovement is one immutable ledger entry. Quantity is always a positive
// magnitude; the sign is implied by Type. Rows are never updated or deleted —
// the ledger is the system of record for Product.Quantity.
type StockMovement struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type      MovementType    `gorm:"not null"`
	Quantity  decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	Reference string          `gorm:"index"` // originating PO / DO / cook event
	Notes     string
	CreatedAt time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}
