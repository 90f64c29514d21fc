package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoodsReceipt records the physical arrival of a PO's shipment. The unique
// index on POID enforces at most one receipt per purchase order — a second
// receive call fails on the constraint instead of double-applying stock.
type GoodsReceipt struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	POID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	DONumber     string    `gorm:"not null"`
	ReceivedAt   time.Time `gorm:"not null"`
	Receiver     string    `gorm:"not null"`
	ReceiverSign string
	Courier      string
	CourierSign  string
	Condition    string
	Notes        *string
	CreatedAt    time.Time

	PurchaseOrder *PurchaseOrder     `gorm:"foreignKey:POID"`
	Items         []GoodsReceiptItem `gorm:"foreignKey:GoodsReceiptID"`
}

// GoodsReceiptItem records accepted and rejected quantity per product.
type GoodsReceiptItem struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	GoodsReceiptID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity         decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	QuantityRejected decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0"`
	Condition        string

	Product *Product `gorm:"foreignKey:ProductID"`
}
