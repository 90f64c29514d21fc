package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// POStatus is the lifecycle state of a purchase order.
type POStatus string

const (
	POPending   POStatus = "PENDING"
	POKirim     POStatus = "KIRIM" // approved / shipped by supplier
	POReceived  POStatus = "RECEIVED"
	PORejected  POStatus = "REJECTED"
	POCancelled POStatus = "CANCELLED"
)

// poTransitions is the single authoritative transition table. RECEIVED,
// REJECTED and CANCELLED are terminal: they have no outgoing edges.
var poTransitions = map[POStatus][]POStatus{
	POPending: {POKirim, POReceived, PORejected, POCancelled},
	POKirim:   {POReceived, PORejected, POCancelled},
}

// CanTransition reports whether moving from s to next is a legal PO
// status change.
func (s POStatus) CanTransition(next POStatus) bool {
	for _, allowed := range poTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Valid reports whether s is one of the known statuses.
func (s POStatus) Valid() bool {
	switch s {
	case POPending, POKirim, POReceived, PORejected, POCancelled:
		return true
	}
	return false
}

// PurchaseOrder is an order placed with a supplier. TotalAmount is a cached
// aggregate (= sum of item totals) recomputed in the same transaction as any
// item mutation.
type PurchaseOrder struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PONumber     string          `gorm:"uniqueIndex;not null"`
	SupplierID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date         time.Time       `gorm:"not null"`
	Status       POStatus        `gorm:"not null;default:'PENDING';index"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	DocumentPath *string
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Supplier     *Supplier           `gorm:"foreignKey:SupplierID"`
	Items        []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderID"`
	GoodsReceipt *GoodsReceipt       `gorm:"foreignKey:POID"`
}

// PurchaseOrderItem is one line of a PO. Total = Quantity × UnitPrice and is
// kept consistent with the parent's TotalAmount.
type PurchaseOrderItem struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PurchaseOrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity        decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Total           decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Unit            string

	Product *Product `gorm:"foreignKey:ProductID"`
}
