package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus is the post-cook disposition state of a batch.
type DeliveryStatus string

const (
	DeliveryPendingQC   DeliveryStatus = "PENDING_QC"
	DeliveryReadyToShip DeliveryStatus = "READY_TO_SHIP"
	DeliveryRejected    DeliveryStatus = "REJECTED"
	DeliveryShipped     DeliveryStatus = "SHIPPED"
)

// deliveryTransitions is the closed transition table for the QC/shipment
// state machine. REJECTED and SHIPPED are terminal.
var deliveryTransitions = map[DeliveryStatus][]DeliveryStatus{
	DeliveryPendingQC:   {DeliveryReadyToShip, DeliveryRejected},
	DeliveryReadyToShip: {DeliveryShipped},
}

// CanTransition reports whether moving from s to next is legal.
func (s DeliveryStatus) CanTransition(next DeliveryStatus) bool {
	for _, allowed := range deliveryTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// DeliveryQueue is one cooked batch awaiting QC and shipment. Created by the
// cook operation, mutated only by QC submission and shipment recording.
// QC rejection does NOT reverse the consumed ingredient stock — it is a
// disposition decision, not an inventory event.
type DeliveryQueue struct {
	ID       uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MenuName string         `gorm:"not null"`
	Quantity int            `gorm:"not null"` // portions
	Status   DeliveryStatus `gorm:"not null;default:'PENDING_QC';index"`
	CookDate time.Time      `gorm:"index;not null"`

	// QC metadata
	QCStatus *string // PASS | REJECT
	QCBy     *string
	QCDate   *time.Time
	QCNotes  *string
	PhotoURL *string

	// Shipment metadata
	ShippedAt    *time.Time
	SenderName   *string
	SenderSign   *string
	ReceiverName *string
	ReceiverSign *string
	Destination  *string
	ArrivalTime  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's pluralization (delivery_queues → delivery_queue).
func (DeliveryQueue) TableName() string { return "delivery_queue" }
