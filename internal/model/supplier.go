package model

import (
	"time"

	"github.com/google/uuid"
)

// Supplier is one vendor. Suppliers for classification buckets are created
// on demand the first time a purchase request contains an item in that
// bucket, with placeholder contact data to be completed by an admin later.
type Supplier struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"index;not null"`
	Contact   string
	Address   string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time

	Products []Product `gorm:"foreignKey:SupplierID"`
}
