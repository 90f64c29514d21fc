package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Recipe is a single-use cook batch extracted from one material request.
// PurchaseDate is the FIFO ordering key: batches are listed oldest first so
// the kitchen picks the oldest one. Cooking consumes the whole batch — the
// row is deleted in the same transaction that deducts the ingredients.
type Recipe struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string    `gorm:"index;not null"`
	Description    *string
	DefaultPortion int       `gorm:"not null;default:1"`
	PurchaseDate   time.Time `gorm:"index;not null"`
	RequestID      *string   `gorm:"index"` // dedupe key: at most one batch per (name, request)
	CreatedAt      time.Time

	Ingredients []RecipeItem `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// RecipeItem stores the ingredient quantity normalized to ONE portion.
// Consumption at cook time = Quantity × portions requested.
type RecipeItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RecipeID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	Unit      string
	Notes     *string

	Product *Product `gorm:"foreignKey:ProductID"`
}
