package dto

import "github.com/shopspring/decimal"

// GoodsIssueRequest records a manual stock withdrawal (kitchen usage,
// spoilage write-off). Every line is validated against on-hand stock inside
// the issuing transaction.
type GoodsIssueRequest struct {
	Items []struct {
		ProductID string          `json:"product_id" validate:"required,uuid"`
		Quantity  decimal.Decimal `json:"quantity"   validate:"required"`
	} `json:"items" validate:"required,min=1,dive"`
	Description string  `json:"description" validate:"required"`
	Reference   *string `json:"reference"`
}

type MovementFilter struct {
	ProductID string `form:"product_id" validate:"omitempty,uuid"`
	Type      string `form:"type"       validate:"omitempty,oneof=IN OUT"`
	Page      int    `form:"page,default=1"    validate:"min=1"`
	Limit     int    `form:"limit,default=100" validate:"min=1,max=500"`
}

type MovementResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Product   string          `json:"product"`
	Type      string          `json:"type"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reference string          `json:"reference"`
	Notes     string          `json:"notes"`
	CreatedAt string          `json:"created_at"`
}

type MovementListResponse struct {
	Data  []MovementResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
