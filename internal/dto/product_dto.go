package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name        string          `json:"name"        validate:"required,min=2,max=120"`
	SKU         string          `json:"sku"         validate:"omitempty,max=80"`
	Description *string         `json:"description"`
	Category    *string         `json:"category"`
	Unit        string          `json:"unit"        validate:"required"`
	Price       decimal.Decimal `json:"price"       validate:"min=0"`
	Quantity    decimal.Decimal `json:"quantity"    validate:"min=0"`
	SupplierID  *string         `json:"supplier_id" validate:"omitempty,uuid"`
}

// UpdateProductRequest deliberately has no quantity field: on-hand stock is
// only ever changed through ledger movements.
type UpdateProductRequest struct {
	Name        *string          `json:"name"        validate:"omitempty,min=2,max=120"`
	SKU         *string          `json:"sku"         validate:"omitempty,max=80"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Unit        *string          `json:"unit"`
	Price       *decimal.Decimal `json:"price"`
	SupplierID  *string          `json:"supplier_id" validate:"omitempty,uuid"`
}

type ProductFilter struct {
	Name     string `form:"name"`
	SKU      string `form:"sku"`
	Category string `form:"category"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID               string          `json:"id"`
	SKU              string          `json:"sku"`
	Name             string          `json:"name"`
	Description      *string         `json:"description"`
	Category         *string         `json:"category"`
	Unit             string          `json:"unit"`
	Price            decimal.Decimal `json:"price"`
	Quantity         decimal.Decimal `json:"quantity"`
	SupplierID       *string         `json:"supplier_id"`
	LastPurchaseDate *string         `json:"last_purchase_date"`
	LastUsageDate    *string         `json:"last_usage_date"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
