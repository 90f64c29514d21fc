package dto

import "github.com/shopspring/decimal"

// ─── Requests ────────────────────────────────────────────────────────────────

type POItemRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  decimal.Decimal `json:"quantity"   validate:"required"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"min=0"`
	Unit      string          `json:"unit"`
}

type CreatePORequest struct {
	SupplierID string          `json:"supplier_id" validate:"required,uuid"`
	Items      []POItemRequest `json:"items"       validate:"required,min=1,dive"`
	Notes      *string         `json:"notes"`
}

type UpdatePOStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdatePOItemsRequest updates quantities of existing PO items. Only legal
// while the PO is still PENDING.
type UpdatePOItemsRequest struct {
	Items []struct {
		ID       string          `json:"id"       validate:"required,uuid"`
		Quantity decimal.Decimal `json:"quantity" validate:"required"`
	} `json:"items" validate:"required,min=1,dive"`
}

// RequestItem is one line of an incoming purchase request, before it is
// split into per-supplier POs.
type RequestItem struct {
	Name     string          `json:"name"     validate:"required"`
	Quantity decimal.Decimal `json:"quantity" validate:"required"`
	Price    decimal.Decimal `json:"price"    validate:"min=0"`
	Unit     string          `json:"unit"`
	Category string          `json:"category"`
	Notes    *string         `json:"notes"`
}

type GeneratePOsRequest struct {
	RequestNumber string        `json:"request_number" validate:"required"`
	Items         []RequestItem `json:"items"          validate:"required,min=1,dive"`
	DocumentPath  *string       `json:"document_path"`
}

type POFilter struct {
	Status string `form:"status"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type POItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Product   string          `json:"product"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
	Unit      string          `json:"unit"`
}

type POResponse struct {
	ID           string           `json:"id"`
	PONumber     string           `json:"po_number"`
	SupplierID   string           `json:"supplier_id"`
	Supplier     string           `json:"supplier"`
	Date         string           `json:"date"`
	Status       string           `json:"status"`
	TotalAmount  decimal.Decimal  `json:"total_amount"`
	DocumentPath *string          `json:"document_path"`
	Notes        *string          `json:"notes"`
	Items        []POItemResponse `json:"items"`
}

type GeneratePOsResponse struct {
	Count   int      `json:"count"`
	Message string   `json:"message"`
	POIDs   []string `json:"po_ids"`
}
