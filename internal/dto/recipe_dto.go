package dto

import "github.com/shopspring/decimal"

// ExtractRecipesRequest carries the raw material-request lines. The category
// field holds the menu label, e.g. "A. Nasi Goreng Spesial (200 porsi)" —
// ordinal prefix and portion annotation are parsed out during extraction.
type ExtractRecipesRequest struct {
	Items []struct {
		Name     string          `json:"name"     validate:"required"`
		Quantity decimal.Decimal `json:"quantity" validate:"required"`
		Unit     string          `json:"unit"`
		Category string          `json:"category" validate:"required"`
		Notes    *string         `json:"notes"`
	} `json:"items" validate:"required,min=1,dive"`
	Date      *string `json:"date"` // YYYY-MM-DD, defaults to today
	RequestID *string `json:"request_id"`
}

type CookMenuRequest struct {
	Portions int `json:"portions" validate:"required,min=1"`
}

type RecipeItemResponse struct {
	ProductID string          `json:"product_id"`
	Product   string          `json:"product"`
	Quantity  decimal.Decimal `json:"quantity"` // per one portion
	Unit      string          `json:"unit"`
	Available decimal.Decimal `json:"available"`
}

type RecipeResponse struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	DefaultPortion int                  `json:"default_portion"`
	PurchaseDate   string               `json:"purchase_date"`
	RequestID      *string              `json:"request_id"`
	Ingredients    []RecipeItemResponse `json:"ingredients"`
}

type ExtractRecipesResponse struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Names   []string `json:"names"`
}
