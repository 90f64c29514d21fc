package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReceiptItemRequest struct {
	ProductID        string          `json:"product_id"        validate:"required,uuid"`
	Quantity         decimal.Decimal `json:"quantity"          validate:"min=0"`
	QuantityRejected decimal.Decimal `json:"quantity_rejected" validate:"min=0"`
	Condition        string          `json:"condition"`
}

type ReceiveGoodsRequest struct {
	POID         string               `json:"po_id"         validate:"required,uuid"`
	DONumber     string               `json:"do_number"     validate:"required"`
	ReceivedAt   time.Time            `json:"received_at"   validate:"required"`
	Receiver     string               `json:"receiver"      validate:"required"`
	ReceiverSign string               `json:"receiver_sign"`
	Courier      string               `json:"courier"`
	CourierSign  string               `json:"courier_sign"`
	Condition    string               `json:"condition"`
	Notes        *string              `json:"notes"`
	Items        []ReceiptItemRequest `json:"items" validate:"required,min=1,dive"`
}

type ReceiptItemResponse struct {
	ProductID        string          `json:"product_id"`
	Quantity         decimal.Decimal `json:"quantity"`
	QuantityRejected decimal.Decimal `json:"quantity_rejected"`
	Condition        string          `json:"condition"`
}

type GoodsReceiptResponse struct {
	ID         string                `json:"id"`
	POID       string                `json:"po_id"`
	PONumber   string                `json:"po_number"`
	DONumber   string                `json:"do_number"`
	ReceivedAt string                `json:"received_at"`
	Receiver   string                `json:"receiver"`
	Courier    string                `json:"courier"`
	Condition  string                `json:"condition"`
	Items      []ReceiptItemResponse `json:"items"`
	// ReturnPONumber is set when rejected quantities spawned a return PO.
	ReturnPONumber *string `json:"return_po_number"`
}
