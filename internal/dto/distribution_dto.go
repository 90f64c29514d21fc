package dto

import "time"

type SubmitQCRequest struct {
	Status   string  `json:"status" validate:"required,oneof=PASS REJECT"`
	QCBy     string  `json:"qc_by"  validate:"required"`
	Notes    string  `json:"notes"`
	PhotoURL *string `json:"photo_url"`
}

type ShipItemRequest struct {
	SenderName   string     `json:"sender_name"   validate:"required"`
	Destination  string     `json:"destination"   validate:"required"`
	ReceiverName string     `json:"receiver_name" validate:"required"`
	ArrivalTime  *time.Time `json:"arrival_time"`
	SenderSign   string     `json:"sender_sign"`
	ReceiverSign string     `json:"receiver_sign"`
	ShippedAt    *time.Time `json:"shipped_at"`
}

type DeliveryResponse struct {
	ID       string `json:"id"`
	MenuName string `json:"menu_name"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status"`
	CookDate string `json:"cook_date"`

	QCStatus *string `json:"qc_status"`
	QCBy     *string `json:"qc_by"`
	QCDate   *string `json:"qc_date"`
	QCNotes  *string `json:"qc_notes"`
	PhotoURL *string `json:"photo_url"`

	ShippedAt    *string `json:"shipped_at"`
	SenderName   *string `json:"sender_name"`
	ReceiverName *string `json:"receiver_name"`
	Destination  *string `json:"destination"`
	ArrivalTime  *string `json:"arrival_time"`
}
