package dto

type SupplierRequest struct {
	Name    string `json:"name"    validate:"required,min=2,max=120"`
	Contact string `json:"contact"`
	Address string `json:"address"`
	Email   string `json:"email"   validate:"omitempty,email"`
	Phone   string `json:"phone"`
}

type SupplierResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}
