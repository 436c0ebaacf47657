package dto

// CreateSupplierRequest body para POST /api/suppliers (también PUT /:id).
type CreateSupplierRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// SupplierResponse proveedor en respuestas.
type SupplierResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}
