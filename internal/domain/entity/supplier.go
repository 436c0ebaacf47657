package entity

import "time"

// Supplier representa un proveedor (compras de mercancía).
type Supplier struct {
	ID        int64
	Name      string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
