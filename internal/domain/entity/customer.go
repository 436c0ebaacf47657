package entity

import "time"

// Customer representa un cliente registrado. Las ventas de mostrador
// pueden ir sin cliente (venta a "consumidor final").
type Customer struct {
	ID        int64
	Name      string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
