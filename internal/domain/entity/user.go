package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleCajero = "cajero"
)

// User representa un operador del sistema (administrador o cajero de punto de venta).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, cajero
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
