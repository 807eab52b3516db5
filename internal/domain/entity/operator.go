package entity

import "time"

// Roles válidos para Operator.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// Operator persona que registra ingresos y salidas en la portería.
type Operator struct {
	ID           string
	Name         string
	Email        *string
	PasswordHash string // bcrypt; vacío = sin acceso al API
	Role         string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
