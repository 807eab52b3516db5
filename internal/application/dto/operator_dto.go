package dto

import "time"

// OperatorRequest entrada para crear o actualizar un operador.
// Password vacío en update conserva el hash actual.
type OperatorRequest struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"nombre" validate:"required,max=200"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password string  `json:"password" validate:"omitempty,min=8"`
	Role     string  `json:"rol" validate:"omitempty,oneof=admin operador"`
	Active   *bool   `json:"activo"`
}

// OperatorResponse salida de un operador (sin password).
type OperatorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Email     *string   `json:"email"`
	Role      string    `json:"rol"`
	Active    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token    string           `json:"token"`
	Operator OperatorResponse `json:"operador"`
}
