package dto

import "time"

// SubscriptionRequest entrada para crear o actualizar una mensualidad.
// Las fechas van en formato 2006-01-02.
type SubscriptionRequest struct {
	ID           string  `json:"id,omitempty"`
	CustomerName string  `json:"nombre_cliente" validate:"required,max=200"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Plate        string  `json:"placa" validate:"required,max=20"`
	StartDate    string  `json:"fecha_inicio" validate:"required"`
	EndDate      string  `json:"fecha_fin" validate:"required"`
	Active       *bool   `json:"activa"`
}

// SubscriptionResponse salida de una mensualidad con su estado calculado.
type SubscriptionResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"nombre_cliente"`
	Email        *string   `json:"email"`
	Plate        string    `json:"placa"`
	StartDate    string    `json:"fecha_inicio"`
	EndDate      string    `json:"fecha_fin"`
	Active       bool      `json:"activa"`
	Status       string    `json:"estado"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ReminderResult resultado del envío masivo de recordatorios.
type ReminderResult struct {
	Count  int `json:"cantidad"` // mensualidades dentro de la ventana, con o sin correo
	Sent   int `json:"enviados"`
	Failed int `json:"fallidos"`
}
