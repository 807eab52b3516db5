package entity

import "time"

// Subscription mensualidad: pase de tarifa plana por un período para una placa.
// Al cancelarse se desactiva, nunca se borra.
type Subscription struct {
	ID           string
	CustomerName string
	Email        *string
	Plate        string
	StartDate    time.Time // fecha (medianoche UTC)
	EndDate      time.Time // fecha (medianoche UTC)
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasEmail informa si la mensualidad tiene un correo al cual notificar.
func (s *Subscription) HasEmail() bool {
	return s.Email != nil && *s.Email != ""
}
