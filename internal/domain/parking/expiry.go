package parking

import (
	"time"

	"github.com/jhoicas/crudpark-api/internal/domain/entity"
)

// ExpiryWindowDays días hacia adelante en que una mensualidad se considera próxima a vencer.
const ExpiryWindowDays = 3

// SubscriptionStatus clasificación de una mensualidad respecto a una fecha de referencia.
type SubscriptionStatus string

const (
	StatusActive       SubscriptionStatus = "Active"
	StatusExpiringSoon SubscriptionStatus = "ExpiringSoon"
	StatusExpired      SubscriptionStatus = "Expired"
)

// ClassifySubscription ubica la mensualidad en exactamente uno de los tres estados.
// Las fechas se comparan como fechas calendario UTC.
//
//	Expired:       !activa || fin < ref
//	ExpiringSoon:  activa && ref < fin <= ref+3
//	Active:        el resto (incluye fin == ref)
func ClassifySubscription(sub entity.Subscription, ref time.Time) SubscriptionStatus {
	refDate := DateOf(ref)
	end := DateOf(sub.EndDate)

	if !sub.Active || end.Before(refDate) {
		return StatusExpired
	}
	limit := refDate.AddDate(0, 0, ExpiryWindowDays)
	if end.After(refDate) && !end.After(limit) {
		return StatusExpiringSoon
	}
	return StatusActive
}

// IsCurrent informa si la mensualidad bloquea una nueva para la misma placa:
// activa y con fecha fin >= hoy.
func IsCurrent(sub entity.Subscription, ref time.Time) bool {
	return sub.Active && !DateOf(sub.EndDate).Before(DateOf(ref))
}

// DueForReminder ventana de recordatorio por correo: activa y ref <= fin <= ref+3.
// Incluye el último día de vigencia, a diferencia de ExpiringSoon.
func DueForReminder(sub entity.Subscription, ref time.Time) bool {
	if !IsCurrent(sub, ref) {
		return false
	}
	limit := DateOf(ref).AddDate(0, 0, ExpiryWindowDays)
	return !DateOf(sub.EndDate).After(limit)
}

// StatusCounts conteo de mensualidades por estado; cada una cuenta una sola vez.
type StatusCounts struct {
	Active       int
	ExpiringSoon int
	Expired      int
}

// CountByStatus clasifica todas las mensualidades contra la misma referencia.
func CountByStatus(subs []entity.Subscription, ref time.Time) StatusCounts {
	var c StatusCounts
	for _, s := range subs {
		switch ClassifySubscription(s, ref) {
		case StatusActive:
			c.Active++
		case StatusExpiringSoon:
			c.ExpiringSoon++
		default:
			c.Expired++
		}
	}
	return c
}
