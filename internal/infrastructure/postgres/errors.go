package postgres

import (
	"fmt"

	"github.com/jhoicas/crudpark-api/internal/domain"
)

// mapUniqueViolation traduce los índices únicos del esquema a errores de dominio.
func mapUniqueViolation(err error) error {
	switch constraintName(err) {
	case "tariffs_single_active":
		return fmt.Errorf("%w: ya existe otra tarifa activa", domain.ErrConflict)
	case "tickets_open_plate_uniq":
		return domain.ErrVehicleInside
	case "notifications_subscription_kind_uniq":
		return domain.ErrAlreadyNotified
	case "operators_email_uniq":
		return fmt.Errorf("%w: el email ya está registrado", domain.ErrDuplicate)
	default:
		return fmt.Errorf("%w: %v", domain.ErrDuplicate, err)
	}
}
