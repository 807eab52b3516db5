package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// Errores específicos del parqueadero. Envuelven a los genéricos para que
// errors.Is(err, ErrNotFound) / ErrInvalidInput / ErrConflict sigan funcionando.
var (
	ErrNoActiveTariff   = fmt.Errorf("%w: no hay una tarifa activa actualmente", ErrNotFound)
	ErrNegativeDuration = fmt.Errorf("%w: la salida es anterior al ingreso", ErrInvalidInput)
	ErrIDMismatch       = fmt.Errorf("%w: el id de la ruta no coincide con el del cuerpo", ErrInvalidInput)
	ErrPlateHasActive   = fmt.Errorf("%w: ya existe una mensualidad vigente para esta placa", ErrConflict)
	ErrVehicleInside    = fmt.Errorf("%w: el vehículo ya se encuentra dentro del parqueadero", ErrConflict)
	ErrTicketClosed     = fmt.Errorf("%w: el ticket ya registra salida", ErrConflict)
	ErrAlreadyNotified  = fmt.Errorf("%w: la notificación ya fue enviada previamente", ErrDuplicate)
)
