package repository

import (
	"context"
	"time"

	"github.com/jhoicas/crudpark-api/internal/domain/entity"
)

// TicketFilter rango opcional sobre la fecha de salida. Tiempos cero = sin límite.
type TicketFilter struct {
	ExitFrom time.Time
	ExitTo   time.Time
}

// TicketRepository define el puerto de persistencia para tickets.
type TicketRepository interface {
	// Create inserta el ticket de ingreso. Devuelve domain.ErrVehicleInside si la placa
	// ya tiene un ticket abierto (índice único parcial).
	Create(ctx context.Context, t *entity.Ticket) error
	GetByID(ctx context.Context, id string) (*entity.Ticket, error)

	// GetForUpdate obtiene el ticket y bloquea la fila (SELECT ... FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.Ticket, error)

	// GetOpenByPlate ticket sin salida para la placa (insensible a mayúsculas).
	GetOpenByPlate(ctx context.Context, plate string) (*entity.Ticket, error)

	// Close registra salida, valor y pagado. Solo afecta tickets abiertos;
	// si ya tenía salida devuelve domain.ErrTicketClosed.
	Close(ctx context.Context, t *entity.Ticket) error

	List(ctx context.Context, limit, offset int) ([]*entity.Ticket, error)

	// ListAll todos los tickets, más recientes primero (exportación).
	ListAll(ctx context.Context) ([]entity.Ticket, error)

	// ListClosed tickets con salida y valor > 0 dentro del filtro.
	ListClosed(ctx context.Context, f TicketFilter) ([]entity.Ticket, error)

	// ListExitedBetween tickets con salida en [from, to), sin importar el valor.
	ListExitedBetween(ctx context.Context, from, to time.Time) ([]entity.Ticket, error)

	CountInside(ctx context.Context) (int, error)

	// CountByKind conteo histórico por tipo, en minúsculas.
	CountByKind(ctx context.Context) (map[string]int, error)
}
