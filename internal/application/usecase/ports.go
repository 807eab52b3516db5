package usecase

import (
	"context"

	"github.com/jhoicas/crudpark-api/internal/domain/repository"
)

// TariffTxRunner ejecuta fn dentro de una transacción con el repositorio de tarifas atado a ella.
// Garantiza que desactivar la tarifa anterior y activar la nueva sea atómico.
type TariffTxRunner interface {
	RunTariff(ctx context.Context, fn func(tariffs repository.TariffRepository) error) error
}

// SubscriptionTxRunner transacción para el chequeo de placa vigente + escritura.
type SubscriptionTxRunner interface {
	RunSubscription(ctx context.Context, fn func(subs repository.SubscriptionRepository) error) error
}

// TicketTxRunner transacción para la salida: bloqueo del ticket, cierre y pago.
type TicketTxRunner interface {
	RunTicket(ctx context.Context, fn func(
		tickets repository.TicketRepository,
		payments repository.PaymentRepository,
		tariffs repository.TariffRepository,
	) error) error
}
