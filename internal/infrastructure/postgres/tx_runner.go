package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/crudpark-api/internal/application/usecase"
	"github.com/jhoicas/crudpark-api/internal/domain/repository"
)

var (
	_ usecase.TariffTxRunner       = (*TxRunner)(nil)
	_ usecase.SubscriptionTxRunner = (*TxRunner)(nil)
	_ usecase.TicketTxRunner       = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// inTx inicia una transacción, ejecuta fn y hace Commit o Rollback.
func (r *TxRunner) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err) {
			return mapUniqueViolation(err)
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunTariff transacción con el repositorio de tarifas (activación atómica).
func (r *TxRunner) RunTariff(ctx context.Context, fn func(tariffs repository.TariffRepository) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewTariffRepository(tx))
	})
}

// RunSubscription transacción con el repositorio de mensualidades (chequeo de placa + escritura).
func (r *TxRunner) RunSubscription(ctx context.Context, fn func(subs repository.SubscriptionRepository) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewSubscriptionRepository(tx))
	})
}

// RunTicket transacción para la salida: ticket bloqueado, pago y tarifa vigente.
func (r *TxRunner) RunTicket(ctx context.Context, fn func(
	tickets repository.TicketRepository,
	payments repository.PaymentRepository,
	tariffs repository.TariffRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewTicketRepository(tx), NewPaymentRepository(tx), NewTariffRepository(tx))
	})
}
