package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/crudpark-api/internal/domain"
	"github.com/jhoicas/crudpark-api/internal/domain/entity"
	"github.com/jhoicas/crudpark-api/internal/domain/repository"
)

var _ repository.TicketRepository = (*TicketRepo)(nil)

const ticketColumns = `id, plate, COALESCE(kind, ''), entry_time, exit_time, amount_due, paid, operator_id, qr_code, tariff_id`

// TicketRepo implementación de TicketRepository sobre PostgreSQL (usable con pool o tx).
type TicketRepo struct {
	q Querier
}

// NewTicketRepository construye el adaptador de tickets. Pasar pool o tx (Querier).
func NewTicketRepository(q Querier) *TicketRepo {
	return &TicketRepo{q: q}
}

// Create inserta el ticket de ingreso.
func (r *TicketRepo) Create(ctx context.Context, t *entity.Ticket) error {
	query := `
		INSERT INTO tickets (id, plate, kind, entry_time, exit_time, amount_due, paid, operator_id, qr_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Plate, t.Kind, t.EntryTime.UTC(), utcPtr(t.ExitTime), t.AmountDue, t.Paid, t.OperatorID, t.QRCode,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return mapUniqueViolation(err)
		}
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

// GetByID obtiene un ticket por ID.
func (r *TicketRepo) GetByID(ctx context.Context, id string) (*entity.Ticket, error) {
	return r.getOne(ctx, "get ticket", `SELECT `+ticketColumns+` FROM tickets WHERE id = $1`, id)
}

// GetForUpdate obtiene el ticket y bloquea la fila para update (SELECT FOR UPDATE).
func (r *TicketRepo) GetForUpdate(ctx context.Context, id string) (*entity.Ticket, error) {
	return r.getOne(ctx, "get ticket for update", `SELECT `+ticketColumns+` FROM tickets WHERE id = $1 FOR UPDATE`, id)
}

// GetOpenByPlate ticket abierto de la placa.
func (r *TicketRepo) GetOpenByPlate(ctx context.Context, plate string) (*entity.Ticket, error) {
	return r.getOne(ctx, "get open ticket",
		`SELECT `+ticketColumns+` FROM tickets WHERE upper(plate) = upper($1) AND exit_time IS NULL LIMIT 1`, plate)
}

// Close registra la salida. La condición exit_time IS NULL hace que un segundo cierre no afecte filas.
func (r *TicketRepo) Close(ctx context.Context, t *entity.Ticket) error {
	if t.ExitTime == nil {
		return fmt.Errorf("%w: falta la fecha de salida", domain.ErrInvalidInput)
	}
	query := `
		UPDATE tickets SET exit_time = $2, amount_due = $3, paid = $4, tariff_id = $5
		WHERE id = $1 AND exit_time IS NULL`
	tag, err := r.q.Exec(ctx, query, t.ID, t.ExitTime.UTC(), t.AmountDue, t.Paid, t.TariffID)
	if err != nil {
		return fmt.Errorf("close ticket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTicketClosed
	}
	return nil
}

// List lista tickets paginados, más recientes primero.
func (r *TicketRepo) List(ctx context.Context, limit, offset int) ([]*entity.Ticket, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+ticketColumns+` FROM tickets ORDER BY entry_time DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// ListAll todos los tickets, más recientes primero.
func (r *TicketRepo) ListAll(ctx context.Context) ([]entity.Ticket, error) {
	return r.listValues(ctx, "list all tickets", `SELECT `+ticketColumns+` FROM tickets ORDER BY entry_time DESC`)
}

// ListClosed tickets con salida y valor > 0 dentro del rango opcional de salida.
func (r *TicketRepo) ListClosed(ctx context.Context, f repository.TicketFilter) ([]entity.Ticket, error) {
	var (
		where = []string{"exit_time IS NOT NULL", "amount_due > 0"}
		args  []any
	)
	if from := nullableTime(f.ExitFrom); from != nil {
		args = append(args, *from)
		where = append(where, fmt.Sprintf("exit_time >= $%d", len(args)))
	}
	if to := nullableTime(f.ExitTo); to != nil {
		args = append(args, *to)
		where = append(where, fmt.Sprintf("exit_time < $%d", len(args)))
	}
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE ` + strings.Join(where, " AND ") + ` ORDER BY exit_time`
	return r.listValues(ctx, "list closed tickets", query, args...)
}

// ListExitedBetween tickets con salida en [from, to).
func (r *TicketRepo) ListExitedBetween(ctx context.Context, from, to time.Time) ([]entity.Ticket, error) {
	return r.listValues(ctx, "list exited tickets",
		`SELECT `+ticketColumns+` FROM tickets WHERE exit_time >= $1 AND exit_time < $2 ORDER BY exit_time`,
		from.UTC(), to.UTC())
}

// CountInside cuenta los tickets sin salida.
func (r *TicketRepo) CountInside(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM tickets WHERE exit_time IS NULL`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count inside: %w", err)
	}
	return n, nil
}

// CountByKind conteo histórico por tipo en minúsculas.
func (r *TicketRepo) CountByKind(ctx context.Context) (map[string]int, error) {
	rows, err := r.q.Query(ctx, `SELECT lower(COALESCE(kind, '')), COUNT(*) FROM tickets GROUP BY 1`)
	if err != nil {
		return nil, fmt.Errorf("count by kind: %w", err)
	}
	defer rows.Close()
	out := make(map[string]int)
	for rows.Next() {
		var (
			kind string
			n    int
		)
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("scan kind count: %w", err)
		}
		out[kind] = n
	}
	return out, rows.Err()
}

func (r *TicketRepo) getOne(ctx context.Context, op, query string, args ...any) (*entity.Ticket, error) {
	t, err := scanTicket(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return t, nil
}

func (r *TicketRepo) listValues(ctx context.Context, op, query string, args ...any) ([]entity.Ticket, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []entity.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		list = append(list, *t)
	}
	return list, rows.Err()
}

func scanTicket(row pgx.Row) (*entity.Ticket, error) {
	var t entity.Ticket
	if err := row.Scan(
		&t.ID, &t.Plate, &t.Kind, &t.EntryTime, &t.ExitTime, &t.AmountDue, &t.Paid, &t.OperatorID, &t.QRCode, &t.TariffID,
	); err != nil {
		return nil, err
	}
	t.EntryTime = t.EntryTime.UTC()
	t.ExitTime = utcPtr(t.ExitTime)
	return &t, nil
}
