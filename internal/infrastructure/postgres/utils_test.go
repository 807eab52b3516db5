package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errRow fila cuyo Scan devuelve siempre el mismo error.
type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

// stubQuerier responde QueryRow con un error fijo y cuenta las consultas.
type stubQuerier struct {
	rowErr  error
	queries int
}

func (s *stubQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	s.queries++
	return pgconn.CommandTag{}, nil
}

func (s *stubQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	s.queries++
	return nil, errors.New("consulta inesperada")
}

func (s *stubQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	s.queries++
	return errRow{err: s.rowErr}
}

var invalidUUID = &pgconn.PgError{Code: "22P02", Message: `invalid input syntax for type uuid: "abc"`}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(pgx.ErrNoRows))
	assert.True(t, isNotFound(fmt.Errorf("get ticket: %w", pgx.ErrNoRows)))
	assert.True(t, isNotFound(invalidUUID))
	assert.True(t, isNotFound(fmt.Errorf("get ticket: %w", invalidUUID)))
	assert.False(t, isNotFound(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isNotFound(errors.New("conexión cerrada")))
}

func TestGetByID_IDMalFormadoEsInexistente(t *testing.T) {
	q := &stubQuerier{rowErr: invalidUUID}
	ctx := context.Background()

	ticket, err := NewTicketRepository(q).GetByID(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, ticket)

	ticket, err = NewTicketRepository(q).GetForUpdate(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, ticket)

	tariff, err := NewTariffRepository(q).GetByID(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, tariff)

	sub, err := NewSubscriptionRepository(q).GetByID(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, sub)

	pay, err := NewPaymentRepository(q).GetByID(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, pay)

	op, err := NewOperatorRepository(q).GetByID(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, op)
}

func TestGetByID_OtrosErroresSePropagan(t *testing.T) {
	boom := errors.New("conexión cerrada")
	_, err := NewTicketRepository(&stubQuerier{rowErr: boom}).GetByID(context.Background(), "abc")
	assert.ErrorIs(t, err, boom)
}

func TestListByTicket_IDMalFormadoNoConsulta(t *testing.T) {
	q := &stubQuerier{}
	list, err := NewPaymentRepository(q).ListByTicket(context.Background(), "abc")
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Zero(t, q.queries)
}
