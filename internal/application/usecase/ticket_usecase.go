package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crudpark-api/internal/application/dto"
	"github.com/jhoicas/crudpark-api/internal/application/ports"
	"github.com/jhoicas/crudpark-api/internal/domain"
	"github.com/jhoicas/crudpark-api/internal/domain/entity"
	"github.com/jhoicas/crudpark-api/internal/domain/parking"
	"github.com/jhoicas/crudpark-api/internal/domain/repository"
)

// TicketUseCase ingreso y salida de vehículos.
type TicketUseCase struct {
	tickets  repository.TicketRepository
	subs     repository.SubscriptionRepository
	payments repository.PaymentRepository
	tariffs  repository.TariffRepository
	tx       TicketTxRunner
	receipts ports.ReceiptGenerator
	clock    ports.Clock
	observer ports.ParkingObserver
}

// TicketDeps dependencias del caso de uso de tickets.
type TicketDeps struct {
	Tickets  repository.TicketRepository
	Subs     repository.SubscriptionRepository
	Payments repository.PaymentRepository
	Tariffs  repository.TariffRepository
	Tx       TicketTxRunner
	Receipts ports.ReceiptGenerator
	Clock    ports.Clock
	Observer ports.ParkingObserver
}

// NewTicketUseCase construye el caso de uso.
func NewTicketUseCase(d TicketDeps) *TicketUseCase {
	if d.Observer == nil {
		d.Observer = ports.NopObserver{}
	}
	if d.Clock == nil {
		d.Clock = ports.SystemClock{}
	}
	return &TicketUseCase{
		tickets:  d.Tickets,
		subs:     d.Subs,
		payments: d.Payments,
		tariffs:  d.Tariffs,
		tx:       d.Tx,
		receipts: d.Receipts,
		clock:    d.Clock,
		observer: d.Observer,
	}
}

// NormalizePlate placa sin espacios y en mayúsculas.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.Join(strings.Fields(plate), ""))
}

// RegisterEntry abre un ticket para la placa. El tipo se deduce de la mensualidad vigente
// cuando no viene en la petición.
func (uc *TicketUseCase) RegisterEntry(ctx context.Context, operatorID string, in dto.EntryRequest) (*dto.TicketResponse, error) {
	plate := NormalizePlate(in.Plate)
	if plate == "" {
		return nil, fmt.Errorf("%w: la placa es obligatoria", domain.ErrInvalidInput)
	}
	open, err := uc.tickets.GetOpenByPlate(ctx, plate)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, domain.ErrVehicleInside
	}

	now := uc.clock.Now()
	current, err := uc.subs.FindCurrentByPlate(ctx, plate, now)
	if err != nil {
		return nil, err
	}
	kind := strings.ToLower(strings.TrimSpace(in.Kind))
	switch {
	case kind == "" && current != nil:
		kind = entity.TicketKindMensual
	case kind == "":
		kind = entity.TicketKindInvitado
	case kind == entity.TicketKindMensual && current == nil:
		return nil, fmt.Errorf("%w: la placa %s no tiene mensualidad vigente", domain.ErrInvalidInput, plate)
	}

	qr := uuid.New().String()
	t := &entity.Ticket{
		ID:        uuid.New().String(),
		Plate:     plate,
		Kind:      kind,
		EntryTime: now,
		AmountDue: decimal.Zero,
		QRCode:    &qr,
	}
	if operatorID != "" {
		t.OperatorID = &operatorID
	}
	if err := uc.tickets.Create(ctx, t); err != nil {
		return nil, err
	}
	uc.observer.VehicleEntered(kind)
	return toTicketResponse(t), nil
}

// RegisterExit cierra el ticket con la tarifa activa. Bloquea la fila, calcula el valor,
// registra el pago (si valor > 0) y marca pagado en una sola transacción.
// Los tickets "mensual" no se cobran.
func (uc *TicketUseCase) RegisterExit(ctx context.Context, id string, in dto.ExitRequest) (*dto.ExitResponse, error) {
	method := strings.ToLower(strings.TrimSpace(in.PaymentMethod))
	switch method {
	case "":
		method = entity.PaymentMethodCash
	case entity.PaymentMethodCash, entity.PaymentMethodCard, entity.PaymentMethodTransfer:
	default:
		return nil, fmt.Errorf("%w: método de pago %q no soportado", domain.ErrInvalidInput, in.PaymentMethod)
	}

	var (
		closed  *entity.Ticket
		payment *entity.Payment
		minutes int64
	)
	err := uc.tx.RunTicket(ctx, func(tickets repository.TicketRepository, payments repository.PaymentRepository, tariffs repository.TariffRepository) error {
		t, err := tickets.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.ErrNotFound
		}
		if !t.IsInside() {
			return domain.ErrTicketClosed
		}

		exit := uc.clock.Now()
		minutes, err = parking.DurationMinutes(t.EntryTime, exit)
		if err != nil {
			return err
		}

		amount := decimal.Zero
		if !strings.EqualFold(t.Kind, entity.TicketKindMensual) {
			tariff, err := tariffs.GetActive(ctx)
			if err != nil {
				return err
			}
			if tariff == nil {
				return domain.ErrNoActiveTariff
			}
			amount, err = parking.ComputeFee(t.EntryTime, exit, *tariff)
			if err != nil {
				return err
			}
			tariffID := tariff.ID
			t.TariffID = &tariffID
		}

		t.ExitTime = &exit
		t.AmountDue = amount
		t.Paid = true
		if err := tickets.Close(ctx, t); err != nil {
			return err
		}

		if amount.IsPositive() {
			ticketID := t.ID
			payment = &entity.Payment{
				ID:       uuid.New().String(),
				TicketID: &ticketID,
				Method:   method,
				Amount:   amount,
				PaidAt:   exit,
			}
			if err := payments.Create(ctx, payment); err != nil {
				return err
			}
		}
		closed = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.observer.VehicleExited(closed.Kind, closed.AmountDue)
	return &dto.ExitResponse{
		Ticket:        *toTicketResponse(closed),
		DurationMin:   minutes,
		Payment:       toPaymentResponse(payment),
		AmountPrinted: FormatCOP(closed.AmountDue),
	}, nil
}

// GetByID obtiene un ticket por ID.
func (uc *TicketUseCase) GetByID(ctx context.Context, id string) (*dto.TicketResponse, error) {
	t, err := uc.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return toTicketResponse(t), nil
}

// List lista tickets, más recientes primero.
func (uc *TicketUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.TicketResponse, error) {
	page.DefaultPage()
	list, err := uc.tickets.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TicketResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTicketResponse(t))
	}
	return items, nil
}

// Receipt genera el PDF de salida de un ticket cerrado. Sin tarifa aplicada
// (mensualidades) el comprobante no imprime el bloque de tarifa.
func (uc *TicketUseCase) Receipt(ctx context.Context, id string) ([]byte, error) {
	t, err := uc.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if t.IsInside() {
		return nil, fmt.Errorf("%w: el ticket aún no registra salida", domain.ErrConflict)
	}
	pays, err := uc.payments.ListByTicket(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	var pay *dto.PaymentResponse
	if len(pays) > 0 {
		pay = toPaymentResponse(pays[0])
	}
	// La tarifa impresa es la que se aplicó en la salida, no la activa hoy.
	var tariff *entity.Tariff
	if t.TariffID != nil {
		if tariff, err = uc.tariffs.GetByID(ctx, *t.TariffID); err != nil {
			return nil, err
		}
	}
	return uc.receipts.Generate(*toTicketResponse(t), pay, dto.NewTariffResponse(tariff))
}
