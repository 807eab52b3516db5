// Package analytics contiene el caso de uso del Dashboard del parqueadero.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/crudpark-api/internal/application/dto"
	"github.com/jhoicas/crudpark-api/internal/application/ports"
	"github.com/jhoicas/crudpark-api/internal/domain/entity"
	"github.com/jhoicas/crudpark-api/internal/domain/parking"
	"github.com/jhoicas/crudpark-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen operativo: ocupación, ingresos y mensualidades.
//
// Fuente de datos: repositorios de tickets, mensualidades y tarifas (solo lectura).
// Los cálculos los hace el paquete parking con la misma referencia UTC.
type DashboardUseCase struct {
	tickets  repository.TicketRepository
	subs     repository.SubscriptionRepository
	tariffs  repository.TariffRepository
	capacity int
	clock    ports.Clock
	observer ports.ParkingObserver
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	tickets repository.TicketRepository,
	subs repository.SubscriptionRepository,
	tariffs repository.TariffRepository,
	capacity int,
	clock ports.Clock,
	observer ports.ParkingObserver,
) *DashboardUseCase {
	if observer == nil {
		observer = ports.NopObserver{}
	}
	return &DashboardUseCase{
		tickets:  tickets,
		subs:     subs,
		tariffs:  tariffs,
		capacity: capacity,
		clock:    clock,
		observer: observer,
	}
}

// GetSummary construye el DashboardDTO.
//
// Cinco consultas en paralelo:
//  1. CountInside                → VehiclesInside + Occupancy
//  2. ListExitedBetween(hoy)     → TodayRevenue + TodayByKind
//  3. ListClosed(histórico)      → WeeklyRevenue + MonthlyRevenue
//  4. ListAll mensualidades      → partición Active / ExpiringSoon / Expired
//  5. GetActive tarifa           → ActiveTariff (puede ser nil)
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardDTO, error) {
	now := uc.clock.Now()
	todayStart, todayEnd := parking.DayRange(now)

	// ── Goroutines para paralelizar las consultas DB ──────────────────────────
	type countResult struct {
		n   int
		err error
	}
	type ticketsResult struct {
		tickets []entity.Ticket
		err     error
	}
	type subsResult struct {
		subs []entity.Subscription
		err  error
	}
	type tariffResult struct {
		tariff *entity.Tariff
		err    error
	}

	insideCh := make(chan countResult, 1)
	todayCh := make(chan ticketsResult, 1)
	closedCh := make(chan ticketsResult, 1)
	subsCh := make(chan subsResult, 1)
	tariffCh := make(chan tariffResult, 1)

	go func() {
		n, err := uc.tickets.CountInside(ctx)
		insideCh <- countResult{n, err}
	}()
	go func() {
		t, err := uc.tickets.ListExitedBetween(ctx, todayStart, todayEnd)
		todayCh <- ticketsResult{t, err}
	}()
	go func() {
		t, err := uc.tickets.ListClosed(ctx, repository.TicketFilter{})
		closedCh <- ticketsResult{t, err}
	}()
	go func() {
		s, err := uc.subs.ListAll(ctx)
		subsCh <- subsResult{s, err}
	}()
	go func() {
		t, err := uc.tariffs.GetActive(ctx)
		tariffCh <- tariffResult{t, err}
	}()

	inside := <-insideCh
	today := <-todayCh
	closed := <-closedCh
	subs := <-subsCh
	tariff := <-tariffCh

	if inside.err != nil {
		return nil, fmt.Errorf("dashboard: vehículos dentro: %w", inside.err)
	}
	if today.err != nil {
		return nil, fmt.Errorf("dashboard: tickets de hoy: %w", today.err)
	}
	if closed.err != nil {
		return nil, fmt.Errorf("dashboard: ingresos: %w", closed.err)
	}
	if subs.err != nil {
		return nil, fmt.Errorf("dashboard: mensualidades: %w", subs.err)
	}
	if tariff.err != nil {
		return nil, fmt.Errorf("dashboard: tarifa activa: %w", tariff.err)
	}

	// ── Ocupación ──────────────────────────────────────────────────────────────
	uc.observer.InsideObserved(inside.n)
	ratio, err := parking.OccupancyRatio(inside.n, uc.capacity)
	if err != nil {
		return nil, fmt.Errorf("dashboard: ocupación: %w", err)
	}

	// ── Ingresos ───────────────────────────────────────────────────────────────
	todayBuckets := parking.AggregateRevenue(today.tickets, parking.GranularityDay)
	weekly := parking.AggregateRevenue(closed.tickets, parking.GranularityISOWeek)
	monthly := parking.AggregateRevenue(closed.tickets, parking.GranularityMonth)

	// ── Mensualidades ──────────────────────────────────────────────────────────
	status := parking.CountByStatus(subs.subs, now)

	return &dto.DashboardDTO{
		VehiclesInside: inside.n,
		Occupancy: dto.OccupancyDTO{
			Inside:     inside.n,
			Capacity:   uc.capacity,
			Percentage: ratio,
		},
		TodayRevenue:          parking.TotalRevenue(todayBuckets),
		TodayByKind:           kindCounts(today.tickets),
		WeeklyRevenue:         dto.NewRevenueBuckets(weekly),
		MonthlyRevenue:        dto.NewRevenueBuckets(monthly),
		ActiveSubscriptions:   status.Active,
		ExpiringSubscriptions: status.ExpiringSoon,
		ExpiredSubscriptions:  status.Expired,
		ActiveTariff:          dto.NewTariffResponse(tariff.tariff),
		DateLabel:             dateLabel(now),
	}, nil
}

func kindCounts(tickets []entity.Ticket) []dto.KindCountDTO {
	counts := parking.CountByKind(tickets)
	out := make([]dto.KindCountDTO, 0, len(counts))
	for k, n := range counts {
		out = append(out, dto.KindCountDTO{Kind: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

// dateLabel devuelve una etiqueta legible de la fecha, ej: "15 de junio de 2025".
func dateLabel(t time.Time) string {
	months := [...]string{
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), months[t.Month()-1], t.Year())
}
