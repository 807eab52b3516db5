package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jhoicas/crudpark-api/internal/application/dto"
	"github.com/jhoicas/crudpark-api/internal/application/ports"
	"github.com/jhoicas/crudpark-api/internal/domain"
	"github.com/jhoicas/crudpark-api/internal/domain/entity"
	"github.com/jhoicas/crudpark-api/internal/domain/parking"
	"github.com/jhoicas/crudpark-api/internal/domain/repository"
)

// ReportUseCase reportes sobre tickets: ingresos, ocupación, comparativa y exportación.
// Toda la agregación la hace el paquete parking; aquí solo se consulta y se arma la respuesta.
type ReportUseCase struct {
	tickets  repository.TicketRepository
	capacity int
	observer ports.ParkingObserver
}

// NewReportUseCase construye el caso de uso. capacity = cupos totales del parqueadero.
func NewReportUseCase(tickets repository.TicketRepository, capacity int, observer ports.ParkingObserver) *ReportUseCase {
	if observer == nil {
		observer = ports.NopObserver{}
	}
	return &ReportUseCase{tickets: tickets, capacity: capacity, observer: observer}
}

// Revenue agrupa los ingresos por fecha de salida. Con granularidad vacía devuelve las tres series.
func (uc *ReportUseCase) Revenue(ctx context.Context, q dto.RevenueQuery) (*dto.RevenueReportDTO, error) {
	grans := parking.Granularities
	if q.Granularity != "" {
		g, err := parking.ParseGranularity(q.Granularity)
		if err != nil {
			return nil, err
		}
		grans = []parking.Granularity{g}
	}
	filter, err := exitFilter(q.From, q.Until)
	if err != nil {
		return nil, err
	}

	tickets, err := uc.tickets.ListClosed(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := &dto.RevenueReportDTO{}
	for i, g := range grans {
		buckets := parking.AggregateRevenue(tickets, g)
		if i == 0 {
			out.Total = parking.TotalRevenue(buckets)
		}
		switch g {
		case parking.GranularityDay:
			out.Daily = dto.NewRevenueBuckets(buckets)
		case parking.GranularityISOWeek:
			out.Weekly = dto.NewRevenueBuckets(buckets)
		case parking.GranularityMonth:
			out.Monthly = dto.NewRevenueBuckets(buckets)
		}
	}
	return out, nil
}

// exitFilter convierte el rango de fechas [desde, hasta] en [ExitFrom, ExitTo).
func exitFilter(from, until string) (repository.TicketFilter, error) {
	var f repository.TicketFilter
	if from != "" {
		d, err := time.Parse(dto.DateLayout, from)
		if err != nil {
			return f, fmt.Errorf("%w: fecha desde %q no válida", domain.ErrInvalidInput, from)
		}
		f.ExitFrom = d
	}
	if until != "" {
		d, err := time.Parse(dto.DateLayout, until)
		if err != nil {
			return f, fmt.Errorf("%w: fecha hasta %q no válida", domain.ErrInvalidInput, until)
		}
		f.ExitTo = d.AddDate(0, 0, 1)
	}
	if !f.ExitFrom.IsZero() && !f.ExitTo.IsZero() && !f.ExitFrom.Before(f.ExitTo) {
		return f, fmt.Errorf("%w: la fecha desde es posterior a hasta", domain.ErrInvalidInput)
	}
	return f, nil
}

// Occupancy vehículos dentro contra la capacidad configurada.
func (uc *ReportUseCase) Occupancy(ctx context.Context) (*dto.OccupancyDTO, error) {
	inside, err := uc.tickets.CountInside(ctx)
	if err != nil {
		return nil, err
	}
	uc.observer.InsideObserved(inside)
	ratio, err := parking.OccupancyRatio(inside, uc.capacity)
	if err != nil {
		return nil, err
	}
	return &dto.OccupancyDTO{Inside: inside, Capacity: uc.capacity, Percentage: ratio}, nil
}

// Comparison tickets históricos de mensualidad contra invitados.
func (uc *ReportUseCase) Comparison(ctx context.Context) (*dto.KindComparisonDTO, error) {
	counts, err := uc.tickets.CountByKind(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.KindComparisonDTO{
		Mensual:  counts[entity.TicketKindMensual],
		Invitado: counts[entity.TicketKindInvitado],
	}, nil
}

// Export escribe todos los tickets con el formato del exportador.
func (uc *ReportUseCase) Export(ctx context.Context, w io.Writer, exp ports.TicketExporter) error {
	tickets, err := uc.tickets.ListAll(ctx)
	if err != nil {
		return err
	}
	rows := make([]dto.TicketExportRow, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, dto.TicketExportRow{
			ID:        t.ID,
			Plate:     t.Plate,
			Kind:      t.Kind,
			EntryTime: t.EntryTime,
			ExitTime:  t.ExitTime,
			AmountDue: t.AmountDue,
			Paid:      t.Paid,
		})
	}
	return exp.Export(w, rows)
}
