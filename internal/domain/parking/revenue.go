package parking

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crudpark-api/internal/domain"
	"github.com/jhoicas/crudpark-api/internal/domain/entity"
)

// Granularity período de agrupación de ingresos.
type Granularity string

const (
	GranularityDay     Granularity = "day"
	GranularityISOWeek Granularity = "isoweek"
	GranularityMonth   Granularity = "month"
)

// Granularities en el orden en que se reportan.
var Granularities = []Granularity{GranularityDay, GranularityISOWeek, GranularityMonth}

// ParseGranularity acepta los nombres en inglés y en español.
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day", "dia", "día", "diario":
		return GranularityDay, nil
	case "isoweek", "week", "semana", "semanal":
		return GranularityISOWeek, nil
	case "month", "mes", "mensual":
		return GranularityMonth, nil
	}
	return "", fmt.Errorf("%w: granularidad %q no soportada", domain.ErrInvalidInput, s)
}

// RevenueBucket total de ingresos de un período.
// Key: "2006-01-02" (día), "2006-W01" (semana ISO) o "2006-01" (mes).
type RevenueBucket struct {
	Key    string
	Year   int // año calendario, o año ISO para semanas
	Period int // día del año, semana ISO o mes
	Start  time.Time
	Total  decimal.Decimal
	Count  int
}

// AggregateRevenue agrupa los tickets cerrados con valor > 0 por la fecha UTC de salida
// y suma sus valores con aritmética decimal exacta. La salida va en orden cronológico.
func AggregateRevenue(tickets []entity.Ticket, g Granularity) []RevenueBucket {
	byKey := make(map[string]*RevenueBucket)
	for i := range tickets {
		t := &tickets[i]
		if t.ExitTime == nil || !t.AmountDue.IsPositive() {
			continue
		}
		b := bucketFor(NormalizeUTC(*t.ExitTime), g)
		acc, ok := byKey[b.Key]
		if !ok {
			acc = &b
			acc.Total = decimal.Zero
			byKey[b.Key] = acc
		}
		acc.Total = acc.Total.Add(t.AmountDue)
		acc.Count++
	}

	out := make([]RevenueBucket, 0, len(byKey))
	for _, b := range byKey {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Period < out[j].Period
	})
	return out
}

// TotalRevenue suma de los buckets.
func TotalRevenue(buckets []RevenueBucket) decimal.Decimal {
	total := decimal.Zero
	for _, b := range buckets {
		total = total.Add(b.Total)
	}
	return total
}

func bucketFor(t time.Time, g Granularity) RevenueBucket {
	switch g {
	case GranularityISOWeek:
		year, week := t.ISOWeek()
		return RevenueBucket{
			Key:    fmt.Sprintf("%04d-W%02d", year, week),
			Year:   year,
			Period: week,
			Start:  isoWeekStart(t),
		}
	case GranularityMonth:
		return RevenueBucket{
			Key:    t.Format("2006-01"),
			Year:   t.Year(),
			Period: int(t.Month()),
			Start:  time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC),
		}
	default:
		return RevenueBucket{
			Key:    t.Format("2006-01-02"),
			Year:   t.Year(),
			Period: t.YearDay(),
			Start:  DateOf(t),
		}
	}
}

// isoWeekStart lunes de la semana ISO que contiene t.
func isoWeekStart(t time.Time) time.Time {
	d := DateOf(t)
	offset := (int(d.Weekday()) + 6) % 7 // lunes = 0
	return d.AddDate(0, 0, -offset)
}

// CountByKind cuenta tickets por tipo (insensible a mayúsculas). Tipos vacíos se
// agrupan como "sin tipo".
func CountByKind(tickets []entity.Ticket) map[string]int {
	out := make(map[string]int)
	for _, t := range tickets {
		kind := strings.ToLower(strings.TrimSpace(t.Kind))
		if kind == "" {
			kind = "sin tipo"
		}
		out[kind]++
	}
	return out
}
