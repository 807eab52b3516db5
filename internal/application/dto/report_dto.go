package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueBucketDTO total de un período.
type RevenueBucketDTO struct {
	Key    string          `json:"periodo"`
	Year   int             `json:"anio"`
	Period int             `json:"numero"`
	Start  time.Time       `json:"inicio"`
	Total  decimal.Decimal `json:"total"`
	Count  int             `json:"tickets"`
}

// RevenueQuery filtros de GET /api/tickets/ingresos. Fechas "2006-01-02" sobre la fecha
// UTC de salida; Until es inclusiva. Vacío = sin límite.
type RevenueQuery struct {
	Granularity string
	From        string
	Until       string
}

// RevenueReportDTO respuesta de GET /api/tickets/ingresos.
// Sin granularidad se devuelven las tres series.
type RevenueReportDTO struct {
	Daily   []RevenueBucketDTO `json:"diario,omitempty"`
	Weekly  []RevenueBucketDTO `json:"semanal,omitempty"`
	Monthly []RevenueBucketDTO `json:"mensual,omitempty"`
	Total   decimal.Decimal    `json:"total"`
}

// OccupancyDTO respuesta de GET /api/tickets/ocupacion.
type OccupancyDTO struct {
	Inside     int             `json:"dentro"`
	Capacity   int             `json:"capacidad_total"`
	Percentage decimal.Decimal `json:"porcentaje_ocupacion"`
}

// KindComparisonDTO respuesta de GET /api/tickets/comparativa.
type KindComparisonDTO struct {
	Mensual  int `json:"mensualidades"`
	Invitado int `json:"invitados"`
}

// KindCountDTO cantidad de tickets por tipo.
type KindCountDTO struct {
	Kind  string `json:"tipo"`
	Count int    `json:"cantidad"`
}

// DashboardDTO respuesta de GET /api/dashboard.
type DashboardDTO struct {
	VehiclesInside int             `json:"vehiculos_dentro"`
	Occupancy      OccupancyDTO    `json:"ocupacion"`
	TodayRevenue   decimal.Decimal `json:"ingresos_totales"`
	TodayByKind    []KindCountDTO  `json:"ingresos_por_tipo"`

	WeeklyRevenue  []RevenueBucketDTO `json:"ingresos_semana"`
	MonthlyRevenue []RevenueBucketDTO `json:"ingresos_mes"`

	ActiveSubscriptions   int `json:"mensualidades_activas"`
	ExpiringSubscriptions int `json:"proximas_a_vencer"`
	ExpiredSubscriptions  int `json:"vencidas"`

	ActiveTariff *TariffResponse `json:"tarifa_activa"`
	DateLabel    string          `json:"fecha"` // ej: "15 de junio de 2025"
}
