package dto

import (
	"github.com/jhoicas/crudpark-api/internal/domain/entity"
	"github.com/jhoicas/crudpark-api/internal/domain/parking"
)

// NewTariffResponse proyección de una tarifa; nil si no hay tarifa.
func NewTariffResponse(t *entity.Tariff) *TariffResponse {
	if t == nil {
		return nil
	}
	return &TariffResponse{
		ID:             t.ID,
		Description:    t.Description,
		BaseHourlyRate: t.BaseHourlyRate,
		FractionRate:   t.FractionRate,
		DailyCap:       t.DailyCap,
		GraceMinutes:   t.GraceMinutes,
		Active:         t.Active,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

// NewRevenueBuckets proyección de los buckets del agregador. Nunca devuelve nil.
func NewRevenueBuckets(buckets []parking.RevenueBucket) []RevenueBucketDTO {
	out := make([]RevenueBucketDTO, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, RevenueBucketDTO{
			Key:    b.Key,
			Year:   b.Year,
			Period: b.Period,
			Start:  b.Start,
			Total:  b.Total,
			Count:  b.Count,
		})
	}
	return out
}
