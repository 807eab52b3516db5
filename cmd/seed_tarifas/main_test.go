package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

const sampleCSV = `descripcion;valor_base_hora;valor_fraccion;tope_diario;tiempo_gracia_min;activa
Carros;3.000,00;1000;25000;15;sí
Motos nocturna;1500.5;500;0;45;no
`

func TestReadTariffs_ValoresYGracia(t *testing.T) {
	tariffs, err := readTariffs(strings.NewReader(sampleCSV), false)
	require.NoError(t, err)
	require.Len(t, tariffs, 2)

	assert.Equal(t, "Carros", tariffs[0].Description)
	assert.Equal(t, "3000", tariffs[0].BaseHourlyRate.String())
	assert.Equal(t, "1000", tariffs[0].FractionRate.String())
	assert.Equal(t, 30, tariffs[0].GraceMinutes, "la gracia se sube al mínimo")
	assert.True(t, tariffs[0].Active)

	assert.Equal(t, "1500.5", tariffs[1].BaseHourlyRate.String())
	assert.Equal(t, 45, tariffs[1].GraceMinutes)
	assert.False(t, tariffs[1].Active)
}

func TestReadTariffs_IDsEstables(t *testing.T) {
	a, err := readTariffs(strings.NewReader(sampleCSV), false)
	require.NoError(t, err)
	b, err := readTariffs(strings.NewReader(sampleCSV), false)
	require.NoError(t, err)
	assert.Equal(t, a[0].ID, b[0].ID)
	assert.NotEqual(t, a[0].ID, a[1].ID)
}

func TestReadTariffs_Latin1(t *testing.T) {
	raw := "descripcion;valor_base_hora;valor_fraccion;tope_diario;tiempo_gracia_min;activa\nPequeño vehículo;1000;500;0;30;no\n"
	enc, err := charmap.ISO8859_1.NewEncoder().String(raw)
	require.NoError(t, err)

	tariffs, err := readTariffs(strings.NewReader(enc), true)
	require.NoError(t, err)
	assert.Equal(t, "Pequeño vehículo", tariffs[0].Description)
}

func TestReadTariffs_Errores(t *testing.T) {
	header := "descripcion;valor_base_hora;valor_fraccion;tope_diario;tiempo_gracia_min;activa\n"
	cases := map[string]string{
		"sin filas":       header,
		"valor negativo":  header + "A;-1;0;0;30;no\n",
		"dos activas":     header + "A;1;0;0;30;si\nB;1;0;0;30;si\n",
		"gracia inválida": header + "A;1;0;0;media;no\n",
		"sin descripción": header + ";1;0;0;30;no\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := readTariffs(strings.NewReader(in), false)
			assert.Error(t, err)
		})
	}
}

func TestWriteSeed_MigracionGoose(t *testing.T) {
	tariffs, err := readTariffs(strings.NewReader(sampleCSV), false)
	require.NoError(t, err)
	tariffs[1].Description = "Motos d'noche"

	var buf bytes.Buffer
	require.NoError(t, writeSeed(&buf, tariffs))
	sql := buf.String()

	assert.Contains(t, sql, "-- +goose Up")
	assert.Contains(t, sql, "-- +goose Down")
	assert.Contains(t, sql, "3000.00, 1000.00, 25000.00, 30, true")
	assert.Contains(t, sql, "'Motos d''noche'")
	assert.Contains(t, sql, "ON CONFLICT (id) DO NOTHING;")
}
