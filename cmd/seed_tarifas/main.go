// seed_tarifas genera una migración goose con las tarifas iniciales del parqueadero
// a partir de una hoja exportada a CSV (separador ';', como la exporta Excel en es-CO).
//
// Uso: go run ./cmd/seed_tarifas [-latin1] [-in tarifas.csv] [-out ruta.sql]
// Columnas: descripcion;valor_base_hora;valor_fraccion;tope_diario;tiempo_gracia_min;activa
// Por defecto escribe: internal/infrastructure/postgres/migrations/00002_seed_tariffs.sql
package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/crudpark-api/internal/domain/entity"
)

// Espacio de nombres de los UUID de semilla: misma descripción, mismo id.
var seedNamespace = uuid.MustParse("6f1c2b7e-3d4a-4c8e-9b1a-2f5d7e9c0a11")

func main() {
	in := flag.String("in", "tarifas.csv", "archivo CSV de entrada")
	out := flag.String("out", "", "archivo SQL de salida")
	latin1 := flag.Bool("latin1", false, "el CSV viene en ISO-8859-1")
	flag.Parse()

	f, err := os.Open(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	tariffs, err := readTariffs(f, *latin1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer tarifas: %v\n", err)
		os.Exit(1)
	}

	outPath := *out
	if outPath == "" {
		outPath = filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "00002_seed_tariffs.sql")
	}
	w, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer w.Close()

	if err := writeSeed(w, tariffs); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d tarifas\n", outPath, len(tariffs))
}

// readTariffs lee el CSV. La primera fila es encabezado. Aplica el mínimo de gracia.
func readTariffs(r io.Reader, latin1 bool) ([]entity.Tariff, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, errors.New("el CSV no tiene filas de datos")
	}

	var (
		tariffs []entity.Tariff
		active  int
	)
	for i, rec := range records[1:] {
		line := i + 2
		if len(rec) < 6 {
			return nil, fmt.Errorf("línea %d: se esperaban 6 columnas, hay %d", line, len(rec))
		}
		t := entity.Tariff{Description: strings.TrimSpace(rec[0])}
		if t.Description == "" {
			return nil, fmt.Errorf("línea %d: descripción vacía", line)
		}
		amounts := []*decimal.Decimal{&t.BaseHourlyRate, &t.FractionRate, &t.DailyCap}
		for j, dst := range amounts {
			d, err := parseAmount(rec[j+1])
			if err != nil {
				return nil, fmt.Errorf("línea %d, columna %d: %w", line, j+2, err)
			}
			*dst = d
		}
		grace, err := strconv.Atoi(strings.TrimSpace(rec[4]))
		if err != nil {
			return nil, fmt.Errorf("línea %d: tiempo de gracia inválido: %w", line, err)
		}
		t.GraceMinutes = grace
		t.ClampGrace()
		t.Active = parseBool(rec[5])
		if t.Active {
			active++
		}
		t.ID = uuid.NewSHA1(seedNamespace, []byte(strings.ToLower(t.Description))).String()
		tariffs = append(tariffs, t)
	}
	if active > 1 {
		return nil, fmt.Errorf("hay %d tarifas marcadas como activas; solo se permite una", active)
	}
	return tariffs, nil
}

// parseAmount acepta "1.500,50" (es-CO) y "1500.50".
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("valor %q inválido", s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("valor %q negativo", s)
	}
	return d, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "si", "sí", "true", "x", "activa":
		return true
	}
	return false
}

func writeSeed(w io.Writer, tariffs []entity.Tariff) error {
	var b strings.Builder
	b.WriteString("-- Tarifas iniciales del parqueadero\n")
	b.WriteString("-- Generado por cmd/seed_tarifas\n\n")
	b.WriteString("-- +goose Up\n")
	b.WriteString("INSERT INTO tariffs (id, description, base_hourly_rate, fraction_rate, daily_cap, grace_minutes, active) VALUES\n")
	for i, t := range tariffs {
		sep := ","
		if i == len(tariffs)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "  ('%s', '%s', %s, %s, %s, %d, %t)%s\n",
			t.ID, escapeSQL(t.Description),
			t.BaseHourlyRate.StringFixed(2), t.FractionRate.StringFixed(2), t.DailyCap.StringFixed(2),
			t.GraceMinutes, t.Active, sep)
	}
	b.WriteString("ON CONFLICT (id) DO NOTHING;\n\n")
	b.WriteString("-- +goose Down\n")
	b.WriteString("DELETE FROM tariffs WHERE id IN (")
	for i, t := range tariffs {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "'%s'", t.ID)
	}
	b.WriteString(");\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
