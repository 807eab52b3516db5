// Package export implementa ports.TicketExporter en CSV y Excel.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jhoicas/crudpark-api/internal/application/dto"
	"github.com/jhoicas/crudpark-api/internal/application/ports"
)

var _ ports.TicketExporter = (*CSVExporter)(nil)

// Encabezados comunes de ambos formatos.
var ticketHeaders = []string{"ID", "Placa", "Tipo", "FechaIngreso", "FechaSalida", "TotalPagar", "Pagado"}

const csvTimeLayout = "2006-01-02T15:04:05Z07:00"

// CSVExporter escribe tickets como CSV UTF-8 con fechas RFC 3339 en UTC.
type CSVExporter struct{}

// NewCSVExporter construye el exportador.
func NewCSVExporter() *CSVExporter { return &CSVExporter{} }

// ContentType tipo MIME de la respuesta.
func (CSVExporter) ContentType() string { return "text/csv; charset=utf-8" }

// FileName nombre sugerido del adjunto.
func (CSVExporter) FileName() string { return "ReporteTickets.csv" }

// Export escribe encabezado y una fila por ticket. Los campos con comas o comillas se escapan.
func (CSVExporter) Export(w io.Writer, rows []dto.TicketExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ticketHeaders); err != nil {
		return fmt.Errorf("csv: encabezado: %w", err)
	}
	for _, r := range rows {
		exit := ""
		if r.ExitTime != nil {
			exit = r.ExitTime.UTC().Format(csvTimeLayout)
		}
		record := []string{
			r.ID,
			r.Plate,
			r.Kind,
			r.EntryTime.UTC().Format(csvTimeLayout),
			exit,
			r.AmountDue.StringFixed(2),
			strconv.FormatBool(r.Paid),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csv: fila %s: %w", r.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
