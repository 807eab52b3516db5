package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/crudpark-api/internal/application/dto"
	"github.com/jhoicas/crudpark-api/internal/application/ports"
)

var _ ports.TicketExporter = (*ExcelExporter)(nil)

const (
	excelSheet      = "Tickets"
	excelTimeLayout = "02/01/2006 15:04"
)

// ExcelExporter escribe tickets como libro .xlsx. Las horas se muestran en loc.
type ExcelExporter struct {
	loc *time.Location
}

// NewExcelExporter construye el exportador. loc nil = UTC.
func NewExcelExporter(loc *time.Location) *ExcelExporter {
	if loc == nil {
		loc = time.UTC
	}
	return &ExcelExporter{loc: loc}
}

// ContentType tipo MIME de la respuesta.
func (*ExcelExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileName nombre sugerido del adjunto.
func (*ExcelExporter) FileName() string { return "ReporteTickets.xlsx" }

// Export arma la hoja con encabezado en negrita y la escribe en w.
func (e *ExcelExporter) Export(w io.Writer, rows []dto.TicketExportRow) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", excelSheet); err != nil {
		return fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	headers := make([]any, len(ticketHeaders))
	for i, h := range ticketHeaders {
		headers[i] = h
	}
	if err := f.SetSheetRow(excelSheet, "A1", &headers); err != nil {
		return fmt.Errorf("excel: encabezado: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("excel: estilo: %w", err)
	}
	if err := f.SetCellStyle(excelSheet, "A1", "G1", bold); err != nil {
		return fmt.Errorf("excel: estilo encabezado: %w", err)
	}

	for i, r := range rows {
		exit := ""
		if r.ExitTime != nil {
			exit = r.ExitTime.In(e.loc).Format(excelTimeLayout)
		}
		paid := "No"
		if r.Paid {
			paid = "Sí"
		}
		amount, _ := r.AmountDue.Round(2).Float64()
		values := []any{
			r.ID,
			r.Plate,
			r.Kind,
			r.EntryTime.In(e.loc).Format(excelTimeLayout),
			exit,
			amount,
			paid,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(excelSheet, cell, &values); err != nil {
			return fmt.Errorf("excel: fila %d: %w", i+2, err)
		}
	}

	_ = f.SetColWidth(excelSheet, "A", "A", 38)
	_ = f.SetColWidth(excelSheet, "B", "C", 12)
	_ = f.SetColWidth(excelSheet, "D", "E", 18)
	_ = f.SetColWidth(excelSheet, "F", "G", 12)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("excel: escribir: %w", err)
	}
	return nil
}
