package ports

import (
	"io"

	"github.com/jhoicas/crudpark-api/internal/application/dto"
)

// TicketExporter escribe la proyección plana de tickets en un formato de archivo.
type TicketExporter interface {
	Export(w io.Writer, rows []dto.TicketExportRow) error
	ContentType() string
	FileName() string
}

// ReceiptGenerator genera el comprobante de salida de un ticket.
type ReceiptGenerator interface {
	Generate(ticket dto.TicketResponse, payment *dto.PaymentResponse, tariff *dto.TariffResponse) ([]byte, error)
}
