package http

import (
	"bytes"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crudpark-api/internal/application/dto"
	"github.com/jhoicas/crudpark-api/internal/application/ports"
	"github.com/jhoicas/crudpark-api/internal/application/usecase"
)

// TicketHandler ingreso, salida, consulta y reportes de tickets.
type TicketHandler struct {
	uc      *usecase.TicketUseCase
	reports *usecase.ReportUseCase
	csv     ports.TicketExporter
	excel   ports.TicketExporter
}

// NewTicketHandler construye el handler.
func NewTicketHandler(uc *usecase.TicketUseCase, reports *usecase.ReportUseCase, csv, excel ports.TicketExporter) *TicketHandler {
	return &TicketHandler{uc: uc, reports: reports, csv: csv, excel: excel}
}

// RegisterEntry godoc
// @Summary      Registrar ingreso
// @Description  Si la placa tiene mensualidad vigente el ticket es "mensual"; si no, "invitado".
// @Tags         tickets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EntryRequest  true  "placa y tipo opcional"
// @Success      201   {object}  dto.TicketResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tickets/ingreso [post]
func (h *TicketHandler) RegisterEntry(c *fiber.Ctx) error {
	var in dto.EntryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if strings.TrimSpace(in.Plate) == "" {
		return validation(c, "placa es requerida")
	}
	out, err := h.uc.RegisterEntry(c.UserContext(), GetOperatorID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegisterExit godoc
// @Summary      Registrar salida
// @Description  Calcula el valor con la tarifa activa y registra el pago si es mayor a 0.
// @Tags         tickets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ticket"
// @Param        body  body  dto.ExitRequest  false  "método de pago"
// @Success      200   {object}  dto.ExitResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tickets/{id}/salida [post]
func (h *TicketHandler) RegisterExit(c *fiber.Ctx) error {
	var in dto.ExitRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	out, err := h.uc.RegisterExit(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// List GET /api/tickets
func (h *TicketHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/tickets/:id
func (h *TicketHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Comprobante PDF
// @Tags         tickets
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del ticket"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/tickets/{id}/recibo [get]
func (h *TicketHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.uc.Receipt(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo-`+id+`.pdf"`)
	return c.Send(pdf)
}

// ── Reportes ────────────────────────────────────────────────────────────────

// Revenue godoc
// @Summary      Ingresos agrupados
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        granularidad  query  string  false  "day | isoweek | month (vacío = las tres)"
// @Param        desde         query  string  false  "fecha de salida mínima (2006-01-02)"
// @Param        hasta         query  string  false  "fecha de salida máxima, inclusiva (2006-01-02)"
// @Success      200  {object}  dto.RevenueReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/tickets/ingresos [get]
func (h *TicketHandler) Revenue(c *fiber.Ctx) error {
	out, err := h.reports.Revenue(c.UserContext(), dto.RevenueQuery{
		Granularity: c.Query("granularidad"),
		From:        c.Query("desde"),
		Until:       c.Query("hasta"),
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Occupancy GET /api/tickets/ocupacion
func (h *TicketHandler) Occupancy(c *fiber.Ctx) error {
	out, err := h.reports.Occupancy(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Comparison GET /api/tickets/comparativa
func (h *TicketHandler) Comparison(c *fiber.Ctx) error {
	out, err := h.reports.Comparison(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ExportCSV GET /api/tickets/export/csv
func (h *TicketHandler) ExportCSV(c *fiber.Ctx) error { return h.export(c, h.csv) }

// ExportExcel GET /api/tickets/export/excel
func (h *TicketHandler) ExportExcel(c *fiber.Ctx) error { return h.export(c, h.excel) }

func (h *TicketHandler) export(c *fiber.Ctx, exp ports.TicketExporter) error {
	var buf bytes.Buffer
	if err := h.reports.Export(c.UserContext(), &buf, exp); err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, exp.ContentType())
	c.Attachment(exp.FileName())
	return c.Send(buf.Bytes())
}
