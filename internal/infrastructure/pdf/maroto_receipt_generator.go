// Package pdf genera el comprobante de salida de un ticket.
//
// Layout:
//
//	┌──────────────────────────────────────────────┐
//	│  CRUDPARK                 Comprobante N°     │
//	│  ──────────────────────────────────────────  │
//	│  Placa / Tipo / Ingreso / Salida / Duración  │
//	│  Tarifa aplicada                             │
//	│  ──────────────────────────────────────────  │
//	│  TOTAL PAGADO + método                       │
//	│  QR del ticket                               │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crudpark-api/internal/application/dto"
	"github.com/jhoicas/crudpark-api/internal/application/ports"
	"github.com/jhoicas/crudpark-api/internal/domain/parking"
)

var _ ports.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const receiptTimeLayout = "02/01/2006 15:04"

// MarotoReceiptGenerator implementa ports.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	businessName string
	loc          *time.Location // zona en que se imprimen las horas; los datos siguen en UTC
}

// NewMarotoReceiptGenerator construye el generador. loc nil = UTC.
func NewMarotoReceiptGenerator(businessName string, loc *time.Location) *MarotoReceiptGenerator {
	if loc == nil {
		loc = time.UTC
	}
	return &MarotoReceiptGenerator{businessName: businessName, loc: loc}
}

// Generate genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) Generate(t dto.TicketResponse, payment *dto.PaymentResponse, tariff *dto.TariffResponse) ([]byte, error) {
	if t.ExitTime == nil {
		return nil, fmt.Errorf("pdf: el ticket %s no tiene salida", t.ID)
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Comprobante de salida", true).
		WithAuthor(g.businessName, true).
		Build()

	stay, err := stayDuration(t.EntryTime, *t.ExitTime)
	if err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(t))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.detailRows(t, stay, tariff)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(t, payment))
	if t.QRCode != nil && *t.QRCode != "" {
		m.AddRows(qrRow(*t.QRCode))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoReceiptGenerator) headerRow(t dto.TicketResponse) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.businessName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprobante de salida", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("TICKET", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(shortID(t.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

func (g *MarotoReceiptGenerator) detailRows(t dto.TicketResponse, stay string, tariff *dto.TariffResponse) []core.Row {
	exit := *t.ExitTime
	rows := []core.Row{
		detailRow("Placa", t.Plate),
		detailRow("Tipo", nonEmpty(t.Kind, "—")),
		detailRow("Ingreso", t.EntryTime.In(g.loc).Format(receiptTimeLayout)),
		detailRow("Salida", exit.In(g.loc).Format(receiptTimeLayout)),
		detailRow("Duración", stay),
	}
	if tariff != nil {
		rows = append(rows, detailRow("Tarifa", fmt.Sprintf("$%s/hora · fracción $%s · tope $%s · gracia %d min",
			formatMoney(tariff.BaseHourlyRate), formatMoney(tariff.FractionRate),
			formatMoney(tariff.DailyCap), tariff.GraceMinutes)))
	}
	return rows
}

func detailRow(label, value string) core.Row {
	return row.New(7).Add(
		col.New(4).Add(text.New(label+":", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
		col.New(8).Add(text.New(value, props.Text{Size: 9, Top: 1})),
	)
}

func totalRow(t dto.TicketResponse, payment *dto.PaymentResponse) core.Row {
	method := "sin cobro"
	if payment != nil {
		method = payment.Method
	}
	return row.New(16).Add(
		col.New(6).Add(
			text.New("TOTAL PAGADO:", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 3,
			}),
		),
		col.New(6).Add(
			text.New("$"+formatMoney(t.AmountDue), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Color: colorPrimary, Top: 3,
			}),
			text.New("Método: "+method, props.Text{Size: 8, Align: align.Right, Color: colorGray, Top: 10}),
		),
	)
}

func qrRow(qr string) core.Row {
	return row.New(45).Add(
		col.New(4).Add(code.NewQr(qr, props.Rect{Percent: 90, Center: true})),
		col.New(8).Add(
			text.New("Presente este código en portería\npara consultar el ticket.", props.Text{
				Size: 8, Top: 8, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// stayDuration: 165 min → "2 h 45 min (2,75 h)". Usa el mismo truncado a minutos que el cobro.
func stayDuration(entry, exit time.Time) (string, error) {
	minutes, err := parking.DurationMinutes(entry, exit)
	if err != nil {
		return "", err
	}
	hours, err := parking.BillableHours(entry, exit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s (%s h)", formatDuration(minutes), formatMoney(hours)), nil
}

// formatDuration: 165 → "2 h 45 min".
func formatDuration(minutes int64) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%d h %02d min", minutes/60, minutes%60)
}

// formatMoney valor con puntos de miles y centavos solo si existen.
// Ej: 25000 → "25.000", 1500.5 → "1.500,50"
func formatMoney(d decimal.Decimal) string {
	d = d.Round(2)
	intPart := d.Truncate(0)
	s := groupThousands(intPart.Abs().String())
	if d.IsNegative() {
		s = "-" + s
	}
	if frac := d.Sub(intPart).Abs(); !frac.IsZero() {
		s += "," + frac.StringFixed(2)[2:]
	}
	return s
}

func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
