// Package pdf implementa la generación del reporte de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total ítems / Nivel medio / Bajos / Críticos      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: N° Parte | Nombre | Cat | Saldo | % | Estado        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tu-usuario/spog-api/internal/application/dto"
	"github.com/tu-usuario/spog-api/internal/application/reports"
	"github.com/tu-usuario/spog-api/internal/domain/measure"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLow      = &props.Color{Red: 200, Green: 120, Blue: 0}
	colorCritical = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// printer formatea números con separador de miles (es-CO: 1.000,5).
var printer = message.NewPrinter(language.Spanish)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ reports.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reports.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReportPDF(
	_ context.Context,
	report *dto.InventoryReportDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(report.Items) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")

	return row.New(14).Add(
		col.New(8).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Sellantes, pinturas, aceites y grasas", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// summaryRow: indicadores agregados del inventario.
func summaryRow(report *dto.InventoryReportDTO) core.Row {
	stat := func(label, value string, color *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{
				Size: 7, Align: align.Center, Color: colorGray, Top: 1,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center,
				Color: color, Top: 6,
			}),
		)
	}
	return row.New(16).Add(
		stat("Total de ítems", printer.Sprintf("%d", report.TotalItems), colorPrimary),
		stat("Nivel medio de stock", fmt.Sprintf("%d%%", report.AverageStockLevel), colorPrimary),
		stat("Stock bajo", printer.Sprintf("%d", report.LowStockItems), colorLow),
		stat("Stock crítico", printer.Sprintf("%d", report.CriticalStockItems), colorCritical),
	)
}

// tableHeaderRow: cabecera de la tabla de ítems.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("N° Parte", 2, align.Left),
		h("Nombre", 4, align.Left),
		h("Categoría", 2, align.Center),
		h("Saldo", 2, align.Right),
		h("%", 1, align.Center),
		h("Estado", 1, align.Center),
	)
}

// tableItemRows: una fila por ítem, con el estado coloreado.
func tableItemRows(items []dto.ItemStatusDTO) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				it.PartNumber,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				it.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				categoryLabel(it.Category),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				printer.Sprintf("%.2f", it.CurrentBalance)+" "+it.Unit,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%.0f", it.StockPercentage),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				statusLabel(it.Status),
				props.Text{
					Style: fontstyle.Bold, Size: 7, Align: align.Center,
					Color: statusColor(it.Status), Top: 1,
				},
			)),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func categoryLabel(category string) string {
	switch category {
	case "sealant":
		return "Sellante"
	case "paint":
		return "Pintura"
	case "oil":
		return "Aceite"
	case "grease":
		return "Grasa"
	default:
		return category
	}
}

func statusLabel(status string) string {
	switch measure.Status(status) {
	case measure.StatusCritical:
		return "CRÍTICO"
	case measure.StatusLow:
		return "BAJO"
	default:
		return "NORMAL"
	}
}

func statusColor(status string) *props.Color {
	switch measure.Status(status) {
	case measure.StatusCritical:
		return colorCritical
	case measure.StatusLow:
		return colorLow
	default:
		return colorPrimary
	}
}
