// Package reports contiene los casos de uso de reportería: estado del
// inventario (porcentajes y clasificación normal/low/critical) y consumos
// agregados por período.
package reports

import (
	"context"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/spog-api/internal/application/dto"
	"github.com/tu-usuario/spog-api/internal/domain"
	"github.com/tu-usuario/spog-api/internal/domain/measure"
	"github.com/tu-usuario/spog-api/internal/domain/repository"
)

// consumptionReportMaxDays límite del rango del reporte de consumos.
const consumptionReportMaxDays = 366

// ReportUseCase genera los reportes de inventario y consumo.
//
// La clasificación de estado se calcula aquí con el motor de unidades, no en
// SQL: la DB solo aporta los snapshots y las sumas.
type ReportUseCase struct {
	itemRepo        repository.ItemRepository
	consumptionRepo repository.ConsumptionRepository
	pdfGenerator    ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	itemRepo repository.ItemRepository,
	consumptionRepo repository.ConsumptionRepository,
	pdfGenerator ReportPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		itemRepo:        itemRepo,
		consumptionRepo: consumptionRepo,
		pdfGenerator:    pdfGenerator,
	}
}

// InventoryReport construye el reporte de estado del inventario: porcentaje y
// estado por ítem más los agregados (promedio entero de porcentajes, conteo
// de ítems low y critical).
func (uc *ReportUseCase) InventoryReport(ctx context.Context) (*dto.InventoryReportDTO, error) {
	items, err := uc.itemRepo.List(repository.ItemFilter{Status: "active", Limit: 10000})
	if err != nil {
		return nil, err
	}

	report := &dto.InventoryReportDTO{
		Items:      make([]dto.ItemStatusDTO, 0, len(items)),
		TotalItems: len(items),
	}

	var pctSum float64
	for i := range items {
		item := &items[i]
		pct := measure.StockPercentage(item.CurrentBalance, item.OriginalAmount)
		status := measure.Classify(item.CurrentBalance, item.OriginalAmount)
		switch status {
		case measure.StatusLow:
			report.LowStockItems++
		case measure.StatusCritical:
			report.CriticalStockItems++
		}
		pctSum += pct
		report.Items = append(report.Items, dto.ItemStatusDTO{
			ItemID:          item.ID,
			Name:            item.Name,
			PartNumber:      item.PartNumber,
			Category:        item.Category,
			CurrentBalance:  item.CurrentBalance,
			OriginalAmount:  item.OriginalAmount,
			Unit:            item.Unit,
			StockPercentage: pct,
			Status:          string(status),
		})
	}
	if len(items) > 0 {
		// Media de porcentajes redondeada a entero (80, 15, 5 → 33).
		report.AverageStockLevel = int(math.Round(pctSum / float64(len(items))))
	}
	return report, nil
}

// ConsumptionReport devuelve los consumos agregados por ítem en el período
// [from, to]. Fechas en formato 2006-01-02; vacías = últimos 30 días.
func (uc *ReportUseCase) ConsumptionReport(ctx context.Context, in dto.ConsumptionReportRequest) (*dto.ConsumptionReportDTO, error) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)
	var err error
	if in.To != "" {
		if to, err = time.Parse("2006-01-02", in.To); err != nil {
			return nil, domain.ErrInvalidInput
		}
		// Fin de día inclusivo.
		to = to.Add(24*time.Hour - time.Nanosecond)
	}
	if in.From != "" {
		if from, err = time.Parse("2006-01-02", in.From); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	if from.After(to) || to.Sub(from) > consumptionReportMaxDays*24*time.Hour {
		return nil, domain.ErrInvalidInput
	}

	totals, err := uc.consumptionRepo.TotalsByPeriod(from, to)
	if err != nil {
		return nil, err
	}

	report := &dto.ConsumptionReportDTO{
		From:      from.Format("2006-01-02"),
		To:        to.Format("2006-01-02"),
		Totals:    make([]dto.ConsumptionTotalDTO, 0, len(totals)),
		TotalCost: decimal.Zero,
	}
	for _, t := range totals {
		report.Totals = append(report.Totals, dto.ConsumptionTotalDTO{
			ItemID:        t.ItemID,
			Name:          t.ItemName,
			PartNumber:    t.PartNumber,
			Unit:          t.Unit,
			TotalQuantity: t.TotalQuantity,
			TotalCost:     t.TotalCost,
			EventCount:    t.EventCount,
		})
		report.TotalCost = report.TotalCost.Add(t.TotalCost)
	}
	report.TotalCost = report.TotalCost.Round(2)
	return report, nil
}

// InventoryReportPDF genera el reporte de inventario en PDF (A4).
func (uc *ReportUseCase) InventoryReportPDF(ctx context.Context) ([]byte, error) {
	report, err := uc.InventoryReport(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdfGenerator.GenerateInventoryReportPDF(ctx, report)
}
