package reports

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/spog-api/internal/application/dto"
	"github.com/tu-usuario/spog-api/internal/domain"
	"github.com/tu-usuario/spog-api/internal/domain/entity"
	"github.com/tu-usuario/spog-api/internal/domain/repository"
)

type stubItemRepo struct {
	items []entity.Item
}

func (r *stubItemRepo) Create(*entity.Item) error                 { return nil }
func (r *stubItemRepo) GetByID(string) (*entity.Item, error)      { return nil, nil }
func (r *stubItemRepo) GetForUpdate(string) (*entity.Item, error) { return nil, nil }
func (r *stubItemRepo) List(repository.ItemFilter) ([]entity.Item, error) {
	return r.items, nil
}
func (r *stubItemRepo) Count(repository.ItemFilter) (int, error) { return len(r.items), nil }
func (r *stubItemRepo) Update(*entity.Item) error                { return nil }
func (r *stubItemRepo) UpdateBalance(string, float64) error      { return nil }
func (r *stubItemRepo) Delete(string) error                      { return nil }

type stubConsumptionRepo struct {
	totals []repository.ConsumptionTotal
	from   time.Time
	to     time.Time
}

func (r *stubConsumptionRepo) Create(*entity.Consumption) error { return nil }
func (r *stubConsumptionRepo) ListByItem(string, int, int) ([]entity.Consumption, error) {
	return nil, nil
}
func (r *stubConsumptionRepo) TotalsByPeriod(from, to time.Time) ([]repository.ConsumptionTotal, error) {
	r.from, r.to = from, to
	return r.totals, nil
}

func reportItem(id string, current, original float64) entity.Item {
	return entity.Item{
		ID:             id,
		Name:           "Ítem " + id,
		PartNumber:     "PN-" + id,
		Category:       entity.CategoryOil,
		CurrentBalance: current,
		OriginalAmount: original,
		Unit:           "L",
		Status:         entity.ItemStatusActive,
	}
}

// Fixtures literales del reporte: ítems al 80%, 15% y 5% producen promedio
// entero 33, un ítem low y un ítem critical.
func TestInventoryReport_Agregados(t *testing.T) {
	repo := &stubItemRepo{items: []entity.Item{
		reportItem("a", 80, 100),
		reportItem("b", 15, 100),
		reportItem("c", 5, 100),
	}}
	uc := NewReportUseCase(repo, &stubConsumptionRepo{}, nil)

	report, err := uc.InventoryReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalItems)
	assert.Equal(t, 33, report.AverageStockLevel)
	assert.Equal(t, 1, report.LowStockItems)
	assert.Equal(t, 1, report.CriticalStockItems)

	require.Len(t, report.Items, 3)
	assert.Equal(t, 80.0, report.Items[0].StockPercentage)
	assert.Equal(t, "normal", report.Items[0].Status)
	assert.Equal(t, 15.0, report.Items[1].StockPercentage)
	assert.Equal(t, "low", report.Items[1].Status)
	assert.Equal(t, 5.0, report.Items[2].StockPercentage)
	assert.Equal(t, "critical", report.Items[2].Status)
}

func TestInventoryReport_SinItems(t *testing.T) {
	uc := NewReportUseCase(&stubItemRepo{}, &stubConsumptionRepo{}, nil)

	report, err := uc.InventoryReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, report.TotalItems)
	assert.Equal(t, 0, report.AverageStockLevel)
	assert.Empty(t, report.Items)
}

func TestInventoryReport_OriginalCeroEsCritical(t *testing.T) {
	repo := &stubItemRepo{items: []entity.Item{reportItem("x", 5, 0)}}
	uc := NewReportUseCase(repo, &stubConsumptionRepo{}, nil)

	report, err := uc.InventoryReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.CriticalStockItems)
	assert.Equal(t, "critical", report.Items[0].Status)
	assert.Equal(t, 0.0, report.Items[0].StockPercentage)
}

func TestConsumptionReport_RangoExplicito(t *testing.T) {
	consRepo := &stubConsumptionRepo{totals: []repository.ConsumptionTotal{
		{ItemID: "a", ItemName: "Aceite 15W40", Unit: "L", TotalQuantity: 12.5,
			TotalCost: decimal.NewFromFloat(250.50), EventCount: 4},
		{ItemID: "b", ItemName: "Grasa EP-2", Unit: "kg", TotalQuantity: 3,
			TotalCost: decimal.NewFromFloat(49.50), EventCount: 2},
	}}
	uc := NewReportUseCase(&stubItemRepo{}, consRepo, nil)

	report, err := uc.ConsumptionReport(context.Background(), dto.ConsumptionReportRequest{
		From: "2026-08-01",
		To:   "2026-08-15",
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-08-01", report.From)
	assert.Equal(t, "2026-08-15", report.To)
	require.Len(t, report.Totals, 2)
	assert.True(t, report.TotalCost.Equal(decimal.NewFromFloat(300)),
		"costo total esperado 300, fue %s", report.TotalCost)

	// El fin del rango consultado debe ser inclusivo (fin de día).
	assert.Equal(t, 15, consRepo.to.Day())
	assert.Equal(t, 23, consRepo.to.Hour())
}

func TestConsumptionReport_RangoInvalido(t *testing.T) {
	uc := NewReportUseCase(&stubItemRepo{}, &stubConsumptionRepo{}, nil)

	_, err := uc.ConsumptionReport(context.Background(), dto.ConsumptionReportRequest{
		From: "2026-08-15",
		To:   "2026-08-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ConsumptionReport(context.Background(), dto.ConsumptionReportRequest{
		From: "15/08/2026",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
