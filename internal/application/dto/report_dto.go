package dto

import "github.com/shopspring/decimal"

// ItemStatusDTO estado de stock de un ítem dentro del reporte de inventario.
type ItemStatusDTO struct {
	ItemID          string  `json:"item_id"`
	Name            string  `json:"name"`
	PartNumber      string  `json:"part_number"`
	Category        string  `json:"category"`
	CurrentBalance  float64 `json:"current_balance"`
	OriginalAmount  float64 `json:"original_amount"`
	Unit            string  `json:"unit"`
	StockPercentage float64 `json:"stock_percentage"`
	Status          string  `json:"status"` // normal, low, critical
}

// InventoryReportDTO respuesta de GET /api/reports/inventory.
type InventoryReportDTO struct {
	Items              []ItemStatusDTO `json:"items"`
	TotalItems         int             `json:"total_items"`
	AverageStockLevel  int             `json:"average_stock_level"` // media de porcentajes, redondeada a entero
	LowStockItems      int             `json:"low_stock_items"`
	CriticalStockItems int             `json:"critical_stock_items"`
}

// ConsumptionReportRequest query params de GET /api/reports/consumption.
type ConsumptionReportRequest struct {
	From string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// ConsumptionTotalDTO consumo agregado de un ítem en el período.
type ConsumptionTotalDTO struct {
	ItemID        string          `json:"item_id"`
	Name          string          `json:"name"`
	PartNumber    string          `json:"part_number"`
	Unit          string          `json:"unit"`
	TotalQuantity float64         `json:"total_quantity"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	EventCount    int             `json:"event_count"`
}

// ConsumptionReportDTO respuesta de GET /api/reports/consumption.
type ConsumptionReportDTO struct {
	From      string                `json:"from"`
	To        string                `json:"to"`
	Totals    []ConsumptionTotalDTO `json:"totals"`
	TotalCost decimal.Decimal       `json:"total_cost"`
}
