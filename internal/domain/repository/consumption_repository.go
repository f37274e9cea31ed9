package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/spog-api/internal/domain/entity"
)

// ConsumptionTotal resultado crudo de la consulta de consumos agregados por
// ítem en un período. Lo produce la DB; el use case lo convierte en DTO.
type ConsumptionTotal struct {
	ItemID        string
	ItemName      string
	PartNumber    string
	Unit          string          // unidad de almacenamiento del ítem
	TotalQuantity float64         // suma de cantidades convertidas
	TotalCost     decimal.Decimal // suma de costos de los eventos
	EventCount    int
}

// ConsumptionRepository puerto de persistencia de eventos de consumo.
type ConsumptionRepository interface {
	Create(c *entity.Consumption) error
	ListByItem(itemID string, limit, offset int) ([]entity.Consumption, error)
	// TotalsByPeriod devuelve los consumos agregados por ítem entre from y to
	// (SUM en SQL), ordenados por cantidad consumida descendente.
	TotalsByPeriod(from, to time.Time) ([]ConsumptionTotal, error)
}
